package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS exercise_catalog (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	video_url  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS workouts (
	id           BIGSERIAL PRIMARY KEY,
	day          INTEGER NOT NULL DEFAULT 0,
	position     INTEGER NOT NULL DEFAULT 0,
	wtype        TEXT NOT NULL,
	title        TEXT NOT NULL,
	duration_min INTEGER,
	intensity    TEXT,
	notes        TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS workout_exercises (
	id          BIGSERIAL PRIMARY KEY,
	workout_id  BIGINT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	exercise_id BIGINT NOT NULL REFERENCES exercise_catalog(id),
	sets        INTEGER NOT NULL DEFAULT 3,
	reps        INTEGER NOT NULL DEFAULT 10
);
`

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those are rejected; credentials belong in env vars,
// .pgpass or the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}

func (s *PostgresStore) AddWorkout(w models.Workout) (int64, error) {
	createdAt := w.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO workouts (day, position, wtype, title, duration_min, intensity, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		w.Day, w.Position, w.Type, w.Title,
		nullableInt(w.DurationMin), nullableString(w.Intensity), nullableString(w.Notes),
		createdAt.Format(time.RFC3339),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add workout: %w", err)
	}
	if len(w.Exercises) > 0 {
		if err := s.ReplaceWorkoutExercises(id, w.Exercises); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (s *PostgresStore) GetWorkout(id int64) (models.Workout, error) {
	row := s.db.QueryRow(`
		SELECT id, day, position, wtype, title, duration_min, intensity, notes, created_at
		FROM workouts WHERE id = $1`, id)
	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return models.Workout{}, fmt.Errorf("workout %d not found", id)
	}
	if err != nil {
		return models.Workout{}, fmt.Errorf("failed to get workout: %w", err)
	}

	exByWorkout, err := s.exercisesForWorkouts([]int64{id})
	if err != nil {
		return models.Workout{}, err
	}
	w.Exercises = exByWorkout[id]
	if w.Exercises == nil {
		w.Exercises = []models.WorkoutExercise{}
	}
	return w, nil
}

func (s *PostgresStore) GetAllWorkouts() ([]models.Workout, error) {
	rows, err := s.db.Query(`
		SELECT id, day, position, wtype, title, duration_min, intensity, notes, created_at
		FROM workouts
		ORDER BY day ASC, position ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	var ids []int64
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, w)
		ids = append(ids, w.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	exByWorkout, err := s.exercisesForWorkouts(ids)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		workouts[i].Exercises = exByWorkout[workouts[i].ID]
		if workouts[i].Exercises == nil {
			workouts[i].Exercises = []models.WorkoutExercise{}
		}
	}
	return workouts, nil
}

func (s *PostgresStore) UpdateWorkout(w models.Workout) error {
	res, err := s.db.Exec(`
		UPDATE workouts
		SET day = $1, position = $2, wtype = $3, title = $4, duration_min = $5, intensity = $6, notes = $7
		WHERE id = $8`,
		w.Day, w.Position, w.Type, w.Title,
		nullableInt(w.DurationMin), nullableString(w.Intensity), nullableString(w.Notes),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("workout %d not found", w.ID)
	}
	return nil
}

func (s *PostgresStore) DeleteWorkout(id int64) error {
	res, err := s.db.Exec(`DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("workout %d not found", id)
	}
	return nil
}

func (s *PostgresStore) ReorderDay(day int, orderedIDs []int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for pos, id := range orderedIDs {
		if _, err := tx.Exec(`UPDATE workouts SET day = $1, position = $2 WHERE id = $3`, day, pos, id); err != nil {
			return fmt.Errorf("failed to reorder workout %d: %w", id, err)
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) ReplaceWorkoutExercises(workoutID int64, items []models.WorkoutExercise) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM workout_exercises WHERE workout_id = $1`, workoutID); err != nil {
		return fmt.Errorf("failed to clear workout exercises: %w", err)
	}
	for _, it := range items {
		sets, reps := it.Sets, it.Reps
		if sets == 0 {
			sets = 3
		}
		if reps == 0 {
			reps = 10
		}
		if _, err := tx.Exec(`
			INSERT INTO workout_exercises (workout_id, exercise_id, sets, reps)
			VALUES ($1, $2, $3, $4)`,
			workoutID, it.ExerciseID, sets, reps); err != nil {
			return fmt.Errorf("failed to attach exercise %d: %w", it.ExerciseID, err)
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) AddExercise(e models.Exercise) (int64, error) {
	var id int64
	err := s.db.QueryRow(`INSERT INTO exercise_catalog (name, video_url) VALUES ($1, $2) RETURNING id`,
		e.Name, e.VideoURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add exercise: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) GetAllExercises() ([]models.Exercise, error) {
	rows, err := s.db.Query(`SELECT id, name, video_url FROM exercise_catalog ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var out []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.VideoURL); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *PostgresStore) exercisesForWorkouts(ids []int64) (map[int64][]models.WorkoutExercise, error) {
	out := make(map[int64][]models.WorkoutExercise)
	if len(ids) == 0 {
		return out, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT we.id, we.workout_id, we.exercise_id, ec.name, ec.video_url, we.sets, we.reps
		FROM workout_exercises we
		JOIN exercise_catalog ec ON ec.id = we.exercise_id
		WHERE we.workout_id IN (%s)
		ORDER BY we.workout_id ASC, we.id ASC`, strings.Join(placeholders, ",")), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var we models.WorkoutExercise
		var workoutID int64
		if err := rows.Scan(&we.ID, &workoutID, &we.ExerciseID, &we.Name, &we.VideoURL, &we.Sets, &we.Reps); err != nil {
			return nil, fmt.Errorf("failed to scan workout exercise: %w", err)
		}
		out[workoutID] = append(out[workoutID], we)
	}
	return out, rows.Err()
}
