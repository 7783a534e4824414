package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS exercise_catalog (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL UNIQUE,
	video_url  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS workouts (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
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
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	workout_id  INTEGER NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	exercise_id INTEGER NOT NULL REFERENCES exercise_catalog(id),
	sets        INTEGER NOT NULL DEFAULT 3,
	reps        INTEGER NOT NULL DEFAULT 10
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'healthagent init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) AddWorkout(w models.Workout) (int64, error) {
	createdAt := w.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	res, err := s.db.Exec(`
		INSERT INTO workouts (day, position, wtype, title, duration_min, intensity, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Day, w.Position, w.Type, w.Title,
		nullableInt(w.DurationMin), nullableString(w.Intensity), nullableString(w.Notes),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if len(w.Exercises) > 0 {
		if err := s.ReplaceWorkoutExercises(id, w.Exercises); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (s *SQLiteStore) GetWorkout(id int64) (models.Workout, error) {
	row := s.db.QueryRow(`
		SELECT id, day, position, wtype, title, duration_min, intensity, notes, created_at
		FROM workouts WHERE id = ?`, id)
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

func (s *SQLiteStore) GetAllWorkouts() ([]models.Workout, error) {
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

func (s *SQLiteStore) UpdateWorkout(w models.Workout) error {
	res, err := s.db.Exec(`
		UPDATE workouts
		SET day = ?, position = ?, wtype = ?, title = ?, duration_min = ?, intensity = ?, notes = ?
		WHERE id = ?`,
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

func (s *SQLiteStore) DeleteWorkout(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM workout_exercises WHERE workout_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete workout exercises: %w", err)
	}
	res, err := s.db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
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

func (s *SQLiteStore) ReorderDay(day int, orderedIDs []int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for pos, id := range orderedIDs {
		if _, err := tx.Exec(`UPDATE workouts SET day = ?, position = ? WHERE id = ?`, day, pos, id); err != nil {
			return fmt.Errorf("failed to reorder workout %d: %w", id, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) ReplaceWorkoutExercises(workoutID int64, items []models.WorkoutExercise) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM workout_exercises WHERE workout_id = ?`, workoutID); err != nil {
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
			VALUES (?, ?, ?, ?)`,
			workoutID, it.ExerciseID, sets, reps); err != nil {
			return fmt.Errorf("failed to attach exercise %d: %w", it.ExerciseID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) AddExercise(e models.Exercise) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO exercise_catalog (name, video_url) VALUES (?, ?)`,
		e.Name, e.VideoURL)
	if err != nil {
		return 0, fmt.Errorf("failed to add exercise: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) GetAllExercises() ([]models.Exercise, error) {
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

// exercisesForWorkouts loads the attached exercises for the given workout
// ids, catalog names resolved, ordered by attachment id (insertion order).
func (s *SQLiteStore) exercisesForWorkouts(ids []int64) (map[int64][]models.WorkoutExercise, error) {
	out := make(map[int64][]models.WorkoutExercise)
	if len(ids) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT we.id, we.workout_id, we.exercise_id, ec.name, ec.video_url, we.sets, we.reps
		FROM workout_exercises we
		JOIN exercise_catalog ec ON ec.id = we.exercise_id
		WHERE we.workout_id IN (%s)
		ORDER BY we.workout_id ASC, we.id ASC`, placeholders), args...)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row rowScanner) (models.Workout, error) {
	var w models.Workout
	var durationMin sql.NullInt64
	var intensity, notes sql.NullString
	var createdAt string

	err := row.Scan(&w.ID, &w.Day, &w.Position, &w.Type, &w.Title,
		&durationMin, &intensity, &notes, &createdAt)
	if err != nil {
		return models.Workout{}, err
	}

	if durationMin.Valid {
		d := int(durationMin.Int64)
		w.DurationMin = &d
	}
	w.Intensity = intensity.String
	w.Notes = notes.String
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		w.CreatedAt = t
	}
	return w, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
