package storage

import "github.com/FelixWeichselgartner/HealthAgent/internal/models"

// Provider is the plan store contract. Two implementations exist: SQLite
// (default, local file) and Postgres (connection-string config).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Workouts
	AddWorkout(models.Workout) (int64, error)
	GetWorkout(id int64) (models.Workout, error)
	// GetAllWorkouts returns all workouts with their attached exercises,
	// ordered by day, per-day position and id.
	GetAllWorkouts() ([]models.Workout, error)
	UpdateWorkout(models.Workout) error
	DeleteWorkout(id int64) error
	// ReorderDay moves the given workouts to day and assigns positions in
	// the order of orderedIDs.
	ReorderDay(day int, orderedIDs []int64) error
	// ReplaceWorkoutExercises replaces all exercise attachments of a workout.
	ReplaceWorkoutExercises(workoutID int64, items []models.WorkoutExercise) error

	// Exercise catalog
	AddExercise(models.Exercise) (int64, error)
	GetAllExercises() ([]models.Exercise, error)

	// Utils
	GetConfigPath() string
}
