package models

import "time"

// Exercise is one entry of the exercise catalog.
type Exercise struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	VideoURL string `json:"video_url,omitempty"`
}

// WorkoutExercise attaches a catalog exercise to a workout with a
// sets/reps prescription. Name and VideoURL are resolved from the catalog.
type WorkoutExercise struct {
	ID         int64  `json:"id"`
	ExerciseID int64  `json:"exercise_id"`
	Name       string `json:"name"`
	VideoURL   string `json:"video_url,omitempty"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
}

// Workout is one scheduled training session. Day is the weekday index
// 0=Mo..6=So, Position orders sessions within a day.
type Workout struct {
	ID          int64             `json:"id"`
	Day         int               `json:"day"`
	Position    int               `json:"position"`
	Type        string            `json:"wtype"`
	Title       string            `json:"title"`
	DurationMin *int              `json:"duration_min"`
	Intensity   string            `json:"intensity,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at,omitzero"`
	Exercises   []WorkoutExercise `json:"exercises"`
}
