package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.Store.GetAllWorkouts()
	if err != nil {
		jsonError(w, "Failed to list workouts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []models.Workout{}
	}
	jsonOK(w, workouts)
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if workout.Type == "" {
		workout.Type = "other"
	}
	if workout.Title == "" {
		workout.Title = "Training"
	}
	if workout.Day < 0 || workout.Day > 6 {
		jsonError(w, "day must be in 0..6", http.StatusBadRequest)
		return
	}

	id, err := s.Store.AddWorkout(workout)
	if err != nil {
		jsonError(w, "Failed to create workout: "+err.Error(), http.StatusInternalServerError)
		return
	}
	jsonCreated(w, map[string]any{"id": id})
}

// patchWorkoutRequest carries the partial update; pointer fields distinguish
// "absent" from zero values.
type patchWorkoutRequest struct {
	Day         *int    `json:"day"`
	Position    *int    `json:"position"`
	Type        *string `json:"wtype"`
	Title       *string `json:"title"`
	DurationMin *int    `json:"duration_min"`
	Intensity   *string `json:"intensity"`
	Notes       *string `json:"notes"`
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	workout, err := s.Store.GetWorkout(id)
	if err != nil {
		jsonError(w, "Workout not found", http.StatusNotFound)
		return
	}

	var req patchWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Day != nil {
		workout.Day = *req.Day
	}
	if req.Position != nil {
		workout.Position = *req.Position
	}
	if req.Type != nil {
		workout.Type = *req.Type
	}
	if req.Title != nil {
		workout.Title = *req.Title
	}
	if req.DurationMin != nil {
		workout.DurationMin = req.DurationMin
	}
	if req.Intensity != nil {
		workout.Intensity = *req.Intensity
	}
	if req.Notes != nil {
		workout.Notes = *req.Notes
	}

	if err := s.Store.UpdateWorkout(workout); err != nil {
		jsonError(w, "Failed to update workout: "+err.Error(), http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]string{"status": "ok"})
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.Store.DeleteWorkout(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			jsonError(w, "Workout not found", http.StatusNotFound)
		} else {
			jsonError(w, "Failed to delete workout: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	jsonOK(w, map[string]string{"status": "deleted"})
}

func (s *Server) handleReplaceExercises(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Exercises []models.WorkoutExercise `json:"exercises"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.Store.ReplaceWorkoutExercises(id, req.Exercises); err != nil {
		jsonError(w, "Failed to replace exercises: "+err.Error(), http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]string{"status": "ok"})
}

func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day   *int    `json:"day"`
		Order []int64 `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Day == nil || *req.Day < 0 || *req.Day > 6 {
		jsonError(w, "day must be in 0..6", http.StatusBadRequest)
		return
	}

	if err := s.Store.ReorderDay(*req.Day, req.Order); err != nil {
		jsonError(w, "Failed to reorder: "+err.Error(), http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]string{"status": "ok"})
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.Store.GetAllExercises()
	if err != nil {
		jsonError(w, "Failed to list exercises: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	jsonOK(w, exercises)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, "Invalid workout id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
