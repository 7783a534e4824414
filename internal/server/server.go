// Package server exposes the plan store over the JSON API the planner UI
// and the API plan source consume.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/FelixWeichselgartner/HealthAgent/internal/logger"
	"github.com/FelixWeichselgartner/HealthAgent/internal/storage"
)

// Server wraps the plan store with HTTP handlers.
type Server struct {
	Store storage.Provider
}

func New(store storage.Provider) *Server {
	return &Server{Store: store}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/workouts", s.handleListWorkouts)
	mux.HandleFunc("POST /api/workouts", s.handleCreateWorkout)
	mux.HandleFunc("PATCH /api/workouts/{id}", s.handleUpdateWorkout)
	mux.HandleFunc("DELETE /api/workouts/{id}", s.handleDeleteWorkout)
	mux.HandleFunc("PUT /api/workouts/{id}/exercises", s.handleReplaceExercises)
	mux.HandleFunc("POST /api/reorder", s.handleReorder)
	mux.HandleFunc("GET /api/exercises", s.handleListExercises)
	return mux
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	logger.Info("Planner API listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func jsonCreated(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
