package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
	"github.com/FelixWeichselgartner/HealthAgent/internal/storage"
)

func newTestServer(t *testing.T) (*Server, storage.Provider) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store), store
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListWorkouts_Empty(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv.Handler(), "GET", "/api/workouts", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("empty list should encode as [], got %q", got)
	}
}

func TestCreateAndListWorkouts(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, "POST", "/api/workouts", map[string]any{
		"day": 1, "wtype": "cardio", "title": "Run/Walk Intervall",
		"duration_min": 30, "intensity": "RPE 3",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Error("no id returned")
	}

	rec = doJSON(t, h, "GET", "/api/workouts", nil)
	var workouts []models.Workout
	if err := json.NewDecoder(rec.Body).Decode(&workouts); err != nil {
		t.Fatal(err)
	}
	if len(workouts) != 1 || workouts[0].Title != "Run/Walk Intervall" || workouts[0].Day != 1 {
		t.Errorf("listed workouts = %+v", workouts)
	}
	if workouts[0].DurationMin == nil || *workouts[0].DurationMin != 30 {
		t.Errorf("duration_min = %v", workouts[0].DurationMin)
	}
}

func TestCreateWorkout_Defaults(t *testing.T) {
	srv, store := newTestServer(t)
	rec := doJSON(t, srv.Handler(), "POST", "/api/workouts", map[string]any{"day": 3})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}

	workouts, err := store.GetAllWorkouts()
	if err != nil {
		t.Fatal(err)
	}
	if workouts[0].Type != "other" || workouts[0].Title != "Training" {
		t.Errorf("defaults not applied: %+v", workouts[0])
	}
}

func TestCreateWorkout_Validation(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	if rec := doJSON(t, h, "POST", "/api/workouts", map[string]any{"day": 7}); rec.Code != http.StatusBadRequest {
		t.Errorf("day 7: status = %d", rec.Code)
	}
	req := httptest.NewRequest("POST", "/api/workouts", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d", rec.Code)
	}
}

func TestPatchWorkout(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Handler()

	id, err := store.AddWorkout(models.Workout{Day: 0, Type: "cardio", Title: "Intervalle", Intensity: "RPE 3"})
	if err != nil {
		t.Fatal(err)
	}

	rec := doJSON(t, h, "PATCH", "/api/workouts/1", map[string]any{"title": "Intervalle lang", "day": 4})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	w, err := store.GetWorkout(id)
	if err != nil {
		t.Fatal(err)
	}
	if w.Title != "Intervalle lang" || w.Day != 4 {
		t.Errorf("patch not applied: %+v", w)
	}
	// Fields absent from the patch stay untouched.
	if w.Intensity != "RPE 3" || w.Type != "cardio" {
		t.Errorf("untouched fields changed: %+v", w)
	}

	if rec := doJSON(t, h, "PATCH", "/api/workouts/99", map[string]any{"title": "x"}); rec.Code != http.StatusNotFound {
		t.Errorf("missing workout: status = %d", rec.Code)
	}
	if rec := doJSON(t, h, "PATCH", "/api/workouts/abc", map[string]any{"title": "x"}); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d", rec.Code)
	}
}

func TestDeleteWorkout(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Handler()

	id, err := store.AddWorkout(models.Workout{Day: 0, Type: "other", Title: "weg"})
	if err != nil {
		t.Fatal(err)
	}

	if rec := doJSON(t, h, "DELETE", "/api/workouts/1", nil); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, err := store.GetWorkout(id); err == nil {
		t.Error("workout still present after delete")
	}
	if rec := doJSON(t, h, "DELETE", "/api/workouts/1", nil); rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d", rec.Code)
	}
}

func TestReplaceExercises(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Handler()

	eid, err := store.AddExercise(models.Exercise{Name: "Spanish Squat"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddWorkout(models.Workout{Day: 0, Type: "strength", Title: "Kraft"}); err != nil {
		t.Fatal(err)
	}

	rec := doJSON(t, h, "PUT", "/api/workouts/1/exercises", map[string]any{
		"exercises": []map[string]any{{"exercise_id": eid, "sets": 4, "reps": 12}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	w, err := store.GetWorkout(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Exercises) != 1 || w.Exercises[0].Name != "Spanish Squat" || w.Exercises[0].Sets != 4 {
		t.Errorf("exercises = %+v", w.Exercises)
	}
}

func TestReorder(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Handler()

	a, _ := store.AddWorkout(models.Workout{Day: 2, Position: 0, Type: "other", Title: "a"})
	b, _ := store.AddWorkout(models.Workout{Day: 2, Position: 1, Type: "other", Title: "b"})

	rec := doJSON(t, h, "POST", "/api/reorder", map[string]any{"day": 2, "order": []int64{b, a}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	workouts, err := store.GetAllWorkouts()
	if err != nil {
		t.Fatal(err)
	}
	if workouts[0].Title != "b" || workouts[1].Title != "a" {
		t.Errorf("order after reorder: %q, %q", workouts[0].Title, workouts[1].Title)
	}

	if rec := doJSON(t, h, "POST", "/api/reorder", map[string]any{"order": []int64{a}}); rec.Code != http.StatusBadRequest {
		t.Errorf("missing day: status = %d", rec.Code)
	}
	if rec := doJSON(t, h, "POST", "/api/reorder", map[string]any{"day": 9, "order": []int64{a}}); rec.Code != http.StatusBadRequest {
		t.Errorf("day out of range: status = %d", rec.Code)
	}
}

func TestListExercises(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, "GET", "/api/exercises", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "[]\n" {
		t.Errorf("empty catalog: status %d body %q", rec.Code, rec.Body.String())
	}

	if _, err := store.AddExercise(models.Exercise{Name: "Bird Dog", VideoURL: "https://example.com/bd"}); err != nil {
		t.Fatal(err)
	}
	rec = doJSON(t, h, "GET", "/api/exercises", nil)
	var exercises []models.Exercise
	if err := json.NewDecoder(rec.Body).Decode(&exercises); err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 1 || exercises[0].Name != "Bird Dog" {
		t.Errorf("exercises = %+v", exercises)
	}
}
