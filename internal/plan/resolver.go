package plan

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/FelixWeichselgartner/HealthAgent/internal/logger"
	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

// ErrNoPlanData is returned when every source in the chain was exhausted
// without producing a plan. Unlike the telemetry facets an empty plan is a
// hard failure: the plan is the primary subject of the rendered output.
var ErrNoPlanData = errors.New("no plan data available from any source")

// Source is one fallible provider of the stored training week. A source
// either yields the raw workouts or fails; ordering and rendering are
// applied uniformly by Resolve.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Workout, error)
}

// Resolve walks the source chain in order and returns the rendered plan
// lines of the first source that yields data. Sources that fail or come back
// empty are logged and skipped; an exhausted chain yields ErrNoPlanData.
func Resolve(ctx context.Context, sources ...Source) ([]string, error) {
	for _, src := range sources {
		workouts, err := src.Fetch(ctx)
		if err != nil {
			logger.Warn("Plan source failed", "source", src.Name(), "error", err)
			continue
		}
		if len(workouts) == 0 {
			logger.Debug("Plan source empty", "source", src.Name())
			continue
		}
		return Lines(workouts), nil
	}
	return nil, ErrNoPlanData
}

// Lines orders workouts by weekday, per-day position and id (insertion
// order as the tie-breaker) and renders one line per session.
func Lines(workouts []models.Workout) []string {
	ordered := make([]models.Workout, len(workouts))
	copy(ordered, workouts)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Day != ordered[j].Day {
			return ordered[i].Day < ordered[j].Day
		}
		if ordered[i].Position != ordered[j].Position {
			return ordered[i].Position < ordered[j].Position
		}
		return ordered[i].ID < ordered[j].ID
	})

	lines := make([]string, 0, len(ordered))
	for _, w := range ordered {
		lines = append(lines, FormatLine(w.Day, w))
	}
	return lines
}

// WorkoutReader is the slice of the storage provider the store source needs.
type WorkoutReader interface {
	GetAllWorkouts() ([]models.Workout, error)
}

// StoreSource reads the plan from the local planner database.
type StoreSource struct {
	Store WorkoutReader
}

func (s *StoreSource) Name() string { return "store" }

func (s *StoreSource) Fetch(_ context.Context) ([]models.Workout, error) {
	workouts, err := s.Store.GetAllWorkouts()
	if err != nil {
		return nil, fmt.Errorf("reading workouts from store: %w", err)
	}
	return workouts, nil
}
