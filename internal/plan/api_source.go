package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

// apiTimeout bounds one plan fetch over the network so a dead planner API
// cannot stall the whole context build.
const apiTimeout = 4 * time.Second

// APISource fetches the plan from a running planner API (the serve command
// or any compatible deployment of /api/workouts). It only joins the chain
// when a base URL is configured.
type APISource struct {
	BaseURL string
	Client  *http.Client
}

func NewAPISource(baseURL string) *APISource {
	return &APISource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: apiTimeout},
	}
}

func (s *APISource) Name() string { return "api" }

func (s *APISource) Fetch(ctx context.Context) ([]models.Workout, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/api/workouts", nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("planner API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planner API returned status %d", resp.StatusCode)
	}

	var workouts []models.Workout
	if err := json.NewDecoder(resp.Body).Decode(&workouts); err != nil {
		return nil, fmt.Errorf("decoding planner API response: %w", err)
	}
	return workouts, nil
}
