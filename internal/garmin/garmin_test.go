package garmin

import (
	"context"
	"errors"
)

// fakeAPI implements API for tests without touching the network.
type fakeAPI struct {
	activities    []map[string]any
	activitiesErr error

	metrics    []map[string]any
	metricsErr error

	graphqlResp map[string]any
	graphqlErr  error
	lastQuery   string
	lastDate    string
}

func (f *fakeAPI) Activities(_ context.Context, start, limit int) ([]map[string]any, error) {
	return f.activities, f.activitiesErr
}

func (f *fakeAPI) MaxMetrics(_ context.Context, date string) ([]map[string]any, error) {
	f.lastDate = date
	return f.metrics, f.metricsErr
}

func (f *fakeAPI) GraphQL(_ context.Context, query string) (map[string]any, error) {
	f.lastQuery = query
	return f.graphqlResp, f.graphqlErr
}

var errUpstream = errors.New("upstream broke")
