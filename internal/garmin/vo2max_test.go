package garmin

import (
	"context"
	"testing"
)

func TestVO2MaxToday_PrefersPreciseValue(t *testing.T) {
	api := &fakeAPI{metrics: []map[string]any{
		{"generic": map[string]any{
			"vo2MaxPreciseValue": float64(47.3),
			"vo2MaxValue":        float64(47),
		}},
	}}

	got := VO2MaxToday(context.Background(), api, testNow)
	if got == nil || *got != 47.3 {
		t.Errorf("VO2MaxToday = %v, want 47.3", got)
	}
	if api.lastDate != "2025-08-29" {
		t.Errorf("requested date = %q, want today", api.lastDate)
	}
}

func TestVO2MaxToday_FallsBackToRoundedValue(t *testing.T) {
	api := &fakeAPI{metrics: []map[string]any{
		{"generic": map[string]any{"vo2MaxValue": float64(46)}},
	}}

	got := VO2MaxToday(context.Background(), api, testNow)
	if got == nil || *got != 46.0 {
		t.Errorf("VO2MaxToday = %v, want 46.0", got)
	}
}

func TestVO2MaxToday_EmptyResponseIsAbsent(t *testing.T) {
	api := &fakeAPI{metrics: []map[string]any{}}

	if got := VO2MaxToday(context.Background(), api, testNow); got != nil {
		t.Errorf("VO2MaxToday = %v, want nil for empty response", *got)
	}
}

func TestVO2MaxToday_ErrorSwallowed(t *testing.T) {
	api := &fakeAPI{metricsErr: errUpstream}

	if got := VO2MaxToday(context.Background(), api, testNow); got != nil {
		t.Errorf("VO2MaxToday = %v, want nil on request failure", *got)
	}
}

func TestVO2MaxToday_MalformedGenericIsAbsent(t *testing.T) {
	api := &fakeAPI{metrics: []map[string]any{
		{"generic": "garbage"},
	}}

	if got := VO2MaxToday(context.Background(), api, testNow); got != nil {
		t.Errorf("VO2MaxToday = %v, want nil for malformed payload", *got)
	}
}
