package garmin

import (
	"context"
	"errors"
	"fmt"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
	"github.com/FelixWeichselgartner/HealthAgent/internal/units"
)

// RecentActivities returns the most recent activities, normalized. Unlike
// the sleep and VO2max facets this one propagates failures: rate limiting
// stays distinguishable via errors.Is(err, ErrRateLimited).
func RecentActivities(ctx context.Context, api API, limit int) ([]models.Activity, error) {
	raw, err := api.Activities(ctx, 0, limit)
	if err != nil {
		if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrAuthentication) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching activities failed: %w", err)
	}

	out := make([]models.Activity, 0, len(raw))
	for _, a := range raw {
		out = append(out, NormalizeActivity(a))
	}
	return out, nil
}

// NormalizeActivity maps one raw activity record to the stable Activity
// shape. No raw field is required; anything missing or non-numeric comes out
// as the zero value / nil.
func NormalizeActivity(a map[string]any) models.Activity {
	act := models.Activity{
		ActivityID:     asID(a["activityId"]),
		DistanceKm:     units.DistanceKm(a["distance"]),
		DurationMin:    units.DurationMin(a["duration"]),
		AvgSpeedKmh:    units.SpeedKmh(a["averageSpeed"]),
		AvgHR:          units.Int(a["averageHR"]),
		MaxHR:          units.Int(a["maxHR"]),
		ElevationGainM: units.Float(a["elevationGain"]),
	}

	if s, ok := a["startTimeLocal"].(string); ok {
		act.StartTimeLocal = s
	}
	if s, ok := a["activityName"].(string); ok {
		act.Name = s
	}
	// Type tag lives behind the nested activityType.typeKey path.
	if at, ok := a["activityType"].(map[string]any); ok {
		if key, ok := at["typeKey"].(string); ok {
			act.Type = key
		}
	}

	return act
}

func asID(v any) *int64 {
	f, ok := units.AsFloat(v)
	if !ok {
		return nil
	}
	id := int64(f)
	return &id
}
