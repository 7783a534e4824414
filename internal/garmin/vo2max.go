package garmin

import (
	"context"
	"time"

	"github.com/FelixWeichselgartner/HealthAgent/internal/logger"
	"github.com/FelixWeichselgartner/HealthAgent/internal/units"
)

// VO2MaxToday returns today's VO2max estimate, preferring the precise value
// over the rounded one, or nil when no estimate exists. The facet is
// best-effort: any request or parse failure degrades to nil rather than
// aborting the aggregation.
func VO2MaxToday(ctx context.Context, api API, now time.Time) *float64 {
	data, err := api.MaxMetrics(ctx, Today(now))
	if err != nil {
		logger.Warn("Fetching max metrics failed", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	generic, ok := data[0]["generic"].(map[string]any)
	if !ok {
		return nil
	}

	// Explicit preference order, first numeric value wins.
	for _, key := range []string{"vo2MaxPreciseValue", "vo2MaxValue"} {
		if v := units.Float(generic[key]); v != nil {
			return v
		}
	}
	return nil
}
