package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/FelixWeichselgartner/HealthAgent/internal/garmin"
)

// FetchCmd is the demo mode: pull the raw telemetry facets and dump them as
// a JSON summary to stdout. Useful for checking the Garmin login and what
// the upstream actually returns.
type FetchCmd struct {
	Limit     int `default:"7" help:"Recent activities to fetch."`
	SleepDays int `default:"7" help:"How many past days of sleep to fetch."`
}

func (c *FetchCmd) Run(ctx *Context) error {
	bg := context.Background()
	api, err := ctx.GarminClient(bg)
	if err != nil {
		return err
	}

	now := time.Now()
	activities, err := garmin.RecentActivities(bg, api, c.Limit)
	if err != nil {
		return err
	}
	vo2 := garmin.VO2MaxToday(bg, api, now)
	sleep := garmin.SleepLastNDays(bg, api, c.SleepDays, now)

	summary := map[string]any{
		"fetched_at":        now.Format(time.RFC3339),
		"vo2max":            vo2,
		"activities_recent": activities,
		"sleep":             sleep,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}
