// Package prompt assembles the per-invocation context object and renders it
// through the coaching prompt template. Assembly is a pure merge: all
// fetching happens before, in the plan resolver and the garmin facets.
package prompt

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
	"github.com/FelixWeichselgartner/HealthAgent/internal/units"
)

// Telemetry bundles the already-fetched Garmin facets.
type Telemetry struct {
	VO2Max      *float64
	VO2MaxTrend string
	Sleep       []models.SleepRecord
	Activities  []models.Activity
}

// WeekLabel renders the ISO calendar week, e.g. "KW35".
func WeekLabel(now time.Time) string {
	_, week := now.ISOWeek()
	return fmt.Sprintf("KW%02d", week)
}

// Assemble merges the base profile, the resolved plan lines and the
// telemetry block into one fresh context. The base is taken by value and
// never retained.
func Assemble(base models.PromptContext, planLines []string, tele Telemetry, now time.Time) models.PromptContext {
	ctx := base

	ctx.Meta.SnapshotID = uuid.NewString()
	ctx.Meta.NowISO = now.Format(time.RFC3339)
	if ctx.Meta.Timezone == "" {
		ctx.Meta.Timezone = "Europe/Berlin"
	}
	if ctx.Meta.Units == "" {
		ctx.Meta.Units = "metric"
	}

	ctx.Plan = models.Plan{
		WeekLabel: WeekLabel(now),
		Days:      planLines,
	}

	trend := tele.VO2MaxTrend
	if trend == "" {
		trend = "steigend"
	}

	ctx.Garmin = models.Garmin{
		VO2Max: models.VO2Max{
			Latest: tele.VO2Max,
			Trend:  trend,
		},
		Sleep:      sleepAverages(tele.Sleep),
		Activities: activitySummaries(tele.Activities),
		Flags: map[string]bool{
			// Wrist HR on the bike is known-noisy without a strap.
			"cycling_hr_maybe_inaccurate": true,
		},
	}

	return ctx
}

// sleepAverages rolls the fetched window up to simple arithmetic means,
// treating null entries as 0 in the numerator. The whole block is absent
// when the window is empty.
func sleepAverages(sleep []models.SleepRecord) models.SleepAverages {
	if len(sleep) == 0 {
		return models.SleepAverages{}
	}

	var effSum, durSum float64
	for _, rec := range sleep {
		if rec.SleepEfficiency != nil {
			effSum += *rec.SleepEfficiency
		}
		if rec.SleepDurationMin != nil {
			durSum += *rec.SleepDurationMin
		}
	}

	n := float64(len(sleep))
	avgScore := units.Round1(effSum / n)
	avgDurationH := units.Round2(durSum / n / 60.0)
	return models.SleepAverages{
		AvgScore:     &avgScore,
		AvgDurationH: &avgDurationH,
	}
}

func activitySummaries(acts []models.Activity) []models.ActivitySummary {
	out := make([]models.ActivitySummary, 0, len(acts))
	for _, a := range acts {
		date := a.StartTimeLocal
		if len(date) > 10 {
			date = date[:10]
		}
		out = append(out, models.ActivitySummary{
			Date:        date,
			Type:        a.Type,
			Title:       a.Name,
			DurationMin: a.DurationMin,
			DistanceKm:  a.DistanceKm,
			AvgHR:       a.AvgHR,
		})
	}
	return out
}
