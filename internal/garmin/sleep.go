package garmin

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/FelixWeichselgartner/HealthAgent/internal/logger"
	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
	"github.com/FelixWeichselgartner/HealthAgent/internal/units"
)

// SleepLastNDays fetches the last ndays of sleep summaries via GraphQL and
// reconciles the variant field names Garmin uses across record instances.
// The facet degrades to an empty slice on any request failure. Records that
// carry neither a date nor any metric are placeholders and are dropped; a
// missing total duration is derived from the stage sums when those exist.
// The result is sorted ascending by date, records without a date first.
func SleepLastNDays(ctx context.Context, api API, ndays int, now time.Time) []models.SleepRecord {
	if ndays <= 0 {
		return []models.SleepRecord{}
	}

	end := now
	start := end.AddDate(0, 0, -(ndays - 1))
	query := fmt.Sprintf(
		`query{sleepSummariesScalar(startDate:"%s", endDate:"%s")}`,
		Today(start), Today(end),
	)

	raw, err := api.GraphQL(ctx, query)
	if err != nil {
		logger.Warn("Sleep summary query failed", "error", err)
		return []models.SleepRecord{}
	}

	// The payload sits under "data", but some gateway versions return it at
	// the top level.
	data := raw
	if d, ok := raw["data"].(map[string]any); ok {
		data = d
	}
	items, _ := data["sleepSummariesScalar"].([]any)

	out := make([]models.SleepRecord, 0, len(items))
	for _, it := range items {
		item, ok := it.(map[string]any)
		if !ok {
			continue
		}
		if rec, ok := reconcileSleepItem(item); ok {
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// reconcileSleepItem maps one raw sleep item to a SleepRecord. Field lookup
// tries an ordered list of candidate paths across the nested summary object
// and the item itself; the first non-null candidate wins. ok=false marks a
// placeholder item that must not be materialized.
func reconcileSleepItem(item map[string]any) (models.SleepRecord, bool) {
	summary := nestedMap(item, "summary")
	if summary == nil {
		summary = nestedMap(item, "sleepSummary")
	}
	if summary == nil {
		summary = item
	}

	rec := models.SleepRecord{
		SleepDurationMin: units.DurationMin(first(
			summary["durationInSeconds"], summary["sleepDurationInSeconds"],
			item["durationInSeconds"], item["sleepDurationInSeconds"],
		)),
		DeepSleepMin: units.DurationMin(first(
			summary["deepSleepSeconds"], summary["deepSleepDurationInSeconds"],
			item["deepSleepSeconds"], item["deepSleepDurationInSeconds"],
		)),
		LightSleepMin: units.DurationMin(first(
			summary["lightSleepSeconds"], summary["lightSleepDurationInSeconds"],
			item["lightSleepSeconds"], item["lightSleepDurationInSeconds"],
		)),
		RemSleepMin: units.DurationMin(first(
			summary["remSleepSeconds"], summary["remSleepDurationInSeconds"],
			item["remSleepSeconds"], item["remSleepDurationInSeconds"],
		)),
		SleepEfficiency: units.Float(first(
			summary["sleepEfficiency"], item["sleepEfficiency"],
		)),
		Awakenings: units.Int(first(
			summary["awakeningsCount"], summary["numberOfAwakenings"],
			item["awakeningsCount"], item["numberOfAwakenings"],
		)),
		AvgHr: units.Int(first(
			summary["averageHeartRate"], item["averageHeartRate"],
		)),
	}

	if d, ok := first(
		item["calendarDate"], summary["calendarDate"], item["date"],
	).(string); ok {
		rec.Date = d
	}

	// Placeholder: no date and all seven metrics null.
	if rec.Date == "" &&
		rec.SleepDurationMin == nil && rec.DeepSleepMin == nil &&
		rec.LightSleepMin == nil && rec.RemSleepMin == nil &&
		rec.SleepEfficiency == nil && rec.Awakenings == nil && rec.AvgHr == nil {
		return models.SleepRecord{}, false
	}

	// Derive the total from stage sums when it is missing, but never
	// fabricate a zero.
	if rec.SleepDurationMin == nil {
		sum := 0.0
		for _, stage := range []*float64{rec.DeepSleepMin, rec.LightSleepMin, rec.RemSleepMin} {
			if stage != nil {
				sum += *stage
			}
		}
		if sum > 0 {
			total := units.Round1(sum)
			rec.SleepDurationMin = &total
		}
	}

	return rec, true
}

// first returns the first non-nil value, mirroring the candidate-path order
// of the field reconciliation.
func first(vals ...any) any {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func nestedMap(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return nil
}
