package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

func f(v float64) *float64 { return &v }

var testNow = time.Date(2025, time.August, 29, 8, 30, 0, 0, time.UTC)

func TestWeekLabel(t *testing.T) {
	if got := WeekLabel(testNow); got != "KW35" {
		t.Errorf("WeekLabel = %q, want KW35", got)
	}
	// Single-digit weeks are zero-padded.
	jan := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	if got := WeekLabel(jan); got != "KW02" {
		t.Errorf("WeekLabel = %q, want KW02", got)
	}
}

func TestAssemble_StampsMeta(t *testing.T) {
	ctx := Assemble(models.PromptContext{}, nil, Telemetry{}, testNow)

	if ctx.Meta.SnapshotID == "" {
		t.Error("snapshot id not set")
	}
	if ctx.Meta.NowISO != testNow.Format(time.RFC3339) {
		t.Errorf("now_iso = %q", ctx.Meta.NowISO)
	}
	if ctx.Meta.Timezone != "Europe/Berlin" || ctx.Meta.Units != "metric" {
		t.Errorf("defaults not applied: %+v", ctx.Meta)
	}

	other := Assemble(models.PromptContext{}, nil, Telemetry{}, testNow)
	if other.Meta.SnapshotID == ctx.Meta.SnapshotID {
		t.Error("snapshot ids should differ per assembly")
	}
}

func TestAssemble_KeepsProfileMeta(t *testing.T) {
	base := models.DefaultPromptContext()
	base.Meta.Timezone = "Europe/Vienna"
	ctx := Assemble(base, nil, Telemetry{}, testNow)
	if ctx.Meta.Timezone != "Europe/Vienna" {
		t.Errorf("profile timezone overwritten: %q", ctx.Meta.Timezone)
	}
}

func TestAssemble_Plan(t *testing.T) {
	lines := []string{"Mo: Kraft & Physio", "Di: Run/Walk Intervall 30'"}
	ctx := Assemble(models.PromptContext{}, lines, Telemetry{}, testNow)

	if ctx.Plan.WeekLabel != "KW35" {
		t.Errorf("week label = %q", ctx.Plan.WeekLabel)
	}
	if len(ctx.Plan.Days) != 2 || ctx.Plan.Days[0] != "Mo: Kraft & Physio" {
		t.Errorf("plan days = %v", ctx.Plan.Days)
	}
}

func TestAssemble_VO2MaxAndFlags(t *testing.T) {
	ctx := Assemble(models.PromptContext{}, nil, Telemetry{VO2Max: f(47.0)}, testNow)

	if ctx.Garmin.VO2Max.Latest == nil || *ctx.Garmin.VO2Max.Latest != 47.0 {
		t.Errorf("vo2max = %v", ctx.Garmin.VO2Max.Latest)
	}
	if ctx.Garmin.VO2Max.Trend != "steigend" {
		t.Errorf("default trend = %q", ctx.Garmin.VO2Max.Trend)
	}
	if !ctx.Garmin.Flags["cycling_hr_maybe_inaccurate"] {
		t.Error("cycling HR flag missing")
	}
}

func TestAssemble_SleepAverages(t *testing.T) {
	sleep := []models.SleepRecord{
		{Date: "2025-08-26", SleepEfficiency: f(90.0), SleepDurationMin: f(450.0)},
		{Date: "2025-08-27", SleepEfficiency: f(80.0)}, // null duration counts as 0
		{Date: "2025-08-28", SleepEfficiency: f(85.0), SleepDurationMin: f(420.0)},
	}
	ctx := Assemble(models.PromptContext{}, nil, Telemetry{Sleep: sleep}, testNow)

	avg := ctx.Garmin.Sleep
	if avg.AvgScore == nil || *avg.AvgScore != 85.0 {
		t.Errorf("avg_score = %v, want 85.0", avg.AvgScore)
	}
	// (450+0+420)/3/60 = 4.83h
	if avg.AvgDurationH == nil || *avg.AvgDurationH != 4.83 {
		t.Errorf("avg_duration_h = %v, want 4.83", avg.AvgDurationH)
	}
	if avg.AvgRHR != nil {
		t.Errorf("avg_rhr should stay unset, got %v", *avg.AvgRHR)
	}
}

func TestAssemble_EmptySleepWindow(t *testing.T) {
	ctx := Assemble(models.PromptContext{}, nil, Telemetry{}, testNow)
	if ctx.Garmin.Sleep.AvgScore != nil || ctx.Garmin.Sleep.AvgDurationH != nil {
		t.Errorf("averages should be absent for empty window: %+v", ctx.Garmin.Sleep)
	}
}

func TestAssemble_ActivitySummaries(t *testing.T) {
	hr := 128
	acts := []models.Activity{
		{
			StartTimeLocal: "2025-08-27 18:05:00",
			Type:           "running",
			Name:           "Abendlauf",
			DurationMin:    f(30.3),
			DistanceKm:     f(5.0),
			AvgHR:          &hr,
		},
		{StartTimeLocal: "short"},
	}
	ctx := Assemble(models.PromptContext{}, nil, Telemetry{Activities: acts}, testNow)

	if len(ctx.Garmin.Activities) != 2 {
		t.Fatalf("got %d summaries", len(ctx.Garmin.Activities))
	}
	first := ctx.Garmin.Activities[0]
	if first.Date != "2025-08-27" {
		t.Errorf("date = %q, want truncated 2025-08-27", first.Date)
	}
	if first.Type != "running" || first.Title != "Abendlauf" {
		t.Errorf("summary = %+v", first)
	}
	if first.AvgHR == nil || *first.AvgHR != 128 {
		t.Errorf("avg_hr = %v", first.AvgHR)
	}
	// Strings shorter than a date pass through untouched.
	if ctx.Garmin.Activities[1].Date != "short" {
		t.Errorf("date = %q", ctx.Garmin.Activities[1].Date)
	}
}

func TestLoadProfile_MissingFile(t *testing.T) {
	ctx, err := LoadProfile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing profile should not error: %v", err)
	}
	if ctx.Meta.Timezone != "Europe/Berlin" {
		t.Errorf("defaults not returned: %+v", ctx.Meta)
	}
}

func TestLoadProfile_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	data := `{"athlete":{"name":"Felix","age":29},"goals":{"primary":"10k unter 55min"}}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	ctx, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if ctx.Athlete.Name != "Felix" || ctx.Athlete.Age == nil || *ctx.Athlete.Age != 29 {
		t.Errorf("athlete overlay not applied: %+v", ctx.Athlete)
	}
	if ctx.Goals.Primary != "10k unter 55min" {
		t.Errorf("goals overlay not applied: %+v", ctx.Goals)
	}
	// Untouched fields keep their defaults.
	if ctx.Meta.Units != "metric" {
		t.Errorf("units default lost: %q", ctx.Meta.Units)
	}
}

func TestLoadProfile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{nope"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestRender(t *testing.T) {
	base := models.DefaultPromptContext()
	base.Athlete.Name = "Felix"
	ctx := Assemble(base, []string{"Mo: Kraft & Physio"}, Telemetry{VO2Max: f(47.0)}, testNow)

	out, err := Render(ctx)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, want := range []string{"KW35", "Mo: Kraft & Physio", "47.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered prompt missing %q", want)
		}
	}
}
