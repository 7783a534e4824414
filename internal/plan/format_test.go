package plan

import (
	"strings"
	"testing"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

func intPtr(v int) *int { return &v }

func TestFormatLine_StrengthWithNotesAndExercises(t *testing.T) {
	w := models.Workout{
		Type:  "strength",
		Title: "Kraft & Physio (30–35 min)",
		Notes: "Langsam, exzentrisch 3s",
		Exercises: []models.WorkoutExercise{
			{Name: "Clamshells"},
			{Name: "Monster Walks (Miniband)"},
			{Name: "Spanish Squat"},
			{Name: "Step-Down (10–15 cm)"},
			{Name: "Side Plank"},
		},
	}

	line := FormatLine(0, w)

	wantPrefix := "Mo: Kraft & Physio (30–35 min) — Langsam, exzentrisch 3s (Ex: "
	if !strings.HasPrefix(line, wantPrefix) {
		t.Errorf("line = %q, want prefix %q", line, wantPrefix)
	}
	if !strings.HasSuffix(line, "…)") {
		t.Errorf("line = %q, want ellipsis marker for >3 exercises", line)
	}
	if strings.Count(line, ",") != 3 {
		// three shown names joined by two commas, plus one comma in the notes
		t.Errorf("line = %q, want exactly 3 exercise names shown", line)
	}
}

func TestFormatLine_CardioWithoutNotes(t *testing.T) {
	w := models.Workout{
		Type:        "cardio",
		Title:       "Run/Walk Intervall",
		DurationMin: intPtr(30),
		Intensity:   "RPE 3",
	}

	line := FormatLine(1, w)
	if line != "Di: Run/Walk Intervall 30' RPE 3" {
		t.Errorf("line = %q", line)
	}
}

func TestFormatLine_ExercisesOnlyForStrength(t *testing.T) {
	w := models.Workout{
		Type:      "cardio",
		Title:     "Rad locker",
		Exercises: []models.WorkoutExercise{{Name: "Clamshells"}},
	}

	line := FormatLine(3, w)
	if strings.Contains(line, "(Ex:") {
		t.Errorf("cardio line must not list exercises: %q", line)
	}
}

func TestFormatLine_AtMostThreeNamesNoEllipsis(t *testing.T) {
	w := models.Workout{
		Type:  "strength",
		Title: "Kraft",
		Exercises: []models.WorkoutExercise{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		},
	}

	line := FormatLine(0, w)
	if line != "Mo: Kraft (Ex: A, B, C)" {
		t.Errorf("line = %q", line)
	}
}

func TestFormatLine_EmptyMainFallsBackToType(t *testing.T) {
	line := FormatLine(5, models.Workout{Type: "other"})
	if line != "Sa: other" {
		t.Errorf("line = %q", line)
	}
}

func TestFormatLine_EmptyEverythingFallsBackToGenericLabel(t *testing.T) {
	line := FormatLine(5, models.Workout{})
	if line != "Sa: Training" {
		t.Errorf("line = %q", line)
	}
}

func TestFormatLine_OutOfRangeDay(t *testing.T) {
	tests := []int{-1, 7, 42}
	for _, day := range tests {
		line := FormatLine(day, models.Workout{Title: "X"})
		if !strings.HasPrefix(line, "?: ") {
			t.Errorf("day %d: line = %q, want unknown-day sentinel", day, line)
		}
	}
}

func TestFormatLine_ZeroDurationSkipped(t *testing.T) {
	w := models.Workout{Title: "Mobility", DurationMin: intPtr(0)}
	if line := FormatLine(2, w); line != "Mi: Mobility" {
		t.Errorf("line = %q, zero duration must be skipped", line)
	}
}
