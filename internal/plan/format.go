// Package plan resolves the current training plan from an ordered chain of
// sources and renders it into the compact per-day lines the prompt context
// carries.
package plan

import (
	"fmt"
	"strings"

	"github.com/FelixWeichselgartner/HealthAgent/internal/constants"
	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

// maxExerciseNames caps how many exercise names a strength line shows before
// the ellipsis marker.
const maxExerciseNames = 3

// FormatLine builds one compact plan line, e.g.
//
//	"Mo: Kraft & Physio (30–35 min) — Langsam, exzentrisch 3s (Ex: Clamshells, Side Plank, …)"
//	"Di: Run/Walk Intervall 30' RPE 3"
//
// Title, duration (minute quote suffix) and intensity join the main part,
// skipping empty pieces; notes follow after a dash; for strength sessions up
// to three exercise names are appended in a parenthetical.
func FormatLine(dayIdx int, w models.Workout) string {
	day := constants.UnknownDayLabel
	if dayIdx >= 0 && dayIdx < len(constants.DayLabels) {
		day = constants.DayLabels[dayIdx]
	}

	var parts []string
	if title := strings.TrimSpace(w.Title); title != "" {
		parts = append(parts, title)
	}
	if w.DurationMin != nil && *w.DurationMin != 0 {
		parts = append(parts, fmt.Sprintf("%d'", *w.DurationMin))
	}
	if intensity := strings.TrimSpace(w.Intensity); intensity != "" {
		parts = append(parts, intensity)
	}
	main := strings.Join(parts, " ")

	var suffix string
	if notes := strings.TrimSpace(w.Notes); notes != "" {
		suffix = " — " + notes
	}

	if w.Type == constants.WorkoutStrength {
		var names []string
		for _, ex := range w.Exercises {
			if nm := strings.TrimSpace(ex.Name); nm != "" {
				names = append(names, nm)
			}
		}
		if len(names) > 0 {
			shown := names
			ellipsis := ""
			if len(names) > maxExerciseNames {
				shown = names[:maxExerciseNames]
				ellipsis = "…"
			}
			if suffix != "" {
				suffix += " "
			} else {
				suffix = " "
			}
			suffix += fmt.Sprintf("(Ex: %s%s)", strings.Join(shown, ", "), ellipsis)
		}
	}

	body := main
	if body == "" {
		body = w.Type
	}
	if body == "" {
		body = "Training"
	}
	return fmt.Sprintf("%s: %s%s", day, body, suffix)
}
