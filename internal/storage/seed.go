package storage

import (
	"fmt"

	"github.com/FelixWeichselgartner/HealthAgent/internal/constants"
	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

func intPtr(v int) *int { return &v }

// Seed fills an initialized store with the exercise catalog and the sample
// regeneration week so a fresh install renders a usable plan immediately.
func Seed(store Provider) error {
	catalog := []models.Exercise{
		{Name: "Wadenheben", VideoURL: "https://youtube.com/shorts/xr_bZ3hu_YI?si=b_J5rnAbs4c6_woI"},
		{Name: "Bird Dog", VideoURL: "https://youtube.com/shorts/Yap7kqAFHYo?si=dukxl34nlcIHcWwM"},
		{Name: "Clamshells"},
		{Name: "Monster Walks (Miniband)"},
		{Name: "Spanish Squat"},
		{Name: "Step-Down (10–15 cm)"},
		{Name: "Side Plank"},
	}

	idByName := make(map[string]int64, len(catalog))
	for _, e := range catalog {
		id, err := store.AddExercise(e)
		if err != nil {
			return fmt.Errorf("seeding exercise %q: %w", e.Name, err)
		}
		idByName[e.Name] = id
	}

	attach := func(names ...string) []models.WorkoutExercise {
		var out []models.WorkoutExercise
		for _, n := range names {
			if id, ok := idByName[n]; ok {
				out = append(out, models.WorkoutExercise{ExerciseID: id, Sets: 3, Reps: 12})
			}
		}
		return out
	}

	week := []models.Workout{
		{
			Day: 0, Type: constants.WorkoutStrength,
			Title: "Kraft & Physio (30–35 min)",
			Notes: "Langsam, exzentrisch 3s",
			Exercises: attach("Clamshells", "Monster Walks (Miniband)",
				"Spanish Squat", "Step-Down (10–15 cm)", "Side Plank"),
		},
		{
			Day: 1, Type: constants.WorkoutCardio,
			Title: "Run/Walk Intervall", DurationMin: intPtr(30),
			Intensity: "sehr locker (RPE 3)",
			Notes:     "5' gehen; 10×(1' laufen / 2' gehen); 5' gehen; Tempo 6:10–6:45/km",
		},
		{
			Day: 2, Type: constants.WorkoutStrength,
			Title:     "Mobility + leichtes Kraft (25–30 min)",
			Notes:     "Hüftabduktion 3×12, Wadenheben 3×15, Dead Bug 3×10/Seite; 10–15' Gehen",
			Exercises: attach("Wadenheben", "Bird Dog"),
		},
		{
			Day: 3, Type: constants.WorkoutCardio,
			Title: "Rad locker", DurationMin: intPtr(40),
			Intensity: "RPE 3",
			Notes:     "TF 85–95 rpm, flach, kein Druck",
		},
		{
			Day: 4, Type: constants.WorkoutCardio,
			Title: "Run/Walk Progression", DurationMin: intPtr(32),
			Intensity: "RPE 3–4",
			Notes:     "5' gehen; 8×(2' laufen / 2' gehen); 5' gehen",
		},
		{
			Day: 5, Type: constants.WorkoutOther,
			Title: "Regeneration", DurationMin: intPtr(40),
			Intensity: "sehr locker",
			Notes:     "Spaziergang 30–40', Dehnen/Release 10–15'",
		},
		{
			Day: 6, Type: constants.WorkoutOther,
			Title: "Golf (9 Loch)",
			Notes: "Warm-up 3–5'; optional 20–25' locker joggen oder 30–40' Recovery-Rad (nur schmerzfrei)",
		},
	}

	for _, w := range week {
		if _, err := store.AddWorkout(w); err != nil {
			return fmt.Errorf("seeding workout %q: %w", w.Title, err)
		}
	}
	return nil
}
