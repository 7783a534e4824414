package models

// PromptContext is the single nested object handed to the prompt template.
// Its key layout is fixed; the assembler fills meta, plan and garmin on every
// invocation, everything else comes from the athlete profile.
type PromptContext struct {
	Meta         Meta         `json:"meta"`
	Athlete      Athlete      `json:"athlete"`
	Goals        Goals        `json:"goals"`
	Event        Event        `json:"event"`
	Availability Availability `json:"availability"`
	Injury       Injury       `json:"injury"`
	Plan         Plan         `json:"plan"`
	Diet         Diet         `json:"diet"`
	LastEval     LastEval     `json:"last_eval"`
	Garmin       Garmin       `json:"garmin"`
	Compliance   Compliance   `json:"compliance"`
}

type Meta struct {
	SnapshotID string `json:"snapshot_id"`
	NowISO     string `json:"now_iso"`
	Timezone   string `json:"timezone"`
	Units      string `json:"units"`
}

type Equipment struct {
	HRStrap    *bool `json:"hr_strap"`
	Treadmill  *bool `json:"treadmill"`
	IndoorBike *bool `json:"indoor_bike"`
}

type Athlete struct {
	Name             string    `json:"name"`
	Age              *int      `json:"age"`
	WeightKg         *float64  `json:"weight_kg"`
	HeightCm         *float64  `json:"height_cm"`
	TrainingAgeYears *float64  `json:"training_age_years"`
	Equipment        Equipment `json:"equipment"`
}

type Goals struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary"`
}

type Event struct {
	Name       string   `json:"name"`
	DateISO    string   `json:"date_iso"`
	DistanceKm *float64 `json:"distance_km"`
}

type Availability struct {
	WeeklyTimeBudgetMin *int     `json:"weekly_time_budget_min"`
	CannotTrainDays     []string `json:"cannot_train_days"`
	PreferredGolfDay    *string  `json:"preferred_golf_day"`
}

type InjuryConstraints struct {
	MaxRunSessionsPerWeek *int   `json:"max_run_sessions_per_week"`
	RunProgressionRule    string `json:"run_progression_rule"`
	NoBackToBackIntensity *bool  `json:"no_back_to_back_intensity"`
}

type Injury struct {
	Phase       string            `json:"phase"`
	PhysioNotes string            `json:"physio_notes"`
	Constraints InjuryConstraints `json:"constraints"`
}

// Plan carries the week label and the ordered, already formatted plan lines.
type Plan struct {
	WeekLabel string   `json:"week_label"`
	Days      []string `json:"days"`
}

type Diet struct {
	TotalProteinG        *int              `json:"total_protein_g"`
	ProteinDistributionG []int             `json:"protein_distribution_g"`
	Supplements          map[string]string `json:"supplements"`
	Notes                string            `json:"notes"`
}

type LastEval struct {
	Summary         string `json:"summary"`
	Recommendations string `json:"recommendations"`
}

type VO2Max struct {
	Latest *float64 `json:"latest"`
	Trend  string   `json:"trend"`
}

type SleepAverages struct {
	AvgScore     *float64 `json:"avg_score"`
	AvgDurationH *float64 `json:"avg_duration_h"`
	AvgRHR       *float64 `json:"avg_rhr"`
}

// ActivitySummary is the per-activity slice of the context, a reduced view
// of a normalized Activity.
type ActivitySummary struct {
	Date        string   `json:"date"`
	Type        string   `json:"type,omitempty"`
	Title       string   `json:"title,omitempty"`
	DurationMin *float64 `json:"duration_min"`
	DistanceKm  *float64 `json:"distance_km"`
	AvgHR       *int     `json:"avg_hr"`
}

// Garmin is the telemetry block of the context.
type Garmin struct {
	VO2Max     VO2Max            `json:"vo2max"`
	Sleep      SleepAverages     `json:"sleep"`
	Activities []ActivitySummary `json:"activities"`
	Flags      map[string]bool   `json:"flags"`
}

type Compliance struct {
	CompletionPct     *float64 `json:"completion_pct"`
	PainPeak          *int     `json:"pain_peak"`
	DOMSLevel         string   `json:"doms_level"`
	SubjectiveFatigue string   `json:"subjective_fatigue"`
}

// DefaultPromptContext returns the empty base context with the static
// defaults the template relies on. Athlete-specific values come from the
// profile file when present.
func DefaultPromptContext() PromptContext {
	return PromptContext{
		Meta: Meta{
			Timezone: "Europe/Berlin",
			Units:    "metric",
		},
		Goals:        Goals{Secondary: []string{}},
		Diet:         Diet{ProteinDistributionG: []int{}, Supplements: map[string]string{}},
		Plan:         Plan{Days: []string{}},
		Garmin:       Garmin{Activities: []ActivitySummary{}, Flags: map[string]bool{}},
		Availability: Availability{CannotTrainDays: []string{}},
	}
}
