package models

// Activity is the normalized form of one raw Garmin activity record.
// Distances are in km, speeds in km/h, durations in minutes. Optional
// numeric fields are nil when the raw field was missing or non-numeric.
type Activity struct {
	ActivityID     *int64   `json:"activityId"`
	StartTimeLocal string   `json:"startTimeLocal,omitempty"`
	Type           string   `json:"type,omitempty"`
	Name           string   `json:"name,omitempty"`
	DistanceKm     *float64 `json:"distance_km"`
	DurationMin    *float64 `json:"duration_min"`
	AvgHR          *int     `json:"avg_hr"`
	MaxHR          *int     `json:"max_hr"`
	AvgSpeedKmh    *float64 `json:"avg_speed_kmh"`
	ElevationGainM *float64 `json:"elevation_gain_m"`
}

// SleepRecord is one reconciled night of sleep. Duration-bearing fields are
// minutes. Date is ISO YYYY-MM-DD, or empty when the upstream item carried
// none.
type SleepRecord struct {
	Date             string   `json:"date,omitempty"`
	SleepDurationMin *float64 `json:"sleepDurationMin"`
	SleepEfficiency  *float64 `json:"sleepEfficiency"`
	DeepSleepMin     *float64 `json:"deepSleepMin"`
	LightSleepMin    *float64 `json:"lightSleepMin"`
	RemSleepMin      *float64 `json:"remSleepMin"`
	Awakenings       *int     `json:"awakenings"`
	AvgHr            *int     `json:"avgHr"`
}
