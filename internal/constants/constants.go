package constants

// AppName is used for config paths, the keyring service name and log prefix.
const AppName = "healthagent"

// KeyringUser is the account name Garmin credentials are stored under.
const KeyringUser = "garmin-connect"

// DateFormat is the calendar date layout used throughout (Garmin and store).
const DateFormat = "2006-01-02"

// DayLabels maps weekday index 0=Monday..6=Sunday to its plan-line label.
var DayLabels = [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}

// UnknownDayLabel is used for out-of-range weekday indices.
const UnknownDayLabel = "?"

// Workout type tags as stored in the plan database.
const (
	WorkoutStrength = "strength"
	WorkoutCardio   = "cardio"
	WorkoutGolf     = "golf"
	WorkoutOther    = "other"
)
