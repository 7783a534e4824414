// Package units converts raw Garmin base units into the values the context
// carries. Every converter propagates absence: a missing or non-numeric
// input yields nil instead of an error, so one malformed field never takes
// down the whole fetch.
package units

import (
	"encoding/json"
	"math"
	"strconv"
)

// AsFloat coerces a raw JSON value to a float64. It accepts the numeric
// types encoding/json produces plus numeric strings; anything else reports
// ok=false.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func roundTo(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}

// DistanceKm converts meters to kilometers, rounded to 2 decimals.
func DistanceKm(meters any) *float64 {
	f, ok := AsFloat(meters)
	if !ok {
		return nil
	}
	km := roundTo(f/1000.0, 2)
	return &km
}

// DurationMin converts seconds to minutes, rounded to 1 decimal.
func DurationMin(seconds any) *float64 {
	f, ok := AsFloat(seconds)
	if !ok {
		return nil
	}
	min := roundTo(f/60.0, 1)
	return &min
}

// DurationHours converts seconds to hours, rounded to 2 decimals.
func DurationHours(seconds any) *float64 {
	f, ok := AsFloat(seconds)
	if !ok {
		return nil
	}
	h := roundTo(f/3600.0, 2)
	return &h
}

// SpeedKmh converts meters/second to kilometers/hour, rounded to 2 decimals.
func SpeedKmh(metersPerSecond any) *float64 {
	f, ok := AsFloat(metersPerSecond)
	if !ok {
		return nil
	}
	kmh := roundTo(f*3.6, 2)
	return &kmh
}

// Float passes a raw numeric value through unconverted (e.g. elevation gain,
// already in target units), nil when absent or non-numeric.
func Float(v any) *float64 {
	f, ok := AsFloat(v)
	if !ok {
		return nil
	}
	return &f
}

// Int truncates a raw numeric value to an int (heart rates, counts), nil
// when absent or non-numeric.
func Int(v any) *int {
	f, ok := AsFloat(v)
	if !ok {
		return nil
	}
	i := int(f)
	return &i
}

// Round1 rounds to 1 decimal, used when deriving totals from stage sums.
func Round1(x float64) float64 { return roundTo(x, 1) }

// Round2 rounds to 2 decimals.
func Round2(x float64) float64 { return roundTo(x, 2) }
