package units

import "testing"

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"five kilometers", float64(5000), f(5.0)},
		{"rounds to 2dp", float64(1234), f(1.23)},
		{"numeric string", "5000", f(5.0)},
		{"integer input", 5000, f(5.0)},
		{"nil input", nil, nil},
		{"non-numeric string", "n/a", nil},
		{"wrong type", map[string]any{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.in)
			assertFloatPtr(t, got, tt.want)
		})
	}
}

func TestDurationMin(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"thirty minutes", float64(1800), f(30.0)},
		{"rounds to 1dp", float64(1815), f(30.3)},
		{"nil input", nil, nil},
		{"non-numeric", "later", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFloatPtr(t, DurationMin(tt.in), tt.want)
		})
	}
}

func TestDurationHours(t *testing.T) {
	got := DurationHours(float64(27000))
	assertFloatPtr(t, got, f(7.5))

	if DurationHours(nil) != nil {
		t.Error("DurationHours(nil) should be nil")
	}
}

func TestSpeedKmh(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"ten kmh", float64(2.7778), f(10.0)},
		{"rounds to 2dp", float64(3.0), f(10.8)},
		{"nil input", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFloatPtr(t, SpeedKmh(tt.in), tt.want)
		})
	}
}

func TestPassThroughHelpers(t *testing.T) {
	if got := Float(float64(123.4)); got == nil || *got != 123.4 {
		t.Errorf("Float(123.4) = %v, want 123.4", got)
	}
	if Float("x") != nil {
		t.Error("Float of non-numeric should be nil")
	}
	if got := Int(float64(141.9)); got == nil || *got != 141 {
		t.Errorf("Int(141.9) = %v, want 141 (truncated)", got)
	}
	if Int(nil) != nil {
		t.Error("Int(nil) should be nil")
	}
}

func f(v float64) *float64 { return &v }

func assertFloatPtr(t *testing.T, got, want *float64) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Fatalf("got %v, want %v", fmtPtr(got), fmtPtr(want))
	}
	if got != nil && *got != *want {
		t.Errorf("got %v, want %v", *got, *want)
	}
}

func fmtPtr(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
