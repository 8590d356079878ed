package planetmath

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestGravity(t *testing.T) {
	tests := []struct {
		name   string
		mass   *float64
		radius *float64
		want   *float64
	}{
		{name: "earth", mass: floatPtr(1), radius: floatPtr(1), want: floatPtr(1)},
		{name: "super earth", mass: floatPtr(8), radius: floatPtr(2), want: floatPtr(2)},
		{name: "rounded to two decimals", mass: floatPtr(1), radius: floatPtr(1.5), want: floatPtr(0.44)},
		{name: "missing mass", mass: nil, radius: floatPtr(1), want: nil},
		{name: "missing radius", mass: floatPtr(1), radius: nil, want: nil},
		{name: "both missing", mass: nil, radius: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gravity(tt.mass, tt.radius)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Gravity() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("Gravity() = %f, want %f", *got, *tt.want)
			}
		})
	}
}

func TestVibe(t *testing.T) {
	tests := []struct {
		name   string
		tempK  *float64
		radius *float64
		want   string
	}{
		{name: "no temperature", tempK: nil, radius: floatPtr(1), want: "Mysterious"},
		{name: "large and scorching", tempK: floatPtr(1600), radius: floatPtr(10), want: "Hot Jupiter"},
		{name: "large and temperate", tempK: floatPtr(300), radius: floatPtr(10), want: "Gas Giant"},
		{name: "frozen", tempK: floatPtr(100), radius: floatPtr(1), want: "Ice World"},
		{name: "earthlike", tempK: floatPtr(288), radius: floatPtr(1), want: "Habitable Paradise"},
		{name: "warm", tempK: floatPtr(400), radius: floatPtr(1), want: "Sauna World"},
		{name: "hot rock", tempK: floatPtr(600), radius: floatPtr(1), want: "Molten Rock"},
		{name: "scorching rock", tempK: floatPtr(1600), radius: floatPtr(1), want: "Literal Hellscape"},
		{name: "cold but not frozen", tempK: floatPtr(200), radius: floatPtr(1), want: "Barren Wasteland"},
		{name: "no radius falls through to rocky bands", tempK: floatPtr(288), radius: nil, want: "Habitable Paradise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Vibe(tt.tempK, tt.radius); got != tt.want {
				t.Errorf("Vibe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsecsToLightYears(t *testing.T) {
	tests := []struct {
		parsecs float64
		want    float64
	}{
		{1, 3.26},
		{1.3012, 4.24}, // Proxima Centauri
		{0, 0},
		{100, 326.16},
	}

	for _, tt := range tests {
		if got := ParsecsToLightYears(tt.parsecs); got != tt.want {
			t.Errorf("ParsecsToLightYears(%f) = %f, want %f", tt.parsecs, got, tt.want)
		}
	}
}
