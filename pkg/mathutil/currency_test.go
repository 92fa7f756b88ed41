package mathutil

import (
	"math"
	"testing"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		places   int
		expected float64
	}{
		{
			name:     "Two decimals rounds up",
			val:      860.6643,
			places:   2,
			expected: 860.66,
		},
		{
			name:     "Two decimals rounds half away from zero",
			val:      9189.335,
			places:   2,
			expected: 9189.34,
		},
		{
			name:     "Three decimals",
			val:      810.66428,
			places:   3,
			expected: 810.664,
		},
		{
			name:     "One decimal",
			val:      -0.04,
			places:   1,
			expected: 0.0,
		},
		{
			name:     "Negative value",
			val:      -12.345,
			places:   2,
			expected: -12.35,
		},
		{
			name:     "Zero places",
			val:      2.5,
			places:   0,
			expected: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundTo(tt.val, tt.places)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("RoundTo(%v, %d) = %v, expected %v", tt.val, tt.places, result, tt.expected)
			}
		})
	}
}

func TestRound(t *testing.T) {
	if got := Round(100.005); got != 100.01 {
		t.Errorf("Round(100.005) = %v, expected 100.01", got)
	}
	if got := Round(100.004); got != 100.00 {
		t.Errorf("Round(100.004) = %v, expected 100.00", got)
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected bool
	}{
		{name: "Exactly zero", val: 0.0, expected: true},
		{name: "Below tolerance", val: 0.004, expected: true},
		{name: "Negative below tolerance", val: -0.009, expected: true},
		{name: "Above tolerance", val: 0.02, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZero(tt.val); got != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.val, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(10.00, 10.004, 0.01) {
		t.Error("WithinTolerance(10.00, 10.004, 0.01) = false, expected true")
	}
	if WithinTolerance(10.00, 10.02, 0.01) {
		t.Error("WithinTolerance(10.00, 10.02, 0.01) = true, expected false")
	}
}
