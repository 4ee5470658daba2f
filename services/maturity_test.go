package services

import (
	"math"
	"testing"
)

func TestMaturityInYears(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  float64
	}{
		{0.5, "", 0.5},
		{2, "year", 2},
		{6, "month", 0.5},
		{6, " Month ", 0.5},
		{126, "day", 0.5},
		{252, "DAY", 1},
		{0, "day", 0},
	}

	for _, tt := range tests {
		if got := MaturityInYears(tt.value, tt.unit); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("MaturityInYears(%v, %q) = %v, want %v", tt.value, tt.unit, got, tt.want)
		}
	}
}
