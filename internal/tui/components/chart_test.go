package components

import "testing"

func TestChartLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{850, "850"},
		{1000, "1k"},
		{1500, "1.5k"},
		{42800, "42.8k"},
		{2000000, "2.0M"},
	}

	for _, tt := range tests {
		if got := chartLabel(tt.in); got != tt.want {
			t.Errorf("chartLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{4000, 1000},
		{2000, 500},
		{100, 20},
		{0, 1},
	}

	for _, tt := range tests {
		if got := tickStep(tt.max); got != tt.want {
			t.Errorf("tickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}
