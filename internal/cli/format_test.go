package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{800, "$800"},
		{1287.5, "$1,288"},
		{30000, "$30,000"},
		{1234567.89, "$1,234,568"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(40.0); got != "40.0%" {
		t.Errorf("FormatPercent(40.0) = %q, want 40.0%%", got)
	}
	if got := FormatPercent(33.333); got != "33.3%" {
		t.Errorf("FormatPercent(33.333) = %q, want 33.3%%", got)
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(1.247); got != "1.25x" {
		t.Errorf("FormatRatio(1.247) = %q, want 1.25x", got)
	}
}

func TestBedroomLabel(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "Studio"},
		{1, "1 BR"},
		{4, "4 BR"},
	}

	for _, tt := range tests {
		if got := BedroomLabel(tt.in); got != tt.want {
			t.Errorf("BedroomLabel(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatHousehold(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "1p"},
		{4, "4p"},
		{8, "8p"},
	}

	for _, tt := range tests {
		if got := FormatHousehold(tt.in); got != tt.want {
			t.Errorf("FormatHousehold(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
