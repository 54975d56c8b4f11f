package model

import "testing"

func TestPadFIPS(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"1001", 5, "01001"},
		{"01001", 5, "01001"},
		{"1", 2, "01"},
		{"48", 2, "48"},
		{"", 5, ""},
		{"  1001 ", 5, "01001"},
		{"123456", 5, "123456"},
	}

	for _, tt := range tests {
		if got := PadFIPS(tt.in, tt.width); got != tt.want {
			t.Errorf("PadFIPS(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
