package components

import "testing"

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{80, 3},
		{7, 2},
	}

	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
		// First items absorb the remainder, so widths never differ by more
		// than one.
		for i := 1; i < len(widths); i++ {
			if widths[i-1]-widths[i] > 1 || widths[i] > widths[i-1] {
				t.Errorf("LayoutRow(%d, %d) uneven: %v", tt.total, tt.n, widths)
			}
		}
	}
}

func TestLayoutRowZeroItems(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}
