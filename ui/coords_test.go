package ui

import "testing"

func TestPosToDisplay(t *testing.T) {
	tests := []struct {
		x, y, size int
		want       string
	}{
		{0, 18, 19, "A1"},
		{0, 0, 19, "A19"},
		{7, 9, 19, "H10"},
		{8, 9, 19, "J10"}, // I is skipped
		{18, 0, 19, "T19"},
		{4, 4, 9, "E5"},
	}
	for _, tt := range tests {
		got := PosToDisplay(tt.x, tt.y, tt.size)
		if got != tt.want {
			t.Fatalf("PosToDisplay(%d, %d, %d) = %q, want %q", tt.x, tt.y, tt.size, got, tt.want)
		}
	}
}
