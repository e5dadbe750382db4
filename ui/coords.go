package ui

import "fmt"

// PosToDisplay converts board coordinates to the letter-number form
// used on printed boards, e.g. "D4". The letter I is skipped and row
// numbers count from the bottom edge.
func PosToDisplay(x, y, size int) string {
	column := rune('A' + x)
	if x >= 8 {
		column++
	}
	return fmt.Sprintf("%c%d", column, size-y)
}
