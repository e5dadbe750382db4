// Package types contains shared data structures for termpente.
package types

// BoardPos represents an intersection on the board.
// X runs left to right, Y top to bottom, both 0-indexed.
type BoardPos struct {
	X int
	Y int
}
