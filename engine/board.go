// Package engine implements the rules of a Pente-style capture game
// for two to four players: board state, the mixed-pair capture rule,
// win detection, turn order and a full undo journal. The engine is
// synchronous and performs no I/O; presentation layers read its state
// and forward placement intents.
package engine

// Token identifies which player occupies an intersection.
// NoToken marks an empty cell.
type Token int8

const (
	NoToken Token = iota
	TokenBlack
	TokenWhite
	TokenRed
	TokenBlue
)

// tokenOrder is the closed set of tokens players draw from, in
// seating order. Tokens are assigned at construction and never change.
var tokenOrder = [4]Token{TokenBlack, TokenWhite, TokenRed, TokenBlue}

// String returns the lowercase color name of the token.
func (t Token) String() string {
	switch t {
	case TokenBlack:
		return "black"
	case TokenWhite:
		return "white"
	case TokenRed:
		return "red"
	case TokenBlue:
		return "blue"
	}
	return "empty"
}

// Board is a fixed-size square grid of intersections. Cells are only
// mutated through the engine's place/capture processing, undo and
// reset; callers outside the package get read access only.
type Board struct {
	size  int
	cells [][]Token
}

func newBoard(size int) *Board {
	cells := make([][]Token, size)
	for i := range cells {
		cells[i] = make([]Token, size)
	}
	return &Board{size: size, cells: cells}
}

// Size returns the board edge length.
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if (x, y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// At returns the occupant of (x, y), or NoToken when the cell is
// empty or out of bounds.
func (b *Board) At(x, y int) Token {
	if !b.InBounds(x, y) {
		return NoToken
	}
	return b.cells[y][x]
}

// place sets an empty in-bounds cell to t. Preconditions are checked
// by the move processor; place still refuses to overwrite a stone
// silently.
func (b *Board) place(x, y int, t Token) {
	if !b.InBounds(x, y) || b.cells[y][x] != NoToken {
		return
	}
	b.cells[y][x] = t
}

// clear resets a cell to empty.
func (b *Board) clear(x, y int) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y][x] = NoToken
}
