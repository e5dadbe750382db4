package engine

import "termpente/types"

// Snapshot is a value copy of the complete observable state of a
// match, taken for rendering and for equality checks in tests.
type Snapshot struct {
	Size     int
	Cells    [][]Token
	Names    []string
	Tokens   []Token
	Captures []int
	Current  int
	LastMove types.BoardPos
	HasLast  bool
	Over     bool
	Message  string
	Moves    int
}

// Snapshot returns a deep copy of the current state. Mutating the
// returned value has no effect on the engine.
func (e *Engine) Snapshot() Snapshot {
	cells := make([][]Token, e.board.size)
	for y := range cells {
		cells[y] = append([]Token(nil), e.board.cells[y]...)
	}
	names := make([]string, len(e.players))
	tokens := make([]Token, len(e.players))
	for i, p := range e.players {
		names[i] = p.Name
		tokens[i] = p.Token
	}
	return Snapshot{
		Size:     e.board.size,
		Cells:    cells,
		Names:    names,
		Tokens:   tokens,
		Captures: append([]int(nil), e.captures...),
		Current:  e.current,
		LastMove: e.lastMove,
		HasLast:  e.hasLast,
		Over:     e.over,
		Message:  e.message,
		Moves:    len(e.journal),
	}
}
