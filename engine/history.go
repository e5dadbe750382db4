package engine

import "termpente/types"

// capturedCell remembers one stone removed by a capture, with the
// token it held, so undo can put it back.
type capturedCell struct {
	Pos   types.BoardPos
	Token Token
}

// moveRecord is one journal entry: the minimal state needed to
// reverse a single placement exactly.
type moveRecord struct {
	player   int
	token    Token
	pos      types.BoardPos
	captured []capturedCell
	pairs    int
}

// MoveView is a read-only view of one journal entry for display.
type MoveView struct {
	Player int
	Token  Token
	Pos    types.BoardPos
	Pairs  int
}

// Moves returns the journal in play order for display purposes.
func (e *Engine) Moves() []MoveView {
	views := make([]MoveView, len(e.journal))
	for i, rec := range e.journal {
		views[i] = MoveView{Player: rec.player, Token: rec.token, Pos: rec.pos, Pairs: rec.pairs}
	}
	return views
}

// Undo reverses the most recent placement as one atomic operation:
// the placed stone is removed, captured stones are restored with
// their original tokens, the acting player's pair count drops by
// exactly what the move added, and the turn returns to that player.
// The game-over flag and result message are cleared on every undo,
// even when the undone move is not the one that ended the game.
// Returns false, with no state change and no notification, when the
// journal is empty.
func (e *Engine) Undo() bool {
	if len(e.journal) == 0 {
		return false
	}
	rec := e.journal[len(e.journal)-1]
	e.journal = e.journal[:len(e.journal)-1]

	e.board.clear(rec.pos.X, rec.pos.Y)
	for _, c := range rec.captured {
		e.board.place(c.Pos.X, c.Pos.Y, c.Token)
	}
	e.captures[rec.player] -= rec.pairs
	e.current = rec.player
	if n := len(e.journal); n > 0 {
		e.lastMove = e.journal[n-1].pos
		e.hasLast = true
	} else {
		e.lastMove = types.BoardPos{}
		e.hasLast = false
	}
	e.over = false
	e.message = ""
	e.notify()
	return true
}
