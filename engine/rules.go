package engine

import (
	"fmt"

	"termpente/types"
)

// captureDirs are the 8 axis and diagonal rays scanned for mixed-pair
// captures around a newly placed stone.
var captureDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

// lineAxes are the 4 axes scanned for a winning run through the
// placed stone.
var lineAxes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// TryPlace attempts to place the current player's stone at (x, y) and
// returns whether the move was accepted and how many pairs it
// captured. A move after game over, out of bounds or on an occupied
// cell is rejected with no state change and no notification.
//
// On acceptance the stone is placed, the mixed-pair capture scan runs
// over all 8 directions, one journal record is pushed, win conditions
// are checked (capture quota before row), the turn advances if the
// game continues, and observers are notified once.
func (e *Engine) TryPlace(x, y int) (bool, int) {
	if e.over || !e.board.InBounds(x, y) || e.board.At(x, y) != NoToken {
		return false, 0
	}
	mover := e.current
	token := e.players[mover].Token
	e.board.place(x, y, token)

	rec := moveRecord{
		player: mover,
		token:  token,
		pos:    types.BoardPos{X: x, Y: y},
	}

	// Scan all directions against the board as it stands after the
	// placement but before any removal. The three inspected cells of
	// any two rays never overlap, so collecting first and clearing
	// afterwards matches a per-direction scan of the pre-capture
	// board.
	for _, d := range captureDirs {
		x1, y1 := x+d[0], y+d[1]
		x2, y2 := x+2*d[0], y+2*d[1]
		x3, y3 := x+3*d[0], y+3*d[1]
		if !e.board.InBounds(x3, y3) || e.board.At(x3, y3) != token {
			continue
		}
		c1 := e.board.At(x1, y1)
		c2 := e.board.At(x2, y2)
		// Both flanked cells must hold stones of other players; the
		// two tokens may differ ("mixed" pair).
		if c1 == NoToken || c2 == NoToken || c1 == token || c2 == token {
			continue
		}
		rec.captured = append(rec.captured,
			capturedCell{Pos: types.BoardPos{X: x1, Y: y1}, Token: c1},
			capturedCell{Pos: types.BoardPos{X: x2, Y: y2}, Token: c2})
		rec.pairs++
	}
	for _, c := range rec.captured {
		e.board.clear(c.Pos.X, c.Pos.Y)
	}
	e.captures[mover] += rec.pairs
	e.journal = append(e.journal, rec)
	e.lastMove = rec.pos
	e.hasLast = true

	// Capture quota takes precedence over a row completed by the same
	// move. On game over the turn stays with the winner.
	switch {
	case e.captures[mover] >= e.cfg.CaptureQuota:
		e.over = true
		e.message = fmt.Sprintf("%s wins by captures", e.players[mover].Name)
	case e.rowThrough(x, y, token):
		e.over = true
		e.message = fmt.Sprintf("%s wins by row", e.players[mover].Name)
	default:
		e.current = (e.current + 1) % len(e.players)
	}

	e.notify()
	return true, rec.pairs
}

// rowThrough reports whether the stone at (x, y) sits in a contiguous
// run of at least WinLength same-token stones along any line axis.
func (e *Engine) rowThrough(x, y int, token Token) bool {
	for _, d := range lineAxes {
		run := 1
		run += e.countRun(x, y, d[0], d[1], token)
		run += e.countRun(x, y, -d[0], -d[1], token)
		if run >= e.cfg.WinLength {
			return true
		}
	}
	return false
}

// countRun counts consecutive token stones from (x, y) exclusive
// along (dx, dy).
func (e *Engine) countRun(x, y, dx, dy int, token Token) int {
	n := 0
	for cx, cy := x+dx, y+dy; e.board.InBounds(cx, cy) && e.board.At(cx, cy) == token; cx, cy = cx+dx, cy+dy {
		n++
	}
	return n
}
