package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixedPairCapture(t *testing.T) {
	// Black (0,0), white (1,0), red (2,0); black completes the line
	// at (3,0) and captures the white/red pair.
	e := newTestEngine(t, Config{Players: 3, BoardSize: 9})
	ok, _ := e.TryPlace(0, 0) // black
	require.True(t, ok)
	ok, _ = e.TryPlace(1, 0) // white
	require.True(t, ok)
	ok, _ = e.TryPlace(2, 0) // red
	require.True(t, ok)

	ok, pairs := e.TryPlace(3, 0) // black again
	require.True(t, ok)
	assert.Equal(t, 1, pairs)
	assert.Equal(t, 1, e.Captures(0))
	assert.Equal(t, NoToken, e.At(1, 0))
	assert.Equal(t, NoToken, e.At(2, 0))
	assert.Equal(t, TokenBlack, e.At(0, 0))
	assert.Equal(t, TokenBlack, e.At(3, 0))
}

func TestCaptureRequiresBothCellsOccupied(t *testing.T) {
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9})
	e.board.place(0, 0, TokenBlack)
	e.board.place(1, 0, TokenWhite)
	// (2,0) stays empty: no capture, the gap is not a pair.
	ok, pairs := e.TryPlace(3, 0)
	require.True(t, ok)
	assert.Zero(t, pairs)
	assert.Equal(t, TokenWhite, e.At(1, 0))
}

func TestNoCaptureThroughOwnStone(t *testing.T) {
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9})
	e.board.place(0, 0, TokenBlack)
	e.board.place(1, 0, TokenWhite)
	e.board.place(2, 0, TokenBlack)
	ok, pairs := e.TryPlace(3, 0)
	require.True(t, ok)
	assert.Zero(t, pairs)
	assert.Equal(t, TokenWhite, e.At(1, 0))
	assert.Equal(t, TokenBlack, e.At(2, 0))
}

func TestCaptureNeedsAnchorInBounds(t *testing.T) {
	// Pair against the edge with no own stone beyond it: the
	// distance-3 cell is off the board, so nothing is captured.
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9})
	e.board.place(1, 0, TokenWhite)
	e.board.place(0, 0, TokenWhite)
	ok, pairs := e.TryPlace(2, 0)
	require.True(t, ok)
	assert.Zero(t, pairs)
	assert.Equal(t, TokenWhite, e.At(0, 0))
	assert.Equal(t, TokenWhite, e.At(1, 0))
}

func TestDoubleCaptureInOneMove(t *testing.T) {
	// Two complete patterns left and right of (3,0): one placement
	// captures both pairs.
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9})
	e.board.place(0, 0, TokenBlack)
	e.board.place(1, 0, TokenWhite)
	e.board.place(2, 0, TokenWhite)
	e.board.place(4, 0, TokenWhite)
	e.board.place(5, 0, TokenWhite)
	e.board.place(6, 0, TokenBlack)

	ok, pairs := e.TryPlace(3, 0)
	require.True(t, ok)
	assert.Equal(t, 2, pairs)
	assert.Equal(t, 2, e.Captures(0))
	for _, x := range []int{1, 2, 4, 5} {
		assert.Equal(t, NoToken, e.At(x, 0), "stone at (%d,0) should be captured", x)
	}
	assert.Equal(t, TokenBlack, e.At(0, 0))
	assert.Equal(t, TokenBlack, e.At(6, 0))
}

func TestCaptureWinTakesPrecedenceOverRow(t *testing.T) {
	// The placement at (4,4) simultaneously completes a diagonal of
	// five and the fifth captured pair; the result must be a capture
	// win.
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9})
	for i := 0; i < 4; i++ {
		e.board.place(i, i, TokenBlack)
	}
	e.board.place(5, 4, TokenWhite)
	e.board.place(6, 4, TokenWhite)
	e.board.place(7, 4, TokenBlack)
	e.captures[0] = 4

	ok, pairs := e.TryPlace(4, 4)
	require.True(t, ok)
	assert.Equal(t, 1, pairs)
	require.True(t, e.Over())
	assert.Equal(t, "P1 wins by captures", e.Message())
	// The winner keeps the turn.
	assert.Equal(t, 0, e.CurrentPlayer())
}

func TestRowWinOnDiagonal(t *testing.T) {
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9})
	winByRow(t, e)
	require.True(t, e.Over())
	assert.Equal(t, "P1 wins by row", e.Message())
	assert.Equal(t, 0, e.CurrentPlayer())

	// Any further placement is rejected.
	ok, _ := e.TryPlace(7, 7)
	assert.False(t, ok)
}

func TestFourPlayerCaptureScenario(t *testing.T) {
	// 19x19, four players, quota 5, five in a row. The first player
	// flanks the second and third players' stones on row 5.
	e := newTestEngine(t, Config{Players: 4, BoardSize: 19})
	for i, name := range []string{"G", "B", "W", "K"} {
		e.SetPlayerName(i, name)
	}
	ok, _ := e.TryPlace(5, 5) // G
	require.True(t, ok)
	ok, _ = e.TryPlace(6, 5) // B
	require.True(t, ok)
	ok, _ = e.TryPlace(7, 5) // W
	require.True(t, ok)
	ok, _ = e.TryPlace(0, 0) // K, elsewhere
	require.True(t, ok)

	ok, pairs := e.TryPlace(8, 5) // G captures the mixed B/W pair
	require.True(t, ok)
	assert.Equal(t, 1, pairs)
	assert.Equal(t, 1, e.Captures(0))
	assert.Equal(t, NoToken, e.At(6, 5))
	assert.Equal(t, NoToken, e.At(7, 5))
	// Turn passed on to B.
	assert.Equal(t, 1, e.CurrentPlayer())
}

func TestUndoRoundTrip(t *testing.T) {
	// Snapshot before every accepted move, then unwind and compare.
	e := newTestEngine(t, Config{Players: 3, BoardSize: 9})
	moves := [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 4}, {5, 5}}

	var snaps []Snapshot
	for _, m := range moves {
		snaps = append(snaps, e.Snapshot())
		ok, _ := e.TryPlace(m[0], m[1])
		require.True(t, ok)
	}
	// The fourth move captured a mixed pair.
	require.Equal(t, 1, e.Captures(0))

	for i := len(snaps) - 1; i >= 0; i-- {
		require.True(t, e.Undo())
		assert.Equal(t, snaps[i], e.Snapshot(), "state after undoing move %d", i+1)
	}
	require.False(t, e.Undo())
}

func TestUndoRestoresMixedTokens(t *testing.T) {
	e := newTestEngine(t, Config{Players: 3, BoardSize: 9})
	e.TryPlace(0, 0) // black
	e.TryPlace(1, 0) // white
	e.TryPlace(2, 0) // red
	e.TryPlace(3, 0) // black captures white+red

	require.True(t, e.Undo())
	assert.Equal(t, TokenWhite, e.At(1, 0))
	assert.Equal(t, TokenRed, e.At(2, 0))
	assert.Equal(t, NoToken, e.At(3, 0))
	assert.Zero(t, e.Captures(0))
	assert.Equal(t, 0, e.CurrentPlayer())
}

func TestUndoClearsGameOverUnconditionally(t *testing.T) {
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9})
	winByRow(t, e)
	require.True(t, e.Over())

	require.True(t, e.Undo())
	assert.False(t, e.Over())
	assert.Empty(t, e.Message())
	// The winning player is back on the move.
	assert.Equal(t, 0, e.CurrentPlayer())

	// Undoing further, past moves that did not end the game, keeps
	// the flag clear.
	require.True(t, e.Undo())
	assert.False(t, e.Over())
}

func TestCustomWinLengthAndQuota(t *testing.T) {
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9, CaptureQuota: 1, WinLength: 3})

	// A single captured pair ends the game immediately.
	e.board.place(0, 0, TokenBlack)
	e.board.place(1, 0, TokenWhite)
	e.board.place(2, 0, TokenWhite)
	ok, pairs := e.TryPlace(3, 0)
	require.True(t, ok)
	require.Equal(t, 1, pairs)
	assert.True(t, e.Over())
	assert.Equal(t, "P1 wins by captures", e.Message())
}
