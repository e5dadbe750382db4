package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestNewValidatesPlayerCount(t *testing.T) {
	for _, n := range []int{0, 1, 5, -2} {
		cfg := DefaultConfig()
		cfg.Players = n
		_, err := New(cfg)
		require.Error(t, err, "player count %d must be rejected", n)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	}
}

func TestNewValidatesBoardSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = 4
	_, err := New(cfg)
	require.Error(t, err)

	cfg.BoardSize = 5
	_, err = New(cfg)
	require.NoError(t, err)
}

func TestNewAppliesDefaults(t *testing.T) {
	e := newTestEngine(t, Config{Players: 3, BoardSize: 13})
	assert.Equal(t, DefaultCaptureQuota, e.CaptureQuota())
	assert.Equal(t, DefaultWinLength, e.WinLength())
	assert.Equal(t, 13, e.Size())
	assert.Equal(t, 3, e.PlayerCount())
}

func TestTokensAssignedInSeatingOrder(t *testing.T) {
	e := newTestEngine(t, Config{Players: 4, BoardSize: 19})
	want := []Token{TokenBlack, TokenWhite, TokenRed, TokenBlue}
	for i, token := range want {
		assert.Equal(t, token, e.Player(i).Token)
		assert.Equal(t, defaultName(i), e.Player(i).Name)
	}
}

func TestSetPlayerName(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	e.SetPlayerName(0, "  Alice  ")
	assert.Equal(t, "Alice", e.Player(0).Name)

	// Blank input falls back to the positional default.
	e.SetPlayerName(0, "   ")
	assert.Equal(t, "P1", e.Player(0).Name)

	// The token never changes.
	assert.Equal(t, TokenBlack, e.Player(0).Token)

	// Out-of-range indexes are ignored.
	e.SetPlayerName(7, "ghost")
}

func TestNotificationFiresOncePerMutation(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	fired := 0
	e.OnChange(func() { fired++ })

	ok, _ := e.TryPlace(3, 3)
	require.True(t, ok)
	assert.Equal(t, 1, fired)

	// Rejected placements stay silent.
	e.TryPlace(3, 3)
	assert.Equal(t, 1, fired)

	e.SetPlayerName(0, "Alice")
	assert.Equal(t, 2, fired)

	require.True(t, e.Undo())
	assert.Equal(t, 3, fired)

	// Undo on an empty journal is a silent no-op.
	require.False(t, e.Undo())
	assert.Equal(t, 3, fired)

	e.Reset()
	assert.Equal(t, 4, fired)
}

func TestMultipleObservers(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	a, b := 0, 0
	e.OnChange(func() { a++ })
	e.OnChange(func() { b++ })
	e.TryPlace(0, 0)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestIllegalMovesLeaveStateUntouched(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	ok, _ := e.TryPlace(5, 5)
	require.True(t, ok)
	before := e.Snapshot()

	// Occupied cell.
	ok, pairs := e.TryPlace(5, 5)
	assert.False(t, ok)
	assert.Zero(t, pairs)
	assert.Equal(t, before, e.Snapshot())

	// Out of bounds.
	ok, _ = e.TryPlace(-1, 5)
	assert.False(t, ok)
	ok, _ = e.TryPlace(5, 19)
	assert.False(t, ok)
	assert.Equal(t, before, e.Snapshot())
}

func TestNoMovesAfterGameOver(t *testing.T) {
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9})
	winByRow(t, e)
	require.True(t, e.Over())

	before := e.Snapshot()
	ok, _ := e.TryPlace(8, 8)
	assert.False(t, ok)
	assert.Equal(t, before, e.Snapshot())
}

func TestLastMoveTracksJournal(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	_, has := e.LastMove()
	assert.False(t, has)

	e.TryPlace(2, 3)
	pos, has := e.LastMove()
	require.True(t, has)
	assert.Equal(t, 2, pos.X)
	assert.Equal(t, 3, pos.Y)

	e.TryPlace(4, 4)
	e.Undo()
	pos, has = e.LastMove()
	require.True(t, has)
	assert.Equal(t, 2, pos.X)

	e.Undo()
	_, has = e.LastMove()
	assert.False(t, has)
}

func TestResetMatchesFreshEngine(t *testing.T) {
	cfg := Config{Players: 3, BoardSize: 9, CaptureQuota: 3, WinLength: 4}
	e := newTestEngine(t, cfg)
	e.TryPlace(1, 1)
	e.TryPlace(2, 2)
	e.TryPlace(3, 3)

	e.Reset()
	fresh := newTestEngine(t, cfg)
	assert.Equal(t, fresh.Snapshot(), e.Snapshot())

	// Reset from the initial state is idempotent.
	e.Reset()
	assert.Equal(t, fresh.Snapshot(), e.Snapshot())
}

func TestResetClearsGameOver(t *testing.T) {
	e := newTestEngine(t, Config{Players: 2, BoardSize: 9})
	winByRow(t, e)
	require.True(t, e.Over())

	e.Reset()
	assert.False(t, e.Over())
	assert.Empty(t, e.Message())
	assert.Zero(t, e.MoveCount())
	assert.Equal(t, 0, e.CurrentPlayer())
}

// winByRow drives a two-player game to a row win for the first
// player: a diagonal of five with filler moves far away.
func winByRow(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 4; i++ {
		ok, _ := e.TryPlace(i, i)
		require.True(t, ok)
		ok, _ = e.TryPlace(8, i)
		require.True(t, ok)
	}
	ok, _ := e.TryPlace(4, 4)
	require.True(t, ok)
}
