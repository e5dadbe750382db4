package engine

import (
	"fmt"

	"termpente/types"
)

// MinBoardSize is the smallest playable board edge.
const MinBoardSize = 5

const (
	// DefaultBoardSize is the standard Go board the game is played on.
	DefaultBoardSize = 19
	// DefaultCaptureQuota is the number of captured pairs that wins.
	DefaultCaptureQuota = 5
	// DefaultWinLength is the run of own stones that wins.
	DefaultWinLength = 5
)

// Config holds the parameters for starting a new match.
type Config struct {
	Players      int // 2-4
	BoardSize    int // >= MinBoardSize
	CaptureQuota int // pairs needed to win by capture; 0 means default
	WinLength    int // stones in a row needed to win; 0 means default
}

// DefaultConfig returns a two-player match on a 19x19 board with the
// classic quota of five pairs and five in a row.
func DefaultConfig() Config {
	return Config{
		Players:      2,
		BoardSize:    DefaultBoardSize,
		CaptureQuota: DefaultCaptureQuota,
		WinLength:    DefaultWinLength,
	}
}

// ConfigError reports an invalid construction parameter.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("engine config: %s", e.msg)
}

// Engine owns all state of one match. It is single-threaded: every
// operation runs to completion before returning and change
// notifications are dispatched inline from the mutating call.
type Engine struct {
	cfg      Config
	board    *Board
	players  []Player
	captures []int // captured pairs per seat
	current  int
	lastMove types.BoardPos
	hasLast  bool
	over     bool
	message  string
	journal  []moveRecord
	watchers []func()
}

// New validates cfg and constructs a match in its initial state.
// Player count outside 2-4 and board size below MinBoardSize are
// construction failures; a zero quota or win length takes the default.
func New(cfg Config) (*Engine, error) {
	if cfg.Players < 2 || cfg.Players > 4 {
		return nil, &ConfigError{fmt.Sprintf("player count %d not in 2-4", cfg.Players)}
	}
	if cfg.BoardSize < MinBoardSize {
		return nil, &ConfigError{fmt.Sprintf("board size %d below minimum %d", cfg.BoardSize, MinBoardSize)}
	}
	if cfg.CaptureQuota <= 0 {
		cfg.CaptureQuota = DefaultCaptureQuota
	}
	if cfg.WinLength <= 0 {
		cfg.WinLength = DefaultWinLength
	}
	e := &Engine{
		cfg:      cfg,
		board:    newBoard(cfg.BoardSize),
		players:  make([]Player, cfg.Players),
		captures: make([]int, cfg.Players),
	}
	for i := range e.players {
		e.players[i] = Player{Name: defaultName(i), Token: tokenOrder[i]}
	}
	return e, nil
}

// Size returns the board edge length.
func (e *Engine) Size() int {
	return e.board.Size()
}

// At returns the occupant of (x, y), NoToken when empty or out of
// bounds.
func (e *Engine) At(x, y int) Token {
	return e.board.At(x, y)
}

// InBounds returns true if (x, y) is on the board.
func (e *Engine) InBounds(x, y int) bool {
	return e.board.InBounds(x, y)
}

// Captures returns the number of pairs seat i has captured so far.
func (e *Engine) Captures(i int) int {
	return e.captures[i]
}

// CaptureQuota returns the number of pairs needed to win by capture.
func (e *Engine) CaptureQuota() int {
	return e.cfg.CaptureQuota
}

// WinLength returns the run length needed to win by row.
func (e *Engine) WinLength() int {
	return e.cfg.WinLength
}

// LastMove returns the most recently placed coordinate. The second
// result is false when no stone has been placed.
func (e *Engine) LastMove() (types.BoardPos, bool) {
	return e.lastMove, e.hasLast
}

// Over returns true once a win condition has been met. Only undo and
// reset clear it.
func (e *Engine) Over() bool {
	return e.over
}

// Message returns the terminal result text ("Alice wins by captures"),
// or "" while the game is running.
func (e *Engine) Message() string {
	return e.message
}

// MoveCount returns the number of moves in the journal.
func (e *Engine) MoveCount() int {
	return len(e.journal)
}

// OnChange registers fn as a state-change observer. Every successful
// mutating operation calls each observer exactly once, inline, after
// the engine is consistent again. Observers must not call back into
// mutating methods from inside the callback.
func (e *Engine) OnChange(fn func()) {
	e.watchers = append(e.watchers, fn)
}

func (e *Engine) notify() {
	for _, fn := range e.watchers {
		fn()
	}
}

// Reset restores the canonical initial state for the same
// configuration: empty board, empty journal, zeroed capture counts,
// first player to move. Player names are kept.
func (e *Engine) Reset() {
	e.board = newBoard(e.cfg.BoardSize)
	for i := range e.captures {
		e.captures[i] = 0
	}
	e.current = 0
	e.lastMove = types.BoardPos{}
	e.hasLast = false
	e.over = false
	e.message = ""
	e.journal = e.journal[:0]
	e.notify()
}
