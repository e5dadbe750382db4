package engine

import (
	"fmt"
	"strings"
)

// Player is one seat in a match: a display name that may change and a
// token fixed for the lifetime of the match.
type Player struct {
	Name  string
	Token Token
}

func defaultName(i int) string {
	return fmt.Sprintf("P%d", i+1)
}

// PlayerCount returns the number of seats in the match.
func (e *Engine) PlayerCount() int {
	return len(e.players)
}

// Player returns the seat at index i in creation order.
func (e *Engine) Player(i int) Player {
	return e.players[i]
}

// CurrentPlayer returns the index of the player to move. When the
// game is over this stays on the winner.
func (e *Engine) CurrentPlayer() int {
	return e.current
}

// SetPlayerName updates the display name of seat i. Blank or
// whitespace-only input falls back to the positional default. The
// token is never touched.
func (e *Engine) SetPlayerName(i int, name string) {
	if i < 0 || i >= len(e.players) {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName(i)
	}
	e.players[i].Name = name
	e.notify()
}
