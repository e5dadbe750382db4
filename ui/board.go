// Package ui specifies custom controls for tview to assist in playing
// pente in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termpente/config"
	"termpente/engine"
	"termpente/types"
)

// BoardUI renders the live match and forwards placement intents to
// the engine.
type BoardUI struct {
	Box       *tview.Box
	hint      *tview.TextView
	cfg       *config.Config
	selX      int
	selY      int
	app       *tview.Application
	eng       *engine.Engine
	infoPanel *GameInfoPanel
	focusMode bool
}

func NewBoardUI(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		app:  app,
		selX: -1,
		selY: -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if board.eng == nil {
			return x, y, 1, 1
		}
		size := board.eng.Size()
		// 2 characters per cell for square appearance
		boardW, boardH := size*2, size

		last, hasLast := board.eng.LastMove()

		for boardY := 0; boardY < size; boardY++ {
			for boardX := 0; boardX < size; boardX++ {
				stone := board.eng.At(boardX, boardY)

				bg := board.cfg.Theme.Colors.BoardColor
				if (boardX%2 + boardY%2) == 1 {
					bg = board.cfg.Theme.Colors.BoardColorAlt
				}

				var drawRune rune
				var fgColor tcell.Color
				if stone != engine.NoToken {
					drawRune = board.cfg.Theme.Symbols.Stone
					fgColor = board.stoneColor(stone)
				} else if board.cfg.Theme.UseGridLines {
					hoshi := isHoshiPoint(boardX, boardY, size)
					drawRune = getGridRune(boardX, boardY, size, size, hoshi)
					fgColor = tcell.PaletteColor(board.cfg.Theme.Colors.LineColor)
				} else {
					drawRune = board.cfg.Theme.Symbols.BoardSquare
					fgColor = tcell.PaletteColor(board.cfg.Theme.Colors.LineColor)
				}

				if boardX == board.selX && boardY == board.selY {
					if board.cfg.Theme.DrawCursorBackground {
						bg = board.cfg.Theme.Colors.CursorColorBG
					} else if !board.cfg.Theme.UseGridLines {
						drawRune = board.cfg.Theme.Symbols.Cursor
					}
				} else if hasLast && boardX == last.X && boardY == last.Y {
					if board.cfg.Theme.DrawLastPlayedBackground {
						bg = board.cfg.Theme.Colors.LastPlayedColorBG
					} else if !board.cfg.Theme.UseGridLines {
						drawRune = board.cfg.Theme.Symbols.LastPlayed
					}
				}

				style := tcell.StyleDefault.
					Background(tcell.PaletteColor(bg)).
					Foreground(fgColor)

				if board.cfg.Theme.UseGridLines && stone == engine.NoToken {
					// No line should connect into a neighboring stone.
					hasStoneRight := board.eng.At(boardX+1, boardY) != engine.NoToken
					drawGridCell(screen, style, drawRune, boardX, boardY, x+4, y, size, hasStoneRight)
				} else {
					drawStoneCell(screen, style, drawRune, boardX, boardY, x+4, y)
				}
			}
		}
		drawCoordinates(screen, x, y, board)
		// Add offset for coordinate display
		return x, y, boardW + 4, boardH + 2
	})
	return board
}

// Attach connects the board to a freshly constructed engine and
// subscribes to its change notifications.
func (g *BoardUI) Attach(eng *engine.Engine) {
	g.eng = eng
	g.ResetSelection()

	eng.OnChange(func() {
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})
	g.refreshHint()
}

// Engine returns the attached engine, or nil before the first match.
func (g *BoardUI) Engine() *engine.Engine {
	return g.eng
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *BoardUI) MoveSelection(h, v int) {
	if g.eng == nil {
		return
	}
	if g.eng.Over() {
		g.ResetSelection()
		return
	}
	size := g.eng.Size()
	if g.SelectedTile() == nil {
		if last, ok := g.eng.LastMove(); ok {
			g.selX = last.X
			g.selY = last.Y
		} else {
			// No move made yet, use board center
			g.selX = size / 2
			g.selY = size / 2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= size {
		return
	}
	if g.selY+v < 0 || g.selY+v >= size {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *BoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

// PlayMove asks the engine to place the current player's stone. A
// rejected placement leaves the board untouched; the hint text keeps
// showing whose turn it is.
func (g *BoardUI) PlayMove(x, y int) {
	if g.eng == nil {
		return
	}
	g.eng.TryPlace(x, y)
}

// Undo takes back the most recent move.
func (g *BoardUI) Undo() {
	if g.eng == nil {
		return
	}
	g.eng.Undo()
}

// Restart resets the match to its initial state.
func (g *BoardUI) Restart() {
	if g.eng == nil {
		return
	}
	g.ResetSelection()
	g.eng.Reset()
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.cfg = c
}

func (g *BoardUI) stoneColor(t engine.Token) tcell.Color {
	idx := int(t) - 1
	if idx < 0 || idx >= len(g.cfg.Theme.Colors.StoneColors) {
		return tcell.PaletteColor(g.cfg.Theme.Colors.LineColor)
	}
	return tcell.PaletteColor(g.cfg.Theme.Colors.StoneColors[idx])
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.refresh()
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.eng != nil && g.eng.Over() {
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", g.eng.Message())
		controlsLine = "\n  u · take back   r · rematch   q · menu"
	} else if g.eng != nil {
		cur := g.eng.CurrentPlayer()
		player := g.eng.Player(cur)
		stoneTag := fmt.Sprintf("[#%06x]●[-]", g.stoneColor(player.Token).Hex())
		turnLine = fmt.Sprintf("  %s %s to move (%d/%d pairs)\n",
			stoneTag, player.Name, g.eng.Captures(cur), g.eng.CaptureQuota())

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ place
      u undo   r reset   f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// drawStoneCell draws a stone cell (2 characters wide)
func drawStoneCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	// Stone at position 0
	s.SetContent(l+x*2, t+y, r, nil, c)
	// Position 1: space (stone covers the area, no line)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// drawGridCell draws a cell using box-drawing characters for grid lines
func drawGridCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t, boardWidth int, hasStoneRight bool) {
	// 2-char cell: [intersection][right-line]
	s.SetContent(l+x*2, t+y, r, nil, c)

	// Right connector: space if at right edge or if there's a stone to the right
	rightConn := '─'
	if x == boardWidth-1 || hasStoneRight {
		rightConn = ' '
	}
	s.SetContent(l+x*2+1, t+y, rightConn, nil, c)
}

// getGridRune returns the appropriate box-drawing character for a grid position
func getGridRune(x, y, width, height int, isHoshi bool) rune {
	if isHoshi {
		return '◦' // Subtle star point marker
	}

	isTop := y == 0
	isBottom := y == height-1
	isLeft := x == 0
	isRight := x == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// isHoshiPoint checks if a position is a hoshi (star point) on the board
func isHoshiPoint(x, y, boardSize int) bool {
	var hoshiPositions [][2]int

	switch boardSize {
	case 9:
		hoshiPositions = [][2]int{
			{2, 2}, {2, 6},
			{4, 4},
			{6, 2}, {6, 6},
		}
	case 13:
		hoshiPositions = [][2]int{
			{3, 3}, {3, 9},
			{6, 6},
			{9, 3}, {9, 9},
		}
	case 19:
		hoshiPositions = [][2]int{
			{3, 3}, {3, 9}, {3, 15},
			{9, 3}, {9, 9}, {9, 15},
			{15, 3}, {15, 9}, {15, 15},
		}
	default:
		return false
	}

	for _, pos := range hoshiPositions {
		if x == pos[0] && y == pos[1] {
			return true
		}
	}
	return false
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	hCoord := int('A')
	size := ui.eng.Size()
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = int('Ａ')
	}

	last, hasLast := ui.eng.LastMove()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(tcell.PaletteColor(ui.cfg.Theme.Colors.CursorColorBG))
	lpHighlight := tcell.StyleDefault.Background(tcell.PaletteColor(ui.cfg.Theme.Colors.LastPlayedColorBG))

	for ix := 0; ix < size; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		} else if hasLast && ix == last.X {
			_style = lpHighlight
		}
		letter := hCoord + ix
		if ix >= 8 {
			letter++ // Skip 'I', like Go coordinates
		}
		// 2-char cells
		s.SetContent(x+4+(ix*2), y+size+1, rune(letter), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+size+1, ' ', nil, _style)
	}

	for iy := 0; iy < size; iy++ {
		iyInv := size - iy - 1 // Screen rows start top left, board numbering starts bottom left
		_style := style
		if iyInv == ui.selY {
			_style = highlight
		} else if hasLast && iyInv == last.Y {
			_style = lpHighlight
		}
		displayNum := iy + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + int((displayNum-(displayNum%10))/10))
		}
		s.SetContent(1, y+size-iy-1, tensRune, nil, _style)
		s.SetContent(2, y+size-iy-1, rune('0'+(displayNum%10)), nil, _style)
	}
	s.Show()
}
