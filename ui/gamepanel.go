package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// GameInfoPanel displays capture tallies and move history alongside the board.
type GameInfoPanel struct {
	box   *tview.TextView
	board *BoardUI
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel(board *BoardUI) *GameInfoPanel {
	panel := &GameInfoPanel{
		box:   tview.NewTextView(),
		board: board,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	eng := p.board.Engine()
	if eng == nil {
		p.box.SetText("")
		return
	}

	var text string

	// Players section
	text += "[white::b]Players[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	for i := 0; i < eng.PlayerCount(); i++ {
		player := eng.Player(i)
		stoneTag := fmt.Sprintf("[#%06x]●[-]", p.board.stoneColor(player.Token).Hex())

		marker := " "
		if !eng.Over() && i == eng.CurrentPlayer() {
			marker = "[white]>[-]"
		}

		text += fmt.Sprintf("%s%s %s\n", marker, stoneTag, player.Name)
		text += fmt.Sprintf("   [dimgray]pairs[-] %d/%d\n", eng.Captures(i), eng.CaptureQuota())
	}

	if eng.Over() {
		text += fmt.Sprintf("\n[yellow::b]%s[-:-:-]\n", eng.Message())
	}

	moves := eng.Moves()
	if len(moves) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		// Show last N moves that fit, with scroll
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			m := moves[i]
			moveNum := i + 1

			stoneTag := fmt.Sprintf("[#%06x]●[-]", p.board.stoneColor(m.Token).Hex())
			coord := PosToDisplay(m.Pos.X, m.Pos.Y, eng.Size())

			capture := ""
			if m.Pairs > 0 {
				capture = fmt.Sprintf(" [red]x%d[-]", m.Pairs)
			}

			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s%s\n", marker, moveNum, stoneTag, coord, capture)
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	// Create the info panel
	infoPanel := NewGameInfoPanel(board)

	// Store panel reference in board for updates
	board.infoPanel = infoPanel

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 4, 0, false)

	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel(board)

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	infoPanel.refresh()

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	// Info panel is hidden in focus mode
	board.infoPanel = nil

	// Calculate board dimensions
	boardWidth := 22 // default for 9x9
	boardHeight := 11
	if board.Engine() != nil {
		boardWidth = board.Engine().Size()*2 + 4 // 2 chars per cell + coordinates
		boardHeight = board.Engine().Size() + 2  // + coordinates
	}

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
