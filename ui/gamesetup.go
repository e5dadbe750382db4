package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termpente/config"
	"termpente/engine"
)

// setupField is any focusable control on the setup card.
type setupField interface {
	SetFocused(bool)
	HandleKey(event *tcell.EventKey) bool
}

// GameSetupUI is the new-match configuration screen.
type GameSetupUI struct {
	*MenuCard
	onStart  func(engine.Config, []string)
	onCancel func()
	onColors func()

	players   *RadioSelect
	boardSize *RadioSelect
	quota     *LevelSlider
	winLength *LevelSlider
	names     [4]*NameInput

	startBtn  *MenuButton
	colorsBtn *MenuButton
	quitBtn   *MenuButton

	focusIdx int
}

var setupBoardSizes = []int{9, 13, 19}

// NewGameSetup creates the setup card, preselecting values from saved defaults.
func NewGameSetup(c *config.Config, onStart func(engine.Config, []string), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		MenuCard: NewMenuCard("T E R M P E N T E"),
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
	}

	playersInitial := c.Game.Players - 2
	if playersInitial < 0 || playersInitial > 2 {
		playersInitial = 0
	}
	sizeInitial := 2
	for i, s := range setupBoardSizes {
		if s == c.Game.BoardSize {
			sizeInitial = i
		}
	}

	setup.players = NewRadioSelect("Players", []RadioOption{
		{Label: "2", Description: "head to head"},
		{Label: "3", Description: ""},
		{Label: "4", Description: "free for all"},
	}, playersInitial, func(int) {
		setup.clampFocus()
	})

	setup.boardSize = NewRadioSelect("Board Size", []RadioOption{
		{Label: "9x9", Description: "quick"},
		{Label: "13x13", Description: ""},
		{Label: "19x19", Description: "full"},
	}, sizeInitial, nil)

	setup.quota = NewLevelSlider("Capture Goal", 1, 10, c.Game.CaptureQuota, nil)
	setup.winLength = NewLevelSlider("Stones In Row", 3, 9, c.Game.WinLength, nil)

	for i := range setup.names {
		setup.names[i] = NewNameInput(defaultSeatLabel(i), "")
	}

	setup.startBtn = NewMenuButton("Start Game", true, setup.startMatch)
	setup.colorsBtn = NewMenuButton("Colors", false, func() {
		if setup.onColors != nil {
			setup.onColors()
		}
	})
	setup.quitBtn = NewMenuButton("Quit", false, func() {
		setup.onCancel()
	})

	setup.SetFocused(true)
	setup.syncFocus()
	return setup
}

func defaultSeatLabel(i int) string {
	return [4]string{"P1", "P2", "P3", "P4"}[i]
}

func (s *GameSetupUI) playerCount() int {
	return s.players.Selected() + 2
}

// fields returns the focus order for the current player count.
func (s *GameSetupUI) fields() []setupField {
	fields := []setupField{s.players, s.boardSize, s.quota, s.winLength}
	for i := 0; i < s.playerCount(); i++ {
		fields = append(fields, s.names[i])
	}
	return append(fields, s.startBtn, s.colorsBtn, s.quitBtn)
}

func (s *GameSetupUI) clampFocus() {
	if s.focusIdx >= len(s.fields()) {
		s.focusIdx = len(s.fields()) - 1
	}
	s.syncFocus()
}

func (s *GameSetupUI) syncFocus() {
	for i, f := range s.fields() {
		f.SetFocused(i == s.focusIdx)
	}
}

func (s *GameSetupUI) moveFocus(delta int) {
	n := len(s.fields())
	s.focusIdx = (s.focusIdx + delta + n) % n
	s.syncFocus()
}

func (s *GameSetupUI) startMatch() {
	cfg := engine.Config{
		Players:      s.playerCount(),
		BoardSize:    setupBoardSizes[s.boardSize.Selected()],
		CaptureQuota: s.quota.Value(),
		WinLength:    s.winLength.Value(),
	}
	names := make([]string, cfg.Players)
	for i := range names {
		names[i] = s.names[i].Value()
	}
	s.onStart(cfg, names)
}

// InputHandler routes keys to the focused control, falling back to
// focus cycling.
func (s *GameSetupUI) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyTab:
			s.moveFocus(1)
			return
		case tcell.KeyBacktab:
			s.moveFocus(-1)
			return
		case tcell.KeyEscape:
			s.onCancel()
			return
		}

		if s.fields()[s.focusIdx].HandleKey(event) {
			return
		}

		// Up/Down cycle focus when the control has no use for them
		switch event.Key() {
		case tcell.KeyUp:
			s.moveFocus(-1)
		case tcell.KeyDown:
			s.moveFocus(1)
		}
	})
}

// Draw renders the setup card and its controls.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.Draw(screen)

	x, y, width, _ := s.GetInnerRect()
	if width < 10 {
		return
	}

	col := x + 3
	row := y + 6

	row += s.players.Draw(screen, col, row, width-6)
	row++
	row += s.boardSize.Draw(screen, col, row, width-6)
	row++
	row += s.quota.Draw(screen, col, row, width-6)
	row += s.winLength.Draw(screen, col, row, width-6)
	row++

	for i := 0; i < s.playerCount(); i++ {
		row += s.names[i].Draw(screen, col, row, width-6)
	}
	row++

	s.DrawDivider(screen, row)
	row += 2

	btnCol := col + 2
	btnCol += s.startBtn.Draw(screen, btnCol, row) + 3
	btnCol += s.colorsBtn.Draw(screen, btnCol, row) + 3
	s.quitBtn.Draw(screen, btnCol, row)
}
