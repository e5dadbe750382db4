// termpente is a terminal application for playing Pente-style capture
// games with 2 to 4 players at one keyboard.
package main

import (
	"flag"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termpente/config"
	"termpente/engine"
	"termpente/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("boardsize", 0, "Board size (9, 13, or 19)")
	flagPlayers    = flag.Int("players", 0, "Number of players (2-4)")
	flagQuota      = flag.Int("quota", 0, "Captured pairs needed to win")
	flagInRow      = flag.Int("inrow", 0, "Stones in a row needed to win")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termpente %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	// Check if quick start requested
	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagPlayers > 0 || *flagQuota > 0 || *flagInRow > 0 || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● termpente ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardUI(app, cfg, gameHint)

	// Create game layout with centered board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			selTile := gameBoard.SelectedTile()
			if selTile == nil {
				return nil
			}
			gameBoard.PlayMove(selTile.X, selTile.Y)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'u':
				gameBoard.Undo()
			case 'r':
				confirmRestart()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(
		cfg,
		func(gameCfg engine.Config, names []string) {
			startGame(gameCfg, names)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", ui.CreateCenteredForm(tview.NewFlex().AddItem(setupUI, 0, 1, true), 52), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	// Quick start if flags provided
	if quickStart {
		startGame(buildGameConfigFromFlags(), nil)
		// Enter focus mode if requested
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// startGame starts a match with the given configuration.
func startGame(gameCfg engine.Config, names []string) {
	eng, err := engine.New(gameCfg)
	if err != nil {
		// Show error modal
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.HidePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}

	for i, name := range names {
		eng.SetPlayerName(i, name)
	}

	gameBoard.Attach(eng)
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameBoard.Box)
}

// confirmRestart asks before wiping the current match.
func confirmRestart() {
	modal := tview.NewModal().
		SetText("Restart the match?").
		AddButtons([]string{"Restart", "Cancel"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "Restart" {
				gameBoard.Restart()
			}
			rootPage.HidePage("confirm")
			app.SetFocus(gameBoard.Box)
		})
	rootPage.AddPage("confirm", modal, true, true)
}

// buildGameConfigFromFlags creates an engine.Config from command-line flags.
func buildGameConfigFromFlags() engine.Config {
	// Start with saved defaults
	gameCfg := engine.Config{
		Players:      cfg.Game.Players,
		BoardSize:    cfg.Game.BoardSize,
		CaptureQuota: cfg.Game.CaptureQuota,
		WinLength:    cfg.Game.WinLength,
	}

	// Override with flags
	if *flagBoardSize >= engine.MinBoardSize {
		gameCfg.BoardSize = *flagBoardSize
	}

	if *flagPlayers >= 2 && *flagPlayers <= 4 {
		gameCfg.Players = *flagPlayers
	}

	if *flagQuota > 0 {
		gameCfg.CaptureQuota = *flagQuota
	}

	if *flagInRow > 0 {
		gameCfg.WinLength = *flagInRow
	}

	return gameCfg
}
