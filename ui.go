package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// StartUI runs an interactive game between a human and the lookahead engine.
func StartUI(cfg *Config) error {
	app := tview.NewApplication()

	playerColor := Black
	showValidMoves := cfg.ShowValidMoves

	var showStartScreen func()
	var startGame func()

	showStartScreen = func() {
		form := tview.NewForm()
		form.
			AddDropDown("Choose your color", []string{"Black", "White"}, 0, func(option string, index int) {
				if index == 1 {
					playerColor = White
				} else {
					playerColor = Black
				}
			}).
			AddCheckbox("Show valid moves", showValidMoves, func(checked bool) {
				showValidMoves = checked
			}).
			AddButton("Start Game", func() {
				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("Othello").SetTitleAlign(tview.AlignCenter)

		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		game := NewGame()
		engineColor := playerColor.Opponent()

		boardTable := tview.NewTable()

		boardTable.SetSelectable(true, true)
		boardTable.SetBorder(true)
		boardTable.SetTitleAlign(tview.AlignLeft)
		boardTable.SetTitleColor(tcell.ColorGreen)
		boardTable.SetBorderColor(tcell.ColorGreen)
		boardTable.SetBorders(true)

		scoreBox := tview.NewTextView()
		scoreBox.SetBorder(true)
		scoreBox.SetTitle("Score")

		flex := tview.NewFlex().
			AddItem(boardTable, 0, 1, true).
			AddItem(scoreBox, 30, 1, false)

		updateBoard := func() {
			board := game.Board()
			for row := 0; row < BoardSize; row++ {
				for col := 0; col < BoardSize; col++ {
					cell := tview.NewTableCell(pieceSymbol(cfg, board[row][col]))
					cell.SetAlign(tview.AlignCenter)

					if board[row][col] == Empty && showValidMoves && game.Turn() == playerColor &&
						game.IsLegal(Move{Row: row, Col: col}) {
						cell.SetText(" " + cfg.Symbols.Hint + " ")
						cell.SetTextColor(tcell.ColorGreen)
					}

					boardTable.SetCell(row, col, cell)
				}
			}

			boardTable.SetTitle(fmt.Sprintf(" Othello - %s's turn ", game.Turn()))

			blackScore, whiteScore := game.Score()
			scoreBox.SetText(fmt.Sprintf("Black: %d\nWhite: %d", blackScore, whiteScore))
		}

		var (
			aiThinking   int32
			spinnerIndex int
			spinners     = []string{"|", "/", "-", "\\"}
		)

		var processNextTurn func()

		processNextTurn = func() {
			if game.IsGameOver() {
				blackScore, whiteScore := game.Score()
				result := "Draw!"
				if winner := game.Winner(); winner != Empty {
					result = fmt.Sprintf("%s wins!", winner)
				}
				debugLog.Printf("tui game over: black %d, white %d", blackScore, whiteScore)

				modal := tview.NewModal().
					SetText(fmt.Sprintf("Game Over!\n%s\nBlack score: %d\nWhite score: %d", result, blackScore, whiteScore)).
					AddButtons([]string{"New Game", "Quit"}).
					SetDoneFunc(func(buttonIndex int, buttonLabel string) {
						if buttonLabel == "New Game" {
							showStartScreen()
						} else {
							app.Stop()
						}
					})

				app.SetRoot(modal, false).SetFocus(modal)

				return
			}

			if game.Turn() == playerColor {
				if !game.HasMoves(playerColor) {
					debugLog.Printf("%s has no move, passing", playerColor)
					game.Pass()
					processNextTurn()

					return
				}
				updateBoard()

				return
			}

			atomic.StoreInt32(&aiThinking, 1)
			spinnerIndex = 0
			updateBoard()

			ticker := time.NewTicker(100 * time.Millisecond)
			go func() {
				for range ticker.C {
					if atomic.LoadInt32(&aiThinking) == 0 {
						ticker.Stop()

						return
					}
					spinner := spinners[spinnerIndex%len(spinners)]
					spinnerIndex++
					app.QueueUpdateDraw(func() {
						boardTable.SetTitle(fmt.Sprintf(" Othello - %s's turn %s ", engineColor, spinner))
					})
				}
			}()

			// The engine works on a copy; the result is applied on the UI goroutine.
			snapshot := game
			go func() {
				snapshot.AIMove()
				atomic.StoreInt32(&aiThinking, 0)

				app.QueueUpdateDraw(func() {
					game = snapshot
					processNextTurn()
				})
			}()
		}

		boardTable.SetSelectedFunc(func(row, col int) {
			if atomic.LoadInt32(&aiThinking) == 1 || game.Turn() != playerColor {
				return
			}

			move := Move{Row: row, Col: col}
			if !game.IsLegal(move) {
				return
			}

			game.MakeMove(move)
			processNextTurn()
		})

		app.SetRoot(flex, true)
		processNextTurn()
	}

	showStartScreen()

	return app.Run()
}

func pieceSymbol(cfg *Config, piece Cell) string {
	switch piece {
	case Black:
		return " " + cfg.Symbols.Black + " "
	case White:
		return " " + cfg.Symbols.White + " "
	default:
		return "    "
	}
}
