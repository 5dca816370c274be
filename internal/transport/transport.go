package transport

import (
	"hangman/internal/game"
	"hangman/internal/scoreboard"
)

// Prompter abstracts reading player input
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
}

// View abstracts display/output operations
type View interface {
	Prompter
	ShowMessage(msg string)
	ShowWarning(msg string)
	ShowError(err error)
	ShowWelcome()
	ShowMenu()
	ShowHelp()
	ShowBoard(g *game.State)
	ShowCorrect(letter rune)
	ShowIncorrect(letter rune, lives int)
	ShowRepeated(letter rune)
	ShowWin(name, word string)
	ShowLoss(name, word string)
	ShowSaved()
	ShowScoreboard(sb *scoreboard.Scoreboard)
}
