package cli

import (
	"errors"
	"fmt"
	"strings"

	"hangman/internal/cli"
	"hangman/internal/core"
	"hangman/internal/game"
	"hangman/internal/service"
	"hangman/internal/transport"
)

const (
	menuNewGame    = "1"
	menuLoadGame   = "2"
	menuScoreboard = "3"
)

type CLIHandler struct {
	svc  *service.Service
	view transport.View
}

func New(svc *service.Service, view transport.View) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Run shows the menu and executes one choice. A non-nil error is fatal for the process.
func (h *CLIHandler) Run() error {
	h.view.ShowWelcome()
	h.view.ShowMenu()

	choice, err := h.view.ReadLine("Choose an option: ")
	if err != nil {
		return ignoreAbort(err)
	}

	switch choice {
	case menuNewGame:
		st, err := h.setupGame()
		if err != nil {
			return ignoreAbort(err)
		}
		return h.play(st)

	case menuLoadGame:
		st, err := h.svc.LoadGame()
		if errors.Is(err, service.ErrNoSave) {
			h.view.ShowMessage("No saved game found.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load saved game: %w", err)
		}
		h.view.ShowMessage("Game loaded.")
		return h.play(st)

	case menuScoreboard:
		h.view.ShowScoreboard(h.svc.Scoreboard())
		return nil

	default:
		h.view.ShowMessage("Invalid choice.")
		return nil
	}
}

// Collects players and the word for a new game
func (h *CLIHandler) setupGame() (*game.State, error) {
	multiplayer, err := h.view.Confirm("Multiplayer?")
	if err != nil {
		return nil, err
	}

	setup := game.Setup{Multiplayer: multiplayer}

	label := "Player name: "
	if multiplayer {
		label = "Player 1 name: "
	}
	if setup.Player1, err = h.readName(label); err != nil {
		return nil, err
	}

	if multiplayer {
		if setup.Player2, err = h.readName("Player 2 name: "); err != nil {
			return nil, err
		}
		if setup.Setter, err = h.view.Confirm(fmt.Sprintf("%s, do you want to choose the word?", setup.Player1)); err != nil {
			return nil, err
		}
		if setup.Setter {
			if setup.Word, err = h.readSecretWord(setup.Player1); err != nil {
				return nil, err
			}
		}
	}

	st, err := h.svc.NewGame(setup)
	if err != nil {
		return nil, fmt.Errorf("could not start the game: %w", err)
	}
	return st, nil
}

func (h *CLIHandler) readName(prompt string) (string, error) {
	for {
		name, err := h.view.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if err := game.ValidateName(name); err != nil {
			h.view.ShowWarning("Please enter a name of 1 to 32 characters.")
			continue
		}
		return name, nil
	}
}

func (h *CLIHandler) readSecretWord(setter string) (string, error) {
	for {
		word, err := h.view.ReadSecret(fmt.Sprintf("%s, enter the secret word: ", setter))
		if err != nil {
			return "", err
		}
		if err := game.ValidateWord(word); err != nil {
			h.view.ShowWarning("The word must contain letters only.")
			continue
		}
		return strings.ToLower(word), nil
	}
}

// Main game loop - runs until win, loss or save-and-quit
func (h *CLIHandler) play(st *game.State) error {
	h.view.ShowHelp()

	for {
		h.view.ShowBoard(st)

		input, err := h.view.ReadLine(fmt.Sprintf("%s, guess a letter: ", st.CurrentGuesser()))
		if errors.Is(err, cli.ErrAborted) {
			h.view.ShowMessage("\nQuit without saving.")
			return nil
		}
		if err != nil {
			return err
		}

		if input == core.SaveCommand {
			if err := h.svc.SaveGame(st); err != nil {
				return err
			}
			h.view.ShowSaved()
			return nil
		}

		res, err := h.svc.Guess(st, input)
		if errors.Is(err, game.ErrEmptyGuess) {
			h.view.ShowWarning("Please enter a letter.")
			continue
		}
		if res == nil {
			return err
		}

		switch res.Kind {
		case core.GuessRepeated:
			h.view.ShowRepeated(res.Letter)
			continue
		case core.GuessCorrect:
			h.view.ShowCorrect(res.Letter)
		case core.GuessIncorrect:
			h.view.ShowIncorrect(res.Letter, res.Lives)
		}

		switch res.State {
		case core.StateWon:
			h.view.ShowWin(res.Guesser, st.ChosenWord)
		case core.StateLost:
			h.view.ShowLoss(res.Guesser, st.ChosenWord)
		}

		// Outcome was shown, a failed scoreboard write is still fatal
		if err != nil {
			return err
		}
		if res.State.IsTerminal() {
			return nil
		}
	}
}

func ignoreAbort(err error) error {
	if errors.Is(err, cli.ErrAborted) {
		return nil
	}
	return err
}
