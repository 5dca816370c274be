package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"hangman/internal/core"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	ErrEmptyGuess   = errors.New("empty guess")
	ErrGameOver     = errors.New("game is already over")
	ErrInvalidState = errors.New("invalid game state")
)

// State holds all mutable data of one game session. Field names are the save file format.
type State struct {
	GameID            string    `json:"game_id,omitempty" validate:"omitempty,uuid"`
	Player1           string    `json:"player1" validate:"required"`
	Player2           *string   `json:"player2" validate:"omitempty,min=1"`
	Turn              core.Turn `json:"turn" validate:"oneof=1 2"`
	ChosenWord        string    `json:"chosen_word" validate:"required,lowercase"`
	Placeholder       string    `json:"placeholder" validate:"required"`
	CorrectLetters    LetterSet `json:"correct_letters"`
	GuessedLetters    LetterSet `json:"guessed_letters"`
	Lives             int       `json:"lives" validate:"min=0,max=6"`
	IsPlayer1Choosing bool      `json:"is_player1_choosing"`
}

// GuessResult describes the effect of a single guess
type GuessResult struct {
	Letter  rune
	Kind    core.GuessKind
	Guesser string
	Lives   int
	State   core.State
}

// Setup carries the choices made before a game starts
type Setup struct {
	Multiplayer bool
	Player1     string `validate:"required,max=32"`
	Player2     string `validate:"required_if=Multiplayer true,max=32"`
	Setter      bool
	Word        string `validate:"required,alpha"`
	Lives       int    `validate:"min=1,max=6"`
}

// New creates a fresh game from a validated setup
func New(id string, s Setup) (*State, error) {
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("invalid setup: %w", err)
	}

	word := strings.ToLower(s.Word)
	st := &State{
		GameID:            id,
		Player1:           s.Player1,
		Turn:              core.TurnPlayer1,
		ChosenWord:        word,
		Placeholder:       strings.Repeat(string(core.Blank), utf8.RuneCountInString(word)),
		CorrectLetters:    LetterSet{},
		GuessedLetters:    LetterSet{},
		Lives:             s.Lives,
		IsPlayer1Choosing: s.Multiplayer && s.Setter,
	}
	if s.Multiplayer {
		p2 := s.Player2
		st.Player2 = &p2
	}
	return st, nil
}

// Mode derives the turn mode from the chooser flag
func (g *State) Mode() core.Mode {
	if g.IsPlayer1Choosing {
		return core.ModeSetter
	}
	return core.ModeAlternating
}

// CurrentGuesser returns the name of the player who guesses next
func (g *State) CurrentGuesser() string {
	if g.Mode() == core.ModeSetter || g.Turn == core.TurnPlayer2 {
		if g.Player2 != nil {
			return *g.Player2
		}
	}
	return g.Player1
}

// Status reports the current position in the turn state machine
func (g *State) Status() core.State {
	switch {
	case g.Placeholder == g.ChosenWord:
		return core.StateWon
	case g.Lives == 0:
		return core.StateLost
	default:
		return core.StateAwaiting
	}
}

// Guess resolves one guess token. Only the first character of the input is used.
func (g *State) Guess(input string) (*GuessResult, error) {
	if g.Status().IsTerminal() {
		return nil, ErrGameOver
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyGuess
	}
	c, _ := utf8.DecodeRuneInString(input)
	c = unicode.ToLower(c)

	result := &GuessResult{
		Letter:  c,
		Guesser: g.CurrentGuesser(),
		State:   core.StateAwaiting,
	}

	if g.GuessedLetters.Has(c) {
		result.Kind = core.GuessRepeated
		result.Lives = g.Lives
		return result, nil
	}
	if g.GuessedLetters == nil {
		g.GuessedLetters = LetterSet{}
	}
	g.GuessedLetters.Add(c)

	if strings.ContainsRune(g.ChosenWord, c) {
		if g.CorrectLetters == nil {
			g.CorrectLetters = LetterSet{}
		}
		g.CorrectLetters.Add(c)
		g.Placeholder = Reveal(g.ChosenWord, g.CorrectLetters)
		result.Kind = core.GuessCorrect
		if g.Placeholder == g.ChosenWord {
			result.State = core.StateWon
		}
	} else {
		g.Lives--
		result.Kind = core.GuessIncorrect
		if g.Lives == 0 {
			result.State = core.StateLost
		}
	}
	result.Lives = g.Lives

	if result.State == core.StateAwaiting && g.Mode() == core.ModeAlternating {
		g.Turn = g.Turn.Other()
	}
	return result, nil
}

// Reveal renders word with every letter outside correct replaced by a blank
func Reveal(word string, correct LetterSet) string {
	var sb strings.Builder
	sb.Grow(len(word))
	for _, r := range word {
		if correct.Has(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(core.Blank)
		}
	}
	return sb.String()
}

// Validate checks field constraints and the cross-field invariants of a state
func (g *State) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if utf8.RuneCountInString(g.Placeholder) != utf8.RuneCountInString(g.ChosenWord) {
		return fmt.Errorf("%w: placeholder length %d does not match word length %d",
			ErrInvalidState, utf8.RuneCountInString(g.Placeholder), utf8.RuneCountInString(g.ChosenWord))
	}
	for r := range g.CorrectLetters {
		if !strings.ContainsRune(g.ChosenWord, r) {
			return fmt.Errorf("%w: correct letter %q not in word", ErrInvalidState, r)
		}
		if !g.GuessedLetters.Has(r) {
			return fmt.Errorf("%w: correct letter %q missing from guessed letters", ErrInvalidState, r)
		}
	}
	if g.Placeholder != Reveal(g.ChosenWord, g.CorrectLetters) {
		return fmt.Errorf("%w: placeholder %q does not match revealed letters", ErrInvalidState, g.Placeholder)
	}
	return nil
}

// IncorrectLetters returns the guessed letters that are not in the word, sorted
func (g *State) IncorrectLetters() []rune {
	var wrong []rune
	for _, r := range g.GuessedLetters.Sorted() {
		if !g.CorrectLetters.Has(r) {
			wrong = append(wrong, r)
		}
	}
	return wrong
}

// ValidateName checks a player name against the setup rules
func ValidateName(name string) error {
	return validate.Var(name, "required,max=32")
}

// ValidateWord checks a custom secret word against the setup rules
func ValidateWord(word string) error {
	return validate.Var(word, "required,alpha")
}
