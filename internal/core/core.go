package core

// State is the position of a game in the turn state machine
type State int

const (
	StateAwaiting State = iota
	StateWon
	StateLost
	StateSavedQuit
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateSavedQuit:
		return "saved"
	default:
		return "awaiting guess"
	}
}

// IsTerminal reports whether the game loop must stop
func (s State) IsTerminal() bool {
	return s != StateAwaiting
}

// Mode selects how turns advance between guesses
type Mode int

const (
	ModeAlternating Mode = iota // players take turns guessing
	ModeSetter                  // player1 set the word, player2 guesses every turn
)

func (m Mode) String() string {
	if m == ModeSetter {
		return "setter"
	}
	return "alternating"
}

// GuessKind classifies how a guess was resolved
type GuessKind int

const (
	GuessCorrect GuessKind = iota + 1
	GuessIncorrect
	GuessRepeated
)

// Turn identifies the player slot whose turn it is
type Turn int

const (
	TurnPlayer1 Turn = iota + 1
	TurnPlayer2
)

// Other returns the opposite player slot
func (t Turn) Other() Turn {
	if t == TurnPlayer1 {
		return TurnPlayer2
	}
	return TurnPlayer1
}

const (
	// DefaultLives is the life budget of a fresh game
	DefaultLives = 6

	// SaveCommand is the reserved guess token that saves and exits
	SaveCommand = ":save"

	// Blank marks an unrevealed letter in the placeholder
	Blank = '_'
)
