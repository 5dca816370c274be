package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"hangman/internal/game"
	"hangman/internal/scoreboard"
)

var (
	ErrNotFound = errors.New("not found")
	ErrCorrupt  = errors.New("corrupt data")
)

// decodeGame parses and validates a serialized game state
func decodeGame(data []byte) (*game.State, error) {
	var st game.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if st.CorrectLetters == nil {
		st.CorrectLetters = game.LetterSet{}
	}
	if st.GuessedLetters == nil {
		st.GuessedLetters = game.LetterSet{}
	}
	return &st, nil
}

func decodeScoreboard(data []byte) (*scoreboard.Scoreboard, error) {
	var sb scoreboard.Scoreboard
	if err := json.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if sb.Players == nil {
		sb.Players = []scoreboard.PlayerScore{}
	}
	return &sb, nil
}
