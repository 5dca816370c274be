package service

import (
	"errors"
	"fmt"
	"log"

	"hangman/internal/core"
	"hangman/internal/game"
	"hangman/internal/scoreboard"
	"hangman/internal/storage"

	"github.com/google/uuid"
)

var ErrNoSave = errors.New("no saved game found")

// Store persists the saved game and the scoreboard
type Store interface {
	LoadGame() (*game.State, error)
	SaveGame(*game.State) error
	LoadScoreboard() (*scoreboard.Scoreboard, error)
	SaveScoreboard(*scoreboard.Scoreboard) error
	Close() error
}

// Service sets up games, resolves guesses and records outcomes on the scoreboard
type Service struct {
	store Store
	words []string
	lives int
	intn  func(int) int // nil uses math/rand
	newID func() string
}

// New creates a service over store. Empty words or a zero life budget fall back to the defaults.
func New(store Store, words []string, lives int) *Service {
	if len(words) == 0 {
		words = game.DefaultWords
	}
	if lives <= 0 {
		lives = core.DefaultLives
	}
	return &Service{
		store: store,
		words: words,
		lives: lives,
		newID: uuid.NewString,
	}
}

// NewGame creates a game from setup. A random word is picked when setup.Word is empty.
func (s *Service) NewGame(setup game.Setup) (*game.State, error) {
	if setup.Word == "" {
		word, err := game.PickWord(s.words, s.intn)
		if err != nil {
			return nil, err
		}
		setup.Word = word
	}
	setup.Lives = s.lives

	return game.New(s.newID(), setup)
}

// LoadGame returns the saved game, ErrNoSave when there is none.
// Any other error means the save exists but cannot be used.
func (s *Service) LoadGame() (*game.State, error) {
	st, err := s.store.LoadGame()
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// SaveGame persists st for a later resume
func (s *Service) SaveGame(st *game.State) error {
	if err := s.store.SaveGame(st); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// Guess applies one guess and records the outcome when it ends the game
func (s *Service) Guess(st *game.State, input string) (*game.GuessResult, error) {
	res, err := st.Guess(input)
	if err != nil {
		return nil, err
	}

	switch res.State {
	case core.StateWon:
		if err := s.RecordWin(res.Guesser); err != nil {
			return res, err
		}
	case core.StateLost:
		if err := s.RecordLoss(res.Guesser); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Scoreboard loads the scoreboard. Missing or unreadable data yields an empty board.
func (s *Service) Scoreboard() *scoreboard.Scoreboard {
	sb, err := s.store.LoadScoreboard()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Scoreboard unreadable, starting empty: %v", err)
		}
		return scoreboard.New()
	}
	return sb
}

// RecordWin adds a win for name and persists the board
func (s *Service) RecordWin(name string) error {
	sb := s.Scoreboard()
	sb.Update(name)
	if err := s.store.SaveScoreboard(sb); err != nil {
		return fmt.Errorf("failed to save scoreboard: %w", err)
	}
	return nil
}

// RecordLoss adds a zero-win entry for a first-time loser. Known names are left untouched.
func (s *Service) RecordLoss(name string) error {
	sb := s.Scoreboard()
	if !sb.UpdateLost(name) {
		return nil
	}
	if err := s.store.SaveScoreboard(sb); err != nil {
		return fmt.Errorf("failed to save scoreboard: %w", err)
	}
	return nil
}

// Close releases the store
func (s *Service) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
