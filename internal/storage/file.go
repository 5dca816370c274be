package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"hangman/internal/game"
	"hangman/internal/scoreboard"
)

// FileStore keeps the saved game and the scoreboard as JSON files, overwritten on every write
type FileStore struct {
	savePath       string
	scoreboardPath string
}

func NewFileStore(savePath, scoreboardPath string) *FileStore {
	return &FileStore{
		savePath:       savePath,
		scoreboardPath: scoreboardPath,
	}
}

// LoadGame reads the save file. Returns ErrNotFound when there is none.
func (f *FileStore) LoadGame() (*game.State, error) {
	data, err := readFile(f.savePath)
	if err != nil {
		return nil, err
	}
	st, err := decodeGame(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", f.savePath, err)
	}
	return st, nil
}

func (f *FileStore) SaveGame(st *game.State) error {
	return writeJSON(f.savePath, st)
}

func (f *FileStore) LoadScoreboard() (*scoreboard.Scoreboard, error) {
	data, err := readFile(f.scoreboardPath)
	if err != nil {
		return nil, err
	}
	sb, err := decodeScoreboard(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", f.scoreboardPath, err)
	}
	return sb, nil
}

func (f *FileStore) SaveScoreboard(sb *scoreboard.Scoreboard) error {
	return writeJSON(f.scoreboardPath, sb)
}

func (f *FileStore) Close() error {
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
