package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"hangman/internal/core"
	"hangman/internal/game"
	"hangman/internal/scoreboard"
)

// store is the contract shared by both backends
type store interface {
	LoadGame() (*game.State, error)
	SaveGame(*game.State) error
	LoadScoreboard() (*scoreboard.Scoreboard, error)
	SaveScoreboard(*scoreboard.Scoreboard) error
	Close() error
}

func newFileStore(t *testing.T) store {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(filepath.Join(dir, "savegame.json"), filepath.Join(dir, "scoreboard.json"))
}

func newSQLiteStore(t *testing.T) store {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "hangman.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := s.InitDB(); err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var backends = []struct {
	name string
	open func(t *testing.T) store
}{
	{"file", newFileStore},
	{"sqlite", newSQLiteStore},
}

func sampleGame(t *testing.T) *game.State {
	t.Helper()
	g, err := game.New("8f14e45f-ceea-467a-9af0-4a4b2f3c1e22", game.Setup{
		Multiplayer: true,
		Player1:     "ana",
		Player2:     "bob",
		Setter:      true,
		Word:        "hangman",
		Lives:       core.DefaultLives,
	})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	for _, c := range []string{"h", "x", "n"} {
		if _, err := g.Guess(c); err != nil {
			t.Fatalf("guess %s: %v", c, err)
		}
	}
	return g
}

func TestGameRoundTrip(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			want := sampleGame(t)

			if err := s.SaveGame(want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := s.LoadGame()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestSaveGameOverwrites(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			g := sampleGame(t)
			if err := s.SaveGame(g); err != nil {
				t.Fatalf("save: %v", err)
			}
			if _, err := g.Guess("a"); err != nil {
				t.Fatalf("guess: %v", err)
			}
			if err := s.SaveGame(g); err != nil {
				t.Fatalf("second save: %v", err)
			}

			got, err := s.LoadGame()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got.Placeholder != g.Placeholder {
				t.Fatalf("expected latest placeholder %q, got %q", g.Placeholder, got.Placeholder)
			}
			if !got.GuessedLetters.Has('a') {
				t.Fatal("expected latest save to be loaded")
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			if _, err := s.LoadGame(); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound for game, got %v", err)
			}
			if _, err := s.LoadScoreboard(); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound for scoreboard, got %v", err)
			}
		})
	}
}

func TestScoreboardRoundTrip(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			sb := scoreboard.New()
			sb.Update("ana")
			sb.Update("ana")
			sb.Update("bob")
			sb.UpdateLost("cid")

			if err := s.SaveScoreboard(sb); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := s.LoadScoreboard()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(got.Players, sb.Players) {
				t.Fatalf("expected %+v, got %+v", sb.Players, got.Players)
			}

			// Shrinking the board must not leave stale rows behind
			smaller := scoreboard.New()
			smaller.Update("dan")
			if err := s.SaveScoreboard(smaller); err != nil {
				t.Fatalf("save smaller: %v", err)
			}
			got, err = s.LoadScoreboard()
			if err != nil {
				t.Fatalf("load smaller: %v", err)
			}
			if !reflect.DeepEqual(got.Players, smaller.Players) {
				t.Fatalf("expected %+v, got %+v", smaller.Players, got.Players)
			}
		})
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "savegame.json")
	scorePath := filepath.Join(dir, "scoreboard.json")
	s := NewFileStore(savePath, scorePath)

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{not json"},
		{"wrong types", `{"player1": 7}`},
		{"invariant violation", `{"player1":"ana","player2":null,"turn":1,"chosen_word":"word",
			"placeholder":"__","correct_letters":[],"guessed_letters":[],"lives":6,"is_player1_choosing":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(savePath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := s.LoadGame(); !errors.Is(err, ErrCorrupt) {
				t.Fatalf("expected ErrCorrupt, got %v", err)
			}
		})
	}

	if err := os.WriteFile(scorePath, []byte("[1,2"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.LoadScoreboard(); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt for scoreboard, got %v", err)
	}
}

func TestFileStoreReadsSaveWithoutGameID(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "savegame.json")
	content := `{"player1":"ana","player2":"bob","turn":2,"chosen_word":"word",
		"placeholder":"w___","correct_letters":["w"],"guessed_letters":["w","z"],
		"lives":5,"is_player1_choosing":false}`
	if err := os.WriteFile(savePath, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	g, err := NewFileStore(savePath, filepath.Join(dir, "scoreboard.json")).LoadGame()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.GameID != "" || g.Turn != core.TurnPlayer2 || g.Lives != 5 || g.CurrentGuesser() != "bob" {
		t.Fatalf("unexpected state %+v", g)
	}
}

func TestFileStoreWriteFailure(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "no-such-dir")
	s := NewFileStore(filepath.Join(missing, "savegame.json"), filepath.Join(missing, "scoreboard.json"))

	if err := s.SaveGame(sampleGame(t)); err == nil {
		t.Fatal("expected write error")
	}
	if err := s.SaveScoreboard(scoreboard.New()); err == nil {
		t.Fatal("expected write error")
	}
}

func TestSQLiteQuerySave(t *testing.T) {
	s := newSQLiteStore(t).(*SQLiteStore)
	if _, err := s.QuerySave(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	g := sampleGame(t)
	if err := s.SaveGame(g); err != nil {
		t.Fatalf("save: %v", err)
	}
	rec, err := s.QuerySave()
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if rec.GameID != g.GameID || rec.State == "" || rec.SavedAt.IsZero() {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestSQLiteDeleteDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.InitDB(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := s.DeleteDB(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected database file to be removed, stat err %v", err)
	}
}
