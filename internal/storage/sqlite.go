package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"hangman/internal/game"
	"hangman/internal/scoreboard"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the saved game and the scoreboard in a SQLite database
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens the database at dataSourceName. Call InitDB before first use.
func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 2000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// One game process, one writer
	db.SetMaxOpenConns(1)

	return &SQLiteStore{
		db:   db,
		path: dataSourceName,
	}, nil
}

// withTx runs fn inside a transaction, rolling back on error
func (s *SQLiteStore) withTx(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// InitDB creates the database schema
func (s *SQLiteStore) InitDB() error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(Schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return nil
	})
}

// DeleteDB removes the database file
func (s *SQLiteStore) DeleteDB() error {
	if err := s.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	// ☣ DESTRUCTIVE: Removes database file
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete database file: %w", err)
	}
	return nil
}

// LoadGame decodes the saved game slot. Returns ErrNotFound when the slot is empty.
func (s *SQLiteStore) LoadGame() (*game.State, error) {
	rec, err := s.QuerySave()
	if err != nil {
		return nil, err
	}
	st, err := decodeGame([]byte(rec.State))
	if err != nil {
		return nil, fmt.Errorf("failed to load saved game %s: %w", rec.GameID, err)
	}
	return st, nil
}

// SaveGame overwrites the saved game slot
func (s *SQLiteStore) SaveGame(st *game.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to serialize game: %w", err)
	}

	return s.withTx(func(tx *sql.Tx) error {
		query := `INSERT INTO save_slot (slot, game_id, state, saved_at) VALUES (1, ?, ?, ?)
			ON CONFLICT(slot) DO UPDATE SET
				game_id = excluded.game_id,
				state = excluded.state,
				saved_at = excluded.saved_at`

		if _, err := tx.Exec(query, st.GameID, string(data), time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}
		return nil
	})
}

// QuerySave returns the raw saved game slot
func (s *SQLiteStore) QuerySave() (*SaveRecord, error) {
	var rec SaveRecord
	query := `SELECT game_id, state, saved_at FROM save_slot WHERE slot = 1`

	err := s.db.QueryRow(query).Scan(&rec.GameID, &rec.State, &rec.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &rec, nil
}

// LoadScoreboard returns the scores in stored order. Returns ErrNotFound when there are none.
func (s *SQLiteStore) LoadScoreboard() (*scoreboard.Scoreboard, error) {
	records, err := s.QueryScores()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}

	sb := scoreboard.New()
	for _, r := range records {
		sb.Players = append(sb.Players, scoreboard.PlayerScore{Name: r.Name, Wins: r.Wins})
	}
	return sb, nil
}

// SaveScoreboard replaces every stored score with sb
func (s *SQLiteStore) SaveScoreboard(sb *scoreboard.Scoreboard) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM scores`); err != nil {
			return fmt.Errorf("failed to clear scores: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO scores (name, wins, position) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, p := range sb.Players {
			if _, err := stmt.Exec(p.Name, p.Wins, i); err != nil {
				return fmt.Errorf("failed to save score for %s: %w", p.Name, err)
			}
		}
		return nil
	})
}

// QueryScores retrieves all score rows ordered by position
func (s *SQLiteStore) QueryScores() ([]ScoreRecord, error) {
	rows, err := s.db.Query(`SELECT name, wins, position FROM scores ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var scores []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		if err := rows.Scan(&r.Name, &r.Wins, &r.Position); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		scores = append(scores, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return scores, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
