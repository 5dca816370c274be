package storage

import "time"

// SaveRecord represents the single row of the save_slot table
type SaveRecord struct {
	GameID  string    `db:"game_id"`
	State   string    `db:"state"` // JSON encoded game.State
	SavedAt time.Time `db:"saved_at"`
}

// ScoreRecord represents a row in the scores table
type ScoreRecord struct {
	Name     string `db:"name"`
	Wins     int    `db:"wins"`
	Position int    `db:"position"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS save_slot (
	slot INTEGER PRIMARY KEY CHECK(slot = 1),
	game_id TEXT NOT NULL,
	state TEXT NOT NULL,
	saved_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS scores (
	name TEXT PRIMARY KEY,
	wins INTEGER NOT NULL DEFAULT 0 CHECK(wins >= 0),
	position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scores_position ON scores(position);
`
