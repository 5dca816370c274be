package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"hangman/internal/game"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds the environment-driven settings. Defaults reproduce the fixed game rules.
type Config struct {
	Storage        string   `env:"HANGMAN_STORAGE" envDefault:"file" validate:"oneof=file sqlite"`
	SaveFile       string   `env:"HANGMAN_SAVE_FILE" envDefault:"savegame.json" validate:"required"`
	ScoreboardFile string   `env:"HANGMAN_SCOREBOARD_FILE" envDefault:"scoreboard.json" validate:"required"`
	DBPath         string   `env:"HANGMAN_DB_PATH" envDefault:"hangman.db" validate:"required"`
	Lives          int      `env:"HANGMAN_LIVES" envDefault:"6" validate:"min=1,max=6"`
	Words          []string `env:"HANGMAN_WORDS" envSeparator:"," validate:"min=1,dive,required,alpha"`
	Color          string   `env:"HANGMAN_COLOR" envDefault:"auto" validate:"oneof=auto on off"`
	Lock           bool     `env:"HANGMAN_LOCK" envDefault:"true"`
}

var validate = validator.New()

// DataPath is the file the session lock is placed next to
func (c *Config) DataPath() string {
	if c.Storage == StorageSQLite {
		return c.DBPath
	}
	return c.SaveFile
}

// Load reads optional dotenv files (".env" when none are named), then the environment
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	words := make([]string, 0, len(cfg.Words))
	for _, w := range cfg.Words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		words = append(words, game.DefaultWords...)
	}
	cfg.Words = words

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
