// Package main runs the terminal hangman game and its database admin commands.
package main

import (
	"fmt"
	"log"
	"os"

	"hangman/cmd/hangman/cli"
	view "hangman/internal/cli"
	"hangman/internal/config"
	"hangman/internal/service"
	"hangman/internal/storage"
	clitransport "hangman/internal/transport/cli"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hangman: ")

	// Check for CLI database commands
	if len(os.Args) > 1 && os.Args[1] == "db" {
		if err := cli.Run(os.Args[2:]); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		os.Exit(0)
	}

	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Lock {
		release, err := acquireLock(cfg.DataPath() + ".lock")
		if err != nil {
			return err
		}
		defer release()
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	svc := service.New(store, cfg.Words, cfg.Lives)
	defer func() {
		if err := svc.Close(); err != nil {
			log.Printf("Warning: failed to close storage cleanly: %v", err)
		}
	}()

	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer rl.Close()

	v := view.New(rl, rl.Stdout())
	v.SetColor(view.ColorEnabled(cfg.Color, os.Stdout))
	if isatty.IsTerminal(os.Stdin.Fd()) {
		v.SetSecretReader(view.TerminalSecret(os.Stdin, rl.Stdout()))
	}

	return clitransport.New(svc, v).Run()
}

func openStore(cfg *config.Config) (service.Store, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		store, err := storage.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		if err := store.InitDB(); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		return store, nil
	default:
		return storage.NewFileStore(cfg.SaveFile, cfg.ScoreboardFile), nil
	}
}
