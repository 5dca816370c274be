package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"hangman/internal/storage"
)

// Run is the entry point for the CLI mini-app
func Run(args []string) error {
	return run(args, os.Stdout)
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand required: init, delete, scores, save, or import")
	}

	switch args[0] {
	case "init":
		return runInit(args[1:], w)
	case "delete":
		return runDelete(args[1:], w)
	case "scores":
		return runScores(args[1:], w)
	case "save":
		return runSave(args[1:], w)
	case "import":
		return runImport(args[1:], w)
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

// openStore parses the shared -path flag and opens the database
func openStore(fs *flag.FlagSet, args []string) (*storage.SQLiteStore, error) {
	path := fs.String("path", "", "Database file path (required)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *path == "" {
		return nil, fmt.Errorf("database path required")
	}

	store, err := storage.NewSQLiteStore(*path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}

func runInit(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	store, err := openStore(fs, args)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Fprintf(w, "Database initialized at: %s\n", fs.Lookup("path").Value)
	return nil
}

func runDelete(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	store, err := openStore(fs, args)
	if err != nil {
		return err
	}

	if err := store.DeleteDB(); err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}

	fmt.Fprintf(w, "Database deleted: %s\n", fs.Lookup("path").Value)
	return nil
}

func runScores(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("scores", flag.ContinueOnError)
	store, err := openStore(fs, args)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.QueryScores()
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPlayer\tWins")
	fmt.Fprintln(tw, strings.Repeat("-", 40))
	for _, s := range scores {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", s.Position+1, s.Name, s.Wins)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nFound %d player(s)\n", len(scores))
	return nil
}

func runSave(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	store, err := openStore(fs, args)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.QuerySave()
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintln(w, "No saved game")
		return nil
	}
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	st, err := store.LoadGame()
	if err != nil {
		return err
	}

	players := st.Player1
	if st.Player2 != nil {
		players = fmt.Sprintf("%s vs %s", st.Player1, *st.Player2)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Game ID\tPlayers\tMode\tProgress\tLives\tSaved At")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
		shortID(rec.GameID),
		players,
		st.Mode(),
		st.Placeholder,
		st.Lives,
		rec.SavedAt.Format("2006-01-02 15:04:05"),
	)
	tw.Flush()
	return nil
}

// runImport copies the JSON save file and scoreboard into the database
func runImport(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	saveFile := fs.String("save", "savegame.json", "Save file to import")
	scoreFile := fs.String("scoreboard", "scoreboard.json", "Scoreboard file to import")
	store, err := openStore(fs, args)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	src := storage.NewFileStore(*saveFile, *scoreFile)

	var imported []string
	st, err := src.LoadGame()
	switch {
	case err == nil:
		if err := store.SaveGame(st); err != nil {
			return err
		}
		imported = append(imported, "saved game")
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to read %s: %w", *saveFile, err)
	}

	sb, err := src.LoadScoreboard()
	switch {
	case err == nil:
		if err := store.SaveScoreboard(sb); err != nil {
			return err
		}
		imported = append(imported, fmt.Sprintf("%d score(s)", len(sb.Players)))
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to read %s: %w", *scoreFile, err)
	}

	if len(imported) == 0 {
		fmt.Fprintln(w, "Nothing to import")
		return nil
	}
	fmt.Fprintf(w, "Imported %s\n", strings.Join(imported, " and "))
	return nil
}

func shortID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}
