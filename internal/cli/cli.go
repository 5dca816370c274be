package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"hangman/internal/game"
	"hangman/internal/scoreboard"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrAborted is returned when the player closes input (EOF or Ctrl-C)
var ErrAborted = errors.New("input aborted")

// LineReader is the prompt-driven line source, satisfied by *readline.Instance
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// SecretReader reads a line without echoing it
type SecretReader func(prompt string) (string, error)

type CLI struct {
	input  LineReader
	secret SecretReader
	output io.Writer
	color  bool
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
	}
}

// NewScanner builds a CLI over a plain reader, for piped input and tests
func NewScanner(input io.Reader, output io.Writer) *CLI {
	return New(&scannerReader{scanner: bufio.NewScanner(input), output: output}, output)
}

type scannerReader struct {
	scanner *bufio.Scanner
	output  io.Writer
	prompt  string
}

func (s *scannerReader) SetPrompt(prompt string) {
	s.prompt = prompt
}

func (s *scannerReader) Readline() (string, error) {
	fmt.Fprint(s.output, s.prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// TerminalSecret reads from a terminal with echo disabled
func TerminalSecret(in *os.File, out io.Writer) SecretReader {
	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		pw, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read hidden input: %w", err)
		}
		return string(pw), nil
	}
}

func (c *CLI) SetSecretReader(fn SecretReader) {
	c.secret = fn
}

func (c *CLI) SetColor(on bool) {
	c.color = on
}

// ReadLine prompts and returns the trimmed answer
func (c *CLI) ReadLine(prompt string) (string, error) {
	c.input.SetPrompt(c.paint(Yellow, prompt))
	line, err := c.input.Readline()
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadSecret prompts for input that must not be echoed. Falls back to ReadLine without a terminal.
func (c *CLI) ReadSecret(prompt string) (string, error) {
	if c.secret == nil {
		return c.ReadLine(prompt)
	}
	line, err := c.secret(c.paint(Yellow, prompt))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question, anything but y/yes is no
func (c *CLI) Confirm(prompt string) (bool, error) {
	answer, err := c.ReadLine(prompt + " (y/n): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowWarning(msg string) {
	c.ShowMessage(c.paint(Yellow, msg))
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(c.paint(Red, fmt.Sprintf("Error: %v", err)))
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage(c.paint(Bold+Cyan, "Welcome to Hangman!"))
	c.ShowMessage("")
}

func (c *CLI) ShowMenu() {
	c.ShowMessage("1. New game")
	c.ShowMessage("2. Load game")
	c.ShowMessage("3. Scoreboard")
}

func (c *CLI) ShowHelp() {
	c.ShowMessage(fmt.Sprintf("Guess one letter per turn. Type %s to save and quit.", c.paint(Cyan, ":save")))
}

// ShowBoard prints the placeholder, remaining lives and wrong guesses
func (c *CLI) ShowBoard(g *game.State) {
	var sb strings.Builder
	sb.WriteString("\nWord: ")
	for i, r := range g.Placeholder {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	sb.WriteString(fmt.Sprintf("\nLives: %s", c.paint(Magenta, fmt.Sprint(g.Lives))))
	if wrong := g.IncorrectLetters(); len(wrong) > 0 {
		letters := make([]string, len(wrong))
		for i, r := range wrong {
			letters[i] = string(r)
		}
		sb.WriteString(fmt.Sprintf("\nMissed: %s", c.paint(Red, strings.Join(letters, " "))))
	}
	c.ShowMessage(sb.String())
}

func (c *CLI) ShowCorrect(letter rune) {
	c.ShowMessage(c.paint(Green, fmt.Sprintf("Good guess! '%c' is in the word.", letter)))
}

func (c *CLI) ShowIncorrect(letter rune, lives int) {
	c.ShowMessage(c.paint(Red, fmt.Sprintf("Wrong guess! '%c' is not in the word.", letter)))
	c.ShowMessage(Stage(lives))
}

func (c *CLI) ShowRepeated(letter rune) {
	c.ShowWarning(fmt.Sprintf("You already guessed '%c'. Try another letter.", letter))
}

func (c *CLI) ShowWin(name, word string) {
	c.ShowMessage(c.paint(Green, fmt.Sprintf("\nCongratulations %s, you guessed the word: %s", name, word)))
}

func (c *CLI) ShowLoss(name, word string) {
	c.ShowMessage(c.paint(Red, fmt.Sprintf("\nGame over, %s! The word was: %s", name, word)))
}

func (c *CLI) ShowSaved() {
	c.ShowMessage(c.paint(Cyan, "Game saved. Choose 'Load game' to continue later."))
}

// ShowScoreboard prints entries in stored order
func (c *CLI) ShowScoreboard(sb *scoreboard.Scoreboard) {
	c.ShowMessage(fmt.Sprintf("\n---- %s ----", c.paint(Bold+Green, "Scoreboard")))
	if len(sb.Players) == 0 {
		c.ShowMessage("No games recorded yet.")
		return
	}
	for _, p := range sb.Players {
		c.ShowMessage(fmt.Sprintf("%s: %s wins", c.paint(Green, p.Name), c.paint(Yellow, fmt.Sprint(p.Wins))))
	}
}
