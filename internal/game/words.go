package game

import (
	"errors"
	"math/rand"
)

// DefaultWords is the built-in single-player word list
var DefaultWords = []string{"programming", "hangman", "computer", "keyboard", "terminal"}

var ErrNoWords = errors.New("word list is empty")

// PickWord selects a word uniformly at random. intn defaults to math/rand when nil.
func PickWord(words []string, intn func(int) int) (string, error) {
	if len(words) == 0 {
		return "", ErrNoWords
	}
	if intn == nil {
		intn = rand.Intn
	}
	return words[intn(len(words))], nil
}
