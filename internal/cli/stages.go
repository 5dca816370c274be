package cli

import "hangman/internal/core"

// stages holds the gallows art indexed by the number of lives lost
var stages = [core.DefaultLives + 1]string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// Stage returns the art for the given remaining lives
func Stage(lives int) string {
	lost := core.DefaultLives - lives
	if lost < 0 {
		lost = 0
	}
	if lost >= len(stages) {
		lost = len(stages) - 1
	}
	return stages[lost]
}
