package game

import (
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf8"
)

// LetterSet is a set of guessed runes, encoded as a sorted array of one-character strings
type LetterSet map[rune]struct{}

func (s LetterSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

func (s LetterSet) Add(r rune) {
	s[r] = struct{}{}
}

// Sorted returns the members in ascending order
func (s LetterSet) Sorted() []rune {
	out := make([]rune, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func (s LetterSet) MarshalJSON() ([]byte, error) {
	letters := make([]string, 0, len(s))
	for _, r := range s.Sorted() {
		letters = append(letters, string(r))
	}
	return json.Marshal(letters)
}

func (s *LetterSet) UnmarshalJSON(data []byte) error {
	var letters []string
	if err := json.Unmarshal(data, &letters); err != nil {
		return err
	}
	set := make(LetterSet, len(letters))
	for _, l := range letters {
		if utf8.RuneCountInString(l) != 1 {
			return fmt.Errorf("letter set entry %q is not a single character", l)
		}
		r, _ := utf8.DecodeRuneInString(l)
		set.Add(r)
	}
	*s = set
	return nil
}
