package scoreboard

import (
	"slices"
)

// PlayerScore is one scoreboard row
type PlayerScore struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// Scoreboard is the ordered win tally across sessions
type Scoreboard struct {
	Players []PlayerScore `json:"players"`
}

// New returns an empty scoreboard
func New() *Scoreboard {
	return &Scoreboard{Players: []PlayerScore{}}
}

// Find returns the entry for name, or nil
func (s *Scoreboard) Find(name string) *PlayerScore {
	for i := range s.Players {
		if s.Players[i].Name == name {
			return &s.Players[i]
		}
	}
	return nil
}

// Update records a win for name, creating the entry when absent
func (s *Scoreboard) Update(name string) {
	if p := s.Find(name); p != nil {
		p.Wins++
	} else {
		s.Players = append(s.Players, PlayerScore{Name: name, Wins: 1})
	}
	s.sort()
}

// UpdateLost adds a zero-win entry for a first-time loser.
// Returns false when name already has an entry, in which case nothing changes.
func (s *Scoreboard) UpdateLost(name string) bool {
	if s.Find(name) != nil {
		return false
	}
	s.Players = append(s.Players, PlayerScore{Name: name, Wins: 0})
	s.sort()
	return true
}

// sort orders by wins descending, ties keep their relative order
func (s *Scoreboard) sort() {
	slices.SortStableFunc(s.Players, func(a, b PlayerScore) int {
		return b.Wins - a.Wins
	})
}
