package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// GameState holds the dynamic state of one game: the four seats, the lead
// seat for the next trick and how many tricks have been resolved. The deck
// is fully consumed by dealing, so it is not retained here.
type GameState struct {
	Seats    []*Seat
	LeadSeat int
	Played   int
}

// NewGameState builds a shuffled deck from the injected source, deals it and
// assigns teams. Strategies are attached separately; trial games in the
// Monte-Carlo policy never need them.
func NewGameState(rng *rand.Rand) (*GameState, error) {
	deck, err := NewDeck(rng)
	if err != nil {
		return nil, err
	}

	seats := make([]*Seat, NumSeats)
	for i := range seats {
		seats[i] = &Seat{Name: fmt.Sprintf("Player %d", i+1)}
	}
	Deal(deck, seats)
	AssignTeams(seats)

	return &GameState{Seats: seats}, nil
}

// Score returns the running team totals.
func (gs *GameState) Score() (rePoints, contraPoints int) {
	return Score(gs.Seats)
}

// Done reports whether all 12 tricks have been resolved.
func (gs *GameState) Done() bool {
	return gs.Played >= TricksPerGame
}
