package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	// DeckSize is the fixed deck size: two copies of 6 ranks in 4 suits.
	DeckSize = 48
	// NumSeats is the fixed number of seats.
	NumSeats = 4
	// TricksPerGame is DeckSize / NumSeats.
	TricksPerGame = 12
	// HandSize is the cards dealt to each seat.
	HandSize = DeckSize / NumSeats
)

var (
	suits = []Suit{Clubs, Spades, Hearts, Diamonds}
	ranks = []Rank{Nine, King, Ten, Ace, Jack, Queen}
)

// NewDeck builds the 48-card deck and shuffles it with the injected source.
// The pre-shuffle order is irrelevant; passing an explicit source keeps
// games reproducible under a fixed seed.
func NewDeck(rng *rand.Rand) ([]Card, error) {
	deck := make([]Card, 0, DeckSize)
	for copies := 0; copies < 2; copies++ {
		for _, s := range suits {
			for _, r := range ranks {
				deck = append(deck, NewCard(s, r))
			}
		}
	}
	if len(deck) != DeckSize {
		return nil, fmt.Errorf("%w: built %d", ErrInvalidDeckSize, len(deck))
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck, nil
}

// Deal distributes the deck round-robin: card i goes to seat i mod 4,
// leaving every seat with 12 cards in deck order.
func Deal(deck []Card, seats []*Seat) {
	for i, c := range deck {
		seat := seats[i%len(seats)]
		seat.Hand = append(seat.Hand, c)
	}
}
