package game

import "fmt"

// Play is one card played by one seat within a trick.
type Play struct {
	Seat int
	Card Card
}

// Trick is the ordered sequence of plays of one round. It is owned by the
// game while in progress and filed under the winning seat once resolved.
type Trick struct {
	Plays []Play
}

// Winner resolves a complete trick to the winning seat.
//
// The first card sets the provisional winner and the led suit. Each later
// card is then checked twice, in order: first as the best non-trump follower
// of the led suit, then as a trump overtake. The overtake is gated on the
// card's nominal suit being the led suit or Diamonds, so a Jack or Queen of
// a foreign suit never overtakes here and can lose to a lower eligible
// trump. Both checks compare against whatever the provisional winner is at
// that point in the scan.
func (t Trick) Winner() (int, error) {
	if len(t.Plays) != NumSeats {
		return -1, fmt.Errorf("%w: got %d", ErrTrickLength, len(t.Plays))
	}

	win := t.Plays[0]
	led := win.Card.Suit
	for _, p := range t.Plays[1:] {
		c := p.Card
		if c.TrumpStrength < TrumpFloor && c.Suit == led && win.Card.TrumpStrength < c.TrumpStrength {
			win = p
		}
		if win.Card.TrumpStrength < c.TrumpStrength && (c.Suit == led || c.Suit == Diamonds) {
			win = p
		}
	}
	return win.Seat, nil
}

// Points sums the card points captured in the trick.
func (t Trick) Points() int {
	total := 0
	for _, p := range t.Plays {
		total += p.Card.Points
	}
	return total
}
