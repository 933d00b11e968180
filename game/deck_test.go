package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testDeck(t *testing.T, seed uint64) []Card {
	t.Helper()
	deck, err := NewDeck(rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return deck
}

func TestNewDeck(t *testing.T) {
	deck := testDeck(t, 1)

	t.Run("has exactly 48 cards, two copies of each pair", func(t *testing.T) {
		require.Len(t, deck, DeckSize)

		copies := map[Card]int{}
		for _, c := range deck {
			copies[c]++
		}
		require.Len(t, copies, 24, "Should hold 24 distinct (suit, rank) pairs")
		for card, n := range copies {
			require.Equal(t, 2, n, "copies of %s", card)
		}
	})

	t.Run("totals 240 points", func(t *testing.T) {
		total := 0
		for _, c := range deck {
			total += c.Points
		}
		require.Equal(t, 240, total)
	})

	t.Run("trump flag matches the strength floor", func(t *testing.T) {
		for _, c := range deck {
			require.Equal(t, c.TrumpStrength >= TrumpFloor, c.Trump,
				"%s has strength %d", c, c.TrumpStrength)
		}
	})

	t.Run("is reproducible under a fixed seed", func(t *testing.T) {
		require.Equal(t, testDeck(t, 7), testDeck(t, 7))
	})
}

func TestDeal(t *testing.T) {
	deck := testDeck(t, 2)
	seats := make([]*Seat, NumSeats)
	for i := range seats {
		seats[i] = &Seat{}
	}

	Deal(deck, seats)

	t.Run("gives every seat 12 cards", func(t *testing.T) {
		for i, seat := range seats {
			require.Len(t, seat.Hand, HandSize, "hand of seat %d", i)
		}
	})

	t.Run("distributes the deck exactly once", func(t *testing.T) {
		dealt := map[Card]int{}
		for _, seat := range seats {
			for _, c := range seat.Hand {
				dealt[c]++
			}
		}
		want := map[Card]int{}
		for _, c := range deck {
			want[c]++
		}
		require.Equal(t, want, dealt, "Union of hands should equal the deck")
	})

	t.Run("deals round-robin in deck order", func(t *testing.T) {
		for i, c := range deck {
			require.Equal(t, c, seats[i%NumSeats].Hand[i/NumSeats])
		}
	})
}
