package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLegalPlays(t *testing.T) {
	hand := []Card{
		NewCard(Hearts, Nine),
		NewCard(Spades, Ace),
		NewCard(Diamonds, King), // trump
		NewCard(Hearts, Ten),
		NewCard(Clubs, Jack), // trump
	}

	t.Run("leading seat may play anything", func(t *testing.T) {
		require.Equal(t, hand, LegalPlays(hand, nil, false))
	})

	t.Run("non-trump lead must be followed with non-trump of the suit", func(t *testing.T) {
		led := Hearts
		require.Equal(t,
			[]Card{NewCard(Hearts, Nine), NewCard(Hearts, Ten)},
			LegalPlays(hand, &led, false))
	})

	t.Run("trump lead must be followed with any trump", func(t *testing.T) {
		led := Diamonds
		require.Equal(t,
			[]Card{NewCard(Diamonds, King), NewCard(Clubs, Jack)},
			LegalPlays(hand, &led, true))
	})

	t.Run("void in the led suit frees the whole hand", func(t *testing.T) {
		led := Clubs
		// The Jack of Clubs is trump, not a club follower.
		require.Equal(t, hand, LegalPlays(hand, &led, false))
	})

	t.Run("never empty and always drawn from the hand", func(t *testing.T) {
		deck := testDeck(t, 11)
		rng := rand.New(rand.NewSource(11))
		for trial := 0; trial < 50; trial++ {
			sub := deck[:1+rng.Intn(HandSize)]
			led := suits[rng.Intn(len(suits))]
			legal := LegalPlays(sub, &led, rng.Intn(2) == 0)
			require.NotEmpty(t, legal)
			for _, c := range legal {
				require.Contains(t, sub, c)
			}
		}
	})
}
