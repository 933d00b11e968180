package engine

import (
	"testing"

	"doppelkopf/game"
	"doppelkopf/strategy"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func greedyEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	strategies := []game.Strategy{
		strategy.NewGreedy(),
		strategy.NewGreedy(),
		strategy.NewRuleBased(),
		strategy.NewGreedy(),
	}
	e, err := LocalEngine(rand.New(rand.NewSource(seed)), strategies)
	require.NoError(t, err)
	return e
}

func TestPlayTrick(t *testing.T) {
	e := greedyEngine(t, 1)

	result, err := e.PlayTrick()
	require.NoError(t, err)

	t.Run("collects one play from every seat in rotation order", func(t *testing.T) {
		require.Len(t, result.Trick.Plays, game.NumSeats)
		require.Equal(t, 0, result.Trick.Plays[0].Seat, "Seat 0 leads the first trick")
		for i, play := range result.Trick.Plays {
			require.Equal(t, i, play.Seat)
		}
	})

	t.Run("removes exactly the played card from each hand", func(t *testing.T) {
		for i, seat := range e.State.Seats {
			require.Len(t, seat.Hand, game.HandSize-1, "hand of seat %d", i)
		}
	})

	t.Run("files the trick under the winner and rotates the lead", func(t *testing.T) {
		require.Equal(t, result.Winner, e.State.LeadSeat)
		require.Len(t, e.State.Seats[result.Winner].TricksWon, 1)
		require.Equal(t, 1, e.State.Played)
	})
}

func TestRunFullGame(t *testing.T) {
	e := greedyEngine(t, 2)

	rePoints, contraPoints, err := e.Run()
	require.NoError(t, err)

	t.Run("plays out all 12 tricks", func(t *testing.T) {
		require.True(t, e.State.Done())
		total := 0
		for _, summary := range e.SeatSummaries() {
			total += summary.TricksWon
		}
		require.Equal(t, game.TricksPerGame, total)
		for _, seat := range e.State.Seats {
			require.Empty(t, seat.Hand)
		}
	})

	t.Run("accounts for every point in the deck", func(t *testing.T) {
		require.Equal(t, 240, rePoints+contraPoints)
		re, contra := e.CurrentScore()
		require.Equal(t, rePoints, re)
		require.Equal(t, contraPoints, contra)
	})

	t.Run("reports a team for every seat", func(t *testing.T) {
		for _, summary := range e.SeatSummaries() {
			require.Contains(t, []game.Team{game.Re, game.Contra}, summary.Team, summary.Name)
		}
	})
}

func TestRunIsReproducible(t *testing.T) {
	re1, contra1, err := greedyEngine(t, 3).Run()
	require.NoError(t, err)
	re2, contra2, err := greedyEngine(t, 3).Run()
	require.NoError(t, err)

	require.Equal(t, re1, re2)
	require.Equal(t, contra1, contra2)
}

// rogueStrategy returns a card that cannot exist in any dealt hand.
type rogueStrategy struct{}

func (rogueStrategy) ChooseCard([]game.Card, game.TrickContext) game.Card {
	return game.Card{Suit: game.Clubs, Rank: game.Nine, Points: 99}
}

func TestPlayTrickRejectsCardNotInHand(t *testing.T) {
	strategies := []game.Strategy{
		rogueStrategy{},
		strategy.NewGreedy(),
		strategy.NewGreedy(),
		strategy.NewGreedy(),
	}
	e, err := LocalEngine(rand.New(rand.NewSource(4)), strategies)
	require.NoError(t, err)

	_, err = e.PlayTrick()
	require.ErrorIs(t, err, game.ErrCardNotInHand)
}
