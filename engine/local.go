package engine

import (
	"fmt"

	"doppelkopf/game"
	"doppelkopf/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Engine drives one game locally: it invokes each seat's strategy in
// rotation order, owns the single hand-to-trick ownership transfer and
// resolves tricks.
type Engine struct {
	State *game.GameState
}

// TrickResult reports one resolved trick.
type TrickResult struct {
	Winner int
	Trick  game.Trick
}

// SeatSummary is the per-seat view for a presentation layer.
type SeatSummary struct {
	Name      string
	Team      game.Team
	TricksWon int
}

// LocalEngine builds a fresh game (deck, deal, teams) from the injected
// source and seats the strategies in order.
func LocalEngine(rng *rand.Rand, strategies []game.Strategy) (*Engine, error) {
	if len(strategies) != game.NumSeats {
		panic("number of strategies does not match number of seats")
	}

	state, err := game.NewGameState(rng)
	if err != nil {
		return nil, err
	}
	for i, seat := range state.Seats {
		seat.Strategy = strategies[i]
	}

	for _, seat := range state.Seats {
		log.Debug().
			Str("seat", seat.Name).
			Stringer("team", seat.Team).
			Msgf("dealt hand: %v", seat.Hand)
	}

	return &Engine{State: state}, nil
}

// PlayTrick advances the game by exactly one trick, starting at the current
// lead seat, then rotates the lead to the winner.
func (e *Engine) PlayTrick() (TrickResult, error) {
	gs := e.State
	var trick game.Trick
	var ledSuit *game.Suit
	ledTrump := false

	for i := 0; i < game.NumSeats; i++ {
		seatIndex := (gs.LeadSeat + i) % game.NumSeats
		seat := gs.Seats[seatIndex]

		card := seat.Strategy.ChooseCard(seat.Hand, game.TrickContext{
			Seat:     seatIndex,
			LedSuit:  ledSuit,
			LedTrump: ledTrump,
			Plays:    trick.Plays,
			Team:     seat.Team,
		})

		// Single ownership transfer point: the strategy only picks, the
		// engine removes.
		at := utils.FindIndex(seat.Hand, card)
		if at < 0 {
			return TrickResult{}, fmt.Errorf("%w: %s played %s", game.ErrCardNotInHand, seat.Name, card)
		}
		seat.Hand = append(seat.Hand[:at], seat.Hand[at+1:]...)

		if ledSuit == nil {
			suit := card.Suit
			ledSuit = &suit
			ledTrump = card.Trump
		}
		trick.Plays = append(trick.Plays, game.Play{Seat: seatIndex, Card: card})

		log.Debug().
			Str("seat", seat.Name).
			Int("strength", card.TrumpStrength).
			Msgf("plays %s", card)
	}

	winner, err := trick.Winner()
	if err != nil {
		return TrickResult{}, err
	}
	gs.Seats[winner].TricksWon = append(gs.Seats[winner].TricksWon, trick)
	gs.LeadSeat = winner
	gs.Played++

	log.Info().
		Str("seat", gs.Seats[winner].Name).
		Int("points", trick.Points()).
		Msgf("wins trick %d", gs.Played)

	return TrickResult{Winner: winner, Trick: trick}, nil
}

// Run plays the remaining tricks and returns the final team totals.
func (e *Engine) Run() (rePoints, contraPoints int, err error) {
	for !e.State.Done() {
		if _, err := e.PlayTrick(); err != nil {
			return 0, 0, err
		}
	}
	rePoints, contraPoints = e.State.Score()
	return rePoints, contraPoints, nil
}

// CurrentScore returns the running team totals.
func (e *Engine) CurrentScore() (rePoints, contraPoints int) {
	return e.State.Score()
}

// SeatSummaries returns name, team and tricks won for each seat.
func (e *Engine) SeatSummaries() []SeatSummary {
	summaries := make([]SeatSummary, len(e.State.Seats))
	for i, seat := range e.State.Seats {
		summaries[i] = SeatSummary{
			Name:      seat.Name,
			Team:      seat.Team,
			TricksWon: len(seat.TricksWon),
		}
	}
	return summaries
}
