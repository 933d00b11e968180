package strategy

import (
	"math"
	"sync"
	"sync/atomic"

	"doppelkopf/game"
	"doppelkopf/meta"
	"doppelkopf/utils"

	"golang.org/x/exp/rand"
)

// MonteCarlo estimates each candidate card by averaging rewards over a fixed
// number of independent trial games.
//
// A trial builds an entirely fresh game (new shuffled deck, fresh deal, fresh
// teams), removes the candidate from the mirror seat's hand if that seat
// happens to hold a copy, and scores the acting team over the trial's trick
// history. No trick is ever played in a trial, so that history is empty and
// every candidate averages exactly 0: the comparison always settles on the
// first card in hand order. This is a known-weak baseline heuristic, kept
// with its literal mechanics.
type MonteCarlo struct {
	trials     int
	goroutines int
	seed       atomic.Uint64
}

type Option func(mc *MonteCarlo)

func WithTrials(trials int) Option {
	return func(mc *MonteCarlo) {
		if trials > 0 {
			mc.trials = trials
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(mc *MonteCarlo) {
		if goroutines > 0 {
			mc.goroutines = goroutines
		}
	}
}

// WithSeed fixes the base seed for trial decks, for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(mc *MonteCarlo) {
		mc.seed.Store(seed)
	}
}

func NewMonteCarlo(options ...Option) *MonteCarlo {
	mc := &MonteCarlo{ // Default values
		trials:     meta.TRIALS,
		goroutines: meta.GO_ROUTINES,
	}
	for _, option := range options {
		option(mc)
	}
	return mc
}

func (mc *MonteCarlo) ChooseCard(hand []game.Card, ctx game.TrickContext) game.Card {
	var best game.Card
	bestScore := math.Inf(-1)
	for _, candidate := range hand {
		score := mc.estimate(candidate, ctx)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best
}

// estimate averages the reward of playing candidate over mc.trials isolated
// trial games, fanned out across mc.goroutines workers. Aggregation is a
// plain sum, so worker scheduling cannot change the result. A trial that
// fails to construct contributes nothing; the divisor stays at the
// configured trial count.
func (mc *MonteCarlo) estimate(candidate game.Card, ctx game.TrickContext) float64 {
	task := make(chan uint64, mc.trials)
	for i := 0; i < mc.trials; i++ {
		task <- mc.seed.Add(1)
	}
	close(task)

	sums := make(chan float64, mc.goroutines)
	var wg sync.WaitGroup
	for i := 0; i < mc.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			sum := 0.0
			for seed := range task {
				rng := rand.New(rand.NewSource(seed))
				reward, err := trial(candidate, ctx, rng)
				if err != nil {
					continue
				}
				sum += reward
			}
			sums <- sum
		}()
	}
	wg.Wait()
	close(sums)

	total := 0.0
	for sum := range sums {
		total += sum
	}
	return total / float64(mc.trials)
}

// trial plays candidate from the acting seat's index in a fresh game and
// returns the acting team's score of that game.
func trial(candidate game.Card, ctx game.TrickContext, rng *rand.Rand) (float64, error) {
	sim, err := game.NewGameState(rng)
	if err != nil {
		return 0, err
	}

	seat := sim.Seats[ctx.Seat]
	if i := utils.FindIndex(seat.Hand, candidate); i >= 0 {
		seat.Hand = append(seat.Hand[:i], seat.Hand[i+1:]...)
	}

	rePoints, contraPoints := sim.Score()
	if ctx.Team == game.Re {
		return float64(rePoints), nil
	}
	return float64(contraPoints), nil
}
