package strategy

import (
	"doppelkopf/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal card. Baseline for experiments.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseCard(hand []game.Card, ctx game.TrickContext) game.Card {
	legal := game.LegalPlays(hand, ctx.LedSuit, ctx.LedTrump)
	return legal[r.rng.Intn(len(legal))]
}
