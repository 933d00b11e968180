package strategy

import "doppelkopf/game"

// Greedy plays the legal card worth the most points. Ties go to the first
// maximal card in hand order.
type Greedy struct{}

func NewGreedy() Greedy {
	return Greedy{}
}

func (Greedy) ChooseCard(hand []game.Card, ctx game.TrickContext) game.Card {
	legal := game.LegalPlays(hand, ctx.LedSuit, ctx.LedTrump)

	best := legal[0]
	for _, c := range legal[1:] {
		if c.Points > best.Points {
			best = c
		}
	}
	return best
}
