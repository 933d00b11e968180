package strategy

import "doppelkopf/game"

// RuleBased extends Greedy with one opening rule: when this seat leads the
// trick, play the first Ace found in hand order, whatever its suit.
// Otherwise it falls back to the greedy pick over the legal cards.
type RuleBased struct {
	Greedy
}

func NewRuleBased() RuleBased {
	return RuleBased{}
}

func (r RuleBased) ChooseCard(hand []game.Card, ctx game.TrickContext) game.Card {
	if ctx.LedSuit == nil {
		for _, c := range hand {
			if c.Rank == game.Ace {
				return c
			}
		}
	}
	return r.Greedy.ChooseCard(hand, ctx)
}
