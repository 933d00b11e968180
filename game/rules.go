package game

// LegalPlays returns the subset of hand the acting seat may play. ledSuit is
// nil when the seat leads the trick, in which case the whole hand is legal.
//
// Following is two-tier: a non-trump lead must be followed with a non-trump
// card of the led suit, a trump lead with any trump. A seat holding no
// matching card is free to play anything. The result is never empty and
// preserves hand order.
func LegalPlays(hand []Card, ledSuit *Suit, ledTrump bool) []Card {
	if ledSuit == nil {
		return hand
	}

	var candidates []Card
	if ledTrump {
		for _, c := range hand {
			if c.Trump {
				candidates = append(candidates, c)
			}
		}
	} else {
		for _, c := range hand {
			if c.Suit == *ledSuit && !c.Trump {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) > 0 {
		return candidates
	}
	return hand
}
