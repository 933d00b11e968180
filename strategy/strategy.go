package strategy

import (
	"fmt"

	"doppelkopf/game"
)

// FromName builds a strategy from its configuration name. seed is used by
// the policies that draw their own randomness.
func FromName(name string, seed uint64) (game.Strategy, error) {
	switch name {
	case "greedy":
		return NewGreedy(), nil
	case "rulebased":
		return NewRuleBased(), nil
	case "montecarlo":
		return NewMonteCarlo(WithSeed(seed)), nil
	case "random":
		return NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
