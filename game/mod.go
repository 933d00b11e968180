package game

// TrickContext describes the trick from the acting seat's perspective.
// LedSuit is nil when the seat leads.
type TrickContext struct {
	Seat     int
	LedSuit  *Suit
	LedTrump bool
	Plays    []Play
	Team     Team
}

// Strategy is the decision policy a seat plays by. ChooseCard must return a
// card from LegalPlays(hand, ctx.LedSuit, ctx.LedTrump) and must not mutate
// the hand: the engine's trick loop is the single point where ownership of
// the chosen card transfers to the trick.
type Strategy interface {
	ChooseCard(hand []Card, ctx TrickContext) Card
}
