package game

import "fmt"

// Suit represents a card suit, in trump traversal order.
type Suit int

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Rank represents a card rank.
type Rank int

const (
	Nine Rank = iota
	King
	Ten
	Ace
	Jack
	Queen
)

func (r Rank) String() string {
	switch r {
	case Nine:
		return "Nine"
	case King:
		return "King"
	case Ten:
		return "Ten"
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

// Points returns the trick-scoring value of a rank.
func (r Rank) Points() int {
	switch r {
	case Ace:
		return 11
	case Ten:
		return 10
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	default:
		return 0
	}
}

// Trump strength ladder. Non-trump cards sit below TrumpFloor and only
// compare within their own suit; trump cards occupy TrumpFloor and above.
const (
	TrumpFloor    = 4
	jackStrength  = 8
	queenStrength = 12
)

// Card is one physical card with its trump strength precomputed at deck
// build time. Immutable; two identical copies of every (suit, rank) pair
// exist in a deck, so value equality is the only card identity.
type Card struct {
	Suit          Suit
	Rank          Rank
	Points        int
	TrumpStrength int
	Trump         bool
}

// NewCard builds a card and assigns its trump strength: Jacks rank above
// plain Diamonds, Queens above Jacks, each laddered by suit (Clubs highest).
// Every other Diamond is a plain trump; everything else is non-trump with
// its within-suit base strength.
func NewCard(suit Suit, rank Rank) Card {
	c := Card{Suit: suit, Rank: rank, Points: rank.Points()}
	switch {
	case rank == Jack:
		c.TrumpStrength = jackStrength + suitBonus(suit)
		c.Trump = true
	case rank == Queen:
		c.TrumpStrength = queenStrength + suitBonus(suit)
		c.Trump = true
	case suit == Diamonds:
		c.TrumpStrength = baseStrength(rank) + TrumpFloor
		c.Trump = true
	default:
		c.TrumpStrength = baseStrength(rank)
	}
	return c
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// suitBonus ladders same-rank trumps: Clubs 3, Spades 2, Hearts 1, Diamonds 0.
func suitBonus(s Suit) int {
	return 3 - int(s)
}

// baseStrength orders the non-Jack/Queen ranks within a suit.
func baseStrength(r Rank) int {
	switch r {
	case Nine:
		return 0
	case King:
		return 1
	case Ten:
		return 2
	case Ace:
		return 3
	default:
		return 0
	}
}
