package game

// Team identifies one of the two sides of a game.
type Team int

const (
	Unassigned Team = iota
	Re
	Contra
)

func (t Team) String() string {
	switch t {
	case Re:
		return "Re"
	case Contra:
		return "Contra"
	default:
		return "Unassigned"
	}
}

// Seat is one of the four players. Identity is stable for the whole game;
// the hand shrinks by one card per trick and won tricks accumulate.
type Seat struct {
	Name      string
	Hand      []Card
	TricksWon []Trick
	Team      Team
	Strategy  Strategy
}

// AssignTeams scans each seat's hand for a Queen of Clubs: holders are Re,
// everyone else Contra. Runs exactly once, after dealing and before the
// first trick.
func AssignTeams(seats []*Seat) {
	for _, seat := range seats {
		seat.Team = Contra
		for _, c := range seat.Hand {
			if c.Suit == Clubs && c.Rank == Queen {
				seat.Team = Re
				break
			}
		}
	}
}
