package game

// Score tallies card points over every trick each seat has won, split by
// team. Pure; mid-game totals are meaningful.
func Score(seats []*Seat) (rePoints, contraPoints int) {
	for _, seat := range seats {
		for _, trick := range seat.TricksWon {
			if seat.Team == Re {
				rePoints += trick.Points()
			} else {
				contraPoints += trick.Points()
			}
		}
	}
	return rePoints, contraPoints
}
