// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines for Monte-Carlo trials.
const GO_ROUTINES = 8

// TRIALS defines the number of Monte-Carlo trials per candidate card.
const TRIALS = 1000

// GAMES defines the number of games per experiment matchup.
const GAMES = 100
