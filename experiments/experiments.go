package experiments

import (
	"fmt"
	"time"

	"doppelkopf/engine"
	"doppelkopf/experiments/metrics"
	"doppelkopf/game"
	"doppelkopf/meta"
	"doppelkopf/strategy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RunMatchupExperiment plays each configured strategy lineup for a number of
// games and stores per-game records as CSV.
func RunMatchupExperiment() {
	configs := []metrics.MatchupConfig{
		{ID: 1, Lineup: []string{"greedy", "greedy", "greedy", "greedy"}, Games: meta.GAMES, Seed: 1},
		{ID: 2, Lineup: []string{"rulebased", "greedy", "greedy", "greedy"}, Games: meta.GAMES, Seed: 2},
		{ID: 3, Lineup: []string{"rulebased", "random", "rulebased", "random"}, Games: meta.GAMES, Seed: 3},
		{ID: 4, Lineup: []string{"montecarlo", "greedy", "rulebased", "random"}, Games: meta.GAMES, Seed: 4},
	}

	// Store experiment metadata
	writer, err := metrics.NewWriter()
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteMatchupConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store matchup configs: %v", err))
	}

	collector := metrics.NewCollector()

	log.Info().Msg("starting matchup experiment...")

	for _, config := range configs {
		log.Info().Msgf("starting matchup %d with lineup %v...", config.ID, config.Lineup)

		for i := 0; i < config.Games; i++ {
			record, err := runGame(config, i)
			if err != nil {
				panic(fmt.Sprintf("game %d of matchup %d failed: %v", i+1, config.ID, err))
			}
			collector.AddGame(record)
		}
	}

	summary := collector.Complete()
	log.Info().Msgf("finished matchup experiment: %d games, Re won %d, Contra won %d",
		summary.Games, summary.ReWins, summary.ContraWins)

	err = writer.WriteGameRecords(collector.Records())
	if err != nil {
		panic(fmt.Sprintf("failed to store game records: %v", err))
	}
}

// runGame executes a single game for a matchup and returns its record.
func runGame(config metrics.MatchupConfig, index int) (metrics.GameRecord, error) {
	seed := config.Seed + uint64(index)

	strategies := make([]game.Strategy, 0, game.NumSeats)
	for _, name := range config.Lineup {
		s, err := strategy.FromName(name, seed)
		if err != nil {
			return metrics.GameRecord{}, err
		}
		strategies = append(strategies, s)
	}

	rng := rand.New(rand.NewSource(seed))
	e, err := engine.LocalEngine(rng, strategies)
	if err != nil {
		return metrics.GameRecord{}, err
	}

	start := time.Now()
	rePoints, contraPoints, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, err
	}

	// Re wins only on strictly more points; ties go to Contra.
	winner := game.Contra
	if rePoints > contraPoints {
		winner = game.Re
	}

	return metrics.GameRecord{
		Matchup:      config.ID,
		Game:         index + 1,
		RePoints:     rePoints,
		ContraPoints: contraPoints,
		Winner:       winner,
		StartTime:    start,
		Duration:     time.Since(start),
	}, nil
}
