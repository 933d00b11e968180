package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"doppelkopf/engine"
	"doppelkopf/experiments"
	"doppelkopf/game"
	"doppelkopf/strategy"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type config struct {
	seed   uint64
	lineup []string
	mode   string
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := loadConfig()
	if cfg.mode == "experiment" {
		experiments.RunMatchupExperiment()
		return
	}

	runGame(cfg)
}

func loadConfig() config {
	// A missing .env file is fine; the defaults below cover everything.
	_ = godotenv.Load()

	cfg := config{
		seed:   uint64(time.Now().UnixNano()),
		lineup: []string{"greedy", "greedy", "rulebased", "montecarlo"},
		mode:   "game",
	}
	if v := os.Getenv("DOPPELKOPF_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid DOPPELKOPF_SEED")
		}
		cfg.seed = seed
	}
	if v := os.Getenv("DOPPELKOPF_SEATS"); v != "" {
		cfg.lineup = strings.Split(v, ",")
	}
	if v := os.Getenv("DOPPELKOPF_MODE"); v != "" {
		cfg.mode = v
	}
	return cfg
}

func runGame(cfg config) {
	strategies := make([]game.Strategy, 0, game.NumSeats)
	for _, name := range cfg.lineup {
		s, err := strategy.FromName(strings.TrimSpace(name), cfg.seed)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid DOPPELKOPF_SEATS")
		}
		strategies = append(strategies, s)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	e, err := engine.LocalEngine(rng, strategies)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	for i := 0; i < game.TricksPerGame; i++ {
		log.Info().Msgf("--- playing trick %d ---", i+1)
		if _, err := e.PlayTrick(); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
	}

	for _, summary := range e.SeatSummaries() {
		fmt.Printf("%s (%s) won %d tricks\n", summary.Name, summary.Team, summary.TricksWon)
	}

	rePoints, contraPoints := e.CurrentScore()
	winner := game.Contra
	if rePoints > contraPoints {
		winner = game.Re
	}
	fmt.Printf("Points: Re = %d, Contra = %d\n", rePoints, contraPoints)
	fmt.Printf("%s has won\n", winner)
}
