package metrics

import (
	"sync"
	"time"

	"doppelkopf/game"
)

// MatchupConfig describes one strategy lineup under test.
type MatchupConfig struct {
	ID     int
	Lineup []string // strategy name per seat
	Games  int
	Seed   uint64
}

// GameRecord captures the outcome of a single game.
type GameRecord struct {
	Matchup      int // MatchupConfig.ID
	Game         int
	RePoints     int
	ContraPoints int
	Winner       game.Team
	StartTime    time.Time
	Duration     time.Duration
}

// Summary aggregates game records for one matchup.
type Summary struct {
	Games      int
	ReWins     int
	ContraWins int
}

// Collector gathers game records. Safe for concurrent use so matchup games
// can run in parallel.
type Collector interface {
	AddGame(record GameRecord)
	Records() []GameRecord
	Complete() Summary
}

type collector struct {
	mu      sync.Mutex
	records []GameRecord
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddGame(record GameRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, record)
}

func (c *collector) Records() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]GameRecord, len(c.records))
	copy(records, c.records)
	return records
}

func (c *collector) Complete() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := Summary{Games: len(c.records)}
	for _, record := range c.records {
		// Ties count for Contra, matching the strict-greater verdict.
		if record.Winner == game.Re {
			summary.ReWins++
		} else {
			summary.ContraWins++
		}
	}
	return summary
}
