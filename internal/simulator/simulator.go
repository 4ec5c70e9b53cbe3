package simulator

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-showdown/internal/config"
)

// Simulator plays many hands across independent tables, driving every
// betting round through the pot engine and every showdown through the hand
// evaluator.
type Simulator struct {
	config *config.Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(cfg *config.Config, logger *log.Logger, clock quartz.Clock) *Simulator {
	return &Simulator{
		config: cfg,
		logger: logger.WithPrefix("simulator"),
		clock:  clock,
	}
}

// Run plays every configured table in parallel, one goroutine per table. If
// ctx is cancelled, tables stop before their next hand and Run returns the
// partial summary with the context error.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	interval, err := s.config.Interval()
	if err != nil {
		return nil, fmt.Errorf("progress interval: %w", err)
	}

	start := s.clock.Now()
	var played atomic.Int64

	progressCtx, stopProgress := context.WithCancel(ctx)
	defer stopProgress()
	s.clock.TickerFunc(progressCtx, interval, func() error {
		s.logger.Info("Progress", "hands", played.Load(), "elapsed", s.clock.Since(start))
		return nil
	}, "simulator", "progress")

	hands := s.config.Simulation.Hands
	summaries := make([]*Summary, s.config.TotalTables())
	g, gctx := errgroup.WithContext(ctx)

	idx := 0
	for _, tc := range s.config.Tables {
		for range tc.Count {
			i := idx
			id := fmt.Sprintf("%s-%d", tc.Name, i+1)
			t := newTable(id, tc, *s.config.Policy, s.config.Simulation.Seed+int64(i), s.logger.With("table", id))
			g.Go(func() error {
				sum, err := t.run(gctx, hands, &played)
				summaries[i] = sum
				return err
			})
			idx++
		}
	}

	s.logger.Info("Starting simulation", "tables", len(summaries), "hands", hands, "seed", s.config.Simulation.Seed)
	err = g.Wait()

	total := &Summary{}
	for _, sum := range summaries {
		total.merge(sum)
	}
	total.Elapsed = s.clock.Since(start)

	if err != nil {
		return total, err
	}
	s.logger.Info("Simulation complete", "hands", total.HandsPlayed, "showdowns", total.Showdowns,
		"side_pots", total.SidePots, "elapsed", total.Elapsed)
	return total, nil
}
