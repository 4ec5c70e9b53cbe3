package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-showdown/internal/config"
	"github.com/lox/holdem-showdown/internal/report"
	"github.com/lox/holdem-showdown/internal/simulator"
)

// SimulateCmd plays random hands at many tables and reports pot statistics.
type SimulateCmd struct {
	Config   string `short:"c" default:"holdem.hcl" help:"HCL configuration file (defaults apply if missing)"`
	Tables   int    `help:"Override the number of tables"`
	Hands    int    `help:"Override the number of hands per table"`
	Seed     *int64 `help:"Override the RNG seed"`
	LogLevel string `help:"Override the log level (debug, info, warn, error)"`
}

func (c *SimulateCmd) Run(r *report.Report) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Simulation.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	sum, err := simulator.New(cfg, logger, quartz.NewReal()).Run(ctx)
	if sum != nil {
		r.Summary(sum)
	}
	if errors.Is(err, context.Canceled) {
		logger.Warn("Simulation interrupted, summary is partial")
		return nil
	}
	return err
}

func (c *SimulateCmd) load() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Tables > 0 {
		cfg.SetTableCount(c.Tables)
	}
	if c.Hands > 0 {
		cfg.Simulation.Hands = c.Hands
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.LogLevel != "" {
		cfg.Simulation.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
