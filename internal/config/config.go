package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents a complete simulation configuration
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Tables     []TableConfig       `hcl:"table,block"`
	Policy     *PolicyConfig       `hcl:"policy,block"`
}

// SimulationSettings contains run-level configuration
type SimulationSettings struct {
	Hands            int    `hcl:"hands,optional"`
	Seed             int64  `hcl:"seed,optional"`
	LogLevel         string `hcl:"log_level,optional"`
	ProgressInterval string `hcl:"progress_interval,optional"`
}

// TableConfig defines a group of identical tables
type TableConfig struct {
	Name          string `hcl:"name,label"`
	Count         int    `hcl:"count,optional"`
	Seats         int    `hcl:"seats,optional"`
	SmallBlind    int    `hcl:"small_blind"`
	BigBlind      int    `hcl:"big_blind"`
	StartingChips int    `hcl:"starting_chips,optional"`
}

// PolicyConfig weights the random actions simulated players choose between.
// Weights are relative; a zero weight disables the action.
type PolicyConfig struct {
	Fold   int  `hcl:"fold,optional"`
	Check  int  `hcl:"check,optional"`
	Call   int  `hcl:"call,optional"`
	Raise  int  `hcl:"raise,optional"`
	AllIn  int  `hcl:"all_in,optional"`
	Tiered bool `hcl:"tiered,optional"` // Scale weights by preflop hole card strength
}

// DefaultPolicy returns the default action weights.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{Fold: 2, Check: 4, Call: 4, Raise: 2, AllIn: 1, Tiered: true}
}

// DefaultConfig returns default simulation configuration
func DefaultConfig() *Config {
	policy := DefaultPolicy()
	return &Config{
		Simulation: &SimulationSettings{
			Hands:            1000,
			Seed:             1,
			LogLevel:         "info",
			ProgressInterval: "2s",
		},
		Tables: []TableConfig{
			{
				Name:          "main",
				Count:         4,
				Seats:         6,
				SmallBlind:    10,
				BigBlind:      20,
				StartingChips: 1000,
			},
		},
		Policy: &policy,
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Simulation == nil {
		c.Simulation = defaults.Simulation
	}
	if c.Simulation.Hands == 0 {
		c.Simulation.Hands = defaults.Simulation.Hands
	}
	if c.Simulation.LogLevel == "" {
		c.Simulation.LogLevel = defaults.Simulation.LogLevel
	}
	if c.Simulation.ProgressInterval == "" {
		c.Simulation.ProgressInterval = defaults.Simulation.ProgressInterval
	}

	if len(c.Tables) == 0 {
		c.Tables = defaults.Tables
	}
	for i := range c.Tables {
		if c.Tables[i].Count == 0 {
			c.Tables[i].Count = 1
		}
		if c.Tables[i].Seats == 0 {
			c.Tables[i].Seats = 6
		}
		if c.Tables[i].StartingChips == 0 {
			c.Tables[i].StartingChips = c.Tables[i].BigBlind * 50 // 50 big blinds
		}
	}

	if c.Policy == nil {
		c.Policy = defaults.Policy
	}
}

// Validate validates the simulation configuration
func (c *Config) Validate() error {
	if c.Simulation.Hands <= 0 {
		return fmt.Errorf("%w: hands must be positive", ErrInvalidConfig)
	}
	if _, err := c.Interval(); err != nil {
		return fmt.Errorf("%w: progress_interval: %v", ErrInvalidConfig, err)
	}

	if len(c.Tables) == 0 {
		return fmt.Errorf("%w: at least one table must be configured", ErrInvalidConfig)
	}

	for _, table := range c.Tables {
		if table.SmallBlind <= 0 {
			return fmt.Errorf("%w: table %s: small blind must be positive", ErrInvalidConfig, table.Name)
		}
		if table.BigBlind <= table.SmallBlind {
			return fmt.Errorf("%w: table %s: big blind must be greater than small blind", ErrInvalidConfig, table.Name)
		}
		if table.Seats < 2 || table.Seats > 10 {
			return fmt.Errorf("%w: table %s: seats must be between 2 and 10", ErrInvalidConfig, table.Name)
		}
		if table.Count < 1 {
			return fmt.Errorf("%w: table %s: count must be positive", ErrInvalidConfig, table.Name)
		}
		if table.StartingChips < table.BigBlind {
			return fmt.Errorf("%w: table %s: starting chips must cover the big blind", ErrInvalidConfig, table.Name)
		}
	}

	p := c.Policy
	if p.Fold < 0 || p.Check < 0 || p.Call < 0 || p.Raise < 0 || p.AllIn < 0 {
		return fmt.Errorf("%w: policy weights must not be negative", ErrInvalidConfig)
	}
	if p.Check+p.Call+p.Raise+p.AllIn == 0 {
		return fmt.Errorf("%w: policy must allow an action other than fold", ErrInvalidConfig)
	}

	return nil
}

// Interval returns the progress logging interval.
func (c *Config) Interval() (time.Duration, error) {
	return time.ParseDuration(c.Simulation.ProgressInterval)
}

// TotalTables returns how many tables the simulation runs.
func (c *Config) TotalTables() int {
	n := 0
	for _, table := range c.Tables {
		n += table.Count
	}
	return n
}

// SetTableCount overrides the count of every table group.
func (c *Config) SetTableCount(n int) {
	for i := range c.Tables {
		c.Tables[i].Count = n
	}
}
