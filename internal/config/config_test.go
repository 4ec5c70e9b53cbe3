package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.TotalTables())
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
simulation {
  hands = 250
  seed  = 42
}

table "short-stacked" {
  count       = 3
  small_blind = 5
  big_blind   = 10
}

table "heads-up" {
  seats          = 2
  small_blind    = 50
  big_blind      = 100
  starting_chips = 2500
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 250, cfg.Simulation.Hands)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, "info", cfg.Simulation.LogLevel)

	interval, err := cfg.Interval()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, interval)

	require.Len(t, cfg.Tables, 2)
	assert.Equal(t, TableConfig{
		Name: "short-stacked", Count: 3, Seats: 6, SmallBlind: 5, BigBlind: 10, StartingChips: 500,
	}, cfg.Tables[0])
	assert.Equal(t, TableConfig{
		Name: "heads-up", Count: 1, Seats: 2, SmallBlind: 50, BigBlind: 100, StartingChips: 2500,
	}, cfg.Tables[1])
	assert.Equal(t, 4, cfg.TotalTables())

	assert.Equal(t, DefaultPolicy(), *cfg.Policy)
}

func TestLoadPolicy(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table "main" {
  small_blind = 1
  big_blind   = 2
}

policy {
  fold   = 0
  call   = 1
  all_in = 9
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, PolicyConfig{Call: 1, AllIn: 9}, *cfg.Policy)
	assert.Equal(t, 1000, cfg.Simulation.Hands)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeConfig(t, `table "main" {`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse HCL file")
	})

	t.Run("missing required attribute", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeConfig(t, `table "main" { small_blind = 1 }`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode HCL")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no hands", func(c *Config) { c.Simulation.Hands = 0 }},
		{"bad interval", func(c *Config) { c.Simulation.ProgressInterval = "soon" }},
		{"no tables", func(c *Config) { c.Tables = nil }},
		{"zero small blind", func(c *Config) { c.Tables[0].SmallBlind = 0 }},
		{"big blind not above small", func(c *Config) { c.Tables[0].BigBlind = 10 }},
		{"one seat", func(c *Config) { c.Tables[0].Seats = 1 }},
		{"too many seats", func(c *Config) { c.Tables[0].Seats = 11 }},
		{"zero count", func(c *Config) { c.Tables[0].Count = 0 }},
		{"stack below big blind", func(c *Config) { c.Tables[0].StartingChips = 10 }},
		{"negative weight", func(c *Config) { c.Policy.Raise = -1 }},
		{"fold only", func(c *Config) { *c.Policy = PolicyConfig{Fold: 1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSetTableCount(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Tables = append(cfg.Tables, TableConfig{Name: "second", Count: 7})
	cfg.SetTableCount(2)
	assert.Equal(t, 4, cfg.TotalTables())
}
