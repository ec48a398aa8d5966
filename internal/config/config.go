// Package config loads match and simulation settings from HCL files
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/CodingPenguin1/Splendor/internal/bot"
	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// StrategyHuman seats a person at the terminal
const StrategyHuman = "human"

// Config represents the complete configuration with defaults applied
type Config struct {
	Match    MatchSettings
	Data     DataSettings
	Simulate SimulateSettings
	Seats    []SeatConfig
}

// MatchSettings contains the rule and turn-handling options of a match
type MatchSettings struct {
	TargetScore     int
	MaxRounds       int
	AwardNobles     bool
	ReserveGold     bool
	Policy          string
	MaxRetries      int
	DecisionTimeout time.Duration
}

// DataSettings points at card and noble CSV files. Empty paths use the
// embedded tables.
type DataSettings struct {
	Cards  string `hcl:"cards,optional"`
	Nobles string `hcl:"nobles,optional"`
}

// SimulateSettings configures batch simulation
type SimulateSettings struct {
	Matches int    `hcl:"matches,optional"`
	Workers int    `hcl:"workers,optional"`
	Seed    int64  `hcl:"seed,optional"`
	Out     string `hcl:"out,optional"`
}

// SeatConfig defines one seat in seating order
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
}

// fileConfig mirrors the HCL layout. Pointers tell an omitted attribute
// apart from an explicit zero or false.
type fileConfig struct {
	Match    *matchBlock       `hcl:"match,block"`
	Data     *DataSettings     `hcl:"data,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
	Seats    []SeatConfig      `hcl:"seat,block"`
}

type matchBlock struct {
	TargetScore     *int    `hcl:"target_score,optional"`
	MaxRounds       *int    `hcl:"max_rounds,optional"`
	AwardNobles     *bool   `hcl:"award_nobles,optional"`
	ReserveGold     *bool   `hcl:"reserve_gold,optional"`
	Policy          *string `hcl:"policy,optional"`
	MaxRetries      *int    `hcl:"max_retries,optional"`
	DecisionTimeout *string `hcl:"decision_timeout,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	opts := game.DefaultOptions()
	return &Config{
		Match: MatchSettings{
			TargetScore: opts.TargetScore,
			MaxRounds:   opts.MaxRounds,
			AwardNobles: opts.AwardNobles,
			ReserveGold: opts.ReserveGold,
			Policy:      opts.Policy.String(),
			MaxRetries:  opts.MaxRetries,
		},
		Simulate: SimulateSettings{
			Matches: 100,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for missing values
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if m := raw.Match; m != nil {
		if m.TargetScore != nil {
			config.Match.TargetScore = *m.TargetScore
		}
		if m.MaxRounds != nil {
			config.Match.MaxRounds = *m.MaxRounds
		}
		if m.AwardNobles != nil {
			config.Match.AwardNobles = *m.AwardNobles
		}
		if m.ReserveGold != nil {
			config.Match.ReserveGold = *m.ReserveGold
		}
		if m.Policy != nil {
			config.Match.Policy = *m.Policy
		}
		if m.MaxRetries != nil {
			config.Match.MaxRetries = *m.MaxRetries
		}
		if m.DecisionTimeout != nil {
			d, err := time.ParseDuration(*m.DecisionTimeout)
			if err != nil {
				return nil, fmt.Errorf("match: invalid decision_timeout: %w", err)
			}
			config.Match.DecisionTimeout = d
		}
	}
	if raw.Data != nil {
		config.Data = *raw.Data
	}
	if s := raw.Simulate; s != nil {
		if s.Matches != 0 {
			config.Simulate.Matches = s.Matches
		}
		config.Simulate.Workers = s.Workers
		config.Simulate.Seed = s.Seed
		config.Simulate.Out = s.Out
	}

	// Seats default to the greedy strategy
	for _, seat := range raw.Seats {
		if seat.Strategy == "" {
			seat.Strategy = bot.StrategyGreedy
		}
		seat.Strategy = strings.ToLower(seat.Strategy)
		config.Seats = append(config.Seats, seat)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	m := c.Match
	if m.TargetScore < 0 {
		return fmt.Errorf("match: target_score must not be negative")
	}
	if m.MaxRounds < 0 {
		return fmt.Errorf("match: max_rounds must not be negative")
	}
	if m.TargetScore == 0 && m.MaxRounds == 0 {
		return fmt.Errorf("match: target_score and max_rounds cannot both be disabled")
	}
	if _, err := game.ParsePolicy(m.Policy); err != nil {
		return fmt.Errorf("match: %w", err)
	}
	if m.MaxRetries < 0 {
		return fmt.Errorf("match: max_retries must not be negative")
	}
	if m.DecisionTimeout < 0 {
		return fmt.Errorf("match: decision_timeout must not be negative")
	}

	if c.Simulate.Matches < 1 {
		return fmt.Errorf("simulate: matches must be positive")
	}
	if c.Simulate.Workers < 0 {
		return fmt.Errorf("simulate: workers must not be negative")
	}

	if n := len(c.Seats); n != 0 && (n < 2 || n > 4) {
		return fmt.Errorf("%d seats configured, need 2 to 4", n)
	}
	names := make(map[string]bool, len(c.Seats))
	humans := 0
	for _, seat := range c.Seats {
		if names[seat.Name] {
			return fmt.Errorf("seat %s: duplicate name", seat.Name)
		}
		names[seat.Name] = true
		switch {
		case seat.Strategy == StrategyHuman:
			humans++
		case !bot.IsStrategy(seat.Strategy):
			return fmt.Errorf("seat %s: invalid strategy %s", seat.Name, seat.Strategy)
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human seat is supported")
	}
	return nil
}

// Options converts the match settings into engine options
func (c *Config) Options() (game.Options, error) {
	policy, err := game.ParsePolicy(c.Match.Policy)
	if err != nil {
		return game.Options{}, err
	}
	return game.Options{
		TargetScore:     c.Match.TargetScore,
		MaxRounds:       c.Match.MaxRounds,
		AwardNobles:     c.Match.AwardNobles,
		ReserveGold:     c.Match.ReserveGold,
		Policy:          policy,
		MaxRetries:      c.Match.MaxRetries,
		DecisionTimeout: c.Match.DecisionTimeout,
	}, nil
}

// HasHuman reports whether a seat is played from the terminal
func (c *Config) HasHuman() bool {
	for _, seat := range c.Seats {
		if seat.Strategy == StrategyHuman {
			return true
		}
	}
	return false
}
