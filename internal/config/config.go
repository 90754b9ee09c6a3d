// Package config loads solver tunables from a YAML file, in the style
// tabular/reinforcement's FromYaml uses viper purely as a file reader and
// yaml.v3 for the actual unmarshal.
package config

import (
	"context"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"clickgrid/internal/search"
)

// Solver holds every tunable a coordinated run needs: which strategies to
// race, how many solutions to collect before cancelling the rest, and the
// per-strategy search bounds.
type Solver struct {
	Strategies      []string `mapstructure:"strategies" yaml:"strategies"`
	K               int      `mapstructure:"k" yaml:"k"`
	MaxSteps        int      `mapstructure:"maxSteps" yaml:"maxSteps"`
	MaxQueueSize    int      `mapstructure:"maxQueueSize" yaml:"maxQueueSize"`
	TimeoutDuration string   `mapstructure:"timeout" yaml:"timeout"`
	Heuristic       string   `mapstructure:"heuristic" yaml:"heuristic"`
	MCTSSeed        int64    `mapstructure:"mctsSeed" yaml:"mctsSeed"`
}

// Timeout parses TimeoutDuration, defaulting to 0 (no timeout) if unset or
// unparseable.
func (s *Solver) Timeout() time.Duration {
	if s.TimeoutDuration == "" {
		return 0
	}
	d, err := time.ParseDuration(s.TimeoutDuration)
	if err != nil {
		return 0
	}
	return d
}

// WithDeadline extends ctx by the configured timeout, mirroring the
// teacher's WithTrainingDeadline: a config with no timeout just gets a
// plain cancellable context.
func (s *Solver) WithDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if d := s.Timeout(); d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// defaultSolver is returned when no fields override it, keeping a config
// file optional for the CLI's common case.
func defaultSolver() Solver {
	return Solver{
		Strategies:      nil, // nil means "all registered strategies"
		K:               2,
		MaxSteps:        200,
		MaxQueueSize:    50000,
		TimeoutDuration: "30s",
		Heuristic:       "enhanced",
		MCTSSeed:        1,
	}
}

// Default returns the solver config used when no config file is supplied.
func Default() *Solver {
	d := defaultSolver()
	return &d
}

// FromYaml reads a solver config from path. Viper only locates and reads the
// file; yaml.v3 does the actual unmarshal, matching the teacher's split
// between file-loading and decoding responsibilities. yaml.v3 decodes the
// file's own bytes rather than viper's settings map, because viper
// lowercases every key and the camelCase yaml tags would no longer match.
func FromYaml(path string) (*Solver, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := defaultSolver()
	raw, err := os.ReadFile(vp.ConfigFileUsed())
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchOptions translates a Solver config into the options every strategy
// in a race is given. The per-strategy Hints (used by Enhanced A*) are the
// caller's responsibility to attach per board, since they depend on level
// data this package doesn't see.
func (s *Solver) SearchOptions() search.Options {
	heuristic := search.HeuristicWrong
	if s.Heuristic == "enhanced" {
		heuristic = search.HeuristicEnhanced
	}
	return search.Options{
		MaxSteps:     s.MaxSteps,
		MaxQueueSize: s.MaxQueueSize,
		Timeout:      s.Timeout(),
		Heuristic:    heuristic,
		Seed:         s.MCTSSeed,
	}
}
