package bvh

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	defaultInitialCapacity = 64
	defaultExpandConstant  = 2.0
	defaultMoveConstant    = 4.0
)

// Config collects the tunables a tree is constructed or cleared with.
type Config struct {
	InitialCapacity int
	ExpandConstant  float64
	MoveConstant    float64
	Logger          *logrus.Entry
}

// Option mutates a Config. Unset fields keep their default (on Clear, the
// expand constant, move constant and logger keep the tree's current value
// instead).
type Option func(*Config)

// WithInitialCapacity sets the number of arena slots pre-allocated at
// construction (or on Clear). Must be positive.
func WithInitialCapacity(n int) Option {
	return func(c *Config) { c.InitialCapacity = n }
}

// WithExpandConstant sets the padding applied to a stored key on Add (and on
// the unexpanded reinsert path of Update). Must be positive.
func WithExpandConstant(v float64) Option {
	return func(c *Config) { c.ExpandConstant = v }
}

// WithMoveConstant sets the directional padding multiplier used by Move.
// Must be positive.
func WithMoveConstant(v float64) Option {
	return func(c *Config) { c.MoveConstant = v }
}

// WithLogger attaches a structured logger that receives Debug-level traces
// of structural mutations (inserts, removals, rotations, forced reinserts).
// Without WithLogger, mutations are traced to a discarded logrus output so
// call sites never need a nil check.
func WithLogger(entry *logrus.Entry) Option {
	return func(c *Config) { c.Logger = entry }
}

func newConfig(opts []Option) (Config, error) {
	cfg := Config{
		InitialCapacity: defaultInitialCapacity,
		ExpandConstant:  defaultExpandConstant,
		MoveConstant:    defaultMoveConstant,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		cfg.Logger = logrus.NewEntry(discard)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.InitialCapacity <= 0 {
		return fmt.Errorf("%w: initial capacity must be positive, got %d", ErrInvalidConfig, cfg.InitialCapacity)
	}
	if cfg.ExpandConstant <= 0 {
		return fmt.Errorf("%w: expand constant must be positive, got %v", ErrInvalidConfig, cfg.ExpandConstant)
	}
	if cfg.MoveConstant <= 0 {
		return fmt.Errorf("%w: move constant must be positive, got %v", ErrInvalidConfig, cfg.MoveConstant)
	}
	return nil
}
