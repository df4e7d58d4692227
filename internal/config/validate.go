package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/rrwatch/internal/errors"
	"github.com/rileyhilliard/rrwatch/internal/state"
)

// MinInterval is the shortest allowed interval, in seconds.
const MinInterval = 0.1

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %gs is too short", cfg.Interval),
			fmt.Sprintf("Use an interval of at least %gs.", MinInterval))
	}

	if _, err := state.ParseDiffMode(cfg.Diff); err != nil {
		return err
	}

	if _, err := state.ParseOutputMode(cfg.Output); err != nil {
		return err
	}

	if cfg.Limit < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("History limit can't be negative (got %d)", cfg.Limit),
			"Use 0 to keep every result, or a positive number.")
	}

	return nil
}

// IntervalDuration converts the interval in seconds to a time.Duration.
func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval * float64(time.Second))
}

// DiffMode returns the parsed diff mode. Call Validate first.
func (c *Config) DiffMode() state.DiffMode {
	d, _ := state.ParseDiffMode(c.Diff)
	return d
}

// OutputMode returns the parsed output mode. Call Validate first.
func (c *Config) OutputMode() state.OutputMode {
	o, _ := state.ParseOutputMode(c.Output)
	return o
}
