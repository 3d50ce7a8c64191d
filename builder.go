// Package seedgo provides a deterministic numeric engine.
//
// This file implements engine-specific fluent builder APIs for creating and
// configuring Random instances. Builders are immutable - each method
// returns a new builder with the updated configuration.
package seedgo

import "github.com/hupe1980/seedgo/rng"

// =============================================================================
// Fast Builder (Immutable)
// =============================================================================

// Fast creates a new builder around the fast 32-bit xorshift engine.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	r, err := seedgo.Fast(42).
//	    Logger(seedgo.NewTextLogger(slog.LevelDebug)).
//	    Build()
func Fast(seed uint32) FastBuilder {
	return FastBuilder{seed: seed}
}

// FastBuilder is an immutable fluent builder for creating Random instances
// backed by the fast engine.
type FastBuilder struct {
	seed    uint32
	logger  *Logger
	metrics MetricsCollector
}

// Logger sets the structured logger for operation tracing.
func (b FastBuilder) Logger(l *Logger) FastBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b FastBuilder) Metrics(mc MetricsCollector) FastBuilder {
	b.metrics = mc
	return b
}

// Build creates the Random instance.
func (b FastBuilder) Build() (*Random, error) {
	return New(rng.NewXorshift32(b.seed), b.options()...)
}

// MustBuild creates the Random instance, panicking on error.
func (b FastBuilder) MustBuild() *Random {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

func (b FastBuilder) options() []Option {
	var opts []Option
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}
	return opts
}

// =============================================================================
// LongPeriod Builder (Immutable)
// =============================================================================

// LongPeriod creates a new builder around the 128-bit xorshift-plus engine.
// The all-zero seed pair is corrected to (0, 1) by the engine.
//
// Example:
//
//	r, err := seedgo.LongPeriod(42, 1337).
//	    Metrics(&seedgo.BasicMetricsCollector{}).
//	    Build()
func LongPeriod(s0, s1 uint64) LongPeriodBuilder {
	return LongPeriodBuilder{s0: s0, s1: s1}
}

// LongPeriodBuilder is an immutable fluent builder for creating Random
// instances backed by the long-period engine.
type LongPeriodBuilder struct {
	s0, s1  uint64
	logger  *Logger
	metrics MetricsCollector
}

// Logger sets the structured logger for operation tracing.
func (b LongPeriodBuilder) Logger(l *Logger) LongPeriodBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b LongPeriodBuilder) Metrics(mc MetricsCollector) LongPeriodBuilder {
	b.metrics = mc
	return b
}

// Build creates the Random instance.
func (b LongPeriodBuilder) Build() (*Random, error) {
	return New(rng.NewXorshift128Plus(b.s0, b.s1), b.options()...)
}

// MustBuild creates the Random instance, panicking on error.
func (b LongPeriodBuilder) MustBuild() *Random {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

func (b LongPeriodBuilder) options() []Option {
	var opts []Option
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}
	return opts
}
