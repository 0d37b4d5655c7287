package ntil

import (
	"time"

	"github.com/juju/clock"
)

// Default configuration values
const (
	DefaultInitialWait    = time.Second
	DefaultWaitMultiplier = 2.0
	DefaultMaxAttempts    = 7
)

type options struct {
	name           string
	logger         Logger
	initialWait    time.Duration
	waitMultiplier float64
	maxAttempts    int
	clock          clock.Clock
}

type Option func(o *options)

// WithName sets the label used in log lines. Default is the performer's own
// function name, or "anonymous function" for function literals.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the sink for progress messages. Without it all logging is
// suppressed.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithInitialWait sets the delay before the first retry. Default is one second.
func WithInitialWait(d time.Duration) Option {
	return func(o *options) {
		o.initialWait = d
	}
}

// WithWaitMultiplier sets the backoff growth factor applied after each
// rejected result. Default is 2.
func WithWaitMultiplier(m float64) Option {
	return func(o *options) {
		o.waitMultiplier = m
	}
}

// WithMaxAttempts sets the number of rejected results after which the
// sequence gives up. Default is 7. Zero or negative gives up after the
// first rejection.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		o.maxAttempts = n
	}
}

// WithClock sets the clock used to schedule retry delays. Default is the
// wall clock.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func newOptions(opts ...Option) options {
	o := options{
		initialWait:    DefaultInitialWait,
		waitMultiplier: DefaultWaitMultiplier,
		maxAttempts:    DefaultMaxAttempts,
		clock:          clock.WallClock,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
