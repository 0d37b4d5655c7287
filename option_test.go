package ntil

import (
	"testing"
	"time"

	"github.com/juju/clock"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"
)

func TestOptionDefaults(t *testing.T) {
	o := newOptions()
	require.Empty(t, o.name)
	require.Nil(t, o.logger)
	require.Equal(t, DefaultInitialWait, o.initialWait)
	require.Equal(t, DefaultWaitMultiplier, o.waitMultiplier)
	require.Equal(t, DefaultMaxAttempts, o.maxAttempts)
	require.Equal(t, clock.WallClock, o.clock)
}

func TestOptionOverrides(t *testing.T) {
	clk := testclock.NewClock(time.Time{})
	log := newRecordingLogger()

	o := newOptions(
		WithName("custom"),
		WithLogger(log),
		WithInitialWait(3*time.Second),
		WithWaitMultiplier(1.5),
		WithMaxAttempts(2),
		WithClock(clk),
	)
	require.Equal(t, "custom", o.name)
	require.Equal(t, log, o.logger)
	require.Equal(t, 3*time.Second, o.initialWait)
	require.Equal(t, 1.5, o.waitMultiplier)
	require.Equal(t, 2, o.maxAttempts)
	require.Equal(t, clk, o.clock)
}
