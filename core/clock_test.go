package core_test

import (
	"testing"

	"github.com/Logikable/OpenSTA/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClock_Validation verifies the constructor's sentinel errors.
func TestNewClock_Validation(t *testing.T) {
	_, err := core.NewClock("", 10)
	assert.ErrorIs(t, err, core.ErrEmptyClockName, "empty name must error")

	_, err = core.NewClock("clk", 0)
	assert.ErrorIs(t, err, core.ErrBadPeriod, "zero period must error")

	_, err = core.NewClock("clk", -1)
	assert.ErrorIs(t, err, core.ErrBadPeriod, "negative period must error")

	_, err = core.NewClock("clk", 10, core.WithWaveform(0, 12))
	assert.ErrorIs(t, err, core.ErrBadWaveform, "fall edge beyond the period must error")
}

// TestClock_Waveform checks default and explicit waveforms, edge times,
// and pulse widths.
func TestClock_Waveform(t *testing.T) {
	clk, err := core.NewClock("clk", 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, clk.EdgeTime(core.Rise), "default rise at 0")
	assert.Equal(t, 5.0, clk.EdgeTime(core.Fall), "default fall at period/2")
	assert.Equal(t, 5.0, clk.PulseWidth(core.Rise), "default high time")
	assert.Equal(t, 5.0, clk.PulseWidth(core.Fall), "default low time")

	duty, err := core.NewClock("duty", 10, core.WithWaveform(2, 8))
	require.NoError(t, err)
	assert.Equal(t, 6.0, duty.PulseWidth(core.Rise), "high time fall-rise")
	assert.Equal(t, 4.0, duty.PulseWidth(core.Fall), "low time period-high")
}

// TestClockEdge_Accessors exercises edge navigation.
func TestClockEdge_Accessors(t *testing.T) {
	clk, err := core.NewClock("clk", 8, core.WithWaveform(0, 3))
	require.NoError(t, err)

	rise := clk.Edge(core.Rise)
	assert.Equal(t, core.Rise, rise.RF())
	assert.Equal(t, 0.0, rise.Time())
	assert.Equal(t, 8.0, rise.Period())
	assert.Equal(t, 3.0, rise.PulseWidth(), "rise-opened pulse is the high time")

	fall := rise.Opposite()
	assert.Equal(t, core.Fall, fall.RF())
	assert.Equal(t, 3.0, fall.Time())
	assert.Same(t, clk, fall.Clock())
}

// TestClock_Uncertainty verifies the per-side uncertainty lookup.
func TestClock_Uncertainty(t *testing.T) {
	clk, err := core.NewClock("clk", 10, core.WithUncertainty(core.Max, 0.25))
	require.NoError(t, err)

	u, ok := clk.Uncertainty(core.Max)
	assert.True(t, ok)
	assert.Equal(t, 0.25, u)

	_, ok = clk.Uncertainty(core.Min)
	assert.False(t, ok, "unset side reports absence, not zero")
}

// TestClock_EdgeInterned pins edge identity: a clock owns exactly two
// edges, handed out by reference, so identity-keyed caches downstream see
// one key per edge no matter how often callers re-fetch it.
func TestClock_EdgeInterned(t *testing.T) {
	clk, err := core.NewClock("clk", 10)
	require.NoError(t, err)

	assert.Same(t, clk.Edge(core.Rise), clk.Edge(core.Rise))
	assert.Same(t, clk.Edge(core.Fall), clk.Edge(core.Fall))
	assert.Same(t, clk.Edge(core.Fall), clk.Edge(core.Rise).Opposite())
	assert.NotSame(t, clk.Edge(core.Rise), clk.Edge(core.Fall))
}
