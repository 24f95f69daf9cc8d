package sdc_test

import (
	"testing"

	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, name string, period float64, opts ...core.ClockOption) *core.Clock {
	t.Helper()
	clk, err := core.NewClock(name, period, opts...)
	require.NoError(t, err)

	return clk
}

// TestCycleAccting_SameClock verifies the default single-cycle
// relationship: launch at the edge, setup capture one period later, hold
// capture at the launch edge.
func TestCycleAccting_SameClock(t *testing.T) {
	clk := mustClock(t, "clk", 10)
	edge := clk.Edge(core.Rise)

	ca, err := sdc.NewCycleAccting(edge, edge)
	require.NoError(t, err)

	assert.Equal(t, 0.0, ca.SourceTimeOffset(core.RoleSetup), "first source cycle launches")
	assert.Equal(t, 10.0, ca.RequiredTime(core.RoleSetup), "setup captures one cycle later")
	assert.Equal(t, 0.0, ca.RequiredTime(core.RoleHold), "hold captures at the launch edge")
	assert.Equal(t, 10.0, ca.TargetTimeOffset(core.RoleSetup))
}

// TestCycleAccting_FastToSlow covers a 5ns clock launching into a 10ns
// clock: the second source cycle gives the tightest capture relationship.
func TestCycleAccting_FastToSlow(t *testing.T) {
	fast := mustClock(t, "fast", 5)
	slow := mustClock(t, "slow", 10)

	ca, err := sdc.NewCycleAccting(fast.Edge(core.Rise), slow.Edge(core.Rise))
	require.NoError(t, err)

	assert.Equal(t, 5.0, ca.SourceTimeOffset(core.RoleSetup), "launch shifts one fast cycle")
	assert.Equal(t, 10.0, ca.RequiredTime(core.RoleSetup))
	assert.Equal(t, 0.0, ca.RequiredTime(core.RoleHold))
}

// TestCycleAccting_SlowToFast covers a 10ns clock launching into a 5ns
// clock: capture at the first fast edge after launch.
func TestCycleAccting_SlowToFast(t *testing.T) {
	slow := mustClock(t, "slow", 10)
	fast := mustClock(t, "fast", 5)

	ca, err := sdc.NewCycleAccting(slow.Edge(core.Rise), fast.Edge(core.Rise))
	require.NoError(t, err)

	assert.Equal(t, 0.0, ca.SourceTimeOffset(core.RoleSetup))
	assert.Equal(t, 5.0, ca.RequiredTime(core.RoleSetup))
	assert.Equal(t, 0.0, ca.RequiredTime(core.RoleHold))
}

// TestCycleAccting_ShiftedWaveform verifies capture selection with a
// phase-shifted target waveform.
func TestCycleAccting_ShiftedWaveform(t *testing.T) {
	src := mustClock(t, "src", 10)
	tgt := mustClock(t, "tgt", 10, core.WithWaveform(3, 8))

	ca, err := sdc.NewCycleAccting(src.Edge(core.Rise), tgt.Edge(core.Rise))
	require.NoError(t, err)

	assert.Equal(t, 3.0, ca.RequiredTime(core.RoleSetup), "first target rise after launch at 0")
	assert.Equal(t, -7.0, ca.RequiredTime(core.RoleHold), "hold capture one target period earlier")
}

// TestCycleAccting_NilEdge verifies the precondition sentinel.
func TestCycleAccting_NilEdge(t *testing.T) {
	clk := mustClock(t, "clk", 10)
	_, err := sdc.NewCycleAccting(nil, clk.Edge(core.Rise))
	assert.ErrorIs(t, err, sdc.ErrNilClockEdge)
	_, err = sdc.NewCycleAccting(clk.Edge(core.Rise), nil)
	assert.ErrorIs(t, err, sdc.ErrNilClockEdge)
}

// TestSdc_CycleAcctingCache verifies that repeated lookups return the same
// accounting object, including lookups through freshly fetched edges: the
// cache keys on edge identity and Clock.Edge interns its two edges.
func TestSdc_CycleAcctingCache(t *testing.T) {
	store := sdc.NewSdc()
	clk := mustClock(t, "clk", 10)
	edge := clk.Edge(core.Rise)

	first, err := store.CycleAccting(edge, edge)
	require.NoError(t, err)
	second, err := store.CycleAccting(edge, edge)
	require.NoError(t, err)
	assert.Same(t, first, second, "accounting objects are cached per edge pair")

	refetched, err := store.CycleAccting(clk.Edge(core.Rise), clk.Edge(core.Rise))
	require.NoError(t, err)
	assert.Same(t, first, refetched, "re-fetched edges hit the same cache entry")
}
