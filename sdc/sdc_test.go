package sdc_test

import (
	"testing"

	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultiCyclePath_AppliesTo covers the three application modes.
func TestMultiCyclePath_AppliesTo(t *testing.T) {
	setupOnly, err := sdc.NewMultiCyclePath(sdc.ApplySetup, 2)
	require.NoError(t, err)
	assert.True(t, setupOnly.AppliesTo(core.RoleSetup))
	assert.False(t, setupOnly.AppliesTo(core.RoleHold), "a setup-only multiplier never moves hold")

	holdOnly, err := sdc.NewMultiCyclePath(sdc.ApplyHold, 1)
	require.NoError(t, err)
	assert.False(t, holdOnly.AppliesTo(core.RoleSetup))
	assert.True(t, holdOnly.AppliesTo(core.RoleHold))

	both, err := sdc.NewMultiCyclePath(sdc.ApplyBoth, 3)
	require.NoError(t, err)
	assert.True(t, both.AppliesTo(core.RoleSetup))
	assert.True(t, both.AppliesTo(core.RoleHold))

	_, err = sdc.NewMultiCyclePath(sdc.ApplySetup, -1)
	assert.ErrorIs(t, err, sdc.ErrBadMultiplier)
}

// TestSdc_McpRegistry verifies per-orientation multicycle lookup.
func TestSdc_McpRegistry(t *testing.T) {
	store := sdc.NewSdc()
	setupMcp, err := sdc.NewMultiCyclePath(sdc.ApplySetup, 2)
	require.NoError(t, err)
	holdMcp, err := sdc.NewMultiCyclePath(sdc.ApplyHold, 1)
	require.NoError(t, err)

	store.AddMcp("reg/D", setupMcp)
	store.AddMcp("reg/D", holdMcp)

	assert.Same(t, setupMcp, store.McpFor("reg/D", core.RoleSetup))
	assert.Same(t, holdMcp, store.McpFor("reg/D", core.RoleHold))
	assert.Nil(t, store.McpFor("other/D", core.RoleSetup))
}

// TestPathDelay_Record covers orientation, value, and the latency flag.
func TestPathDelay_Record(t *testing.T) {
	pd := sdc.NewPathDelay(core.Max, 12.5)
	assert.Equal(t, core.Max, pd.MinMax())
	assert.Equal(t, 12.5, pd.Delay())
	assert.False(t, pd.IgnoreClkLatency())

	frozen := sdc.NewPathDelay(core.Min, 1.0, sdc.WithIgnoreClkLatency())
	assert.True(t, frozen.IgnoreClkLatency())
}

// TestOutputDelay_Record covers values, reference pins, and validation.
func TestOutputDelay_Record(t *testing.T) {
	clk, err := core.NewClock("clk", 10)
	require.NoError(t, err)
	edge := clk.Edge(core.Rise)

	od, err := sdc.NewOutputDelay("out", edge,
		sdc.WithDelayValue(core.Max, 3.0),
		sdc.WithRefPin("ref/CK"))
	require.NoError(t, err)
	v, ok := od.Delay(core.Max)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	_, ok = od.Delay(core.Min)
	assert.False(t, ok, "unset side reports absence")
	assert.True(t, od.HasRefPin())
	assert.Same(t, edge, od.ClkEdge())

	_, err = sdc.NewOutputDelay("", edge)
	assert.ErrorIs(t, err, sdc.ErrEmptyPin)
}

// TestDataCheck_Record covers margin lookup by transition and side.
func TestDataCheck_Record(t *testing.T) {
	dc, err := sdc.NewDataCheck("a/Z", "b/D",
		sdc.WithDataMargin(core.Rise, core.Max, 0.3),
		sdc.WithDataMargin(core.Fall, core.Min, 0.1))
	require.NoError(t, err)

	v, ok := dc.Margin(core.Rise, core.Max)
	assert.True(t, ok)
	assert.Equal(t, 0.3, v)
	_, ok = dc.Margin(core.Rise, core.Min)
	assert.False(t, ok)

	_, err = sdc.NewDataCheck("", "b/D")
	assert.ErrorIs(t, err, sdc.ErrEmptyPin)
}

// TestSdc_UncertaintyAndBorrow covers the pairwise uncertainty and borrow
// limit registries.
func TestSdc_UncertaintyAndBorrow(t *testing.T) {
	store := sdc.NewSdc()
	a, err := core.NewClock("a", 10)
	require.NoError(t, err)
	b, err := core.NewClock("b", 8)
	require.NoError(t, err)

	store.SetInterClockUncertainty(a, b, core.Max, 0.4)
	v, ok := store.InterClockUncertainty(a, b, core.Max)
	assert.True(t, ok)
	assert.Equal(t, 0.4, v)
	_, ok = store.InterClockUncertainty(b, a, core.Max)
	assert.False(t, ok, "pairs are directional")

	store.SetMaxBorrow("latch/EN", 2.5)
	limit, ok := store.MaxBorrow("latch/EN")
	assert.True(t, ok)
	assert.Equal(t, 2.5, limit)
	_, ok = store.MaxBorrow("other/EN")
	assert.False(t, ok)

	store.DefineClock(a)
	assert.Same(t, a, store.Clock("a"))
	assert.Nil(t, store.Clock("missing"))
}
