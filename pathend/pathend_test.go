package pathend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/pathend"
	"github.com/Logikable/OpenSTA/sdc"
)

// TestUnconstrained reports infinite slack and no requirement in either
// direction.
func TestUnconstrained(t *testing.T) {
	s := newSta()
	clk := mustClock(t, "clk", 10)

	late := mustPath(t, "dangle", core.Rise, core.Max, 4, clk.Edge(core.Rise))
	end, err := pathend.NewUnconstrained(late)
	require.NoError(t, err)

	assert.True(t, end.IsUnconstrained())
	assert.Equal(t, pathend.TypeUnconstrained, end.Type())
	assert.Equal(t, "unconstrained", end.TypeName())

	assert.Equal(t, core.Inf, end.Slack(s))
	assert.Equal(t, core.Inf, end.RequiredTime(s))
	assert.Equal(t, core.RoleNone, end.CheckRole(s))
	assert.Nil(t, end.TargetClk(s))

	early := mustPath(t, "dangle", core.Rise, core.Min, 4, clk.Edge(core.Rise))
	end2, err := pathend.NewUnconstrained(early)
	require.NoError(t, err)
	assert.Equal(t, -core.Inf, end2.RequiredTime(s), "never too early on the min side")
	assert.Equal(t, core.Inf, end2.Slack(s))

	_, err = pathend.NewUnconstrained(nil)
	assert.ErrorIs(t, err, pathend.ErrNilPath)
}

// TestPredicatesMatchType builds one end per variant and verifies exactly
// the predicate for its type answers true.
func TestPredicatesMatchType(t *testing.T) {
	s := newSta()
	clk := mustClock(t, "clk", 10, core.WithWaveform(0, 8))
	edge := clk.Edge(core.Rise)

	data := mustPath(t, "ff2/D", core.Rise, core.Max, 4, edge)
	capture := clkPathOf(t, "ff2/CK", edge, 0, 0.5)
	ref := mustPath(t, "sel", core.Rise, core.Min, 7, edge)

	od, err := sdc.NewOutputDelay("out", edge, sdc.WithDelayValue(core.Max, 3))
	require.NoError(t, err)
	dchk, err := sdc.NewDataCheck("sel", "ff2/D")
	require.NoError(t, err)

	unconstrained, err := pathend.NewUnconstrained(data)
	require.NoError(t, err)
	check, err := pathend.NewCheck(data, setupArc(1), nil, capture, nil, s)
	require.NoError(t, err)
	latch, err := pathend.NewLatchCheck(data, setupArc(1), nil, capture, nil, nil, nil, s)
	require.NoError(t, err)
	outDelay, err := pathend.NewOutputDelay(data, od, nil, nil, s)
	require.NoError(t, err)
	gated, err := pathend.NewGatedClock(data, capture, 0.5, nil, s)
	require.NoError(t, err)
	dataCheck, err := pathend.NewDataCheck(data, ref, dchk, nil, s)
	require.NoError(t, err)
	pdEnd, err := pathend.NewPathDelayEnd(data, sdc.NewPathDelay(core.Max, 5), s)
	require.NoError(t, err)

	ends := []pathend.PathEnd{unconstrained, check, latch, outDelay, gated, dataCheck, pdEnd}
	for _, e := range ends {
		predicates := map[pathend.Type]bool{
			pathend.TypeUnconstrained: e.IsUnconstrained(),
			pathend.TypeCheck:         e.IsCheck(),
			pathend.TypeLatchCheck:    e.IsLatchCheck(),
			pathend.TypeOutputDelay:   e.IsOutputDelay(),
			pathend.TypeGatedClock:    e.IsGatedClock(),
			pathend.TypeDataCheck:     e.IsDataCheck(),
			pathend.TypePathDelay:     e.IsPathDelay(),
		}
		for typ, answer := range predicates {
			assert.Equal(t, typ == e.Type(), answer,
				"%s predicate for %s", typ, e.Type())
		}
		assert.Equal(t, e.Type().String(), e.TypeName())
	}
}

// TestCopyPreservesType verifies Copy round-trips the concrete variant.
func TestCopyPreservesType(t *testing.T) {
	s := newSta()
	clk := mustClock(t, "clk", 10)
	edge := clk.Edge(core.Rise)

	data := mustPath(t, "ff2/D", core.Rise, core.Max, 4, edge)
	capture := clkPathOf(t, "ff2/CK", edge, 0, 0.5)

	check, err := pathend.NewCheck(data, setupArc(1), nil, capture, nil, s)
	require.NoError(t, err)

	dup := check.Copy()
	assert.Equal(t, check.Type(), dup.Type())
	assert.InDelta(t, check.Slack(s), dup.Slack(s), 1e-9)
	require.NotSame(t, check.Path(), dup.Path())
	require.NotSame(t, check.TargetClkPath(), dup.TargetClkPath())
}
