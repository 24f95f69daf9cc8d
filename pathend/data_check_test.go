package pathend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/pathend"
	"github.com/Logikable/OpenSTA/sdc"
)

// TestDataCheck_Setup constrains one data signal against another: the
// requirement tracks the reference signal's propagated arrival, not a
// clock edge.
func TestDataCheck_Setup(t *testing.T) {
	s := newSta()
	clk := mustClock(t, "clk", 10)
	edge := clk.Edge(core.Rise)

	check, err := sdc.NewDataCheck("sel", "mux/D",
		sdc.WithDataMargin(core.Rise, core.Max, 0.4))
	require.NoError(t, err)

	data := mustPath(t, "mux/D", core.Rise, core.Max, 6.2, edge)
	ref := mustPath(t, "sel", core.Rise, core.Min, 7, edge)
	ref.Clk = &core.ClkInfo{Latency: 0.5, Propagated: true}

	end, err := pathend.NewDataCheck(data, ref, check, nil, s)
	require.NoError(t, err)

	assert.True(t, end.IsDataCheck())
	assert.Equal(t, pathend.TypeDataCheck, end.Type())
	assert.Equal(t, core.RoleDataSetup, end.CheckRole(s))
	assert.Equal(t, 0, end.SetupDefaultCycles(), "data checks compare same-edge by default")
	assert.Same(t, ref, end.DataClkPath())

	assert.InDelta(t, 0.4, end.Margin(s), 1e-9)
	assert.InDelta(t, 7.0, end.TargetClkArrival(s), 1e-9, "anchored on the reference arrival")
	assert.InDelta(t, 6.6, end.RequiredTime(s), 1e-9)
	assert.InDelta(t, 0.4, end.Slack(s), 1e-9)
}

// TestDataCheck_Hold orients the requirement the other way: the data must
// hold past the reference arrival plus margin.
func TestDataCheck_Hold(t *testing.T) {
	s := newSta()
	clk := mustClock(t, "clk", 10)
	edge := clk.Edge(core.Rise)

	check, err := sdc.NewDataCheck("sel", "mux/D",
		sdc.WithDataMargin(core.Rise, core.Min, 0.3))
	require.NoError(t, err)

	data := mustPath(t, "mux/D", core.Rise, core.Min, 7.5, edge)
	ref := mustPath(t, "sel", core.Rise, core.Max, 7, edge)

	end, err := pathend.NewDataCheck(data, ref, check, nil, s)
	require.NoError(t, err)

	assert.Equal(t, core.RoleDataHold, end.CheckRole(s))
	assert.InDelta(t, 7.3, end.RequiredTime(s), 1e-9)
	assert.InDelta(t, 0.2, end.Slack(s), 1e-9)
}

// TestDataCheck_SetupMulticycle shifts the reference anchor by whole
// target periods against the zero-cycle default.
func TestDataCheck_SetupMulticycle(t *testing.T) {
	s := newSta()
	clk := mustClock(t, "clk", 10)
	edge := clk.Edge(core.Rise)

	check, err := sdc.NewDataCheck("sel", "mux/D",
		sdc.WithDataMargin(core.Rise, core.Max, 0))
	require.NoError(t, err)

	mcp, err := sdc.NewMultiCyclePath(sdc.ApplySetup, 1)
	require.NoError(t, err)

	data := mustPath(t, "mux/D", core.Rise, core.Max, 6.2, edge)
	ref := mustPath(t, "sel", core.Rise, core.Min, 7, edge)

	end, err := pathend.NewDataCheck(data, ref, check, mcp, s)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, end.TargetClkMcpAdjustment(s), 1e-9, "one full cycle over the zero-cycle default")
	assert.InDelta(t, 17.0, end.RequiredTime(s), 1e-9)
}

// TestDataCheck_Validation rejects missing inputs.
func TestDataCheck_Validation(t *testing.T) {
	s := newSta()
	clk := mustClock(t, "clk", 10)
	data := mustPath(t, "mux/D", core.Rise, core.Max, 6, clk.Edge(core.Rise))
	ref := mustPath(t, "sel", core.Rise, core.Min, 7, clk.Edge(core.Rise))

	check, err := sdc.NewDataCheck("sel", "mux/D")
	require.NoError(t, err)

	_, err = pathend.NewDataCheck(data, nil, check, nil, s)
	assert.ErrorIs(t, err, pathend.ErrNilClkPath)

	_, err = pathend.NewDataCheck(data, ref, nil, nil, s)
	assert.ErrorIs(t, err, pathend.ErrNilException)
}
