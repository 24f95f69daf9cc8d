package pathend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/pathend"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// TestCrpr_Memoized proves the pessimism walk runs at most once per end,
// no matter how many slack reads follow.
func TestCrpr_Memoized(t *testing.T) {
	walker := &countingWalker{pessimism: 0.1}
	s := sta.NewSta(sdc.NewSdc(), sta.WithWalker(walker))

	clk := mustClock(t, "clk", 10)
	edge := clk.Edge(core.Rise)

	data := mustPath(t, "ff2/D", core.Rise, core.Max, 4, edge)
	capture := clkPathOf(t, "ff2/CK", edge, 0, 0.5)

	end, err := pathend.NewCheck(data, setupArc(1), nil, capture, nil, s)
	require.NoError(t, err)

	for range 10 {
		end.Slack(s)
		end.Crpr(s)
		end.RequiredTime(s)
	}

	assert.Equal(t, 1, walker.calls, "memo absorbs repeated reads")
	assert.InDelta(t, 0.1, end.Crpr(s), 1e-9)
}

// TestCrpr_HoldSign verifies the signed correction tightens hold instead
// of relaxing it.
func TestCrpr_HoldSign(t *testing.T) {
	walker := &countingWalker{pessimism: 0.2}
	s := sta.NewSta(sdc.NewSdc(), sta.WithWalker(walker))

	clk := mustClock(t, "clk", 10)
	edge := clk.Edge(core.Rise)

	data := mustPath(t, "ff2/D", core.Rise, core.Min, 1, edge)
	capture := clkPathOf(t, "ff2/CK", edge, 0, 0)

	end, err := pathend.NewCheck(data, holdArc(0), nil, capture, nil, s)
	require.NoError(t, err)

	assert.InDelta(t, 0.2, end.Crpr(s), 1e-9, "raw pessimism is unsigned")
	assert.InDelta(t, -0.2, end.CheckCrpr(s), 1e-9)
	assert.InDelta(t, -0.2, end.RequiredTime(s), 1e-9)
	assert.InDelta(t, 1.2, end.Slack(s), 1e-9)
	assert.InDelta(t, 1.0, end.SlackNoCrpr(s), 1e-9)
}

// TestCrpr_DisabledWalker turns removal off through the session option.
func TestCrpr_DisabledWalker(t *testing.T) {
	s := sta.NewSta(sdc.NewSdc(), sta.WithWalker(nil))

	clk := mustClock(t, "clk", 10)
	edge := clk.Edge(core.Rise)

	data := mustPath(t, "ff2/D", core.Rise, core.Max, 4, edge)
	capture := clkPathOf(t, "ff2/CK", edge, 0, 0)

	end, err := pathend.NewCheck(data, setupArc(0), nil, capture, nil, s)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, end.Crpr(s), 1e-9)
	assert.InDelta(t, end.Slack(s), end.SlackNoCrpr(s), 1e-9)
}
