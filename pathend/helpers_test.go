package pathend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// Shared fixtures for the endpoint tests.

func mustClock(t *testing.T, name string, period float64, opts ...core.ClockOption) *core.Clock {
	t.Helper()
	clk, err := core.NewClock(name, period, opts...)
	require.NoError(t, err)

	return clk
}

func mustPath(t *testing.T, pin string, rf core.RiseFall, mm core.MinMax, arrival float64, edge *core.ClockEdge) *core.Path {
	t.Helper()
	p, err := core.NewPath(&core.Vertex{Pin: pin}, rf, mm, arrival)
	require.NoError(t, err)
	p.ClkEdge = edge

	return p
}

// clkPathOf builds a capture clock path whose network contributes the
// given insertion and latency.
func clkPathOf(t *testing.T, pin string, edge *core.ClockEdge, insertion, latency float64) *core.Path {
	t.Helper()
	p := mustPath(t, pin, core.Rise, core.Min, insertion+latency, edge)
	p.Vertex.IsClk = true
	p.Clk = &core.ClkInfo{Insertion: insertion, Latency: latency, Propagated: true}

	return p
}

func setupArc(margin float64) *core.TimingArc {
	return core.NewTimingArc(core.RoleSetup, core.Rise, core.Rise,
		map[core.RiseFall]float64{core.Rise: margin, core.Fall: margin})
}

func holdArc(margin float64) *core.TimingArc {
	return core.NewTimingArc(core.RoleHold, core.Rise, core.Rise,
		map[core.RiseFall]float64{core.Rise: margin, core.Fall: margin})
}

func newSta() *sta.Sta {
	return sta.NewSta(sdc.NewSdc())
}

// countingWalker counts pessimism walks to observe memoization.
type countingWalker struct {
	calls     int
	pessimism float64
}

func (w *countingWalker) CommonPessimism(_, _ *core.Path) float64 {
	w.calls++

	return w.pessimism
}
