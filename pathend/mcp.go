// File: mcp.go
// Role: Multicycle-aware shared state: the (optional) multicycle exception
// reference and the capture-edge cycle adjustment it produces.

package pathend

import (
	"cmp"

	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// clkConstrainedMcp extends the clock-constrained state with a weak
// multicycle-exception reference and the variant's default setup cycle
// count (1 for ordinary checks, 0 for data checks).
type clkConstrainedMcp struct {
	clkConstrained
	mcp           *sdc.MultiCyclePath
	setupDefCycle int
}

func newClkConstrainedMcp(path, clkPath *core.Path, tgtEdge *core.ClockEdge, role core.Role, mcp *sdc.MultiCyclePath, setupDefCycle int) clkConstrainedMcp {
	return clkConstrainedMcp{
		clkConstrained: newClkConstrained(path, clkPath, tgtEdge, role),
		mcp:            mcp,
		setupDefCycle:  setupDefCycle,
	}
}

func (c *clkConstrainedMcp) MultiCyclePath() *sdc.MultiCyclePath { return c.mcp }
func (c *clkConstrainedMcp) SetupDefaultCycles() int             { return c.setupDefCycle }

// TargetClkMcpAdjustment resolves the multicycle record for the check's
// orientation — the held reference when it applies, else the store's
// counterpart record — and converts it into a capture-edge shift. Setup and
// hold multipliers are independent: a setup-only record never moves hold.
func (c *clkConstrainedMcp) TargetClkMcpAdjustment(s *sta.Sta) float64 {
	generic := c.role.Generic()
	mcp := c.roleMcp(generic, s)
	if generic == core.RoleHold {
		return checkHoldMcpAdjustment(c.tgtEdge, mcp)
	}

	return CheckSetupMcpAdjustment(c.path.ClkEdge, c.tgtEdge, mcp, c.setupDefCycle, s.Sdc())
}

// roleMcp returns the multicycle record applying to one orientation,
// preferring the held reference over a store lookup.
func (c *clkConstrainedMcp) roleMcp(generic core.Role, s *sta.Sta) *sdc.MultiCyclePath {
	if c.mcp != nil && c.mcp.AppliesTo(generic) {
		return c.mcp
	}

	return s.Sdc().McpFor(c.path.Vertex.Pin, generic)
}

// ExceptPathCmp orders by multicycle multiplier so ends that differ only
// in their exception sort deterministically.
func (c *clkConstrainedMcp) ExceptPathCmp(other PathEnd, _ *sta.Sta) int {
	return cmp.Compare(mcpMultiplier(c.mcp), mcpMultiplier(other.MultiCyclePath()))
}

func mcpMultiplier(mcp *sdc.MultiCyclePath) int {
	if mcp == nil {
		return 0
	}

	return mcp.Multiplier()
}
