// File: walker.go
// Role: Clock-tree pessimism walk behind a swappable seam.

package core

// ClkTreeWalker locates the clock-tree delay shared by a launch and a
// capture clock path. The returned value is the pessimism (late minus
// early delay) accumulated on the shared portion of the two clock trees;
// it is what clock-reconvergence pessimism removal credits back to a check.
//
// Implementations must be pure: callers memoize the result per path-end
// instance and rely on repeated calls being unnecessary.
type ClkTreeWalker interface {
	// CommonPessimism returns the pessimism accumulated on the longest
	// common prefix of the two paths' clock-network hop sequences.
	// Either path may be nil or unclocked, yielding zero.
	CommonPessimism(launch, capture *Path) float64
}

// PrefixWalker is the default ClkTreeWalker: it walks the two hop
// sequences from the clock root in lockstep and sums each hop's pessimism
// until the trees diverge.
type PrefixWalker struct{}

// CommonPessimism implements ClkTreeWalker.
//
// Complexity: O(min(len(launch.Hops), len(capture.Hops))).
func (PrefixWalker) CommonPessimism(launch, capture *Path) float64 {
	if launch == nil || capture == nil || launch.Clk == nil || capture.Clk == nil {
		return 0
	}
	var pessimism float64
	la, ca := launch.Clk.Hops, capture.Clk.Hops
	for i := 0; i < len(la) && i < len(ca); i++ {
		if la[i].Pin != ca[i].Pin {
			break
		}
		// The hop is shared; if the two paths recorded different bounds
		// for it, credit only the smaller spread.
		p := la[i].Pessimism()
		if cp := ca[i].Pessimism(); cp < p {
			p = cp
		}
		pessimism += p
	}

	return pessimism
}
