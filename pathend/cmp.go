// File: cmp.go
// Role: Deterministic criticality ordering and ranking helpers.

package pathend

import (
	"cmp"
	"slices"

	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sta"
)

// CmpSlack orders two ends by criticality: smaller slack first.
// Constrained ends always precede unconstrained ones; among
// unconstrained ends (both infinite slack) arrival order decides.
func CmpSlack(a, b PathEnd, s *sta.Sta) int {
	au, bu := a.IsUnconstrained(), b.IsUnconstrained()
	switch {
	case au && bu:
		return CmpArrival(a, b, s)
	case au:
		return 1
	case bu:
		return -1
	}

	return cmp.Compare(a.Slack(s), b.Slack(s))
}

// CmpNoCrpr is CmpSlack with pessimism removal forced off.
func CmpNoCrpr(a, b PathEnd, s *sta.Sta) int {
	au, bu := a.IsUnconstrained(), b.IsUnconstrained()
	switch {
	case au && bu:
		return CmpArrival(a, b, s)
	case au:
		return 1
	case bu:
		return -1
	}

	return cmp.Compare(a.SlackNoCrpr(s), b.SlackNoCrpr(s))
}

// CmpArrival orders by data arrival with the critical direction per
// analysis side: on the max side later arrivals are worse, on the min
// side earlier ones are. Ends from different analysis sides share no
// critical direction, so they order by side (max first); without that
// rule the result would depend on which end came first.
func CmpArrival(a, b PathEnd, s *sta.Sta) int {
	amm, bmm := a.MinMax(s), b.MinMax(s)
	if amm != bmm {
		if amm == core.Max {
			return -1
		}

		return 1
	}
	aa, ba := a.DataArrivalTimeOffset(s), b.DataArrivalTimeOffset(s)
	if amm == core.Max {
		return cmp.Compare(ba, aa)
	}

	return cmp.Compare(aa, ba)
}

// Cmp is the total criticality order: slack, then arrival, then endpoint
// pin name, then transition, then the exception refinement. Equal ends
// compare equal, so sorting is deterministic across runs.
func Cmp(a, b PathEnd, s *sta.Sta) int {
	if c := CmpSlack(a, b, s); c != 0 {
		return c
	}
	if c := CmpArrival(a, b, s); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Vertex(s).Pin, b.Vertex(s).Pin); c != 0 {
		return c
	}
	if c := cmp.Compare(int(a.Transition(s)), int(b.Transition(s))); c != 0 {
		return c
	}

	return a.ExceptPathCmp(b, s)
}

// Less reports whether a is more critical than b under Cmp.
func Less(a, b PathEnd, s *sta.Sta) bool {
	return Cmp(a, b, s) < 0
}

// Sort orders ends most-critical-first, stably.
func Sort(ends []PathEnd, s *sta.Sta) {
	slices.SortStableFunc(ends, func(a, b PathEnd) int {
		return Cmp(a, b, s)
	})
}

// TopN returns the n most critical ends as a sorted copy; the input is
// not modified. n larger than len(ends) returns them all.
func TopN(ends []PathEnd, n int, s *sta.Sta) []PathEnd {
	sorted := slices.Clone(ends)
	Sort(sorted, s)
	if n < len(sorted) {
		sorted = sorted[:n:n]
	}

	return sorted
}
