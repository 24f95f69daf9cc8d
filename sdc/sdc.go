// File: sdc.go
// Role: The constraint store: clock registry, uncertainty settings,
// borrow limits, multicycle registry, and the cycle-accounting cache.
// Concurrency:
//   - Lookups may run from parallel evaluation goroutines; the accounting
//     cache and all registries are guarded by an RWMutex.

package sdc

import (
	"sync"

	"github.com/Logikable/OpenSTA/core"
)

type edgePair struct {
	src *core.ClockEdge
	tgt *core.ClockEdge
}

type clkPair struct {
	src *core.Clock
	tgt *core.Clock
	mm  core.MinMax
}

type mcpSlot struct {
	pin     string
	generic core.Role
}

// Sdc is the constraint store handed to the path-end calculator. The zero
// value is not usable; build one with NewSdc.
type Sdc struct {
	mu          sync.RWMutex
	clocks      map[string]*core.Clock
	acctings    map[edgePair]*CycleAccting
	interClkUnc map[clkPair]float64
	maxBorrow   map[string]float64
	mcps        map[mcpSlot]*MultiCyclePath
}

// NewSdc builds an empty constraint store.
func NewSdc() *Sdc {
	return &Sdc{
		clocks:      make(map[string]*core.Clock),
		acctings:    make(map[edgePair]*CycleAccting),
		interClkUnc: make(map[clkPair]float64),
		maxBorrow:   make(map[string]float64),
		mcps:        make(map[mcpSlot]*MultiCyclePath),
	}
}

// DefineClock registers a clock by name, replacing any previous definition.
func (s *Sdc) DefineClock(c *core.Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clocks[c.Name()] = c
}

// Clock returns the registered clock of the given name, or nil.
func (s *Sdc) Clock(name string) *core.Clock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.clocks[name]
}

// CycleAccting returns the launch/capture alignment for an edge pair,
// searching it on first use and caching it thereafter.
func (s *Sdc) CycleAccting(src, tgt *core.ClockEdge) (*CycleAccting, error) {
	key := edgePair{src: src, tgt: tgt}
	s.mu.RLock()
	ca, ok := s.acctings[key]
	s.mu.RUnlock()
	if ok {
		return ca, nil
	}

	ca, err := NewCycleAccting(src, tgt)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	// Another goroutine may have raced the search; keep the first result
	// so pointers stay stable.
	if prev, ok := s.acctings[key]; ok {
		ca = prev
	} else {
		s.acctings[key] = ca
	}
	s.mu.Unlock()

	return ca, nil
}

// SetInterClockUncertainty records set_clock_uncertainty -from src -to tgt
// for one analysis side. Registering the same clock on both sides defines
// an explicit same-clock value that replaces the clock's own uncertainty.
func (s *Sdc) SetInterClockUncertainty(src, tgt *core.Clock, mm core.MinMax, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interClkUnc[clkPair{src: src, tgt: tgt, mm: mm}] = value
}

// InterClockUncertainty returns the explicit pairwise uncertainty for a
// clock pair and side, and whether one was set.
func (s *Sdc) InterClockUncertainty(src, tgt *core.Clock, mm core.MinMax) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.interClkUnc[clkPair{src: src, tgt: tgt, mm: mm}]

	return v, ok
}

// SetMaxBorrow records set_max_time_borrow for a latch enable pin.
func (s *Sdc) SetMaxBorrow(pin string, limit float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxBorrow[pin] = limit
}

// MaxBorrow returns the explicit borrow limit for a pin and whether one
// was configured.
func (s *Sdc) MaxBorrow(pin string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.maxBorrow[pin]

	return v, ok
}

// AddMcp registers a resolved multicycle record for an endpoint pin. The
// record is indexed under each generic orientation it applies to, so a
// hold-side lookup never sees a setup-only multiplier.
func (s *Sdc) AddMcp(pin string, mcp *MultiCyclePath) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mcp.AppliesTo(core.RoleSetup) {
		s.mcps[mcpSlot{pin: pin, generic: core.RoleSetup}] = mcp
	}
	if mcp.AppliesTo(core.RoleHold) {
		s.mcps[mcpSlot{pin: pin, generic: core.RoleHold}] = mcp
	}
}

// McpFor returns the multicycle record applying to a pin for one generic
// orientation, or nil.
func (s *Sdc) McpFor(pin string, generic core.Role) *MultiCyclePath {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mcps[mcpSlot{pin: pin, generic: generic}]
}
