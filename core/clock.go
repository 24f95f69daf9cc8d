// File: clock.go
// Role: Clock waveforms, clock edges, and per-clock uncertainty.

package core

import "fmt"

// Clock describes one periodic waveform: a name, a period, the nominal rise
// and fall times within the first cycle, and optional per-side uncertainty
// (set_clock_uncertainty applied directly to the clock).
//
// Clocks are owned by the constraint store and shared by reference; a Clock
// is immutable after construction.
type Clock struct {
	name        string
	period      float64
	riseTime    float64
	fallTime    float64
	uncertainty map[MinMax]float64

	riseEdge *ClockEdge
	fallEdge *ClockEdge
}

// ClockOption configures a Clock at construction.
type ClockOption func(*Clock)

// WithWaveform sets the nominal rise and fall edge times within the first
// cycle. The default waveform is rise at 0 and fall at period/2.
func WithWaveform(rise, fall float64) ClockOption {
	return func(c *Clock) {
		c.riseTime = rise
		c.fallTime = fall
	}
}

// WithUncertainty sets the clock's own uncertainty for one analysis side
// (Min = hold checks, Max = setup checks).
func WithUncertainty(mm MinMax, value float64) ClockOption {
	return func(c *Clock) {
		c.uncertainty[mm] = value
	}
}

// NewClock builds an immutable clock.
//
// Preconditions and validation (in order):
//  1. name must be non-empty (ErrEmptyClockName).
//  2. period must be positive (ErrBadPeriod).
//  3. both waveform edges must lie in [0, period) (ErrBadWaveform).
func NewClock(name string, period float64, opts ...ClockOption) (*Clock, error) {
	if name == "" {
		return nil, ErrEmptyClockName
	}
	if period <= 0 {
		return nil, fmt.Errorf("%w: clock %q period=%v", ErrBadPeriod, name, period)
	}
	c := &Clock{
		name:        name,
		period:      period,
		riseTime:    0,
		fallTime:    period / 2,
		uncertainty: make(map[MinMax]float64, 2),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.riseTime < 0 || c.riseTime >= period || c.fallTime < 0 || c.fallTime >= period {
		return nil, fmt.Errorf("%w: clock %q rise=%v fall=%v period=%v",
			ErrBadWaveform, name, c.riseTime, c.fallTime, period)
	}
	c.riseEdge = &ClockEdge{clk: c, rf: Rise, time: c.riseTime}
	c.fallEdge = &ClockEdge{clk: c, rf: Fall, time: c.fallTime}

	return c, nil
}

// Name returns the clock's name.
func (c *Clock) Name() string { return c.name }

// Period returns the clock's period.
func (c *Clock) Period() float64 { return c.period }

// EdgeTime returns the nominal time of the rf edge within the first cycle.
func (c *Clock) EdgeTime(rf RiseFall) float64 {
	if rf == Rise {
		return c.riseTime
	}

	return c.fallTime
}

// Edge returns the canonical first-cycle edge of the given direction. The
// two edges are interned at construction, so repeated calls return the
// same pointer and identity-keyed caches (the cycle-accounting cache) hit.
func (c *Clock) Edge(rf RiseFall) *ClockEdge {
	if rf == Rise {
		return c.riseEdge
	}

	return c.fallEdge
}

// PulseWidth returns the width of the pulse that opens with the rf edge:
// for Rise the high time (fall − rise, modulo the period), for Fall the
// low time.
func (c *Clock) PulseWidth(rf RiseFall) float64 {
	high := c.fallTime - c.riseTime
	if high < 0 {
		high += c.period
	}
	if rf == Rise {
		return high
	}

	return c.period - high
}

// Uncertainty returns the clock's own uncertainty for one analysis side and
// whether one was set.
func (c *Clock) Uncertainty(mm MinMax) (float64, bool) {
	u, ok := c.uncertainty[mm]

	return u, ok
}

// ClockEdge is one nominal edge of a clock: the clock, the transition
// direction, and the absolute nominal time of the edge's first occurrence.
// Edges are shared references into the owning clock and are never mutated.
type ClockEdge struct {
	clk  *Clock
	rf   RiseFall
	time float64
}

// Clock returns the owning clock.
func (e *ClockEdge) Clock() *Clock { return e.clk }

// RF returns the edge's transition direction.
func (e *ClockEdge) RF() RiseFall { return e.rf }

// Time returns the nominal time of the edge's first occurrence.
func (e *ClockEdge) Time() float64 { return e.time }

// Period returns the owning clock's period.
func (e *ClockEdge) Period() float64 { return e.clk.period }

// Opposite returns the clock's other edge.
func (e *ClockEdge) Opposite() *ClockEdge {
	return e.clk.Edge(e.rf.Opposite())
}

// PulseWidth returns the width of the pulse opened by this edge.
func (e *ClockEdge) PulseWidth() float64 {
	return e.clk.PulseWidth(e.rf)
}
