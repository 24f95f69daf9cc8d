// File: exceptions.go
// Role: Timing-exception records: multicycle, path delay, output delay,
// and data-to-data checks. All records are immutable after construction.

package sdc

import (
	"errors"
	"fmt"

	"github.com/Logikable/OpenSTA/core"
)

// Sentinel errors for exception-record construction.
var (
	// ErrBadMultiplier indicates a negative multicycle multiplier.
	ErrBadMultiplier = errors.New("sdc: multicycle multiplier must be non-negative")

	// ErrEmptyPin indicates an exception record referencing an empty pin name.
	ErrEmptyPin = errors.New("sdc: pin name is empty")

	// ErrNilClockEdge indicates cycle accounting requested for a nil edge.
	ErrNilClockEdge = errors.New("sdc: clock edge is nil")
)

// ApplyTo selects which check orientation a multicycle record moves.
type ApplyTo int

const (
	// ApplySetup moves only the setup capture edge.
	ApplySetup ApplyTo = iota
	// ApplyHold moves only the hold capture edge.
	ApplyHold
	// ApplyBoth moves both.
	ApplyBoth
)

// MultiCyclePath is a set_multicycle_path record: a cycle multiplier and
// the check orientation it applies to. A setup-only multiplier never moves
// the hold check and vice versa.
type MultiCyclePath struct {
	applyTo    ApplyTo
	multiplier int
}

// NewMultiCyclePath builds a multicycle record.
//
// Preconditions:
//  1. multiplier must be non-negative (ErrBadMultiplier).
func NewMultiCyclePath(applyTo ApplyTo, multiplier int) (*MultiCyclePath, error) {
	if multiplier < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMultiplier, multiplier)
	}

	return &MultiCyclePath{applyTo: applyTo, multiplier: multiplier}, nil
}

// AppliesTo reports whether the record moves checks of the given generic
// orientation (core.RoleSetup or core.RoleHold).
func (m *MultiCyclePath) AppliesTo(generic core.Role) bool {
	switch m.applyTo {
	case ApplyBoth:
		return true
	case ApplySetup:
		return generic == core.RoleSetup
	default:
		return generic == core.RoleHold
	}
}

// Multiplier returns the record's cycle multiplier.
func (m *MultiCyclePath) Multiplier() int { return m.multiplier }

// PathDelay is a set_min_delay/set_max_delay record: an explicit required
// value that overrides the default clock-derived required-time derivation.
type PathDelay struct {
	mm               core.MinMax
	delay            float64
	ignoreClkLatency bool
}

// PathDelayOption configures a PathDelay record.
type PathDelayOption func(*PathDelay)

// WithIgnoreClkLatency marks the record as -ignore_clk_latency: the source
// clock arrival is captured once when the path end is built and frozen
// thereafter.
func WithIgnoreClkLatency() PathDelayOption {
	return func(pd *PathDelay) { pd.ignoreClkLatency = true }
}

// NewPathDelay builds a min/max-delay record. mm selects the orientation:
// core.Max for set_max_delay, core.Min for set_min_delay.
func NewPathDelay(mm core.MinMax, delay float64, opts ...PathDelayOption) *PathDelay {
	pd := &PathDelay{mm: mm, delay: delay}
	for _, opt := range opts {
		opt(pd)
	}

	return pd
}

// MinMax returns the record's orientation.
func (pd *PathDelay) MinMax() core.MinMax { return pd.mm }

// Delay returns the record's explicit delay value.
func (pd *PathDelay) Delay() float64 { return pd.delay }

// IgnoreClkLatency reports whether -ignore_clk_latency was given.
func (pd *PathDelay) IgnoreClkLatency() bool { return pd.ignoreClkLatency }

// OutputDelay is a set_output_delay record at a primary output, optionally
// referenced to another pin whose clock path supplies the capture timing.
type OutputDelay struct {
	pin     string
	clkEdge *core.ClockEdge
	refPin  string
	delays  map[core.MinMax]float64
}

// OutputDelayOption configures an OutputDelay record.
type OutputDelayOption func(*OutputDelay)

// WithDelayValue sets the external delay for one orientation
// (core.Max for -max, core.Min for -min).
func WithDelayValue(mm core.MinMax, value float64) OutputDelayOption {
	return func(od *OutputDelay) { od.delays[mm] = value }
}

// WithRefPin references the record to another pin; the path end then
// resolves capture timing and pessimism against that pin's clock path.
func WithRefPin(pin string) OutputDelayOption {
	return func(od *OutputDelay) { od.refPin = pin }
}

// NewOutputDelay builds an output-delay record against the given clock edge.
//
// Preconditions:
//  1. pin must be non-empty (ErrEmptyPin).
func NewOutputDelay(pin string, clkEdge *core.ClockEdge, opts ...OutputDelayOption) (*OutputDelay, error) {
	if pin == "" {
		return nil, ErrEmptyPin
	}
	od := &OutputDelay{pin: pin, clkEdge: clkEdge, delays: make(map[core.MinMax]float64, 2)}
	for _, opt := range opts {
		opt(od)
	}

	return od, nil
}

// Pin returns the constrained output pin.
func (od *OutputDelay) Pin() string { return od.pin }

// ClkEdge returns the record's reference clock edge (nil when unreferenced).
func (od *OutputDelay) ClkEdge() *core.ClockEdge { return od.clkEdge }

// RefPin returns the reference pin name, empty when none was given.
func (od *OutputDelay) RefPin() string { return od.refPin }

// HasRefPin reports whether a reference pin was given.
func (od *OutputDelay) HasRefPin() bool { return od.refPin != "" }

// Delay returns the external delay for one orientation and whether it was set.
func (od *OutputDelay) Delay(mm core.MinMax) (float64, bool) {
	v, ok := od.delays[mm]

	return v, ok
}

// DataCheck is a set_data_check record: a setup/hold-style margin between
// two non-clock pins, looked up by the constrained transition and side.
type DataCheck struct {
	fromPin string
	toPin   string
	margins map[core.RiseFall]map[core.MinMax]float64
}

// DataCheckOption configures a DataCheck record.
type DataCheckOption func(*DataCheck)

// WithDataMargin sets the margin for one constrained transition and side.
func WithDataMargin(rf core.RiseFall, mm core.MinMax, margin float64) DataCheckOption {
	return func(dc *DataCheck) {
		if dc.margins[rf] == nil {
			dc.margins[rf] = make(map[core.MinMax]float64, 2)
		}
		dc.margins[rf][mm] = margin
	}
}

// NewDataCheck builds a data-to-data check record between two pins.
//
// Preconditions:
//  1. both pin names must be non-empty (ErrEmptyPin).
func NewDataCheck(fromPin, toPin string, opts ...DataCheckOption) (*DataCheck, error) {
	if fromPin == "" || toPin == "" {
		return nil, ErrEmptyPin
	}
	dc := &DataCheck{
		fromPin: fromPin,
		toPin:   toPin,
		margins: make(map[core.RiseFall]map[core.MinMax]float64, 2),
	}
	for _, opt := range opts {
		opt(dc)
	}

	return dc, nil
}

// FromPin returns the reference ("data clock") pin.
func (dc *DataCheck) FromPin() string { return dc.fromPin }

// ToPin returns the constrained pin.
func (dc *DataCheck) ToPin() string { return dc.toPin }

// Margin returns the margin for the constrained transition and side, and
// whether one was set.
func (dc *DataCheck) Margin(rf core.RiseFall, mm core.MinMax) (float64, bool) {
	row, ok := dc.margins[rf]
	if !ok {
		return 0, false
	}
	v, ok := row[mm]

	return v, ok
}
