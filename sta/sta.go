// Package sta defines the analysis context threaded through every path-end
// computation: the corner/mode being analyzed, the constraint store, and
// the clock-tree walker used for pessimism removal.
//
// One Sta describes one analysis point; multi-corner orchestration lives a
// layer up and simply builds one context per corner. A context is immutable
// after construction and safe to share across evaluation goroutines.
package sta

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
)

// Sta is one analysis context. Build with NewSta; the zero value has no
// constraint store and is not usable.
type Sta struct {
	corner string
	sdc    *sdc.Sdc
	walker core.ClkTreeWalker
}

// Option configures an analysis context.
type Option func(*Sta)

// WithCorner names the analysis corner (for example "slow_125c").
func WithCorner(name string) Option {
	return func(s *Sta) { s.corner = name }
}

// WithWalker replaces the default clock-tree walker. Passing nil disables
// pessimism removal entirely (every CRPR reads as zero).
func WithWalker(w core.ClkTreeWalker) Option {
	return func(s *Sta) { s.walker = w }
}

// NewSta builds an analysis context over a constraint store. The default
// walker is core.PrefixWalker.
func NewSta(store *sdc.Sdc, opts ...Option) *Sta {
	s := &Sta{
		corner: "default",
		sdc:    store,
		walker: core.PrefixWalker{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Corner returns the analysis corner name.
func (s *Sta) Corner() string { return s.corner }

// Sdc returns the constraint store.
func (s *Sta) Sdc() *sdc.Sdc { return s.sdc }

// CommonClkPessimism returns the clock-tree pessimism shared by a launch
// and capture clock path, or zero when pessimism removal is disabled.
func (s *Sta) CommonClkPessimism(launch, capture *core.Path) float64 {
	if s.walker == nil {
		return 0
	}

	return s.walker.CommonPessimism(launch, capture)
}
