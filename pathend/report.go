// File: report.go
// Role: The Reporter contract and the Summary value handed to it. This
// layer computes numbers; rendering belongs to the Reporter owner.

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sta"
)

// Summary carries every value a report line needs, already computed.
// Short reports use the header fields; full reports use all of them.
type Summary struct {
	Type       Type
	TypeName   string
	Pin        string
	Transition core.RiseFall
	MinMax     core.MinMax

	DataArrival       float64
	DataArrivalOffset float64
	Required          float64
	RequiredOffset    float64
	Slack             float64

	// Full-report detail.
	SourceClkOffset  float64
	TargetClkTime    float64
	TargetClkArrival float64
	Uncertainty      float64
	McpAdjustment    float64
	Margin           float64
	Borrow           float64
	Crpr             float64
	ClkSkew          float64
	CheckRole        core.Role
	SourceClk        string
	TargetClk        string
}

// Reporter consumes computed endpoint summaries. Implementations decide
// formatting, destinations, and verbosity.
type Reporter interface {
	ReportShort(sum Summary)
	ReportFull(sum Summary)
}

// summarize assembles the Summary for any variant through the PathEnd
// contract, so report methods stay one-line delegations.
func summarize(e PathEnd, s *sta.Sta) Summary {
	sum := Summary{
		Type:       e.Type(),
		TypeName:   e.TypeName(),
		Pin:        e.Vertex(s).Pin,
		Transition: e.Transition(s),
		MinMax:     e.MinMax(s),

		DataArrival:       e.DataArrivalTime(s),
		DataArrivalOffset: e.DataArrivalTimeOffset(s),
		Required:          e.RequiredTime(s),
		RequiredOffset:    e.RequiredTimeOffset(s),
		Slack:             e.Slack(s),

		SourceClkOffset:  e.SourceClkOffset(s),
		TargetClkTime:    e.TargetClkTime(s),
		TargetClkArrival: e.TargetClkArrival(s),
		Uncertainty:      e.TargetClkUncertainty(s),
		McpAdjustment:    e.TargetClkMcpAdjustment(s),
		Margin:           e.Margin(s),
		Borrow:           e.Borrow(s),
		Crpr:             e.Crpr(s),
		ClkSkew:          e.ClkSkew(s),
		CheckRole:        e.CheckRole(s),
	}
	if edge := e.SourceClkEdge(s); edge != nil {
		sum.SourceClk = edge.Clock().Name()
	}
	if clk := e.TargetClk(s); clk != nil {
		sum.TargetClk = clk.Name()
	}

	return sum
}
