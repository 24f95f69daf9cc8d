// File: data_check.go
// Role: Non-clock data-to-data check (set_data_check).

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// DataCheck constrains one data signal against another: the reference
// path stands in for the capture clock, so the requirement tracks its
// propagated arrival rather than a clock edge. Setup-side data checks
// default to zero capture cycles (same-edge comparison), unlike register
// checks.
type DataCheck struct {
	clkConstrainedMcp
	dataClkPath *core.Path
	check       *sdc.DataCheck
}

// NewDataCheck builds a data-to-data check end. dataClkPath is the
// reference signal's path to the check point.
func NewDataCheck(path, dataClkPath *core.Path, check *sdc.DataCheck, mcp *sdc.MultiCyclePath, _ *sta.Sta) (*DataCheck, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if dataClkPath == nil {
		return nil, ErrNilClkPath
	}
	if check == nil {
		return nil, ErrNilException
	}
	role := core.RoleDataSetup
	if path.MM == core.Min {
		role = core.RoleDataHold
	}

	return &DataCheck{
		clkConstrainedMcp: newClkConstrainedMcp(path, dataClkPath, dataClkPath.ClkEdge, role, mcp, 0),
		dataClkPath:       dataClkPath,
		check:             check,
	}, nil
}

func (d *DataCheck) Type() Type        { return TypeDataCheck }
func (d *DataCheck) TypeName() string  { return TypeDataCheck.String() }
func (d *DataCheck) IsDataCheck() bool { return true }

func (d *DataCheck) Copy() PathEnd {
	cp := *d
	cp.path = d.path.Copy()
	cp.dataClkPath = d.dataClkPath.Copy()
	cp.clkPath = cp.dataClkPath

	return &cp
}

func (d *DataCheck) DataClkPath() *core.Path { return d.dataClkPath }

// Margin is the check's limit for the constrained transition on the
// queried side; unspecified combinations read as zero.
func (d *DataCheck) Margin(*sta.Sta) float64 {
	m, _ := d.check.Margin(d.path.RF, d.path.MM)

	return m
}

// TargetClkTime anchors the requirement on the reference signal's
// propagated arrival instead of a clock edge. Subtracting the reference
// clock delay keeps the arrival identity (time plus delay plus signed
// pessimism) intact for the shared required-time rule.
func (d *DataCheck) TargetClkTime(s *sta.Sta) float64 {
	return d.dataClkPath.Arrival - d.TargetClkDelay(s) + d.TargetClkMcpAdjustment(s)
}

func (d *DataCheck) DataArrivalTimeOffset(s *sta.Sta) float64 { return dataArrivalTimeOffset(d, s) }
func (d *DataCheck) TargetClkOffset(s *sta.Sta) float64       { return targetClkOffset(d, s) }
func (d *DataCheck) TargetClkArrival(s *sta.Sta) float64      { return targetClkArrival(d, s) }
func (d *DataCheck) RequiredTime(s *sta.Sta) float64          { return clkRequiredTime(d, s, true) }
func (d *DataCheck) RequiredTimeOffset(s *sta.Sta) float64    { return requiredTimeOffset(d, s) }
func (d *DataCheck) Slack(s *sta.Sta) float64                 { return clkSlack(d, s) }
func (d *DataCheck) SlackNoCrpr(s *sta.Sta) float64           { return clkSlackNoCrpr(d, s) }

func (d *DataCheck) ReportShort(r Reporter, s *sta.Sta) { r.ReportShort(summarize(d, s)) }
func (d *DataCheck) ReportFull(r Reporter, s *sta.Sta)  { r.ReportFull(summarize(d, s)) }
