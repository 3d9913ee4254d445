package controls

// control.go — Baseline enumeration, Control, and the Controls collection.
//
// A Control carries shared narrative text (name, description, discussion)
// plus up to three per-baseline parameter slots. Slots live in a fixed-size
// array indexed by Baseline; a nil entry means the baseline's tab has no
// row for this control, which is distinct from a present-but-empty
// Parameters value everywhere except parameter comparison.

import "sort"

// Baseline is one of the three FedRAMP control-impact levels. The closed
// set and its order (High, Moderate, Low) is fixed: it is both the tab
// order in the source workbook and the detail-row order in the report.
type Baseline int

const (
	High Baseline = iota
	Moderate
	Low

	numBaselines = 3
)

// AllBaselines lists every baseline in canonical order.
var AllBaselines = [numBaselines]Baseline{High, Moderate, Low}

// TabName returns the worksheet title carrying this baseline in the
// published workbook.
func (b Baseline) TabName() string {
	switch b {
	case High:
		return "High Baseline"
	case Moderate:
		return "Moderate Baseline"
	case Low:
		return "Low Baseline"
	}
	return ""
}

// Short returns the one-word label used in report cells and row classes.
func (b Baseline) Short() string {
	switch b {
	case High:
		return "High"
	case Moderate:
		return "Moderate"
	case Low:
		return "Low"
	}
	return ""
}

// Control is one merged or per-baseline control record.
type Control struct {
	ID          ControlID
	Name        string
	Description string
	Discussion  string

	// Parameters is indexed by Baseline; nil = that baseline has no row
	// for this control.
	Parameters [numBaselines]*Parameters
}

// clone returns a deep copy; parameter slots are copied, not shared.
func (c *Control) clone() *Control {
	dup := &Control{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Discussion:  c.Discussion,
	}
	for i, p := range c.Parameters {
		if p != nil {
			v := *p
			dup.Parameters[i] = &v
		}
	}
	return dup
}

// DistinctParameters reports whether the control's populated baselines
// carry substantively different parameter text. Slots are flattened before
// comparison, an absent slot compares as empty, and order is irrelevant:
// the control is "distinct" iff more than one unique flattened value
// remains among the populated slots.
func (c *Control) DistinctParameters() bool {
	seen := make(map[Parameters]bool, numBaselines)
	for _, p := range c.Parameters {
		if p == nil {
			continue
		}
		seen[p.Flatten()] = true
	}
	return len(seen) > 1
}

// FirstParameters returns the first populated slot in baseline order, or
// nil when no baseline has one. Used for the single shared parameter cell
// of a no-variation control.
func (c *Control) FirstParameters() *Parameters {
	for _, p := range c.Parameters {
		if p != nil {
			return p
		}
	}
	return nil
}

// WithoutBaseline returns a copy of the control with level's parameter
// slot cleared. The receiver is not modified.
func (c *Control) WithoutBaseline(level Baseline) *Control {
	dup := c.clone()
	dup.Parameters[level] = nil
	return dup
}

// Controls is a set of controls keyed by identifier.
type Controls struct {
	ByID map[ControlID]*Control
}

// NewControls returns an empty collection.
func NewControls() *Controls {
	return &Controls{ByID: make(map[ControlID]*Control)}
}

// Get returns the control for id, or nil.
func (cs *Controls) Get(id ControlID) *Control {
	if cs == nil {
		return nil
	}
	return cs.ByID[id]
}

// Len returns the number of controls in the set.
func (cs *Controls) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.ByID)
}

// SortedIDs returns every identifier in ascending ControlID order. Display
// order is always this, never insertion order.
func (cs *Controls) SortedIDs() []ControlID {
	ids := make([]ControlID, 0, cs.Len())
	for id := range cs.ByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

// WithoutBaseline returns a copy of the set with level's parameter slot
// cleared on every control. Used to derive the High-Moderate and
// Moderate-Low report views from the full merged set.
func (cs *Controls) WithoutBaseline(level Baseline) *Controls {
	out := NewControls()
	for id, c := range cs.ByID {
		out.ByID[id] = c.WithoutBaseline(level)
	}
	return out
}
