package controls

// merge.go — reconciling the three per-baseline maps into one.
//
// The merged set covers the union of identifiers. Narrative text (name,
// description, discussion) keeps a single value per control, sourced from
// the High record; when a control exists only in lower baselines, the
// narrative falls back through Moderate then Low rather than dropping the
// record or leaving it blank. Parameter slots are copied per baseline and
// stay independent.

// Merge combines per-baseline control maps into one merged set. Missing
// baselines (nil or absent map entries, e.g. when a tab was not found in
// the workbook) are handled gracefully. Inputs are never mutated.
func Merge(perBaseline map[Baseline]*Controls) *Controls {
	union := make(map[ControlID]bool)
	for _, cs := range perBaseline {
		if cs == nil {
			continue
		}
		for id := range cs.ByID {
			union[id] = true
		}
	}

	merged := NewControls()
	for id := range union {
		m := &Control{ID: id}

		// Narrative truth source: High, then Moderate, then Low.
		for _, level := range AllBaselines {
			src := perBaseline[level].Get(id)
			if src == nil {
				continue
			}
			m.Name = src.Name
			m.Description = src.Description
			m.Discussion = src.Discussion
			break
		}

		for _, level := range AllBaselines {
			src := perBaseline[level].Get(id)
			if src == nil {
				continue
			}
			if p := src.Parameters[level]; p != nil {
				v := *p
				m.Parameters[level] = &v
			}
		}

		merged.ByID[id] = m
	}
	return merged
}
