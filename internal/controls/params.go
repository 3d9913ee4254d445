package controls

// params.go — per-baseline parameter text for a control.
//
// Each baseline tab carries two free-text columns per control: the
// assignment/selection text and additional FedRAMP guidance. Whether two
// baselines "really" differ is decided on a whitespace-collapsed form so
// that cosmetic reflowing in the workbook never produces spurious
// per-baseline rows.

import "regexp"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Parameters holds one baseline's parameter text for one control. The zero
// value doubles as the canonical "absent" stand-in during comparison:
// a missing slot and a present-but-empty slot compare equal.
type Parameters struct {
	Assignment string
	Additional string
}

// Flatten returns a copy with every whitespace run collapsed to a single
// space in both fields. Used only for equivalence checks; display always
// uses the raw text.
func (p Parameters) Flatten() Parameters {
	return Parameters{
		Assignment: whitespaceRun.ReplaceAllString(p.Assignment, " "),
		Additional: whitespaceRun.ReplaceAllString(p.Additional, " "),
	}
}

// Equivalent reports whether p and q are equal after flattening.
func (p Parameters) Equivalent(q Parameters) bool {
	return p.Flatten() == q.Flatten()
}
