package controls

// id.go — ControlID: the structured NIST control identifier.
//
// A control identifier like "AC-2" or "AC-2 (1)" is a subject code, a
// control number, and an optional enhancement subnumber. Identifiers order
// lexicographically by (subject, number, subnumber), which is the display
// order of every report.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// idPattern matches the first identifier occurrence anywhere in a cell
// value: a word code, a dash, digits, optionally " (digits)".
var idPattern = regexp.MustCompile(`(\w+)-(\d+)(?:\s+\((\d+)\))?`)

// ControlID identifies a single control. The zero value is empty (no
// subject, number 0) and is never stored in a Controls map.
type ControlID struct {
	Subject   string
	Number    uint8
	Subnumber uint8 // 0 = no enhancement
}

// IDParseError reports that a cell value contained no parseable control
// identifier, or a numeric component outside the representable range.
type IDParseError struct {
	Input string
	Cause error
}

func (e *IDParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse control id %q: %v", e.Input, e.Cause)
	}
	return fmt.Sprintf("parse control id %q: no identifier found", e.Input)
}

func (e *IDParseError) Unwrap() error { return e.Cause }

// ParseControlID extracts the first identifier match anywhere in s.
// The match is not anchored: "AC-2 Account Management" parses as AC-2.
func ParseControlID(s string) (ControlID, error) {
	m := idPattern.FindStringSubmatch(s)
	if m == nil {
		return ControlID{}, &IDParseError{Input: s}
	}
	number, err := strconv.ParseUint(m[2], 10, 8)
	if err != nil {
		return ControlID{}, &IDParseError{Input: s, Cause: err}
	}
	var subnumber uint64
	if m[3] != "" {
		subnumber, err = strconv.ParseUint(m[3], 10, 8)
		if err != nil {
			return ControlID{}, &IDParseError{Input: s, Cause: err}
		}
	}
	return ControlID{
		Subject:   m[1],
		Number:    uint8(number),
		Subnumber: uint8(subnumber),
	}, nil
}

// IsEmpty reports whether the identifier is the unusable zero-ish form.
// Rows that parse to an empty identifier are dropped, never stored.
func (id ControlID) IsEmpty() bool {
	return id.Subject == "" || id.Number == 0
}

// String renders the canonical display form: "AC-2", or "AC-2 (1)" when an
// enhancement subnumber is present.
func (id ControlID) String() string {
	if id.Subnumber > 0 {
		return fmt.Sprintf("%s-%d (%d)", id.Subject, id.Number, id.Subnumber)
	}
	return fmt.Sprintf("%s-%d", id.Subject, id.Number)
}

// Compare orders identifiers lexicographically by (Subject, Number,
// Subnumber). Returns -1, 0, or 1.
func (id ControlID) Compare(other ControlID) int {
	if c := strings.Compare(id.Subject, other.Subject); c != 0 {
		return c
	}
	if id.Number != other.Number {
		if id.Number < other.Number {
			return -1
		}
		return 1
	}
	if id.Subnumber != other.Subnumber {
		if id.Subnumber < other.Subnumber {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether id sorts before other.
func (id ControlID) Less(other ControlID) bool {
	return id.Compare(other) < 0
}
