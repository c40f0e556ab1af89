package dbc

import (
	"fmt"
	"strings"
)

// Violation is the value passed to panic when a check fails.
// It's not meant to be handled, but it can be inspected with recover in tests or crash reporting.
type Violation struct {
	Kind Kind
	File string
	Line int
	Vars []Var
}

// Error satisfies the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("contract violation: %s at %s:%d", v.Kind, v.File, v.Line)
}

// Diagnostic renders the full violation message with the given [VarFormat].
// The vars section is omitted if there are no vars.
func (v *Violation) Diagnostic(format VarFormat) string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("panic: %s:\nfile: %s:%d\n", v.Kind, v.File, v.Line))
	if len(v.Vars) > 0 {
		buf.WriteString("vars:\n")
		buf.WriteString(format.format(v.Vars))
		buf.WriteString("\n")
	}
	return buf.String()
}
