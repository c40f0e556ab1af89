package dbc

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Debugger may be implemented by types that want to control how they're rendered in a variable dump.
type Debugger interface {
	DebugString() string
}

// Var is a named value that is reported when a check fails.
type Var struct {
	Name  string
	Value any
}

// V creates a [Var].
// The name should usually match the identifier at the call site.
func V(name string, value any) Var {
	return Var{Name: name, Value: value}
}

// String renders the Var as name=value.
func (v Var) String() string {
	return v.Name + "=" + render(v.Value)
}

// render must not panic, since it runs while a violation is being reported.
// Nil pointers and methods that panic fall back to %#v.
func render(val any) (s string) {
	if val == nil {
		return "nil"
	}
	if isNilPointer(val) {
		return fmt.Sprintf("%#v", val)
	}
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("%#v", val)
		}
	}()
	switch val := val.(type) {
	case Debugger:
		return val.DebugString()
	case error:
		return strconv.Quote(val.Error())
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%#v", val)
	}
}

func isNilPointer(val any) bool {
	rv := reflect.ValueOf(val)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// FormatVars renders each [Var] as name=value, separated by a single space, in the order given.
func FormatVars(first Var, rest ...Var) string {
	return formatInline(append([]Var{first}, rest...))
}

// FormatVarsIndented renders each [Var] on its own indented line.
// Values are dumped with their types and nested structure, which is more helpful for large values.
func FormatVarsIndented(first Var, rest ...Var) string {
	return formatIndented(append([]Var{first}, rest...))
}

func formatInline(vars []Var) string {
	var buf strings.Builder
	for i, v := range vars {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(v.String())
	}
	return buf.String()
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func formatIndented(vars []Var) string {
	var buf strings.Builder
	for i, v := range vars {
		if i > 0 {
			buf.WriteByte('\n')
		}
		dump := strings.TrimSuffix(dumper.Sdump(v.Value), "\n")
		dump = strings.ReplaceAll(dump, "\n", "\n  ")
		buf.WriteString("  " + v.Name + "=" + dump)
	}
	return buf.String()
}

// VarFormat selects how variables are rendered in a violation diagnostic.
type VarFormat int

const (
	FormatInline   VarFormat = iota // FormatInline uses FormatVars.
	FormatIndented                  // FormatIndented uses FormatVarsIndented.
)

// ParseVarFormat maps "inline" or "indented" to a [VarFormat], case-insensitive.
func ParseVarFormat(s string) (VarFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inline":
		return FormatInline, nil
	case "indented":
		return FormatIndented, nil
	default:
		return FormatInline, fmt.Errorf("%w: unknown var format '%s'", ErrConfig, s)
	}
}

func (f VarFormat) format(vars []Var) string {
	if f == FormatIndented {
		return formatIndented(vars)
	}
	return formatInline(vars)
}
