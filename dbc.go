//go:build !nodbc

package dbc

import (
	"runtime"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable turns every check into a no-op for the whole process until Enable is called.
// While disabled, conditions passed to RequireFunc and EnsureFunc aren't called, and Invariant doesn't call IsValid.
// Values passed to Require and Ensure are still evaluated by the caller.
func Disable() {
	disabled.Store(true)
}

// Enable turns checks back on after Disable.
// It has no effect in a build with the 'nodbc' tag, where checks are removed entirely.
func Enable() {
	disabled.Store(false)
}

// Enabled reports whether contract checks will currently run.
func Enabled() bool {
	return !disabled.Load()
}

// Require panics with a [KindRequire] violation if cond is false.
// Use it to check preconditions at the start of a function.
func Require(cond bool, vars ...Var) {
	if cond || disabled.Load() {
		return
	}
	violate(KindRequire, vars)
}

// RequireFunc is like [Require], but cond is only called if checks are enabled.
func RequireFunc(cond func() bool, vars ...Var) {
	if disabled.Load() || cond() {
		return
	}
	violate(KindRequire, vars)
}

// Ensure panics with a [KindEnsure] violation if cond is false.
// Use it to check postconditions before a function returns.
func Ensure(cond bool, vars ...Var) {
	if cond || disabled.Load() {
		return
	}
	violate(KindEnsure, vars)
}

// EnsureFunc is like [Ensure], but cond is only called if checks are enabled.
func EnsureFunc(cond func() bool, vars ...Var) {
	if disabled.Load() || cond() {
		return
	}
	violate(KindEnsure, vars)
}

// Invariant panics with a [KindInvariant] violation if obj is nil, a nil pointer, or obj.IsValid returns false.
// The object is reported as the first variable, named "obj", followed by any extra vars.
// If IsValid panics, that's also reported as a violation, with the panic value in a var named "panic".
//
// This is usually called at the start and end of methods that can change the state of obj.
func Invariant(obj Validator, vars ...Var) {
	if disabled.Load() {
		return
	}
	valid, panicVal := checkValid(obj)
	if valid {
		return
	}
	reported := []Var{V("obj", obj)}
	if panicVal != nil {
		reported = append(reported, V("panic", panicVal))
	}
	violate(KindInvariant, append(reported, vars...))
}

func checkValid(obj Validator) (valid bool, panicVal any) {
	if obj == nil || isNilPointer(obj) {
		return false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			valid, panicVal = false, r
		}
	}()
	return obj.IsValid(), nil
}

// violate must be called directly by a check function so that the caller depth is correct.
func violate(kind Kind, vars []Var) {
	v := &Violation{Kind: kind, File: "unknown", Vars: vars}
	// 0 is violate, 1 is the check, 2 is the check's caller.
	if _, file, line, ok := runtime.Caller(2); ok {
		v.File = file
		v.Line = line
	}
	report(v)
	panic(v)
}
