//go:build nodbc

package dbc

func Disable() {
	// No op
}

func Enable() {
	// No op
}

func Enabled() bool {
	return false
}

func Require(cond bool, vars ...Var) {
	// No op
}

func RequireFunc(cond func() bool, vars ...Var) {
	// No op
}

func Ensure(cond bool, vars ...Var) {
	// No op
}

func EnsureFunc(cond func() bool, vars ...Var) {
	// No op
}

func Invariant(obj Validator, vars ...Var) {
	// No op
}
