package dbc

// Validator is implemented by types with an invariant that can be checked with [Invariant].
// IsValid should return true if the receiver is in a legal state, and must not modify it.
type Validator interface {
	IsValid() bool
}
