package dbc

// Kind classifies a contract check for display.
type Kind int

const (
	KindRequire   Kind = iota + 1 // KindRequire is a precondition, checked with Require.
	KindEnsure                    // KindEnsure is a postcondition, checked with Ensure.
	KindInvariant                 // KindInvariant is an object invariant, checked with Invariant.
)

func (k Kind) String() string {
	switch k {
	case KindRequire:
		return "REQUIRE"
	case KindEnsure:
		return "ENSURE"
	case KindInvariant:
		return "INVARIANT"
	default:
		return "UNKNOWN"
	}
}
