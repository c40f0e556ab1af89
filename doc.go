/*
Package dbc provides Design by Contract checks that are meant to catch programming errors during development.

A contract binds a caller and the function called. It's commonly written as a Hoare triple, {P} C {Q}, where P is the precondition that must hold before C runs, and Q is the postcondition that must hold after.
There are three checks supported:
  - [Require] for preconditions.
  - [Ensure] for postconditions.
  - [Invariant] for object invariants, expressed with the [Validator] interface.

A failed check is a bug, not an error to handle.
It will print a diagnostic like the one below and then panic with a [*Violation].

	panic: REQUIRE:
	file: /src/app/main.go:42
	vars:
	msg="This is a test" a=3

Variables are passed explicitly with [V], since Go can't capture identifier names at the call site.
Types can control how they're rendered by implementing [Debugger].

# Removing checks

To remove checks from a build, use the 'nodbc' build tag.
Every check becomes an empty function that the compiler will inline away.

Note that Go still evaluates arguments before calling a function, so an expensive condition passed to [Require] is still evaluated.
Use [RequireFunc] or [EnsureFunc] for those, since the function won't be called when checks are removed or disabled.
Either way, conditions should never have side effects.

For temporary changes, the [Disable] and [Enable] functions are also provided, but these should likely not be used in production code.
*/
package dbc
