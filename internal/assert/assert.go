// Package assert is a helper to allow assert tests in a more standardized
// and simple manner. Using it makes it clear that this is an assertion
// used in non production settings.
package assert

import "fmt"

// DEBUG if this is set to "true" asserts are evaluated. The Go compiler
// will eliminate any `if assert.DEBUG { ... }` block when this is false,
// so call sites should always guard Assert() with this constant to avoid
// evaluating the message arguments in release builds.
const DEBUG = false

// Assert panics with the given message if test evaluates to false.
//
//	if assert.DEBUG {
//	  assert.Assert(value > 0, "expected positive value, got %d", value)
//	}
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
