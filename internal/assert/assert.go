// Package assert provides the core's single precondition-violation helper.
//
// The allocator core trusts its callers (spec §7.3): root/range bag
// membership is checked only when gcx.DebugChecks is enabled, and a
// violation panics with a diagnosable message rather than returning an
// error. With DebugChecks off the check is skipped.
package assert

import "fmt"

// Truef panics with a formatted message if cond is false.
func Truef(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
