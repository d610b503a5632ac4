package assert

import "github.com/oomph-ac/scout/oerror"

// IsTrue panics with a formatted error if ok is false. It is used for invariants that
// can only be broken by a programming error, never by simulation input.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
