package oerror

import "fmt"

// ScoutError is the error type returned by scout packages for failures that are not
// wrapped from another library.
type ScoutError struct {
	Err string
}

// New returns a new ScoutError formatted with the arguments passed.
func New(format string, args ...any) *ScoutError {
	if len(args) == 0 {
		return &ScoutError{Err: format}
	}
	return &ScoutError{Err: fmt.Sprintf(format, args...)}
}

func (e *ScoutError) Error() string {
	return e.Err
}
