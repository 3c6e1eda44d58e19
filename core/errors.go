package core

import "github.com/pkg/errors"

// InvariantError wraps a violated sweep invariant (a comparator precondition,
// or a guaranteed ray/segment hit that did not occur). Threading errors
// through every recursive and iterative step of the sweep would add a lot of
// ceremony for conditions that should never occur in practice, so internal
// code panics with this type instead, and the root package's Polygon
// function is the only place that recovers it.
type InvariantError struct {
	error
}

func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(InvariantError{errors.Errorf(format, args...)})
	}
}

// HandlePolygonPanicRecover converts a recovered InvariantError into a
// returned error. Any other recovered value is not ours to handle, so it is
// re-panicked unchanged.
func HandlePolygonPanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if invariantErr, ok := r.(InvariantError); ok {
		return invariantErr
	}
	panic(r)
}
