/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Solver failure taxonomy for the Akaylee Fold engine. Defines the
closed set of external-solver failure kinds so the fallback trigger set is an
explicit, testable enumeration instead of stacked exception handling.
*/

package solver

import (
	"errors"
	"fmt"
)

// FailureKind classifies why an external solver invocation failed.
type FailureKind int

const (
	// FailureUnavailable: the solver process could not be started at all
	// (missing binary, permission error, workdir setup failure).
	FailureUnavailable FailureKind = iota
	// FailureTimeout: the solver exceeded its wall-clock budget and was
	// killed.
	FailureTimeout
	// FailureExit: the solver exited non-zero.
	FailureExit
	// FailureParse: the solver output could not be decoded into a valid
	// structure.
	FailureParse
)

// String returns a stable name for the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureUnavailable:
		return "unavailable"
	case FailureTimeout:
		return "timeout"
	case FailureExit:
		return "exit"
	case FailureParse:
		return "parse"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// SolverError is the explicit failure report of one solver invocation.
// All kinds are recoverable: callers fall back to the local estimator and
// never surface a SolverError raw to a sweep caller.
type SolverError struct {
	Kind    FailureKind
	Code    int    // exit code, FailureExit only
	Message string // human-readable cause
	Raw     string // trimmed raw output, FailureParse only
}

// Error implements the error interface.
func (e *SolverError) Error() string {
	switch e.Kind {
	case FailureExit:
		return fmt.Sprintf("solver failed (rc=%d): %s", e.Code, e.Message)
	case FailureParse:
		return fmt.Sprintf("solver output parse failed: %s", e.Message)
	default:
		return fmt.Sprintf("solver %s: %s", e.Kind, e.Message)
	}
}

// AsSolverError unwraps err into a *SolverError if it is one.
func AsSolverError(err error) (*SolverError, bool) {
	var se *SolverError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// ErrModelUnavailable is returned by matrix providers when the external
// partition-function engine cannot be used. Fatal for the request.
var ErrModelUnavailable = errors.New("probability model unavailable")
