// SPDX-License-Identifier: MIT

package cone

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/powergeom/numeric"
)

var (
	// ErrCancelled is matched by every error returned from an aborted solve.
	// The same error also matches the context's cause (context.Canceled or
	// context.DeadlineExceeded).
	ErrCancelled = errors.New("cone: solve cancelled")

	// ErrInternalConsistency marks a combined ray that satisfies neither
	// orientation of the processed subsystem. Valid input never produces it.
	ErrInternalConsistency = errors.New("cone: combined ray conforms to neither orientation")

	// ErrBadDimension is returned for dim < 1.
	ErrBadDimension = errors.New("cone: dimension must be >= 1")
)

// ConsistencyError carries the step and ray that broke the sign invariant.
type ConsistencyError struct {
	Step int
	Ray  numeric.IntVector
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%v: step %d, ray %s", ErrInternalConsistency, e.Step, e.Ray)
}

// Is makes errors.Is(err, ErrInternalConsistency) hold.
func (e *ConsistencyError) Is(target error) bool { return target == ErrInternalConsistency }

// cancelledError joins ErrCancelled with the context cause.
type cancelledError struct {
	cause error
}

func (e *cancelledError) Error() string { return fmt.Sprintf("%v: %v", ErrCancelled, e.cause) }

func (e *cancelledError) Is(target error) bool { return target == ErrCancelled }

func (e *cancelledError) Unwrap() error { return e.cause }

// Cancelled returns an error matching both ErrCancelled and cause. Callers
// that abort a solve before it starts use it so every cancelled outcome
// looks the same.
func Cancelled(cause error) error {
	return &cancelledError{cause: cause}
}

// cancelled wraps a context error observed before step `step`.
func cancelled(cause error, step int) error {
	return errors.Wrapf(&cancelledError{cause: cause}, "before step %d", step)
}
