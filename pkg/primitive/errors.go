package primitive

import (
	"errors"
	"fmt"
)

// ErrEmpty reports First or Last on a list with no elements. It is
// carried inside the panic value and can be tested with errors.Is.
var ErrEmpty = errors.New("empty list")

// ErrNoMatch reports FirstMatching or LastMatching when no element
// satisfies the predicate.
var ErrNoMatch = errors.New("no element matches the predicate")

// IndexError reports an index or bound outside the valid interval for
// an operation. It is the panic value for every out-of-range access.
type IndexError struct {
	// Op is the operation that failed (e.g., "Get", "RemoveAt").
	Op string
	// Index is the offending argument.
	Index int
	// Size is the list's logical size at the time of the call.
	Size int
	// Inclusive is true when Size itself was a valid argument, as for
	// insertion points and range bounds.
	Inclusive bool
}

func (e *IndexError) Error() string {
	if e.Inclusive {
		return fmt.Sprintf("primitive: %s: index %d out of range [0, %d]", e.Op, e.Index, e.Size)
	}
	return fmt.Sprintf("primitive: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

// RangeError reports an inverted range, where the start bound exceeds
// the end bound.
type RangeError struct {
	// Op is the operation that failed (e.g., "RemoveRange").
	Op string
	// Start and End are the offending bounds.
	Start, End int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("primitive: %s: invalid range: start %d exceeds end %d", e.Op, e.Start, e.End)
}

func emptyErr(op string) error {
	return fmt.Errorf("primitive: %s: %w", op, ErrEmpty)
}

func noMatchErr(op string) error {
	return fmt.Errorf("primitive: %s: %w", op, ErrNoMatch)
}
