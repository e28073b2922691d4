package reconstructs

import (
	"errors"
	"fmt"
)

var (
	ErrNoSolution  = errors.New("no solution found")
	ErrEmptyTarget = errors.New("empty target")
)

// NoSolutionError reports the target index whose round emptied the frontier.
// Index is -1 when candidates survived every round but none reproduced the
// full target.
type NoSolutionError struct {
	Index  int
	Target []int
}

func (e *NoSolutionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: no candidate reproduces %v", ErrNoSolution, e.Target)
	}
	return fmt.Sprintf("%v: frontier emptied at index %d of %v", ErrNoSolution, e.Index, e.Target)
}

func (e *NoSolutionError) Is(target error) bool {
	return target == ErrNoSolution
}
