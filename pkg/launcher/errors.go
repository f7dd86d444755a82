package launcher

import (
	"errors"
	"fmt"
)

// FailurePrefix starts the diagnostic printed when the engine cannot start.
const FailurePrefix = "Failed to start Omega Engine:"

// ErrSpawnFailure matches every error returned when the child could not be started.
var ErrSpawnFailure = errors.New("spawn failure")

// SpawnError reports that the runner process could not be created.
// Its message is the underlying cause's message.
type SpawnError struct {
	Runner string
	Err    error
}

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *SpawnError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrSpawnFailure) succeed for any SpawnError.
func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawnFailure
}

// FormatFailure renders the one-line diagnostic for err.
func FormatFailure(err error) string {
	return fmt.Sprintf("%s %s", FailurePrefix, err.Error())
}
