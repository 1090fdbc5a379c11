package loop

import (
	"errors"
	"fmt"
)

// Startup failure kinds. Test with errors.Is against a *StartupError.
var (
	ErrSubsystemInit  = errors.New("platform subsystem init failed")
	ErrWindowCreation = errors.New("window and renderer creation failed")
)

// StartupError reports why Start could not enter the loop.
type StartupError struct {
	Kind error // ErrSubsystemInit or ErrWindowCreation
	Err  error // Cause reported by the platform
}

func (e *StartupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("loop: %v", e.Kind)
	}
	return fmt.Sprintf("loop: %v: %v", e.Kind, e.Err)
}

// Unwrap exposes both the kind and the platform cause to errors.Is/As.
func (e *StartupError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
