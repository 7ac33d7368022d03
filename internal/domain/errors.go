package domain

import (
	"errors"
	"fmt"
	"strings"

	m "github.com/mouse-blink/shadower/internal/model"
)

var (
	// ErrSealed is returned when registering into a sealed registry.
	ErrSealed = errors.New("shadow registry is sealed")
	// ErrInvalidVersion is returned for negative simulated versions.
	ErrInvalidVersion = errors.New("invalid platform version")
	// ErrNilInstance is returned when binding a nil real instance.
	ErrNilInstance = errors.New("real instance is nil")
	// ErrSessionEnded is returned when binding through an ended session.
	ErrSessionEnded = errors.New("session has ended")
	// ErrReleased is returned when calling through a released context.
	ErrReleased = errors.New("interception context released")
	// ErrResultType is returned when a shadow method result does not match
	// the real method's result type.
	ErrResultType = errors.New("shadow result has unexpected type")
	// ErrHookPanic wraps a panic raised by a reset hook.
	ErrHookPanic = errors.New("reset hook panicked")
)

// ConflictError is the registration-time error for overlapping claims.
type ConflictError = m.ConflictError

// HookFailure is one reset hook that failed during a sweep.
type HookFailure struct {
	Shadow string
	Target m.TypeID
	Err    error
}

// ResetError aggregates every hook failure of one reset sweep.
type ResetError struct {
	Failures []HookFailure
}

func (e *ResetError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s (%s): %v", f.Shadow, f.Target, f.Err))
	}

	return fmt.Sprintf("reset failed for %d shadow(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

// Unwrap exposes the individual hook errors to errors.Is and errors.As.
func (e *ResetError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}

	return errs
}
