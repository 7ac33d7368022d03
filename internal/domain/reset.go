package domain

import (
	"fmt"

	"go.uber.org/zap"

	m "github.com/mouse-blink/shadower/internal/model"
)

// ResetCoordinator restores class-scoped shadow state between tests.
type ResetCoordinator struct {
	reg    *Registry
	logger *zap.Logger
}

// NewResetCoordinator creates a coordinator over every hook in reg.
func NewResetCoordinator(reg *Registry, logger *zap.Logger) *ResetCoordinator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ResetCoordinator{reg: reg, logger: logger}
}

// Hooks returns the number of registered reset hooks.
func (rc *ResetCoordinator) Hooks() int {
	n := 0

	for _, d := range rc.reg.Descriptors() {
		if d.HasReset() {
			n++
		}
	}

	return n
}

// ResetAll runs every registered reset hook, whether or not its shadow was
// bound during the last test. A failing or panicking hook does not stop the
// sweep; all failures are returned together as a *ResetError.
func (rc *ResetCoordinator) ResetAll() error {
	var failures []HookFailure

	for _, d := range rc.reg.Descriptors() {
		hook := d.ResetHook()
		if hook == nil {
			continue
		}

		if err := runHook(hook); err != nil {
			rc.logger.Warn("Reset hook failed",
				zap.String("shadow", d.Name()),
				zap.String("target", string(d.Target())),
				zap.Error(err))

			failures = append(failures, HookFailure{Shadow: d.Name(), Target: d.Target(), Err: err})
		}
	}

	if len(failures) > 0 {
		return &ResetError{Failures: failures}
	}

	return nil
}

func runHook(hook m.ResetHook) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHookPanic, r)
		}
	}()

	return hook()
}
