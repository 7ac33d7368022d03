package domain

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResetPolicy selects at which test boundaries the reset sweep runs.
type ResetPolicy int

// Available ResetPolicy values.
const (
	ResetBefore ResetPolicy = 1 << iota
	ResetAfter
	ResetAround = ResetBefore | ResetAfter
)

// ParseResetPolicy parses "before", "after" or "around".
func ParseResetPolicy(s string) (ResetPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "before":
		return ResetBefore, nil
	case "after":
		return ResetAfter, nil
	case "around", "both":
		return ResetAround, nil
	default:
		return 0, fmt.Errorf("unknown reset policy %q", s)
	}
}

func (p ResetPolicy) String() string {
	switch p {
	case ResetBefore:
		return "before"
	case ResetAfter:
		return "after"
	case ResetAround:
		return "around"
	default:
		return fmt.Sprintf("ResetPolicy(%d)", int(p))
	}
}

// Sandbox is the boundary a test runner drives: it fixes the simulated
// version per test and runs the reset sweep at test boundaries. One test runs
// at a time per Sandbox; the class-scoped state it resets is process-wide.
type Sandbox struct {
	reg      *Registry
	resolver *Resolver
	resetter *ResetCoordinator
	logger   *zap.Logger
	policy   ResetPolicy
}

// SandboxOption configures a Sandbox.
type SandboxOption func(*Sandbox)

// WithLogger sets the logger for session and reset events.
func WithLogger(logger *zap.Logger) SandboxOption {
	return func(sb *Sandbox) {
		if logger != nil {
			sb.logger = logger
		}
	}
}

// WithResetPolicy selects when the reset sweep runs.
func WithResetPolicy(policy ResetPolicy) SandboxOption {
	return func(sb *Sandbox) {
		if policy&ResetAround != 0 {
			sb.policy = policy
		}
	}
}

// NewSandbox seals reg and prepares resolution and reset over it.
func NewSandbox(reg *Registry, opts ...SandboxOption) *Sandbox {
	sb := &Sandbox{
		reg:    reg,
		logger: zap.NewNop(),
		policy: ResetBefore,
	}

	for _, opt := range opts {
		opt(sb)
	}

	reg.Seal()

	sb.resolver = NewResolver(reg)
	sb.resetter = NewResetCoordinator(reg, sb.logger)

	return sb
}

// Resolver returns the sandbox's resolver.
func (sb *Sandbox) Resolver() *Resolver { return sb.resolver }

// Registry returns the sealed registry.
func (sb *Sandbox) Registry() *Registry { return sb.reg }

// Policy returns the active reset policy.
func (sb *Sandbox) Policy() ResetPolicy { return sb.policy }

// Reset runs the reset sweep outside of a session.
func (sb *Sandbox) Reset() error {
	return sb.resetter.ResetAll()
}

// Hooks returns the number of reset hooks the sweep runs.
func (sb *Sandbox) Hooks() int {
	return sb.resetter.Hooks()
}

// Begin starts a test at the simulated version. Under a "before" policy the
// reset sweep runs first; its failure is returned along with a usable session
// so the runner decides whether to proceed.
func (sb *Sandbox) Begin(version int) (*Session, error) {
	if version < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}

	id := uuid.New()
	s := &Session{
		id:      id,
		version: version,
		sandbox: sb,
		logger:  sb.logger.With(zap.String("session", id.String()), zap.Int("sdk", version)),
	}

	s.logger.Debug("Session started")

	if sb.policy&ResetBefore != 0 {
		if err := sb.resetter.ResetAll(); err != nil {
			return s, fmt.Errorf("reset before session: %w", err)
		}
	}

	return s, nil
}

// TestingT is the subset of testing.TB used by Run.
type TestingT interface {
	Helper()
	Cleanup(func())
	Errorf(format string, args ...any)
	FailNow()
}

// Run begins a session for a Go test, ends it on cleanup and fails the test
// when a reset sweep reports failures.
func (sb *Sandbox) Run(t TestingT, version int, fn func(*Session)) {
	t.Helper()

	s, err := sb.Begin(version)
	if s == nil {
		t.Errorf("begin session: %v", err)
		t.FailNow()

		return
	}

	t.Cleanup(func() {
		if err := s.End(); err != nil {
			t.Errorf("end session: %v", err)
		}
	})

	if err != nil {
		t.Errorf("begin session: %v", err)
		t.FailNow()

		return
	}

	fn(s)
}

// Session is one test execution at a fixed simulated version.
type Session struct {
	id      uuid.UUID
	version int
	sandbox *Sandbox
	logger  *zap.Logger
	ended   atomic.Bool
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Version is the simulated platform version of the session.
func (s *Session) Version() int { return s.version }

// Resolver returns the resolver the session binds through.
func (s *Session) Resolver() *Resolver { return s.sandbox.resolver }

// Ended reports whether End has been called.
func (s *Session) Ended() bool { return s.ended.Load() }

// End finishes the session. Under an "after" policy the reset sweep runs.
// Calling End more than once has no further effect.
func (s *Session) End() error {
	if !s.ended.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Debug("Session ended")

	if s.sandbox.policy&ResetAfter != 0 {
		if err := s.sandbox.resetter.ResetAll(); err != nil {
			return fmt.Errorf("reset after session: %w", err)
		}
	}

	return nil
}
