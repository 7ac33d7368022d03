// Package domain implements shadow registration, version-gated resolution,
// call interception and the per-test reset protocol.
package domain

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	m "github.com/mouse-blink/shadower/internal/model"
)

// Registry maps real types to their candidate shadows. It is written during a
// registration phase and read-only once sealed.
type Registry struct {
	mu     sync.RWMutex
	sealed atomic.Bool
	byType map[m.TypeID][]m.ShadowDescriptor
	logger *zap.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for registration events.
func WithRegistryLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty, open registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byType: make(map[m.TypeID][]m.ShadowDescriptor),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds d to the candidates of its target type. Candidates are kept
// in descending order of their lower bound; overlapping ranges for the same
// target are rejected with a ConflictError.
func (r *Registry) Register(d m.ShadowDescriptor) error {
	if d.Name() == "" || d.Target() == "" {
		return fmt.Errorf("register: %w", m.ErrInvalidDescriptor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return fmt.Errorf("register %s: %w", d.Name(), ErrSealed)
	}

	target := d.Target()
	candidates := r.byType[target]

	for _, existing := range candidates {
		if existing.Range().Overlaps(d.Range()) {
			err := &ConflictError{
				Target:   target,
				Existing: existing.Name(),
				Incoming: d.Name(),
				Ranges:   [2]m.VersionRange{existing.Range(), d.Range()},
			}
			r.logger.Error("Shadow registration conflict", zap.Error(err))

			return err
		}
	}

	// Insert after every candidate with an equal or higher lower bound so
	// registration order survives among equal bounds.
	i := sort.Search(len(candidates), func(i int) bool {
		return candidates[i].Range().Min() < d.Range().Min()
	})

	candidates = append(candidates, m.ShadowDescriptor{})
	copy(candidates[i+1:], candidates[i:])
	candidates[i] = d
	r.byType[target] = candidates

	r.logger.Debug("Registered shadow",
		zap.String("shadow", d.Name()),
		zap.String("target", string(target)),
		zap.Stringer("range", d.Range()),
		zap.Int("methods", d.MethodCount()))

	return nil
}

// MustRegister registers every descriptor and panics on the first failure.
// Conflicts indicate a broken shadow set and must stop process startup.
func (r *Registry) MustRegister(descriptors ...m.ShadowDescriptor) {
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

// Seal ends the registration phase. Sealing twice is harmless.
func (r *Registry) Seal() {
	r.mu.Lock()
	first := r.sealed.CompareAndSwap(false, true)
	r.mu.Unlock()

	if first {
		r.logger.Debug("Sealed shadow registry", zap.Int("shadows", r.Len()))
	}
}

// Sealed reports whether the registration phase is over.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Lookup returns the candidates for t, newest range first. The result is a
// copy and is empty for unregistered types.
func (r *Registry) Lookup(t m.TypeID) []m.ShadowDescriptor {
	unlock := r.rlock()
	defer unlock()

	candidates := r.byType[t]
	out := make([]m.ShadowDescriptor, len(candidates))
	copy(out, candidates)

	return out
}

// Types lists every registered target, sorted.
func (r *Registry) Types() []m.TypeID {
	unlock := r.rlock()
	defer unlock()

	types := make([]m.TypeID, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}

// Descriptors returns every descriptor ordered by target, then by candidate
// order within the target.
func (r *Registry) Descriptors() []m.ShadowDescriptor {
	var out []m.ShadowDescriptor

	for _, t := range r.Types() {
		out = append(out, r.Lookup(t)...)
	}

	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	unlock := r.rlock()
	defer unlock()

	n := 0
	for _, candidates := range r.byType {
		n += len(candidates)
	}

	return n
}

// rlock takes the read lock while registration may still be running. Once
// sealed the registry is immutable and reads need no lock.
func (r *Registry) rlock() func() {
	if r.sealed.Load() {
		return func() {}
	}

	r.mu.RLock()

	return r.mu.RUnlock
}

// candidates returns the stored slice for t without copying. Callers must
// not modify it.
func (r *Registry) candidates(t m.TypeID) []m.ShadowDescriptor {
	unlock := r.rlock()
	defer unlock()

	return r.byType[t]
}
