package domain

import (
	"fmt"
	"weak"

	"go.uber.org/zap"

	m "github.com/mouse-blink/shadower/internal/model"
)

// InterceptionContext binds one real instance to its shadow. The context owns
// the shadow instance and refers to the real instance weakly, so it never
// keeps the real instance alive. A nil context behaves as unshadowed.
type InterceptionContext struct {
	instance func() any
	shadow   any
	desc     m.ShadowDescriptor
	shadowed bool
	released bool
	version  int
}

// Bind resolves the shadow for a real instance being constructed. When a
// shadow applies, its instance is created and its constructor redirect runs
// with args; the caller must then skip the real constructor body. On a miss
// the returned context is unshadowed and the real constructor runs as usual.
// Errors from the constructor redirect are returned unchanged. A nil session
// binds nothing, for real types used outside a sandbox.
func Bind[T any](s *Session, instance *T, t m.TypeID, args ...any) (*InterceptionContext, error) {
	if instance == nil {
		return nil, ErrNilInstance
	}

	if s == nil {
		return nil, nil
	}

	if s.Ended() {
		return nil, fmt.Errorf("bind %s: %w", t, ErrSessionEnded)
	}

	ref := weak.Make(instance)
	ic := &InterceptionContext{
		version: s.version,
		instance: func() any {
			if p := ref.Value(); p != nil {
				return p
			}

			return nil
		},
	}

	d, ok := s.sandbox.resolver.Resolve(t, s.version)
	if !ok {
		s.logger.Debug("Unshadowed construction", zap.String("type", string(t)))

		return ic, nil
	}

	ic.desc = d
	ic.shadowed = true
	ic.shadow = d.NewInstance()

	if ctor := d.Constructor(); ctor != nil {
		if _, err := ctor(ic.shadow, args); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("Bound shadow",
		zap.String("type", string(t)),
		zap.String("shadow", d.Name()))

	return ic, nil
}

// Shadowed reports whether calls through the context may reach a shadow.
func (ic *InterceptionContext) Shadowed() bool {
	return ic != nil && ic.shadowed
}

// Descriptor returns the bound descriptor and whether one is bound.
func (ic *InterceptionContext) Descriptor() (m.ShadowDescriptor, bool) {
	if !ic.Shadowed() {
		return m.ShadowDescriptor{}, false
	}

	return ic.desc, true
}

// Version is the simulated version the context was bound at.
func (ic *InterceptionContext) Version() int {
	if ic == nil {
		return 0
	}

	return ic.version
}

// Real returns the real instance, or nil once it has been collected.
func (ic *InterceptionContext) Real() any {
	if ic == nil || ic.instance == nil {
		return nil
	}

	return ic.instance()
}

// Release drops the shadow state. Later calls through a shadowed context fail
// with ErrReleased.
func (ic *InterceptionContext) Release() {
	if ic == nil {
		return
	}

	ic.shadow = nil
	ic.released = true
}

// Invoke routes a call for sig to the shadow. handled is false when the
// context is unshadowed or no variant of sig applies at the bound version; the
// caller then runs the real implementation. Errors raised by the shadow method
// are returned unchanged.
func (ic *InterceptionContext) Invoke(sig m.MethodSignature, args ...any) (result any, handled bool, err error) {
	if !ic.Shadowed() {
		return nil, false, nil
	}

	if ic.released {
		return nil, false, fmt.Errorf("%s on %s: %w", sig.Key(), ic.desc.Name(), ErrReleased)
	}

	variant, ok := ResolveMethod(ic.desc, sig, ic.version)
	if !ok {
		return nil, false, nil
	}

	result, err = variant.Fn(ic.shadow, args)

	return result, true, err
}

// Call is the call-site interception used by real types. When the shadow
// handles sig its result is returned and natural never runs; otherwise
// natural provides the real behavior. A nil natural yields the zero value.
func Call[R any](ic *InterceptionContext, sig m.MethodSignature, natural func() (R, error), args ...any) (R, error) {
	var zero R

	out, handled, err := ic.Invoke(sig, args...)
	if err != nil {
		return zero, err
	}

	if !handled {
		if natural == nil {
			return zero, nil
		}

		return natural()
	}

	if out == nil {
		return zero, nil
	}

	r, ok := out.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, want %T", ErrResultType, sig.Key(), out, zero)
	}

	return r, nil
}

// Do is Call for methods without a result.
func Do(ic *InterceptionContext, sig m.MethodSignature, natural func() error, args ...any) error {
	_, handled, err := ic.Invoke(sig, args...)
	if err != nil {
		return err
	}

	if !handled && natural != nil {
		return natural()
	}

	return nil
}

// ShadowOf returns the shadow instance bound to ic as an S.
func ShadowOf[S any](ic *InterceptionContext) (S, bool) {
	var zero S

	if !ic.Shadowed() || ic.released {
		return zero, false
	}

	s, ok := ic.shadow.(S)

	return s, ok
}

// Method adapts a typed shadow method to the descriptor's calling convention.
// A shadow instance of another type yields ErrResultType.
func Method[S any](fn func(shadow S, args []any) (any, error)) m.ShadowMethod {
	return func(shadow any, args []any) (any, error) {
		s, ok := shadow.(S)
		if !ok {
			var zero S
			return nil, fmt.Errorf("%w: shadow is %T, want %T", ErrResultType, shadow, zero)
		}

		return fn(s, args)
	}
}

// Arg returns args[i] as a T, or the zero value when absent or of another
// type.
func Arg[T any](args []any, i int) T {
	var zero T

	if i < 0 || i >= len(args) {
		return zero
	}

	v, ok := args[i].(T)
	if !ok {
		return zero
	}

	return v
}
