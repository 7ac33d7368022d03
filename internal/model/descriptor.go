package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidDescriptor is returned when a descriptor is missing its identity.
var ErrInvalidDescriptor = errors.New("invalid shadow descriptor")

// ShadowMethod is a shadow implementation of a real method. It receives the
// shadow instance bound to the real instance and the call arguments.
type ShadowMethod func(shadow any, args []any) (any, error)

// ResetHook clears class-scoped shadow state between tests.
type ResetHook func() error

// MethodVariant is one version-gated implementation of a method signature.
type MethodVariant struct {
	Signature MethodSignature
	Range     VersionRange
	Fn        ShadowMethod
}

// ConflictError reports two claims on overlapping version ranges for the same
// target, either two shadows for one real type or two variants of one method.
type ConflictError struct {
	Target   TypeID
	Method   string // empty for class-level conflicts
	Existing string
	Incoming string
	Ranges   [2]VersionRange
}

func (e *ConflictError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("conflicting shadow methods for %s.%s in %s: %s overlaps %s",
			e.Target, e.Method, e.Incoming, e.Ranges[1], e.Ranges[0])
	}

	return fmt.Sprintf("conflicting shadows for %s: %s %s overlaps %s %s",
		e.Target, e.Incoming, e.Ranges[1], e.Existing, e.Ranges[0])
}

// ShadowDescriptor is the immutable metadata of one candidate shadow. Build
// it with a DescriptorBuilder.
type ShadowDescriptor struct {
	name        string
	realType    TypeID
	className   string
	versions    VersionRange
	methods     map[string][]MethodVariant
	newShadow   func() any
	constructor ShadowMethod
	reset       ResetHook
}

// Name identifies the shadow in logs and reports.
func (d ShadowDescriptor) Name() string { return d.name }

// RealType is the real type the shadow was declared against.
func (d ShadowDescriptor) RealType() TypeID { return d.realType }

// ClassName is the cross-loader target name, if any.
func (d ShadowDescriptor) ClassName() string { return d.className }

// Target is the type the shadow applies to: the class name when one is
// declared, the real type otherwise.
func (d ShadowDescriptor) Target() TypeID {
	if d.className != "" {
		return TypeID(d.className)
	}

	return d.realType
}

// Range is the class-level applicability of the shadow.
func (d ShadowDescriptor) Range() VersionRange { return d.versions }

// Variants returns the method variants registered for sig, newest first.
func (d ShadowDescriptor) Variants(sig MethodSignature) []MethodVariant {
	variants := d.methods[sig.Key()]
	if len(variants) == 0 {
		return nil
	}

	out := make([]MethodVariant, len(variants))
	copy(out, variants)

	return out
}

// Signatures lists every shadowed signature sorted by key.
func (d ShadowDescriptor) Signatures() []MethodSignature {
	keys := make([]string, 0, len(d.methods))
	for key := range d.methods {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	sigs := make([]MethodSignature, 0, len(keys))
	for _, key := range keys {
		sigs = append(sigs, d.methods[key][0].Signature)
	}

	return sigs
}

// MethodCount returns the number of method variants across all signatures.
func (d ShadowDescriptor) MethodCount() int {
	n := 0
	for _, variants := range d.methods {
		n += len(variants)
	}

	return n
}

// NewInstance creates the shadow state for one real instance. Shadows without
// an instance factory get a nil instance.
func (d ShadowDescriptor) NewInstance() any {
	if d.newShadow == nil {
		return nil
	}

	return d.newShadow()
}

// Constructor returns the constructor redirect, or nil.
func (d ShadowDescriptor) Constructor() ShadowMethod { return d.constructor }

// ResetHook returns the class-scoped reset hook, or nil.
func (d ShadowDescriptor) ResetHook() ResetHook { return d.reset }

// HasReset reports whether the shadow declares a reset hook.
func (d ShadowDescriptor) HasReset() bool { return d.reset != nil }

// DescriptorBuilder accumulates a shadow declaration and validates it in Build.
type DescriptorBuilder struct {
	d       ShadowDescriptor
	pending []MethodVariant
}

// Shadow starts a descriptor named name that targets realType for every
// version until Versions narrows it.
func Shadow(name string, realType TypeID) *DescriptorBuilder {
	return &DescriptorBuilder{d: ShadowDescriptor{
		name:     name,
		realType: realType,
		versions: AnyVersion(),
	}}
}

// ClassName targets a type by name instead of by real type.
func (b *DescriptorBuilder) ClassName(name string) *DescriptorBuilder {
	b.d.className = name
	return b
}

// Versions sets the class-level version range.
func (b *DescriptorBuilder) Versions(r VersionRange) *DescriptorBuilder {
	b.d.versions = r
	return b
}

// Instance sets the factory creating per-instance shadow state.
func (b *DescriptorBuilder) Instance(factory func() any) *DescriptorBuilder {
	b.d.newShadow = factory
	return b
}

// Constructor sets the redirect that replaces the real constructor body.
func (b *DescriptorBuilder) Constructor(fn ShadowMethod) *DescriptorBuilder {
	b.d.constructor = fn
	return b
}

// Reset sets the class-scoped reset hook.
func (b *DescriptorBuilder) Reset(hook ResetHook) *DescriptorBuilder {
	b.d.reset = hook
	return b
}

// Method shadows sig for every version the class range admits.
func (b *DescriptorBuilder) Method(sig MethodSignature, fn ShadowMethod) *DescriptorBuilder {
	return b.MethodIn(sig, AnyVersion(), fn)
}

// MethodIn shadows sig only for versions within r.
func (b *DescriptorBuilder) MethodIn(sig MethodSignature, r VersionRange, fn ShadowMethod) *DescriptorBuilder {
	b.pending = append(b.pending, MethodVariant{Signature: sig, Range: r, Fn: fn})
	return b
}

// Build validates the declaration and returns the immutable descriptor.
func (b *DescriptorBuilder) Build() (ShadowDescriptor, error) {
	d := b.d

	if d.name == "" {
		return ShadowDescriptor{}, fmt.Errorf("%w: missing name", ErrInvalidDescriptor)
	}

	if d.Target() == "" {
		return ShadowDescriptor{}, fmt.Errorf("%w: %s has no target type", ErrInvalidDescriptor, d.name)
	}

	d.methods = make(map[string][]MethodVariant, len(b.pending))

	for _, variant := range b.pending {
		if variant.Fn == nil {
			return ShadowDescriptor{}, fmt.Errorf("%w: %s.%s has no implementation",
				ErrInvalidDescriptor, d.name, variant.Signature.Key())
		}

		key := variant.Signature.Key()
		for _, existing := range d.methods[key] {
			if existing.Range.Overlaps(variant.Range) {
				return ShadowDescriptor{}, &ConflictError{
					Target:   d.Target(),
					Method:   key,
					Existing: d.name,
					Incoming: d.name,
					Ranges:   [2]VersionRange{existing.Range, variant.Range},
				}
			}
		}

		d.methods[key] = insertByMinDesc(d.methods[key], variant)
	}

	return d, nil
}

// MustBuild is Build for static shadow declarations. It panics on error.
func (b *DescriptorBuilder) MustBuild() ShadowDescriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}

	return d
}

func insertByMinDesc(variants []MethodVariant, v MethodVariant) []MethodVariant {
	i := sort.Search(len(variants), func(i int) bool {
		return variants[i].Range.Min() < v.Range.Min()
	})

	variants = append(variants, MethodVariant{})
	copy(variants[i+1:], variants[i:])
	variants[i] = v

	return variants
}
