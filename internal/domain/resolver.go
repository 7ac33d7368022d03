package domain

import (
	m "github.com/mouse-blink/shadower/internal/model"
)

// Resolver selects the shadow applicable to a real type at a simulated
// platform version. It only reads the registry and is safe for concurrent use
// once the registry is sealed.
type Resolver struct {
	reg *Registry
}

// NewResolver creates a Resolver over reg.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve returns the first candidate of t whose range contains version.
// Candidates are ordered newest range first, so a shadow written for a later
// SDK era wins over an older one for the versions it targets. A false result
// is a resolution miss: the real type keeps its natural behavior.
func (r *Resolver) Resolve(t m.TypeID, version int) (m.ShadowDescriptor, bool) {
	for _, d := range r.reg.candidates(t) {
		if d.Range().Contains(version) {
			return d, true
		}
	}

	return m.ShadowDescriptor{}, false
}

// ResolveMethod returns the variant of sig within d that applies at version.
// Both the class-level range of d and the variant's own range must contain
// version.
func ResolveMethod(d m.ShadowDescriptor, sig m.MethodSignature, version int) (m.MethodVariant, bool) {
	if !d.Range().Contains(version) {
		return m.MethodVariant{}, false
	}

	for _, v := range d.Variants(sig) {
		if v.Range.Contains(version) {
			return v, true
		}
	}

	return m.MethodVariant{}, false
}

// ActiveMethods lists the signature keys of d that a call would reach at
// version.
func ActiveMethods(d m.ShadowDescriptor, version int) []string {
	var keys []string

	for _, sig := range d.Signatures() {
		if _, ok := ResolveMethod(d, sig, version); ok {
			keys = append(keys, sig.Key())
		}
	}

	return keys
}
