// Package shadows declares the built-in shadows and registers them.
package shadows

import (
	"fmt"

	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
)

// PrivateClassName is a type that cannot be referenced directly and is
// therefore shadowed by name.
const PrivateClassName = "org.robolectric.annotation.processing.objects.Private"

// PrivateDescriptor declares a shadow targeting PrivateClassName by name.
func PrivateDescriptor() m.ShadowDescriptor {
	return m.Shadow("ShadowPrivate", "org.robolectric.Robolectric.Anything").
		ClassName(PrivateClassName).
		Reset(func() error { return nil }).
		MustBuild()
}

// Catalog returns every built-in shadow.
func Catalog() []m.ShadowDescriptor {
	return []m.ShadowDescriptor{
		StatFsDescriptor(),
		UserManagerDescriptor(),
		PrivateDescriptor(),
	}
}

// RegisterAll registers the built-in shadows into reg.
func RegisterAll(reg *domain.Registry) error {
	for _, d := range Catalog() {
		if err := reg.Register(d); err != nil {
			return fmt.Errorf("register built-in shadows: %w", err)
		}
	}

	return nil
}
