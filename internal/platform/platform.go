// Package platform holds the real types that shadows substitute. Each real type
// binds an interception context on construction and routes its methods through
// it, so a registered shadow can replace any of them.
package platform

import (
	"errors"
	"fmt"
)

// SDK levels referenced by the built-in shadows.
const (
	JellyBeanMR1 = 17
	JellyBeanMR2 = 18
	KitKat       = 19
	Lollipop     = 21
	Marshmallow  = 23
	N            = 24
	NMR1         = 25
	Oreo         = 26
)

// ErrUnsupported is returned by real behavior the host cannot provide.
var ErrUnsupported = errors.New("operation not supported on this host")

func unsupported(method string) error {
	return fmt.Errorf("%s: %w", method, ErrUnsupported)
}
