package domain

import (
	m "github.com/mouse-blink/shadower/internal/model"
)

const widgetType m.TypeID = "test.Widget"

var (
	sigLabel    = m.Sig("label")
	sigResize   = m.Sig("resize", "int")
	sigLabelSDK = m.Sig("labelForSdk")
)

// widget is a real type that routes its methods through an interception
// context and records every natural body that runs.
type widget struct {
	ic      *InterceptionContext
	label   string
	size    int
	natural []string
}

func newWidget(s *Session, label string) (*widget, error) {
	w := &widget{}

	ic, err := Bind(s, w, widgetType, label)
	if err != nil {
		return nil, err
	}

	w.ic = ic
	if ic.Shadowed() {
		return w, nil
	}

	w.natural = append(w.natural, "ctor")
	w.label = label

	return w, nil
}

func (w *widget) Label() (string, error) {
	return Call(w.ic, sigLabel, func() (string, error) {
		w.natural = append(w.natural, "label")
		return w.label, nil
	})
}

func (w *widget) LabelForSdk() (string, error) {
	return Call(w.ic, sigLabelSDK, func() (string, error) {
		w.natural = append(w.natural, "labelForSdk")
		return "natural", nil
	})
}

func (w *widget) Resize(size int) error {
	return Do(w.ic, sigResize, func() error {
		w.natural = append(w.natural, "resize")
		w.size = size

		return nil
	}, size)
}

// widgetShadow is the per-instance state of the widget shadows.
type widgetShadow struct {
	label   string
	resized []int
}

func newWidgetShadow() any { return &widgetShadow{} }

func widgetDescriptor(name string, r m.VersionRange) *m.DescriptorBuilder {
	return m.Shadow(name, widgetType).
		Versions(r).
		Instance(newWidgetShadow).
		Constructor(Method(func(s *widgetShadow, args []any) (any, error) {
			s.label = "shadow:" + Arg[string](args, 0)
			return nil, nil
		})).
		Method(sigLabel, Method(func(s *widgetShadow, _ []any) (any, error) {
			return s.label, nil
		})).
		Method(sigResize, Method(func(s *widgetShadow, args []any) (any, error) {
			s.resized = append(s.resized, Arg[int](args, 0))
			return nil, nil
		}))
}

func newTestSandbox(descriptors ...m.ShadowDescriptor) *Sandbox {
	reg := NewRegistry()
	reg.MustRegister(descriptors...)

	return NewSandbox(reg)
}
