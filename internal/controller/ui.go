// Package controller renders shadow registry information for the CLI.
package controller

import (
	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
)

// ShadowRow summarizes one registered shadow at a simulated version.
type ShadowRow struct {
	Name    string
	Target  string
	Range   string
	Methods int
	Reset   bool
	Active  bool
}

// NewShadowRow builds the row of d as seen at version.
func NewShadowRow(d m.ShadowDescriptor, version int) ShadowRow {
	return ShadowRow{
		Name:    d.Name(),
		Target:  string(d.Target()),
		Range:   d.Range().String(),
		Methods: d.MethodCount(),
		Reset:   d.HasReset(),
		Active:  d.Range().Contains(version),
	}
}

// Resolution is the outcome of resolving one type at one version.
type Resolution struct {
	Type    m.TypeID
	Version int
	Shadow  string // empty when the type is unshadowed
	Range   string
	Methods []string
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeReport StartMode = iota
	ModeBrowse
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithReportMode makes the UI print results and return.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

// WithBrowseMode makes the UI browse the shadow list interactively when it
// supports it.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

// UI defines how command results are displayed.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayShadows(rows []ShadowRow, version int) error
	DisplayResolution(res Resolution) error
	DisplayMatrix(result domain.MatrixResult) error
	DisplayReset(hooks int, err error) error
	DisplayDrift(diff string) error
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeReport}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}
