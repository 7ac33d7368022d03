package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/shadower/internal/domain"
)

// TUI implements UI using Bubble Tea for interactive display. In browse mode
// the shadow list opens in a filterable list; everything else is rendered
// once with lipgloss styling.
type TUI struct {
	output io.Writer
	input  io.Reader
	plain  *SimpleUI

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI reading keys from input. A nil input disables
// keyboard handling.
func NewTUI(output io.Writer, input io.Reader, plain *SimpleUI) *TUI {
	return &TUI{output: output, input: input, plain: plain}
}

// Start initializes the UI. Browse mode starts the interactive program.
func (t *TUI) Start(options ...StartOption) error {
	if newStartConfig(options).mode != ModeBrowse {
		return nil
	}

	return t.startWithModel(newBrowseModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			t.mu.Lock()
			t.err = fmt.Errorf("run interactive ui: %w", err)
			t.mu.Unlock()
		}
	}()

	return nil
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// Wait blocks until the user leaves the interactive program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the interactive program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()
}

// Err returns the error the interactive program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayShadows feeds the interactive list, or prints the table when the
// program is not running.
func (t *TUI) DisplayShadows(rows []ShadowRow, version int) error {
	if t.send(shadowsMsg{version: version, rows: rows}) {
		return nil
	}

	return t.plain.DisplayShadows(rows, version)
}

// DisplayResolution renders the resolution with a styled heading.
func (t *TUI) DisplayResolution(res Resolution) error {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	_, _ = fmt.Fprintln(t.output, style.Render("Resolve "+string(res.Type)))

	return t.plain.DisplayResolution(res)
}

// DisplayMatrix renders the resolution matrix.
func (t *TUI) DisplayMatrix(result domain.MatrixResult) error {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	_, _ = fmt.Fprintln(t.output, style.Render(fmt.Sprintf("Resolution matrix: %d type(s) x %d version(s)",
		len(result.Types), len(result.Versions))))

	return t.plain.DisplayMatrix(result)
}

// DisplayReset renders the reset outcome.
func (t *TUI) DisplayReset(hooks int, err error) error {
	return t.plain.DisplayReset(hooks, err)
}

// DisplayDrift renders a manifest diff.
func (t *TUI) DisplayDrift(diff string) error {
	return t.plain.DisplayDrift(diff)
}
