package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd                       { return tea.Quit }
func (q quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return q, tea.Quit }
func (q quitModel) View() string                        { return "" }

func newTestTUI() (*TUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewTUI(&buf, nil, NewSimpleUI(cmd)), &buf
}

func waitOrFail(t *testing.T, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	tui, _ := newTestTUI()

	require.NoError(t, tui.startWithModel(quitModel{}))
	require.NoError(t, tui.startWithModel(quitModel{}), "second start is a no-op")

	waitOrFail(t, tui.Wait)
	waitOrFail(t, tui.Close)

	assert.NoError(t, tui.Err())
}

func TestTUI_SendBeforeStartIsNoop(t *testing.T) {
	tui, _ := newTestTUI()

	assert.False(t, tui.send(shadowsMsg{version: 1}))

	waitOrFail(t, tui.Wait)
	waitOrFail(t, tui.Close)
}

func TestTUI_ReportModeDoesNotStartProgram(t *testing.T) {
	tui, _ := newTestTUI()

	require.NoError(t, tui.Start(WithReportMode()))
	assert.False(t, tui.started)
}

func TestTUI_DisplayShadowsWithoutProgramPrintsTable(t *testing.T) {
	tui, buf := newTestTUI()

	rows := []ShadowRow{{Name: "ShadowStatFs", Target: "android.os.StatFs", Range: "[0,∞)", Methods: 8, Active: true}}
	require.NoError(t, tui.DisplayShadows(rows, 25))

	assert.Contains(t, buf.String(), "ShadowStatFs")
	assert.Contains(t, buf.String(), "TOTAL SHADOWS 1")
}

func TestTUI_DisplayResolutionAndMatrix(t *testing.T) {
	tui, buf := newTestTUI()

	require.NoError(t, tui.DisplayResolution(Resolution{Type: "example.Widget", Version: 4}))
	assert.Contains(t, buf.String(), "Resolve example.Widget")
	assert.Contains(t, buf.String(), "example.Widget is unshadowed at SDK 4")

	buf.Reset()

	result := domain.MatrixResult{
		Types:    []m.TypeID{"example.Widget"},
		Versions: []int{1},
		Rows:     [][]domain.MatrixCell{{{Type: "example.Widget", Version: 1, Shadow: "ShadowWidget"}}},
	}
	require.NoError(t, tui.DisplayMatrix(result))
	assert.Contains(t, buf.String(), "1 type(s) x 1 version(s)")
	assert.Contains(t, buf.String(), "ShadowWidget")
}

func TestTUI_DisplayResetAndDrift(t *testing.T) {
	tui, buf := newTestTUI()

	require.NoError(t, tui.DisplayReset(1, nil))
	require.NoError(t, tui.DisplayDrift(""))

	output := buf.String()
	assert.True(t, strings.Contains(output, "Ran 1 reset hook(s)"), output)
	assert.Contains(t, output, "Manifest matches registered shadows")
}
