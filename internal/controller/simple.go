package controller

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/shadower/internal/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// SimpleUI implements UI using plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately.
func (s *SimpleUI) Wait() {}

// DisplayShadows prints one table row per registered shadow.
func (s *SimpleUI) DisplayShadows(rows []ShadowRow, version int) error {
	if len(rows) == 0 {
		s.printf("No shadows registered\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Shadow", "Target", "Range", "Methods", "Reset", fmt.Sprintf("SDK %d", version)})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	methods, active := 0, 0

	for _, row := range rows {
		table.Append([]string{
			row.Name,
			row.Target,
			row.Range,
			fmt.Sprintf("%d", row.Methods),
			yesNo(row.Reset),
			yesNo(row.Active),
		})

		methods += row.Methods
		if row.Active {
			active++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Shadows %d", len(rows)),
		"", "",
		fmt.Sprintf("%d", methods),
		"",
		fmt.Sprintf("%d active", active),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayResolution prints the winning shadow and its reachable methods.
func (s *SimpleUI) DisplayResolution(res Resolution) error {
	if res.Shadow == "" {
		s.printf("%s is unshadowed at SDK %d\n", res.Type, res.Version)
		return nil
	}

	s.printf("%s\n", headingStyle.Render(fmt.Sprintf("%s -> %s %s at SDK %d", res.Type, res.Shadow, res.Range, res.Version)))

	if len(res.Methods) == 0 {
		s.printf("No shadow methods active\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Method"})

	for _, key := range res.Methods {
		table.Append([]string{key})
	}

	table.SetFooter([]string{fmt.Sprintf("Active %d", len(res.Methods))})
	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayMatrix prints the winning shadow name per type and version.
func (s *SimpleUI) DisplayMatrix(result domain.MatrixResult) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader(matrixHeader(result))

	for i, t := range result.Types {
		row := []string{string(t)}
		for j := range result.Versions {
			row = append(row, cellLabel(result.Cell(i, j)))
		}

		table.Append(row)
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayReset prints the outcome of a reset sweep and returns err.
func (s *SimpleUI) DisplayReset(hooks int, err error) error {
	s.printf("Ran %d reset hook(s)\n", hooks)

	if err == nil {
		s.printf("%s\n", okStyle.Render("All reset hooks succeeded"))
		return nil
	}

	var resetErr *domain.ResetError
	if !errors.As(err, &resetErr) {
		s.printf("%s\n", failStyle.Render("reset error: "+err.Error()))
		return err
	}

	for _, f := range resetErr.Failures {
		s.printf("%s %s (%s): %v\n", failStyle.Render("FAILED"), f.Shadow, f.Target, f.Err)
	}

	return err
}

// DisplayDrift prints the difference between a saved manifest and the
// registered shadows.
func (s *SimpleUI) DisplayDrift(diff string) error {
	if diff == "" {
		s.printf("%s\n", okStyle.Render("Manifest matches registered shadows"))
		return nil
	}

	s.printf("%s\n%s", failStyle.Render("Manifest drift (-saved +registered):"), diff)
	if !strings.HasSuffix(diff, "\n") {
		s.printf("\n")
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func matrixHeader(result domain.MatrixResult) []string {
	header := []string{"Type"}
	for _, v := range result.Versions {
		header = append(header, fmt.Sprintf("%d", v))
	}

	return header
}

func cellLabel(cell domain.MatrixCell) string {
	if cell.Shadow == "" {
		return "-"
	}

	return cell.Shadow
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
