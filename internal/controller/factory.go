package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewUI returns a TUI when useTTY is set and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	plain := NewSimpleUI(cmd)
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin(), plain)
	}

	return plain
}

// IsTTY reports whether w is an interactive terminal. Anything that is not an
// *os.File, such as a buffer or a redirected stream, is not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
