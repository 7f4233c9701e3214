// Where: cli/internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize prefixes, indentation, and styling across commands.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes the output helpers used by command handlers.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(title string, rows []KeyValue)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	keyStyle     = lipgloss.NewStyle().Faint(true)
)

// Console provides helper methods for formatted output.
type Console struct {
	Out    io.Writer
	Styled bool
}

// New creates a Console that styles output only when out is a terminal.
func New(out io.Writer) *Console {
	return &Console{Out: out, Styled: IsTerminal(out)}
}

// IsTerminal reports whether out is a terminal device.
func IsTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok || file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Info prints a plain message.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", c.style(successStyle, "✓"), msg)
}

// Warn prints a warning or error message.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.Out, c.style(warnStyle, msg))
}

// Block prints a titled list of key-value rows.
// Example:
//
//	Launcher
//	   Output:        out/bin/run.py
func (c *Console) Block(title string, rows []KeyValue) {
	fmt.Fprintln(c.Out, c.style(titleStyle, title))
	for _, row := range rows {
		c.Item(row.Key, row.Value)
	}
}

// Item prints a key-value item with indentation.
func (c *Console) Item(key string, value any) {
	label := fmt.Sprintf("%-14s", key+":")
	fmt.Fprintf(c.Out, "   %s %v\n", c.style(keyStyle, label), value)
}

func (c *Console) style(style lipgloss.Style, text string) string {
	if !c.Styled {
		return text
	}
	return style.Render(text)
}
