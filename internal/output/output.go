// Package output holds the CLI's printing helpers: styled status lines,
// JSON envelopes and the group tree.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/lightbox/internal/models"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Stdout and Stderr are where the helpers write
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Fprintln(Stdout, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message to stderr
func Error(format string, args ...interface{}) {
	fmt.Fprintln(Stderr, errorStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning to stderr
func Warning(format string, args ...interface{}) {
	fmt.Fprintln(Stderr, warningStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Muted renders s in the dim style
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// JSON prints v as indented JSON
func JSON(v interface{}) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ErrorBody is the JSON error envelope
type ErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// JSONError prints an error envelope to stdout so scripted callers still
// get parseable output
func JSONError(code, message string) {
	var body ErrorBody
	body.Error.Code = code
	body.Error.Message = message
	_ = JSON(body)
}

// FormatTag returns the bracketed tag label, e.g. "[image]"
func FormatTag(t models.Tag) string {
	return "[" + t.Label() + "]"
}

// FormatItemShort formats an item as a single line
func FormatItemShort(item models.MediaItem) string {
	line := fmt.Sprintf("#%d %s %s", item.ID, FormatTag(item.Tag), item.Title())
	if item.Src != "" && item.Src != item.Title() {
		line += " " + Muted(item.Src)
	}
	return line
}
