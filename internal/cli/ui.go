package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// uiOut receives all status output. Tests swap it for a buffer.
var uiOut io.Writer = os.Stdout

// =============================================================================
// Palette
// =============================================================================

// Adaptive pairs keep the palette legible on light and dark terminals.
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "30", Dark: "36"}   // teal, primary accent
	colorSuccess = lipgloss.AdaptiveColor{Light: "28", Dark: "35"}   // green
	colorWarning = lipgloss.AdaptiveColor{Light: "130", Dark: "220"} // amber
	colorError   = lipgloss.AdaptiveColor{Light: "124", Dark: "167"} // soft red
	colorLink    = lipgloss.AdaptiveColor{Light: "26", Dark: "75"}   // blue
	colorValue   = lipgloss.AdaptiveColor{Light: "235", Dark: "255"} // high-contrast values
	colorMuted   = lipgloss.AdaptiveColor{Light: "245", Dark: "245"} // secondary text
	colorFaint   = lipgloss.AdaptiveColor{Light: "250", Dark: "240"} // dim text
)

// =============================================================================
// Styles
// =============================================================================

// Shared by the print helpers below and by the demo TUI.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleLink      = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorFaint)
	StyleValue     = lipgloss.NewStyle().Foreground(colorValue)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorAccent)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorWarning)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorSuccess)
	styleIconError   = lipgloss.NewStyle().Foreground(colorError)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorWarning)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorMuted)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)

	styleCached   = lipgloss.NewStyle().Foreground(colorSuccess)
	styleComputed = lipgloss.NewStyle().Foreground(colorMuted)

	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
	styleKey     = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Print helpers
// =============================================================================

// The print helpers write one line each. Commands compose them instead
// of talking to stdout directly, so output stays uniform across the
// command tree.

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(uiOut, styleIconSuccess.Render(iconSuccess) + " " + msg)
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(uiOut, styleIconError.Render(iconError) + " " + msg)
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(uiOut, styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(uiOut, styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints an indented, de-emphasized detail line.
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(uiOut, "  " + StyleDim.Render(msg))
}

// printFile prints an artifact output line.
func printFile(path string) {
	fmt.Fprintln(uiOut, "  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printLink prints a URL line.
func printLink(url string) {
	fmt.Fprintln(uiOut, "  " + StyleDim.Render(iconArrow) + " " + StyleLink.Render(url))
}

// printKeyValue prints a labeled value in a fixed-width key column.
func printKeyValue(key, value string) {
	fmt.Fprintln(uiOut, styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints dataset dimensions and the cache status on one line.
// Zero dimensions are omitted, so artifact-only results stay compact.
func printStats(rows, cols int, cached bool) {
	var parts []string
	if rows > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d rows", rows)))
	}
	if cols > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d columns", cols)))
	}

	status, style := iconFresh, styleComputed
	if cached {
		status, style = iconCached, styleCached
	}
	parts = append(parts, style.Render(status))

	fmt.Fprintln(uiOut, "  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(uiOut, StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Fprintln(uiOut)
}
