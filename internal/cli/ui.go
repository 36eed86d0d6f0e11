package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/entail/pkg/analysis"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleHighlight for emphasized values (term names).
	styleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleValue for data values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// =============================================================================
// Query Reports
// =============================================================================

// pathString joins a term path with implication arrows.
func pathString(path []string) string {
	return strings.Join(path, " "+iconArrow+" ")
}

// printReachability prints the full reachability report for a term:
// the reachable count, the sorted term list, and one shortest-path line
// per reachable term.
func printReachability(result *analysis.Reachability) {
	if result.Count() == 0 {
		printInfo("No terms are reachable from %s", styleHighlight.Render(result.Start))
		return
	}

	fmt.Println(styleTitle.Render(fmt.Sprintf("From %s, %d term(s) are reachable:", result.Start, result.Count())))
	for _, term := range result.Reachable() {
		fmt.Println("  " + styleValue.Render(term))
	}
	fmt.Println()
	fmt.Println(styleTitle.Render("Shortest derivation paths:"))
	for _, term := range result.Reachable() {
		fmt.Println("  " + styleDim.Render(pathString(result.Path(term))))
	}
}

// printChain prints the longest-chain report: the chain itself plus the
// conclusion it supports.
func printChain(chain []string) {
	if len(chain) == 0 {
		printInfo("The graph has no edges; there is no chain to report")
		return
	}

	fmt.Println(styleTitle.Render("Longest implication chain (sorites conclusion):"))
	fmt.Println("  " + styleValue.Render(pathString(chain)))
	fmt.Printf("  %s %s\n",
		styleDim.Render("Concludes:"),
		styleHighlight.Render(chain[0]+" "+iconArrow+" "+chain[len(chain)-1]))
}
