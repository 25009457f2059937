package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/redactyl/headerlint/internal/types"
)

// WriteText writes one diagnostic line per finding.
func WriteText(w io.Writer, findings []types.Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, FormatLine(f)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes findings as an indented JSON array (never null).
func WriteJSON(w io.Writer, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// PrintTable renders findings as a bordered table.
func PrintTable(w io.Writer, findings []types.Finding) error {
	if len(findings) == 0 {
		_, err := fmt.Fprintln(w, "No header violations found ✅")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header("FILE", "LINE", "CODE", "MESSAGE")
	for _, f := range findings {
		if err := table.Append([]string{f.Path, strconv.Itoa(f.Line), f.Kind.String(), f.Kind.Message()}); err != nil {
			return err
		}
	}
	return table.Render()
}

type SummaryOptions struct {
	Color       bool
	FilesLinted int
	Duration    time.Duration
}

var (
	styleBad  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleGood = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintSummary writes a one-line footer with counts and the enforcement mode.
func PrintSummary(w io.Writer, res RunResult, opts SummaryOptions) {
	counts := fmt.Sprintf("%d new", res.New)
	detail := fmt.Sprintf("%d suppressed, %s mode, %d files in %.2fs",
		res.Suppressed, res.Mode, opts.FilesLinted, opts.Duration.Seconds())
	if opts.Color {
		if res.AnyNew() {
			counts = styleBad.Render(counts)
		} else {
			counts = styleGood.Render(counts)
		}
		detail = styleDim.Render(detail)
	}
	fmt.Fprintf(w, "headerlint: %s (%s)\n", counts, detail)
}
