package report

import (
	"fmt"
	"sort"

	"github.com/redactyl/headerlint/internal/types"
)

// Mode is the enforcement mode derived from the exception table.
type Mode int

const (
	// ModeBootstrap: the exception table is empty, so findings are printed
	// but never fail the run. Its output seeds the exception file.
	ModeBootstrap Mode = iota
	// ModeEnforce: any new finding fails the run.
	ModeEnforce
)

func (m Mode) String() string {
	if m == ModeEnforce {
		return "enforce"
	}
	return "bootstrap"
}

// ModeFor returns ModeBootstrap for an empty table and ModeEnforce otherwise.
func ModeFor(ex *Exceptions) Mode {
	if ex.Empty() {
		return ModeBootstrap
	}
	return ModeEnforce
}

// RunResult summarizes a lint pass after suppression.
type RunResult struct {
	New        int
	Suppressed int
	Mode       Mode
}

// AnyNew reports whether at least one finding was not suppressed.
func (r RunResult) AnyNew() bool { return r.New > 0 }

// ExitCode is 1 when new findings exist in enforce mode and 0 otherwise.
func (r RunResult) ExitCode() int {
	if r.AnyNew() && r.Mode == ModeEnforce {
		return 1
	}
	return 0
}

// FormatLine renders f as `<path> : line <n> : <ERR_TOKEN> : <message>`.
// Path comes first so the output can be piped through sort.
func FormatLine(f types.Finding) string {
	return fmt.Sprintf("%s : line %d : %s : %s", f.Path, f.Line, f.Kind, f.Kind.Message())
}

// FilterNew drops findings grandfathered by ex, keeping insertion order.
func FilterNew(findings []types.Finding, ex *Exceptions) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if ex.Contains(f.Kind, f.Path) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Report formats every unsuppressed finding and reports whether there was
// any. Lines keep insertion order.
func Report(findings []types.Finding, ex *Exceptions) (lines []string, anyNew bool) {
	for _, f := range FilterNew(findings, ex) {
		lines = append(lines, FormatLine(f))
		anyNew = true
	}
	return lines, anyNew
}

// Summarize counts new and suppressed findings and derives the mode.
func Summarize(findings []types.Finding, ex *Exceptions) RunResult {
	newCount := len(FilterNew(findings, ex))
	return RunResult{
		New:        newCount,
		Suppressed: len(findings) - newCount,
		Mode:       ModeFor(ex),
	}
}

// SortFindings orders findings by path, then line, then kind.
func SortFindings(findings []types.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Kind < b.Kind
	})
}
