package core

import (
	"context"

	"github.com/redactyl/headerlint/internal/engine"
	"github.com/redactyl/headerlint/internal/report"
	"github.com/redactyl/headerlint/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type Config = engine.Config
type Rules = engine.Rules
type Finding = types.Finding
type Kind = types.Kind
type Exceptions = report.Exceptions

const (
	MalformedCopyright     = types.MalformedCopyright
	MultipleImportsPerLine = types.MultipleImportsPerLine
	MissingOrLateModuleDoc = types.MissingOrLateModuleDoc
)

// DefaultRules returns the standard header convention.
func DefaultRules() Rules { return engine.DefaultRules() }

// Lint is the stable entrypoint for other programs. Findings are returned
// unfiltered; use FilterNew to apply an exception list.
func Lint(ctx context.Context, cfg Config) ([]Finding, error) {
	return engine.Lint(ctx, cfg)
}

// LoadExceptions reads an exception list file.
func LoadExceptions(path string) (*Exceptions, error) { return report.LoadExceptions(path) }

// FilterNew drops findings grandfathered by ex.
func FilterNew(findings []Finding, ex *Exceptions) []Finding { return report.FilterNew(findings, ex) }

// FormatLine renders a finding as a diagnostic line.
func FormatLine(f Finding) string { return report.FormatLine(f) }
