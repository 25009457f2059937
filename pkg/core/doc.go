// Package core provides a small, stable facade over headerlint's internal
// engine for external integrations such as build tools and editors.
//
// Example:
//
//	findings, err := core.Lint(ctx, core.Config{Paths: []string{"Mathlib"}})
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
