// Package engine contains the core header linting logic. It classifies
// lines, runs the import-only and header scanners over each file, and returns
// structured findings in input order. This package is internal; external
// consumers should use the stable facade in pkg/core.
package engine
