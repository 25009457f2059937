// Package headerlint provides the command-line interface for the headerlint
// tool. It parses flags, merges them with YAML configuration, runs the lint
// engine and maps the outcome to an exit status.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/headerlint/cmd/headerlint"
//	func main() { headerlint.Execute() }
package headerlint
