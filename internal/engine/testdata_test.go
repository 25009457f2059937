package engine

import "strings"

const wellFormedHeader = "/-\n" +
	"Copyright (c) 2024 Jane Doe. All rights reserved.\n" +
	"Released under Apache 2.0 license as described in the file LICENSE.\n" +
	"Authors: Jane Doe\n" +
	"-/\n"

// rawLines splits s the way files.SplitLines does, keeping "\n".
func rawLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
