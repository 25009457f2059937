package files

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/redactyl/headerlint/internal/types"
)

// ReadSource loads path fully into memory as a SourceFile. Line terminators
// are kept so that a line holding only "\n" can be told apart from one
// holding whitespace.
func ReadSource(path string) (types.SourceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.SourceFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()
	lines, err := SplitLines(f)
	if err != nil {
		return types.SourceFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	return types.SourceFile{Path: path, Lines: lines}, nil
}

// SplitLines splits r into lines, each ending with its "\n" except possibly
// the last one.
func SplitLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
