package report

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/redactyl/headerlint/internal/types"
)

// DefaultExceptionsPath is where the exception list lives relative to the
// working directory.
const DefaultExceptionsPath = "scripts/copy-mod-doc-exceptions-short.txt"

// Exceptions is the read-only set of grandfathered (kind, path) pairs.
type Exceptions struct {
	items   map[types.ExceptionEntry]bool
	ordered []types.ExceptionEntry
}

// NewExceptions builds a store from entries, dropping duplicates.
func NewExceptions(entries ...types.ExceptionEntry) *Exceptions {
	e := &Exceptions{items: map[types.ExceptionEntry]bool{}}
	for _, en := range entries {
		e.add(en)
	}
	return e
}

func (e *Exceptions) add(en types.ExceptionEntry) {
	if e.items[en] {
		return
	}
	e.items[en] = true
	e.ordered = append(e.ordered, en)
}

// LoadExceptions reads an exception list: one `<path> <placeholder> <ERR_TOKEN>`
// record per line. Unknown tokens are skipped; a missing file or a record
// without exactly three fields is an error.
func LoadExceptions(path string) (*Exceptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("exceptions: %w", err)
	}
	defer f.Close()
	ex, err := ParseExceptions(f)
	if err != nil {
		return nil, fmt.Errorf("exceptions %s: %w", path, err)
	}
	return ex, nil
}

// ParseExceptions reads exception records from r.
func ParseExceptions(r io.Reader) (*Exceptions, error) {
	ex := NewExceptions()
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 fields, got %d", n, len(fields))
		}
		kind, ok := types.ParseKind(fields[2])
		if !ok {
			continue
		}
		ex.add(types.ExceptionEntry{Kind: kind, Path: fields[0]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ex, nil
}

// Contains reports whether findings of kind in path are grandfathered.
func (e *Exceptions) Contains(kind types.Kind, path string) bool {
	if e == nil {
		return false
	}
	return e.items[types.ExceptionEntry{Kind: kind, Path: path}]
}

// Len returns the number of distinct entries.
func (e *Exceptions) Len() int {
	if e == nil {
		return 0
	}
	return len(e.ordered)
}

func (e *Exceptions) Empty() bool { return e.Len() == 0 }

// Entries returns the entries in load order.
func (e *Exceptions) Entries() []types.ExceptionEntry {
	if e == nil {
		return nil
	}
	return append([]types.ExceptionEntry(nil), e.ordered...)
}

// WriteExceptions writes one record per distinct (path, kind) of findings,
// sorted by path then kind. The placeholder column carries the first line
// the violation was seen on.
func WriteExceptions(w io.Writer, findings []types.Finding) error {
	first := map[types.ExceptionEntry]int{}
	for _, f := range findings {
		if l, ok := first[f.Entry()]; !ok || f.Line < l {
			first[f.Entry()] = f.Line
		}
	}
	entries := make([]types.ExceptionEntry, 0, len(first))
	for en := range first {
		if strings.ContainsFunc(en.Path, unicode.IsSpace) {
			return fmt.Errorf("cannot record %q: paths in the exception list must not contain whitespace", en.Path)
		}
		entries = append(entries, en)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path == entries[j].Path {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Path < entries[j].Path
	})
	bw := bufio.NewWriter(w)
	for _, en := range entries {
		if _, err := fmt.Fprintf(bw, "%s %d %s\n", en.Path, first[en], en.Kind); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveExceptions writes the exception list for findings to path.
func SaveExceptions(path string, findings []types.Finding) error {
	var buf bytes.Buffer
	if err := WriteExceptions(&buf, findings); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
