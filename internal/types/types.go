package types

import (
	"encoding/json"
	"fmt"
)

// Kind is the category of a header lint violation. The set is closed.
type Kind int

const (
	MalformedCopyright Kind = iota
	MultipleImportsPerLine
	MissingOrLateModuleDoc
)

// Kinds lists every violation kind in token order.
var Kinds = []Kind{MalformedCopyright, MultipleImportsPerLine, MissingOrLateModuleDoc}

var kindTokens = map[Kind]string{
	MalformedCopyright:     "ERR_COP",
	MultipleImportsPerLine: "ERR_IMP",
	MissingOrLateModuleDoc: "ERR_MOD",
}

var kindMessages = map[Kind]string{
	MalformedCopyright:     "Malformed or missing copyright header",
	MultipleImportsPerLine: "More than one file imported per line",
	MissingOrLateModuleDoc: "Module docstring missing, or too late",
}

// String returns the ERR_* token used in diagnostics and exception files.
func (k Kind) String() string {
	if s, ok := kindTokens[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Message is the human readable description printed after the token.
func (k Kind) Message() string { return kindMessages[k] }

// ParseKind maps an ERR_* token back to its Kind.
func ParseKind(token string) (Kind, bool) {
	for k, s := range kindTokens {
		if s == token {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) MarshalJSON() ([]byte, error) {
	if _, ok := kindTokens[k]; !ok {
		return nil, fmt.Errorf("unknown violation kind %d", int(k))
	}
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, ok := ParseKind(s)
	if !ok {
		return fmt.Errorf("unknown violation kind %q", s)
	}
	*k = v
	return nil
}

// Finding is a single violation at a 1-based line of a file.
type Finding struct {
	Kind Kind   `json:"kind"`
	Line int    `json:"line"`
	Path string `json:"path"`
}

// ExceptionEntry grandfathers every finding of Kind in Path, whatever its line.
type ExceptionEntry struct {
	Kind Kind
	Path string
}

// Entry returns the exception entry that would suppress f.
func (f Finding) Entry() ExceptionEntry {
	return ExceptionEntry{Kind: f.Kind, Path: f.Path}
}

// SourceFile is a file split into lines with their terminators kept.
type SourceFile struct {
	Path  string
	Lines []string
}
