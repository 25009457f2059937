package engine

import "strings"

// Rules describes the source-file convention being enforced.
type Rules struct {
	ImportKeyword    string
	CommentMarker    string
	CopyrightOpen    string
	CopyrightClose   string
	ModuleDocOpen    string
	CopyrightMarkers []string
}

// DefaultRules returns the Lean-style convention: `import X` lines,
// `--` comments, `/-` ... `-/` copyright blocks and `/-!` module docs.
func DefaultRules() Rules {
	return Rules{
		ImportKeyword:    "import",
		CommentMarker:    "--",
		CopyrightOpen:    "/-",
		CopyrightClose:   "-/",
		ModuleDocOpen:    "/-!",
		CopyrightMarkers: []string{"Copyright (c)", "Apache", "Author"},
	}
}

// LineClass is the shape of a single line.
type LineClass int

const (
	Blank LineClass = iota
	Import
	CopyrightOpen
	CopyrightClose
	ModuleDoc
	Other
)

func (c LineClass) String() string {
	switch c {
	case Blank:
		return "blank"
	case Import:
		return "import"
	case CopyrightOpen:
		return "copyright-open"
	case CopyrightClose:
		return "copyright-close"
	case ModuleDoc:
		return "module-doc"
	default:
		return "other"
	}
}

// Line is one line of a source file.
type Line struct {
	Number  int    // 1-based
	Raw     string // with terminator
	Content string // without terminator
	Tokens  []string
}

// ParseLine strips the line terminator ("\n" or "\r\n") and tokenizes on
// whitespace.
func ParseLine(number int, raw string) Line {
	content := strings.TrimSuffix(raw, "\n")
	content = strings.TrimSuffix(content, "\r")
	return Line{
		Number:  number,
		Raw:     raw,
		Content: content,
		Tokens:  strings.Fields(content),
	}
}

// ParseLines numbers and parses every raw line.
func ParseLines(raw []string) []Line {
	out := make([]Line, len(raw))
	for i, r := range raw {
		out[i] = ParseLine(i+1, r)
	}
	return out
}

// Classify reports the shape of l without regard to scanner state; callers
// decide what a delimiter means in their current phase.
func (r Rules) Classify(l Line) LineClass {
	switch {
	case l.Content == "":
		return Blank
	case l.Content == r.CopyrightOpen:
		return CopyrightOpen
	case l.Content == r.CopyrightClose:
		return CopyrightClose
	case len(l.Tokens) == 0:
		// whitespace only
		return Other
	case l.Tokens[0] == r.ModuleDocOpen:
		return ModuleDoc
	case l.Tokens[0] == r.ImportKeyword:
		return Import
	default:
		return Other
	}
}

// MultipleImports reports whether an import line names more than one module.
// A third token equal to the comment marker is allowed.
func (r Rules) MultipleImports(l Line) bool {
	return len(l.Tokens) > 2 && l.Tokens[2] != r.CommentMarker
}

// HasCopyrightMarkers reports whether block contains every required marker.
func (r Rules) HasCopyrightMarkers(block string) bool {
	for _, m := range r.CopyrightMarkers {
		if !strings.Contains(block, m) {
			return false
		}
	}
	return true
}
