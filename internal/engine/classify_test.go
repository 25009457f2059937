package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name string
		raw  string
		want LineClass
	}{
		{"newline only", "\n", Blank},
		{"crlf only", "\r\n", Blank},
		{"whitespace only", "   \n", Other},
		{"copyright open", "/-\n", CopyrightOpen},
		{"copyright open at eof", "/-", CopyrightOpen},
		{"copyright open with text", "/- Copyright\n", Other},
		{"indented open", " /-\n", Other},
		{"copyright close", "-/\n", CopyrightClose},
		{"module doc", "/-!\n", ModuleDoc},
		{"module doc with title", "/-! # Groups -/\n", ModuleDoc},
		{"module doc glued", "/-!Groups\n", Other},
		{"import", "import Mathlib.Algebra.Group\n", Import},
		{"indented import", "  import A\n", Import},
		{"importance", "importance A\n", Other},
		{"code", "def f := 1\n", Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Classify(ParseLine(1, tt.raw)))
		})
	}
}

func TestParseLine(t *testing.T) {
	l := ParseLine(7, "import A -- note\r\n")
	assert.Equal(t, 7, l.Number)
	assert.Equal(t, "import A -- note", l.Content)
	assert.Equal(t, []string{"import", "A", "--", "note"}, l.Tokens)
	assert.Equal(t, "import A -- note\r\n", l.Raw)
}

func TestMultipleImports(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		raw  string
		want bool
	}{
		{"import Foo\n", false},
		{"import Foo -- comment\n", false},
		{"import Foo --\n", false},
		{"import Foo Bar\n", true},
		{"import Foo --comment\n", true},
		{"import\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.MultipleImports(ParseLine(1, tt.raw)))
		})
	}
}

func TestHasCopyrightMarkers(t *testing.T) {
	rules := DefaultRules()
	assert.True(t, rules.HasCopyrightMarkers(wellFormedHeader))
	assert.False(t, rules.HasCopyrightMarkers("Copyright (c) 2024\nApache\n"))

	// markers may span the formatting of several lines
	rules.CopyrightMarkers = []string{"Released under\nApache"}
	assert.False(t, rules.HasCopyrightMarkers(wellFormedHeader))
	rules.CopyrightMarkers = []string{"reserved.\nReleased"}
	assert.True(t, rules.HasCopyrightMarkers(wellFormedHeader))
}
