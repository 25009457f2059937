package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/redactyl/headerlint/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanHeader(t *testing.T, src string) []types.Finding {
	t.Helper()
	fs, err := ScanHeader(context.Background(), "F.lean", ParseLines(rawLines(src)), DefaultRules())
	require.NoError(t, err)
	return fs
}

func TestScanHeader_WellFormed(t *testing.T) {
	srcs := map[string]string{
		"module doc":      "\n\n" + wellFormedHeader + "\nimport A\nimport B -- why\n\n/-!\n# Title\n-/\n",
		"doc no imports":  wellFormedHeader + "/-! # Title -/\ndef f := 1\n",
		"imports only":    wellFormedHeader + "import A\n\nimport B\n",
		"header only":     wellFormedHeader,
		"crlf terminated": strings.ReplaceAll(wellFormedHeader+"import A\n/-!\n", "\n", "\r\n"),
	}
	for name, src := range srcs {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, scanHeader(t, src))
		})
	}
}

func TestScanHeader_MissingAuthor(t *testing.T) {
	src := "\n/-\nCopyright (c) 2024 Jane Doe.\nReleased under Apache 2.0 license.\n-/\nimport A\n/-!\n"
	assert.Equal(t, []types.Finding{{Kind: types.MalformedCopyright, Line: 2, Path: "F.lean"}}, scanHeader(t, src))
}

func TestScanHeader_ContentBeforeCopyright(t *testing.T) {
	src := "-- stray\n\nset_option x\n" + wellFormedHeader + "/-!\n"
	assert.Equal(t, []types.Finding{
		{Kind: types.MalformedCopyright, Line: 1, Path: "F.lean"},
		{Kind: types.MalformedCopyright, Line: 3, Path: "F.lean"},
	}, scanHeader(t, src))
}

func TestScanHeader_NoCopyrightAtAll(t *testing.T) {
	src := "import A\ndef f := 1\n"
	assert.Equal(t, []types.Finding{
		{Kind: types.MalformedCopyright, Line: 1, Path: "F.lean"},
		{Kind: types.MalformedCopyright, Line: 2, Path: "F.lean"},
	}, scanHeader(t, src))
}

func TestScanHeader_MultipleImportsKeepsScanning(t *testing.T) {
	src := wellFormedHeader + "import A B\nimport C -- ok\nimport D E\n/-!\n"
	assert.Equal(t, []types.Finding{
		{Kind: types.MultipleImportsPerLine, Line: 6, Path: "F.lean"},
		{Kind: types.MultipleImportsPerLine, Line: 8, Path: "F.lean"},
	}, scanHeader(t, src))
}

func TestScanHeader_LateModuleDocStopsScan(t *testing.T) {
	src := wellFormedHeader + "import A\n\ndef f := 1\nimport B C\n/-!\n"
	assert.Equal(t, []types.Finding{
		{Kind: types.MissingOrLateModuleDoc, Line: 8, Path: "F.lean"},
	}, scanHeader(t, src))
}

func TestScanHeader_ModuleDocStopsScan(t *testing.T) {
	src := wellFormedHeader + "/-!\n-/\nimport A B\n"
	assert.Empty(t, scanHeader(t, src))
}

func TestScanHeader_DelimitersAfterCopyrightAreCode(t *testing.T) {
	src := wellFormedHeader + "/-\n"
	assert.Equal(t, []types.Finding{
		{Kind: types.MissingOrLateModuleDoc, Line: 6, Path: "F.lean"},
	}, scanHeader(t, src))
}

func TestScanHeader_UnterminatedCopyright(t *testing.T) {
	src := "/-\nCopyright (c) 2024\nimport A B\n"
	assert.Empty(t, scanHeader(t, src))
}

func TestScanHeader_TextBeforeOpenerIsNotPartOfBlock(t *testing.T) {
	// markers appearing before the opener do not satisfy the block check
	src := "Author Apache\n/-\nCopyright (c) 2024\n-/\n/-!\n"
	assert.Equal(t, []types.Finding{
		{Kind: types.MalformedCopyright, Line: 1, Path: "F.lean"},
		{Kind: types.MalformedCopyright, Line: 2, Path: "F.lean"},
	}, scanHeader(t, src))
}
