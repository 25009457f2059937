package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redactyl/headerlint/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestCheckLines_ImportOnlyFileSkipsHeaderScan(t *testing.T) {
	// an import-only file has no copyright block, but gets no ERR_COP
	fs, err := CheckLines(context.Background(), "All.lean", rawLines("import A\nimport B C\n"), DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, []types.Finding{{Kind: types.MultipleImportsPerLine, Line: 2, Path: "All.lean"}}, fs)
}

func TestCheckLines_FallsBackToHeaderScan(t *testing.T) {
	fs, err := CheckLines(context.Background(), "F.lean", rawLines(wellFormedHeader+"def f := 1\nimport A B\n"), DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, []types.Finding{{Kind: types.MissingOrLateModuleDoc, Line: 6, Path: "F.lean"}}, fs)
}

func TestRun_PreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"Z.lean", "A.lean", "M.lean", "B.lean", "Y.lean"} {
		paths = append(paths, writeFile(t, dir, name, "import X Y\n"))
	}
	for _, threads := range []int{0, 1, 4} {
		res, err := Run(context.Background(), Config{Paths: paths, Threads: threads})
		require.NoError(t, err)
		require.Len(t, res.Findings, len(paths))
		for i, f := range res.Findings {
			assert.Equal(t, paths[i], f.Path, "threads=%d", threads)
		}
		assert.Equal(t, len(paths), res.FilesLinted)
	}
}

func TestRun_MissingFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "A.lean", "import X Y\n")
	_, err := Run(context.Background(), Config{Paths: []string{ok, filepath.Join(dir, "missing.lean")}})
	require.Error(t, err)

	findings, err := Lint(context.Background(), Config{Paths: []string{ok, filepath.Join(dir, "missing.lean")}, Threads: 3})
	require.Error(t, err)
	assert.Nil(t, findings)
}

func TestRun_CustomCopyrightMarkers(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "F.lean", "/-\nSPDX-License-Identifier: MIT\n-/\n/-!\n")
	rules := DefaultRules()
	fs, err := Lint(context.Background(), Config{Paths: []string{p}, Rules: rules})
	require.NoError(t, err)
	assert.Len(t, fs, 1)

	rules.CopyrightMarkers = []string{"SPDX-License-Identifier"}
	fs, err = Lint(context.Background(), Config{Paths: []string{p}, Rules: rules})
	require.NoError(t, err)
	assert.Empty(t, fs)
}
