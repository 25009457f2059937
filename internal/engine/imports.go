package engine

import "github.com/redactyl/headerlint/internal/types"

// ScanImportOnly checks a file that may consist solely of import lines.
// It returns false, with no findings, as soon as a non-blank line is not an
// import; findings gathered up to that point are meaningless for such files.
func ScanImportOnly(path string, lines []Line, rules Rules) (bool, []types.Finding) {
	var findings []types.Finding
	for _, l := range lines {
		switch rules.Classify(l) {
		case Blank:
			continue
		case Import:
			if rules.MultipleImports(l) {
				findings = append(findings, types.Finding{Kind: types.MultipleImportsPerLine, Line: l.Number, Path: path})
			}
		default:
			return false, nil
		}
	}
	return true, findings
}
