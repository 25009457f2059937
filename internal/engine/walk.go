package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Targets expands cfg.Paths into the ordered list of files to lint. Files
// named explicitly are always kept. Directories are walked in lexical order
// and contribute files with a configured extension that pass the
// include/exclude globs.
func Targets(cfg Config) ([]string, error) {
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var out []string
	for _, root := range cfg.Paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			out = append(out, root)
			continue
		}
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != root && isDefaultDirExcluded(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !hasExtension(p, exts) {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			if !allowedByGlobs(rel, cfg) {
				return nil
			}
			out = append(out, p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return out, nil
}
