package engine

import (
	"context"
	"time"

	"github.com/redactyl/headerlint/internal/files"
	"github.com/redactyl/headerlint/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config controls which files are linted and how.
type Config struct {
	// Paths are files or directories, linted in the given order.
	Paths []string
	// Extensions selects files found under directory arguments.
	Extensions   []string
	IncludeGlobs string
	ExcludeGlobs string
	// Threads > 1 lints files concurrently; output order is unaffected.
	Threads int
	Rules   Rules
	Logger  *zap.Logger
}

// Result contains findings in input order and basic run statistics.
type Result struct {
	Findings    []types.Finding
	FilesLinted int
	Duration    time.Duration
}

// CheckLines lints the lines of one file. Import-only files are decided by
// ScanImportOnly alone; everything else goes through ScanHeader.
func CheckLines(ctx context.Context, path string, raw []string, rules Rules) ([]types.Finding, error) {
	lines := ParseLines(raw)
	if importOnly, findings := ScanImportOnly(path, lines, rules); importOnly {
		return findings, nil
	}
	return ScanHeader(ctx, path, lines, rules)
}

// LintFile reads path and lints it.
func LintFile(ctx context.Context, path string, rules Rules) ([]types.Finding, error) {
	src, err := files.ReadSource(path)
	if err != nil {
		return nil, err
	}
	return CheckLines(ctx, src.Path, src.Lines, rules)
}

// Lint runs a lint pass and returns only findings (without stats).
func Lint(ctx context.Context, cfg Config) ([]types.Finding, error) {
	res, err := Run(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// Run lints every target of cfg. Any read error aborts the whole run and no
// findings are returned.
func Run(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	started := time.Now()

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rules := cfg.Rules
	if rules.ImportKeyword == "" {
		rules = DefaultRules()
	}

	targets, err := Targets(cfg)
	if err != nil {
		return result, err
	}
	log.Debug("lint targets resolved", zap.Int("files", len(targets)))

	perFile := make([][]types.Finding, len(targets))
	lintOne := func(ctx context.Context, i int) error {
		fs, err := LintFile(ctx, targets[i], rules)
		if err != nil {
			return err
		}
		log.Debug("linted file", zap.String("path", targets[i]), zap.Int("findings", len(fs)))
		perFile[i] = fs
		return nil
	}

	if cfg.Threads <= 1 {
		for i := range targets {
			if err := lintOne(ctx, i); err != nil {
				return result, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Threads)
		for i := range targets {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return lintOne(gctx, i)
			})
		}
		if err := g.Wait(); err != nil {
			return result, err
		}
	}

	for _, fs := range perFile {
		result.Findings = append(result.Findings, fs...)
	}
	result.FilesLinted = len(targets)
	result.Duration = time.Since(started)
	log.Debug("lint finished",
		zap.Int("files", result.FilesLinted),
		zap.Int("findings", len(result.Findings)),
		zap.Duration("duration", result.Duration))
	return result, nil
}
