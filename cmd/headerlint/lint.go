package headerlint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/redactyl/headerlint/internal/config"
	"github.com/redactyl/headerlint/internal/engine"
	"github.com/redactyl/headerlint/internal/logger"
	"github.com/redactyl/headerlint/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const defaultExceptionsHint = report.DefaultExceptionsPath

var formats = map[string]bool{"text": true, "json": true, "sarif": true, "table": true}

// settings is the merged view of flags, local and global config.
type settings struct {
	exceptions string
	format     string
	noColor    bool
	engine     engine.Config
	log        *zap.Logger
}

func resolve(o *options, paths []string) (settings, error) {
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
	}

	s := settings{
		exceptions: pickString(o.exceptions, lcfg.Exceptions, gcfg.Exceptions),
		format:     strings.ToLower(pickString(o.format, lcfg.Format, gcfg.Format)),
		noColor:    pickBool(o.noColor, lcfg.NoColor, gcfg.NoColor),
		log:        logger.FromEnv(o.stderr, pickString(o.logLevel, lcfg.LogLevel, gcfg.LogLevel)),
	}
	if s.exceptions == "" {
		s.exceptions = report.DefaultExceptionsPath
	}
	if s.format == "" {
		s.format = "text"
	}
	if !formats[s.format] {
		return s, fmt.Errorf("unknown --format %q (want text, json, sarif or table)", s.format)
	}

	rules := engine.DefaultRules()
	if m := pickSlice(nil, lcfg.CopyrightMarkers, gcfg.CopyrightMarkers); len(m) > 0 {
		rules.CopyrightMarkers = m
	}
	s.engine = engine.Config{
		Paths:        paths,
		Extensions:   pickSlice(o.exts, lcfg.Extensions, gcfg.Extensions),
		IncludeGlobs: pickString(o.include, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(o.exclude, lcfg.Exclude, gcfg.Exclude),
		Threads:      pickInt(o.threads, lcfg.Threads, gcfg.Threads),
		Rules:        rules,
		Logger:       s.log,
	}
	return s, nil
}

func runLint(cmd *cobra.Command, o *options, args []string) error {
	s, err := resolve(o, args)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	ex, err := report.LoadExceptions(s.exceptions)
	if err != nil {
		return err
	}
	s.log.Debug("exceptions loaded", zap.String("path", s.exceptions), zap.Int("entries", ex.Len()))

	res, err := engine.Run(cmd.Context(), s.engine)
	if err != nil {
		return err
	}

	newFindings := report.FilterNew(res.Findings, ex)
	if o.sort {
		report.SortFindings(newFindings)
	}
	switch s.format {
	case "json":
		err = report.WriteJSON(o.stdout, newFindings)
	case "sarif":
		err = report.WriteSARIF(o.stdout, newFindings, version)
	case "table":
		err = report.PrintTable(o.stdout, newFindings)
	default:
		err = report.WriteText(o.stdout, newFindings)
	}
	if err != nil {
		return fmt.Errorf("write %s output: %w", s.format, err)
	}

	sum := report.Summarize(res.Findings, ex)
	if isTerminal(o.stderr) {
		report.PrintSummary(o.stderr, sum, report.SummaryOptions{
			Color:       !s.noColor,
			FilesLinted: res.FilesLinted,
			Duration:    res.Duration,
		})
	}
	if sum.AnyNew() && sum.Mode == report.ModeBootstrap {
		s.log.Info("exception list is empty; not failing on new findings", zap.Int("new", sum.New))
	}
	if code := sum.ExitCode(); code != 0 {
		return exitError{code: code}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
