package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/looplab/fsm"
	"github.com/redactyl/headerlint/internal/types"
)

// Header scanning phases, in order. There are no backward transitions.
const (
	PhasePreCopyright = "pre_copyright"
	PhaseInCopyright  = "in_copyright"
	PhaseInImports    = "in_imports"
	PhaseDone         = "done"
)

const (
	eventOpenCopyright  = "open_copyright"
	eventCloseCopyright = "close_copyright"
	eventModuleDoc      = "module_doc"
	eventStop           = "stop"
)

var headerTransitions = fsm.Events{
	{Name: eventOpenCopyright, Src: []string{PhasePreCopyright}, Dst: PhaseInCopyright},
	{Name: eventCloseCopyright, Src: []string{PhaseInCopyright}, Dst: PhaseInImports},
	// a module doc ends the scan successfully
	{Name: eventModuleDoc, Src: []string{PhaseInImports}, Dst: PhaseDone},
	// first ERR_MOD wins; nothing after it is examined
	{Name: eventStop, Src: []string{PhaseInImports}, Dst: PhaseDone},
}

type headerScanner struct {
	path           string
	rules          Rules
	machine        *fsm.FSM
	copyrightStart int
	copyright      strings.Builder
	findings       []types.Finding
}

// ScanHeader validates the copyright block, then the import block, then the
// presence of a module doc or code. A non-nil error means the state machine
// was driven through a transition it does not allow.
func ScanHeader(ctx context.Context, path string, lines []Line, rules Rules) ([]types.Finding, error) {
	s := &headerScanner{
		path:    path,
		rules:   rules,
		machine: fsm.NewFSM(PhasePreCopyright, headerTransitions, fsm.Callbacks{}),
	}
	for _, l := range lines {
		if s.machine.Is(PhaseDone) {
			break
		}
		if err := s.step(ctx, l); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, l.Number, err)
		}
	}
	return s.findings, nil
}

func (s *headerScanner) step(ctx context.Context, l Line) error {
	class := s.rules.Classify(l)
	switch s.machine.Current() {
	case PhasePreCopyright:
		switch class {
		case Blank:
			return nil
		case CopyrightOpen:
			s.copyrightStart = l.Number
			return s.machine.Event(ctx, eventOpenCopyright)
		default:
			s.report(types.MalformedCopyright, l.Number)
			return nil
		}

	case PhaseInCopyright:
		s.copyright.WriteString(l.Raw)
		if class != CopyrightClose {
			return nil
		}
		if !s.rules.HasCopyrightMarkers(s.copyright.String()) {
			s.report(types.MalformedCopyright, s.copyrightStart)
		}
		return s.machine.Event(ctx, eventCloseCopyright)

	case PhaseInImports:
		switch class {
		case Blank:
			return nil
		case ModuleDoc:
			return s.machine.Event(ctx, eventModuleDoc)
		case Import:
			if s.rules.MultipleImports(l) {
				s.report(types.MultipleImportsPerLine, l.Number)
			}
			return nil
		default:
			s.report(types.MissingOrLateModuleDoc, l.Number)
			return s.machine.Event(ctx, eventStop)
		}
	}
	return nil
}

func (s *headerScanner) report(kind types.Kind, line int) {
	s.findings = append(s.findings, types.Finding{Kind: kind, Line: line, Path: s.path})
}
