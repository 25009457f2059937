package core

import (
	"encoding/json"
	"io"

	"github.com/redactyl/headerlint/internal/report"
)

// MarshalFindings writes findings in the same JSON form as --format json.
// A nil slice is written as [].
func MarshalFindings(w io.Writer, findings []Finding) error {
	return report.WriteJSON(w, findings)
}

// UnmarshalFindings decodes the output of MarshalFindings.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	fs := []Finding{}
	if err := json.NewDecoder(r).Decode(&fs); err != nil {
		return nil, err
	}
	return fs, nil
}
