package report

import (
	"encoding/json"
	"io"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/redactyl/headerlint/internal/types"
)

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           int               `json:"ruleIndex"`
	Level               string            `json:"level"`
	Message             sarifMessage      `json:"message"`
	Locations           []sarifLoc        `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// Fingerprint identifies a finding by kind and path only, matching how the
// exception list suppresses findings regardless of line.
func Fingerprint(f types.Finding) string {
	return strconv.FormatUint(xxhash.Sum64String(f.Kind.String()+"|"+f.Path), 16)
}

// WriteSARIF writes findings as SARIF 2.1.0, one rule per violation kind.
func WriteSARIF(w io.Writer, findings []types.Finding, version string) error {
	driver := sarifDriver{Name: "headerlint", Version: version}
	index := map[types.Kind]int{}
	for i, k := range types.Kinds {
		index[k] = i
		driver.Rules = append(driver.Rules, sarifRule{ID: k.String(), ShortDescription: sarifMessage{Text: k.Message()}})
	}
	run := sarifRun{Tool: sarifTool{Driver: driver}, Results: []sarifResult{}}
	for _, f := range findings {
		run.Results = append(run.Results, sarifResult{
			RuleID:    f.Kind.String(),
			RuleIndex: index[f.Kind],
			Level:     "error",
			Message:   sarifMessage{Text: f.Kind.Message()},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: f.Path},
					Region:           sarifRegion{StartLine: f.Line},
				},
			}},
			PartialFingerprints: map[string]string{"headerlint/v1": Fingerprint(f)},
		})
	}
	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
