// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/PhycomEspol/SSC/pkg/types"
)

// Report is the on-disk record of a run: one entry per processed document
// plus aggregate totals. It captures what the console summary prints so a
// run can be audited after the fact.
type Report struct {
	GeneratedAt time.Time       `yaml:"generated_at"`
	Documents   []types.Summary `yaml:"documents"`
	Totals      ReportTotals    `yaml:"totals"`
}

// ReportTotals aggregates counts across all documents in a run.
type ReportTotals struct {
	Documents int `yaml:"documents"`
	Pages     int `yaml:"pages"`
	Written   int `yaml:"written"`
	Failed    int `yaml:"failed"`
	FromList  int `yaml:"from_list"`
	Extracted int `yaml:"extracted"`
	Generated int `yaml:"generated"`
}

// BuildReport assembles a Report from per-document summaries.
func BuildReport(summaries []*types.Summary) Report {
	r := Report{GeneratedAt: time.Now().UTC()}
	for _, s := range summaries {
		r.Documents = append(r.Documents, *s)
		r.Totals.Documents++
		r.Totals.Pages += s.Total
		r.Totals.Written += s.Succeeded()
		r.Totals.Failed += s.Failed()
		r.Totals.FromList += s.CountBySource(types.SourceList)
		r.Totals.Extracted += s.CountBySource(types.SourceExtracted)
		r.Totals.Generated += s.CountBySource(types.SourceGenerated)
	}
	return r
}

// WriteReport saves the run report for summaries as YAML at path.
func WriteReport(path string, summaries []*types.Summary) error {
	report := BuildReport(summaries)
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
