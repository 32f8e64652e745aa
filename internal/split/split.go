// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split separates a multi-page certificate PDF into one file per
// page. Each page is named by precedence: the caller-supplied name list,
// then regex extraction from the page text, then a generated placeholder.
// A page failure is recorded and the run continues; the whole document is
// never aborted by one bad page.
package split

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PhycomEspol/SSC/internal/extract"
	"github.com/PhycomEspol/SSC/internal/pattern"
	"github.com/PhycomEspol/SSC/internal/pdf"
	"github.com/PhycomEspol/SSC/pkg/types"
)

// DefaultOutputDir receives the single-page PDFs when no directory is
// configured.
const DefaultOutputDir = "salida"

// generatedFormat names pages for which no list entry exists and no pattern
// matched.
const generatedFormat = "certificado_%03d"

// Document is the page-level view of an open PDF the splitter works
// against. internal/pdf provides the real implementation; tests supply
// fakes.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageText returns the plain text of the 1-based page, "" when the page
	// has none.
	PageText(page int) string

	// WritePage writes the 1-based page as a standalone PDF at path.
	WritePage(page int, path string) error
}

// Options configures a single-document split.
type Options struct {
	// OutputDir receives the single-page PDFs (default "salida").
	OutputDir string

	// Patterns is the compiled search pattern set. When nil, the default
	// pattern file is loaded.
	Patterns []pattern.Pattern

	// Names is the ordered name list; entry i names page i+1. Pages past the
	// end of the list fall back to extraction.
	Names []string

	// Prefix and Suffix wrap every output filename, outside the collision
	// counter: <prefix><name>_<n><suffix>.pdf.
	Prefix string
	Suffix string
}

// File opens the PDF at path and splits it. A missing or unparsable input
// is a document-level error.
func File(path string, opts Options, w io.Writer) (*types.Summary, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return Run(doc, filepath.Base(path), opts, w)
}

// Run splits doc page by page, writing per-page progress and a closing
// summary block to w. It returns an error only when the output directory
// cannot be created; page-level failures accumulate in the summary instead.
func Run(doc Document, sourceName string, opts Options, w io.Writer) (*types.Summary, error) {
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = DefaultOutputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	pats := opts.Patterns
	if pats == nil {
		pats = pattern.Load(pattern.DefaultFile, w)
	}

	total := doc.PageCount()
	summary := &types.Summary{SourcePDF: sourceName, Total: total}

	fmt.Fprintf(w, "splitting %s: %d page(s), %d pattern(s), output %s\n", sourceName, total, len(pats), outDir)
	if len(opts.Names) > 0 && len(opts.Names) < total {
		fmt.Fprintf(w, "warning: name list has %d entries for %d pages; remaining pages use extraction\n",
			len(opts.Names), total)
	}

	for page := 1; page <= total; page++ {
		name, source := resolveName(doc, page, opts.Names, pats)

		outPath := resolvePath(outDir, extract.Sanitize(name), opts.Prefix, opts.Suffix)

		if err := doc.WritePage(page, outPath); err != nil {
			fmt.Fprintf(w, "failed  [%d/%d]: %v\n", page, total, err)
			summary.Errors = append(summary.Errors, types.PageError{Page: page, Message: err.Error()})
			continue
		}

		fmt.Fprintf(w, "written [%d/%d] %s (%s: %s)\n", page, total, filepath.Base(outPath), source, name)
		summary.Pages = append(summary.Pages, types.PageResult{
			Page:       page,
			Name:       name,
			Source:     source,
			OutputPath: outPath,
		})
	}

	writeSummary(w, summary)
	return summary, nil
}

// resolveName picks the page's name: list entry, then extraction, then the
// generated placeholder. A blank list entry degrades straight to the
// placeholder, matching how an empty cell in the source list behaves.
func resolveName(doc Document, page int, names []string, pats []pattern.Pattern) (string, types.NameSource) {
	if idx := page - 1; idx < len(names) {
		if name := strings.TrimSpace(names[idx]); name != "" {
			return name, types.SourceList
		}
		return fmt.Sprintf(generatedFormat, page), types.SourceGenerated
	}

	if name, ok := extract.Name(doc.PageText(page), pats); ok {
		return name, types.SourceExtracted
	}

	return fmt.Sprintf(generatedFormat, page), types.SourceGenerated
}

// resolvePath builds the output path, appending _1, _2, ... until the name
// does not collide with an existing file. Existing outputs are never
// overwritten.
func resolvePath(outDir, clean, prefix, suffix string) string {
	outPath := filepath.Join(outDir, prefix+clean+suffix+".pdf")
	for counter := 1; fileExists(outPath); counter++ {
		outPath = filepath.Join(outDir, fmt.Sprintf("%s%s_%d%s.pdf", prefix, clean, counter, suffix))
	}
	return outPath
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeSummary prints the closing per-document block in the batch-summary
// style used across the pipeline.
func writeSummary(w io.Writer, s *types.Summary) {
	fmt.Fprintf(w, "\n%s: %d/%d written, %d failed\n", s.SourcePDF, s.Succeeded(), s.Total, s.Failed())
	if n := s.CountBySource(types.SourceList); n > 0 {
		fmt.Fprintf(w, "  from list: %d\n", n)
	}
	if n := s.CountBySource(types.SourceExtracted); n > 0 {
		fmt.Fprintf(w, "  extracted: %d\n", n)
	}
	if n := s.CountBySource(types.SourceGenerated); n > 0 {
		fmt.Fprintf(w, "  generated: %d\n", n)
	}
}
