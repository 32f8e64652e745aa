// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the splitter over every PDF in the input directory.
// It optionally purges old outputs before the run and deletes fully
// processed inputs afterwards; both cleanups are best effort and never stop
// the batch.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PhycomEspol/SSC/internal/pattern"
	"github.com/PhycomEspol/SSC/internal/split"
	"github.com/PhycomEspol/SSC/pkg/types"
)

// DefaultInputDir is scanned for PDFs when no directory is configured.
const DefaultInputDir = "entrada"

// Splitter processes one input PDF. split.File is the real implementation;
// tests supply fakes so batch behavior is exercised without PDF fixtures.
type Splitter interface {
	Split(pdfPath string, opts split.Options, w io.Writer) (*types.Summary, error)
}

// fileSplitter is the production Splitter.
type fileSplitter struct{}

func (fileSplitter) Split(pdfPath string, opts split.Options, w io.Writer) (*types.Summary, error) {
	return split.File(pdfPath, opts, w)
}

// Options configures a batch run.
type Options struct {
	split.Options

	// InputDir is scanned (non-recursively) for *.pdf (default "entrada").
	InputDir string

	// KeepOutput disables the pre-run purge of PDFs in the output directory.
	KeepOutput bool

	// KeepInput disables deletion of inputs whose pages all split cleanly.
	KeepInput bool
}

// Result aggregates a batch run: one summary per processed document plus
// the inputs that failed before page processing started.
type Result struct {
	// Summaries holds one entry per document that was opened and split.
	Summaries []*types.Summary

	// FailedInputs lists input paths that could not be processed at all.
	FailedInputs []string
}

// Empty reports whether the run found nothing to process.
func (r *Result) Empty() bool {
	return len(r.Summaries) == 0 && len(r.FailedInputs) == 0
}

// HasFailures reports whether any document or page failed.
func (r *Result) HasFailures() bool {
	if len(r.FailedInputs) > 0 {
		return true
	}
	for _, s := range r.Summaries {
		if s.HasFailures() {
			return true
		}
	}
	return false
}

// Run processes every PDF in the input directory with the production
// splitter.
func Run(opts Options, w io.Writer) (*Result, error) {
	return RunWith(fileSplitter{}, opts, w)
}

// RunWith is Run with an injected Splitter. A document-level failure is
// reported on w and skips that file; the batch continues.
func RunWith(s Splitter, opts Options, w io.Writer) (*Result, error) {
	inDir := opts.InputDir
	if inDir == "" {
		inDir = DefaultInputDir
	}

	if _, err := os.Stat(inDir); os.IsNotExist(err) {
		if err := os.MkdirAll(inDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating input directory %s: %w", inDir, err)
		}
		fmt.Fprintf(w, "created input directory %s; place PDFs there and run again\n", inDir)
		return &Result{}, nil
	}

	pdfs, err := listPDFs(inDir)
	if err != nil {
		return nil, err
	}
	if len(pdfs) == 0 {
		fmt.Fprintf(w, "no PDF files found in %s\n", inDir)
		return &Result{}, nil
	}
	fmt.Fprintf(w, "found %d PDF file(s) in %s\n", len(pdfs), inDir)

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = split.DefaultOutputDir
	}
	opts.OutputDir = outDir

	if !opts.KeepOutput {
		purgeOutput(outDir, w)
	}

	// Load patterns once for the whole batch rather than per document.
	if opts.Patterns == nil {
		opts.Patterns = pattern.Load(pattern.DefaultFile, w)
	}

	result := &Result{}
	var clean []string

	for _, pdfPath := range pdfs {
		fmt.Fprintln(w)
		summary, err := s.Split(pdfPath, opts.Options, w)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", filepath.Base(pdfPath), err)
			result.FailedInputs = append(result.FailedInputs, pdfPath)
			continue
		}
		result.Summaries = append(result.Summaries, summary)
		if !summary.HasFailures() {
			clean = append(clean, pdfPath)
		}
	}

	if !opts.KeepInput && len(clean) > 0 {
		fmt.Fprintf(w, "\ncleaning input directory\n")
		for _, pdfPath := range clean {
			if err := os.Remove(pdfPath); err != nil {
				fmt.Fprintf(w, "warning: could not delete %s: %v\n", pdfPath, err)
				continue
			}
			fmt.Fprintf(w, "deleted %s\n", filepath.Base(pdfPath))
		}
	}

	return result, nil
}

// listPDFs returns the *.pdf entries of dir in name order, non-recursive.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		pdfs = append(pdfs, filepath.Join(dir, entry.Name()))
	}
	return pdfs, nil
}

// purgeOutput deletes existing PDFs in dir so stale outputs from a prior
// run cannot collide with new ones. Best effort: a file that cannot be
// deleted is reported and skipped.
func purgeOutput(dir string, w io.Writer) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// A missing output directory will be created by the splitter.
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(w, "warning: could not delete %s: %v\n", path, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		fmt.Fprintf(w, "removed %d old file(s) from %s\n", removed, dir)
	}
}
