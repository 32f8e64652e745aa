// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhycomEspol/SSC/internal/pattern"
	"github.com/PhycomEspol/SSC/internal/split"
	"github.com/PhycomEspol/SSC/pkg/types"
)

// fakeSplitter returns canned summaries or errors keyed by input base name
// and records the order of calls.
type fakeSplitter struct {
	summaries map[string]*types.Summary
	errs      map[string]error
	calls     []string
}

func (f *fakeSplitter) Split(pdfPath string, opts split.Options, w io.Writer) (*types.Summary, error) {
	base := filepath.Base(pdfPath)
	f.calls = append(f.calls, base)
	if err, ok := f.errs[base]; ok {
		return nil, err
	}
	if s, ok := f.summaries[base]; ok {
		return s, nil
	}
	return &types.Summary{SourcePDF: base, Total: 1, Pages: []types.PageResult{
		{Page: 1, Name: "x", Source: types.SourceGenerated},
	}}, nil
}

func writePDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("pdf"), 0o644))
	return path
}

func testBatchOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Options: split.Options{
			OutputDir: t.TempDir(),
			Patterns:  pattern.Defaults(),
		},
		InputDir: t.TempDir(),
	}
}

func TestRunWithEmptyInputDir(t *testing.T) {
	opts := testBatchOptions(t)

	var log bytes.Buffer
	result, err := RunWith(&fakeSplitter{}, opts, &log)
	require.NoError(t, err)

	assert.True(t, result.Empty())
	assert.False(t, result.HasFailures())
	assert.Contains(t, log.String(), "no PDF files found")
}

func TestRunWithCreatesMissingInputDir(t *testing.T) {
	opts := testBatchOptions(t)
	opts.InputDir = filepath.Join(t.TempDir(), "entrada")

	var log bytes.Buffer
	result, err := RunWith(&fakeSplitter{}, opts, &log)
	require.NoError(t, err)

	assert.True(t, result.Empty())
	assert.DirExists(t, opts.InputDir)
	assert.Contains(t, log.String(), "created input directory")
}

func TestRunWithProcessesPDFsOnly(t *testing.T) {
	opts := testBatchOptions(t)
	writePDF(t, opts.InputDir, "b.pdf")
	writePDF(t, opts.InputDir, "a.PDF")
	require.NoError(t, os.WriteFile(filepath.Join(opts.InputDir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(opts.InputDir, "sub.pdf"), 0o755))

	fake := &fakeSplitter{}
	var log bytes.Buffer
	result, err := RunWith(fake, opts, &log)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.PDF", "b.pdf"}, fake.calls)
	assert.Len(t, result.Summaries, 2)
}

func TestRunWithPurgesOutput(t *testing.T) {
	opts := testBatchOptions(t)
	writePDF(t, opts.InputDir, "in.pdf")
	stale := writePDF(t, opts.OutputDir, "stale.pdf")
	keep := filepath.Join(opts.OutputDir, "report.yaml")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	var log bytes.Buffer
	_, err := RunWith(&fakeSplitter{}, opts, &log)
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, keep)
	assert.Contains(t, log.String(), "removed 1 old file(s)")
}

func TestRunWithKeepOutput(t *testing.T) {
	opts := testBatchOptions(t)
	opts.KeepOutput = true
	writePDF(t, opts.InputDir, "in.pdf")
	stale := writePDF(t, opts.OutputDir, "stale.pdf")

	var log bytes.Buffer
	_, err := RunWith(&fakeSplitter{}, opts, &log)
	require.NoError(t, err)

	assert.FileExists(t, stale)
}

func TestRunWithDeletesCleanInputs(t *testing.T) {
	opts := testBatchOptions(t)
	clean := writePDF(t, opts.InputDir, "clean.pdf")
	dirty := writePDF(t, opts.InputDir, "dirty.pdf")

	fake := &fakeSplitter{
		summaries: map[string]*types.Summary{
			"dirty.pdf": {
				SourcePDF: "dirty.pdf",
				Total:     1,
				Errors:    []types.PageError{{Page: 1, Message: "boom"}},
			},
		},
	}

	var log bytes.Buffer
	result, err := RunWith(fake, opts, &log)
	require.NoError(t, err)

	assert.NoFileExists(t, clean, "fully processed input should be deleted")
	assert.FileExists(t, dirty, "input with page failures should be kept")
	assert.True(t, result.HasFailures())
}

func TestRunWithKeepInput(t *testing.T) {
	opts := testBatchOptions(t)
	opts.KeepInput = true
	clean := writePDF(t, opts.InputDir, "clean.pdf")

	var log bytes.Buffer
	result, err := RunWith(&fakeSplitter{}, opts, &log)
	require.NoError(t, err)

	assert.FileExists(t, clean)
	assert.False(t, result.HasFailures())
}

func TestRunWithDocumentFailureContinues(t *testing.T) {
	opts := testBatchOptions(t)
	bad := writePDF(t, opts.InputDir, "bad.pdf")
	writePDF(t, opts.InputDir, "good.pdf")

	fake := &fakeSplitter{errs: map[string]error{"bad.pdf": errors.New("not a pdf")}}

	var log bytes.Buffer
	result, err := RunWith(fake, opts, &log)
	require.NoError(t, err)

	assert.Equal(t, []string{"bad.pdf", "good.pdf"}, fake.calls)
	assert.Equal(t, []string{bad}, result.FailedInputs)
	assert.Len(t, result.Summaries, 1)
	assert.True(t, result.HasFailures())
	assert.FileExists(t, bad, "failed input must not be deleted")
	assert.Contains(t, log.String(), "not a pdf")
}
