// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf gives the splitter page-level access to a certificate PDF:
// page count, per-page plain text, and single-page extraction. pdfcpu
// handles validation and page splitting; ledongthuc/pdf supplies the text
// layer, which is best effort — a page without extractable text simply
// yields an empty string.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	ltpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is an open certificate PDF. The whole file is read into memory
// at Open, so no file handle outlives the call.
type Document struct {
	path string
	ctx  *model.Context
	text *ltpdf.Reader
}

// Open reads and validates the PDF at path. The text layer is built
// separately; if the file parses for splitting but not for text extraction,
// the document opens anyway and every page reads as empty text.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Document{
		path: path,
		ctx:  ctx,
		text: newTextReader(data),
	}, nil
}

// newTextReader builds the ledongthuc reader. The library panics on some
// malformed inputs, so construction is wrapped with a recover.
func newTextReader(data []byte) (r *ltpdf.Reader) {
	defer func() {
		if recover() != nil {
			r = nil
		}
	}()
	r, err := ltpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}
	return r
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// PageText returns the plain text of the 1-based page, or "" when the page
// has no extractable text.
func (d *Document) PageText(page int) (text string) {
	if d.text == nil || page < 1 || page > d.text.NumPage() {
		return ""
	}
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	p := d.text.Page(page)
	if p.V.IsNull() {
		return ""
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

// WritePage extracts the 1-based page as a standalone PDF at outPath. A
// partial file left by a failed write is removed so it cannot collide with
// later outputs.
func (d *Document) WritePage(page int, outPath string) error {
	r, err := api.ExtractPage(d.ctx, page)
	if err != nil {
		return fmt.Errorf("extracting page %d of %s: %w", page, d.path, err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(outPath)
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("closing %s: %w", outPath, err)
	}
	return nil
}
