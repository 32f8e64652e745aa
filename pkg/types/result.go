// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the certificate splitter:
// name provenance, per-page outcomes, and the per-document run summary.
package types

// NameSource identifies where a page's chosen name came from.
type NameSource string

const (
	// SourceList means the name came from a caller-supplied ordered list.
	SourceList NameSource = "list"
	// SourceExtracted means the name was matched out of the page text.
	SourceExtracted NameSource = "extracted"
	// SourceGenerated means no name was available and a placeholder was used.
	SourceGenerated NameSource = "generated"
)

// PageResult records one successfully written certificate page.
type PageResult struct {
	// Page is the 1-based page number in the source document.
	Page int `json:"page" yaml:"page"`

	// Name is the resolved recipient name before sanitizing.
	Name string `json:"name" yaml:"name"`

	// Source is the provenance of Name.
	Source NameSource `json:"source" yaml:"source"`

	// OutputPath is the path of the written single-page PDF.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// PageError records one page that could not be written.
type PageError struct {
	// Page is the 1-based page number in the source document.
	Page int `json:"page" yaml:"page"`

	// Message describes the failure.
	Message string `json:"message" yaml:"message"`
}

// Summary aggregates the outcome of splitting one source document.
type Summary struct {
	// SourcePDF is the base name of the input document.
	SourcePDF string `json:"source_pdf" yaml:"source_pdf"`

	// Total is the page count of the input document.
	Total int `json:"total" yaml:"total"`

	// Pages lists the successfully written pages in page order.
	Pages []PageResult `json:"pages" yaml:"pages"`

	// Errors lists the pages that failed, in page order.
	Errors []PageError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Succeeded returns the number of pages written.
func (s *Summary) Succeeded() int {
	return len(s.Pages)
}

// Failed returns the number of pages that could not be written.
func (s *Summary) Failed() int {
	return len(s.Errors)
}

// HasFailures reports whether any page failed.
func (s *Summary) HasFailures() bool {
	return len(s.Errors) > 0
}

// CountBySource returns how many written pages drew their name from src.
func (s *Summary) CountBySource(src NameSource) int {
	n := 0
	for _, p := range s.Pages {
		if p.Source == src {
			n++
		}
	}
	return n
}
