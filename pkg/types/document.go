// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentEntities holds the normalized entity lists extracted from a
// fetched document. Lists are deduplicated and contain no empty strings.
type DocumentEntities struct {
	Drugs      []string `json:"drugs" yaml:"drugs"`
	Species    []string `json:"species" yaml:"species"`
	Conditions []string `json:"conditions" yaml:"conditions"`
	Mechanisms []string `json:"mechanisms" yaml:"mechanisms"`
}

// Document is the normalized record shape shared by every connector and the
// bundled fixtures. The pipeline consumes documents only through this shape
// and never parses external formats itself.
type Document struct {
	// ID is a namespaced identifier (e.g. "pmid:12345", "ctgov:NCT0001").
	ID string `json:"id" yaml:"id"`

	// Source names the connector that produced the document
	// (e.g. "pubmed", "clinicaltrials", "fixture").
	Source string `json:"source" yaml:"source"`

	URL     string `json:"url" yaml:"url"`
	Title   string `json:"title" yaml:"title"`
	Authors string `json:"authors" yaml:"authors"`

	// Date is an ISO-8601 timestamp string.
	Date string `json:"date" yaml:"date"`

	AbstractOrSnippet string `json:"abstract_or_snippet" yaml:"abstract_or_snippet"`

	// DocType classifies the document (e.g. "trial", "review", "case_report").
	DocType string `json:"doc_type" yaml:"doc_type"`

	Entities DocumentEntities `json:"entities" yaml:"entities"`
}
