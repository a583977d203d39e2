// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package connectors fetches literature and trial records from external
// catalogs and returns them in the normalized Document shape. The
// connectors are thin I/O wrappers; everything downstream of them consumes
// documents without knowing where they came from.
package connectors

import (
	"net/http"
	"time"

	"github.com/burrows3/AnimalMind/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultUserAgent  = "animalmind/0.1"
	defaultMaxResults = 10

	pubmedBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	ctgovBaseURL  = "https://clinicaltrials.gov/api/v2"
)

// Client fetches documents from the external catalogs. Base URLs are
// overridable for tests.
type Client struct {
	HTTP *http.Client
	Cfg  types.ConnectorConfig

	PubMedBaseURL string
	CTGovBaseURL  string
}

// NewClient returns a connector client with defaults applied for any unset
// configuration field.
func NewClient(cfg types.ConnectorConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	return &Client{
		HTTP:          &http.Client{Timeout: cfg.Timeout},
		Cfg:           cfg,
		PubMedBaseURL: pubmedBaseURL,
		CTGovBaseURL:  ctgovBaseURL,
	}
}

func isoNow() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
