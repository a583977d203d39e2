// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by the connectors.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "animalmind/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConnectorConfig holds settings for the live-fetch connectors.
type ConnectorConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of documents fetched per connector
	// query (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PublishConfig holds the output sink directories for the publisher.
// WorkDir and PublicDir are required; MirrorDir is optional and disabled
// when empty. Each sink receives an identical copy of every document.
type PublishConfig struct {
	// WorkDir is the working-storage sink. Run logs and the last-run
	// marker live here.
	WorkDir string `json:"work_dir" yaml:"work_dir"`

	// PublicDir is the public-facing sink.
	PublicDir string `json:"public_dir" yaml:"public_dir"`

	// MirrorDir is an optional third mirror sink.
	MirrorDir string `json:"mirror_dir,omitempty" yaml:"mirror_dir,omitempty"`
}

// StoreConfig holds settings for the document store.
type StoreConfig struct {
	// Path is the SQLite database file path.
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Connector ConnectorConfig `json:"connector" yaml:"connector"`
	Publish   PublishConfig   `json:"publish" yaml:"publish"`
	Store     StoreConfig     `json:"store" yaml:"store"`
}
