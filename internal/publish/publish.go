// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish writes run output to the configured sinks: the aggregate
// signal index, one document per signal, a documents snapshot, the last-run
// marker, and the per-run log.
//
// Every sink receives an identical copy; the publisher fans out, it never
// transforms. All payloads are marshaled before the first byte is written,
// and each document is written atomically (temp file + rename), so a
// failed run never leaves a partially written document in place.
package publish

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/burrows3/AnimalMind/pkg/types"
)

const (
	indexFile   = "signals.json"
	signalsDir  = "signals"
	lastRunFile = "last-run.json"
	docsFile    = "documents.json"
	logsDir     = "logs"
)

type sink struct {
	name string
	dir  string
}

// Publisher fans run output out to the configured sinks. Clock is
// overridable for tests and defaults to time.Now.
type Publisher struct {
	sinks   []sink
	workDir string
	Clock   func() time.Time
}

// New validates the sink configuration and returns a publisher. The
// working and public sinks are required; the mirror sink is optional.
func New(cfg types.PublishConfig) (*Publisher, error) {
	if cfg.WorkDir == "" {
		return nil, fmt.Errorf("publish config: work_dir is required")
	}
	if cfg.PublicDir == "" {
		return nil, fmt.Errorf("publish config: public_dir is required")
	}

	sinks := []sink{
		{name: "work", dir: cfg.WorkDir},
		{name: "public", dir: cfg.PublicDir},
	}
	if cfg.MirrorDir != "" {
		sinks = append(sinks, sink{name: "mirror", dir: cfg.MirrorDir})
	}

	return &Publisher{sinks: sinks, workDir: cfg.WorkDir, Clock: time.Now}, nil
}

// BuildIndex derives the aggregate index from the full signal list. Every
// abbreviated entry restates fields of the corresponding signal exactly.
func (p *Publisher) BuildIndex(signals []types.RepurposeSignal, runID string) types.RunIndex {
	entries := make([]types.IndexEntry, 0, len(signals))
	for _, s := range signals {
		entries = append(entries, types.IndexEntry{
			SignalID:          s.SignalID,
			Compound:          s.Compound,
			ProposedSpecies:   s.ProposedSpecies,
			ProposedCondition: s.ProposedCondition,
			ConfidenceScore:   s.ConfidenceScore,
			RiskOverall:       s.Risk.OverallRisk,
			SummaryHypothesis: s.SummaryHypothesis,
			ExecutiveSummary:  s.ReasoningSummaries.ExecutiveSummary,
			Disclaimer:        s.Disclaimer,
		})
	}
	return types.RunIndex{
		RunID:     runID,
		UpdatedAt: p.timestamp(),
		Total:     len(signals),
		Signals:   entries,
	}
}

// Publish writes the index and one document per signal to every sink, then
// records the last-run marker in the working sink. Publishing the same
// signal set twice with the same run ID and clock overwrites prior files
// with identical content. Returns the index path per sink. Any write error
// is fatal to the run.
func (p *Publisher) Publish(signals []types.RepurposeSignal, runID string) (map[string]string, error) {
	index := p.BuildIndex(signals, runID)

	// Marshal everything up front so an encoding failure happens before
	// any sink is touched.
	indexData, err := marshal(index)
	if err != nil {
		return nil, fmt.Errorf("encoding index: %w", err)
	}
	signalData := make(map[string][]byte, len(signals))
	for _, s := range signals {
		data, err := marshal(s)
		if err != nil {
			return nil, fmt.Errorf("encoding signal %s: %w", s.SignalID, err)
		}
		signalData[s.SignalID] = data
	}
	marker, err := marshal(types.RunMarker{RunID: runID, UpdatedAt: p.timestamp()})
	if err != nil {
		return nil, fmt.Errorf("encoding run marker: %w", err)
	}

	outputs := make(map[string]string, len(p.sinks))
	for _, sk := range p.sinks {
		indexPath := filepath.Join(sk.dir, indexFile)
		if err := writeFileAtomic(indexPath, indexData); err != nil {
			return nil, fmt.Errorf("sink %s: %w", sk.name, err)
		}
		for _, s := range signals {
			path := filepath.Join(sk.dir, signalsDir, s.SignalID+".json")
			if err := writeFileAtomic(path, signalData[s.SignalID]); err != nil {
				return nil, fmt.Errorf("sink %s: %w", sk.name, err)
			}
		}
		outputs[sk.name] = indexPath
	}

	// The marker is written once per invocation, signal count or not.
	if err := writeFileAtomic(filepath.Join(p.workDir, lastRunFile), marker); err != nil {
		return nil, fmt.Errorf("writing run marker: %w", err)
	}

	return outputs, nil
}

// documentsPayload is the published shape of the ingested document set.
type documentsPayload struct {
	UpdatedAt string           `json:"updated_at"`
	Total     int              `json:"total"`
	Documents []types.Document `json:"documents"`
}

// PublishDocuments writes the normalized document set to every sink and
// returns the document count.
func (p *Publisher) PublishDocuments(documents []types.Document) (int, error) {
	if documents == nil {
		documents = []types.Document{}
	}
	data, err := marshal(documentsPayload{
		UpdatedAt: p.timestamp(),
		Total:     len(documents),
		Documents: documents,
	})
	if err != nil {
		return 0, fmt.Errorf("encoding documents: %w", err)
	}
	for _, sk := range p.sinks {
		if err := writeFileAtomic(filepath.Join(sk.dir, docsFile), data); err != nil {
			return 0, fmt.Errorf("sink %s: %w", sk.name, err)
		}
	}
	return len(documents), nil
}

// RunLog is the per-run log document written to the working sink.
type RunLog struct {
	RunID           string            `json:"run_id"`
	StartedAt       string            `json:"started_at"`
	UseFixtures     bool              `json:"use_fixtures"`
	FetchLive       bool              `json:"fetch_live"`
	IncludePriorArt bool              `json:"include_prior_art"`
	DocumentCount   int               `json:"document_count"`
	SignalCount     int               `json:"signal_count"`
	Outputs         map[string]string `json:"outputs"`
}

// WriteRunLog writes the run log under the working sink's logs directory
// and returns its path.
func (p *Publisher) WriteRunLog(runID string, log RunLog) (string, error) {
	data, err := marshal(log)
	if err != nil {
		return "", fmt.Errorf("encoding run log: %w", err)
	}
	path := filepath.Join(p.workDir, logsDir, runID+".json")
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}

func (p *Publisher) timestamp() string {
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Format("2006-01-02T15:04:05.000Z")
}

func marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// writeFileAtomic writes data to path through a temp file in the target
// directory followed by a rename, so readers never observe a partial
// document and a failed write leaves nothing behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".publish-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
