// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fixtures bundles the canned document set and loads canned signal
// sets. Fixtures back every run that does not fetch live data, and every
// live fetch falls back to them on error.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/burrows3/AnimalMind/pkg/types"
)

// Documents returns the bundled fixture document set. Every evidence
// document ID cited by the built-in knowledge tables resolves to one of
// these records.
func Documents() []types.Document {
	return []types.Document{
		{
			ID:                "ctgov:EXAMPLE-OA-001",
			Source:            "fixture",
			URL:               "https://clinicaltrials.gov/study/EXAMPLE-OA-001",
			Title:             "Phase 2 trial of Compound AX-17 in advanced osteoarthritis",
			Date:              "2024-03-11T00:00:00.000Z",
			AbstractOrSnippet: "Condition: Osteoarthritis; Phase: Phase 2",
			DocType:           "trial",
			Entities: types.DocumentEntities{
				Drugs:      []string{"Compound AX-17 (example)"},
				Species:    []string{},
				Conditions: []string{"Osteoarthritis"},
				Mechanisms: []string{"Inflammatory pathway modulation"},
			},
		},
		{
			ID:                "ctgov:EXAMPLE-CKD-002",
			Source:            "fixture",
			URL:               "https://clinicaltrials.gov/study/EXAMPLE-CKD-002",
			Title:             "Phase 2 trial of Compound RN-44 in stage 3 chronic kidney disease",
			Date:              "2023-09-02T00:00:00.000Z",
			AbstractOrSnippet: "Condition: Chronic kidney disease; Phase: Phase 2",
			DocType:           "trial",
			Entities: types.DocumentEntities{
				Drugs:      []string{"Compound RN-44 (example)"},
				Species:    []string{},
				Conditions: []string{"Chronic kidney disease"},
				Mechanisms: []string{"Anti-fibrotic signaling"},
			},
		},
		{
			ID:                "ctgov:EXAMPLE-LAM-003",
			Source:            "fixture",
			URL:               "https://clinicaltrials.gov/study/EXAMPLE-LAM-003",
			Title:             "Phase 1/2 trial of Compound LM-12 in peripheral vascular disease",
			Date:              "2023-05-20T00:00:00.000Z",
			AbstractOrSnippet: "Condition: Peripheral vascular disease; Phase: Phase 1/2",
			DocType:           "trial",
			Entities: types.DocumentEntities{
				Drugs:      []string{"Compound LM-12 (example)"},
				Species:    []string{},
				Conditions: []string{"Peripheral vascular disease"},
				Mechanisms: []string{"Microvascular perfusion support"},
			},
		},
		{
			ID:                "pmid:EXAMPLE-VET-101",
			Source:            "fixture",
			URL:               "https://pubmed.ncbi.nlm.nih.gov/EXAMPLE-VET-101/",
			Title:             "Case report: improved mobility in a canine osteoarthritis model",
			Date:              "2025-01-15T00:00:00.000Z",
			AbstractOrSnippet: "Single case report suggests improved mobility in canine OA model.",
			DocType:           "case_report",
			Entities: types.DocumentEntities{
				Drugs:      []string{"Compound AX-17 (example)"},
				Species:    []string{"canine"},
				Conditions: []string{"Osteoarthritis"},
				Mechanisms: []string{},
			},
		},
		{
			ID:                "pmid:EXAMPLE-VET-202",
			Source:            "fixture",
			URL:               "https://pubmed.ncbi.nlm.nih.gov/EXAMPLE-VET-202/",
			Title:             "Retrospective review of renal stabilization signals in cats",
			Date:              "2024-11-08T00:00:00.000Z",
			AbstractOrSnippet: "Retrospective review notes potential stabilization signal.",
			DocType:           "retrospective",
			Entities: types.DocumentEntities{
				Drugs:      []string{"Compound RN-44 (example)"},
				Species:    []string{"feline"},
				Conditions: []string{"Chronic kidney disease"},
				Mechanisms: []string{},
			},
		},
		{
			ID:                "pmid:EXAMPLE-VET-303",
			Source:            "fixture",
			URL:               "https://pubmed.ncbi.nlm.nih.gov/EXAMPLE-VET-303/",
			Title:             "Mechanistic study of digital perfusion support in equine laminitis",
			Date:              "2024-06-30T00:00:00.000Z",
			AbstractOrSnippet: "Mechanistic study aligns with perfusion support hypothesis.",
			DocType:           "mechanistic",
			Entities: types.DocumentEntities{
				Drugs:      []string{"Compound LM-12 (example)"},
				Species:    []string{"equine"},
				Conditions: []string{"Laminitis"},
				Mechanisms: []string{},
			},
		},
	}
}

// Signals loads a canned signal set from a directory of per-signal JSON
// files, sorted by filename for deterministic order. A missing directory
// yields an empty set, matching the lookup-miss convention elsewhere in
// the pipeline; an unparseable file is an error.
func Signals(dir string) ([]types.RepurposeSignal, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.RepurposeSignal{}, nil
		}
		return nil, fmt.Errorf("reading fixture signals: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	signals := make([]types.RepurposeSignal, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading fixture signal %s: %w", name, err)
		}
		var signal types.RepurposeSignal
		if err := json.Unmarshal(data, &signal); err != nil {
			return nil, fmt.Errorf("parsing fixture signal %s: %w", name, err)
		}
		signals = append(signals, signal)
	}
	return signals, nil
}
