// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates one evidence-fusion run: problem briefs in,
// scored repurpose signals out.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/burrows3/AnimalMind/internal/candidates"
	"github.com/burrows3/AnimalMind/internal/evidence"
	"github.com/burrows3/AnimalMind/internal/priorart"
	"github.com/burrows3/AnimalMind/internal/synth"
	"github.com/burrows3/AnimalMind/pkg/types"
)

// Engine runs the analyzer set and synthesizer over each candidate. The
// provider and synthesizer are pure and re-entrant, so candidates are
// analyzed concurrently; candidate indexes are assigned by the finder
// before fan-out and never reassigned.
type Engine struct {
	Provider    evidence.Provider
	Synthesizer *synth.Synthesizer
}

// New returns an engine over the given provider. A nil scout disables
// prior-art screening.
func New(p evidence.Provider, scout priorart.Scout) *Engine {
	return &Engine{
		Provider:    p,
		Synthesizer: synth.New(scout),
	}
}

// Run maps briefs to candidates, analyzes each candidate, and returns the
// synthesized signals ordered by candidate index. Progress lines go to w.
// Signals for different candidates are independent; the only join point is
// the complete result list.
func (e *Engine) Run(ctx context.Context, briefs []types.ProblemBrief, runID string, w io.Writer) ([]types.RepurposeSignal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := candidates.Find(e.Provider, briefs)
	fmt.Fprintf(w, "analyzing %d candidate(s) from %d brief(s)\n", len(found), len(briefs))

	signals := make([]types.RepurposeSignal, len(found))
	var wg sync.WaitGroup

	for i, candidate := range found {
		wg.Add(1)
		go func(i int, c types.Candidate) {
			defer wg.Done()
			signals[i] = e.analyze(c, runID)
		}(i, candidate)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, signal := range signals {
		fmt.Fprintf(w, "synthesized %s (confidence %d, risk %d)\n",
			signal.SignalID, signal.ConfidenceScore, signal.Risk.OverallRisk)
	}

	return signals, nil
}

// analyze runs the four analyzers for one candidate and fuses the bundles.
// Failure analysis is per candidate; the other three are per target species.
func (e *Engine) analyze(c types.Candidate, runID string) types.RepurposeSignal {
	return e.Synthesizer.Build(synth.BuildInput{
		Candidate:   c,
		Failure:     evidence.AnalyzeFailure(e.Provider, c),
		Rationale:   evidence.AnalyzeRationale(e.Provider, c),
		VetEvidence: evidence.MineVetEvidence(e.Provider, c),
		Risk:        evidence.ScreenRisk(e.Provider, c),
		RunID:       runID,
	})
}
