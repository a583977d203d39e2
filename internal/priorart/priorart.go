// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package priorart screens signals for overlapping patent activity.
//
// The capability is an extension point: the shipped implementation performs
// no search and returns a fixed low-overlap placeholder. A real patent
// backend can replace it without synthesizer changes.
package priorart

import "github.com/burrows3/AnimalMind/pkg/types"

// Scout assesses prior art for a synthesized signal.
type Scout interface {
	// Enabled reports whether assessments should be attached to signals.
	Enabled() bool

	// Assess returns the prior-art assessment for a signal.
	Assess(signal types.RepurposeSignal) types.PriorArt
}

// Noop is the default scout: disabled, attaches nothing.
type Noop struct{}

func (Noop) Enabled() bool { return false }

func (Noop) Assess(types.RepurposeSignal) types.PriorArt { return types.PriorArt{} }

// Stub is a placeholder scout that reports the same static low-overlap
// shape for every signal without searching anything.
type Stub struct{}

func (Stub) Enabled() bool { return true }

func (Stub) Assess(signal types.RepurposeSignal) types.PriorArt {
	return types.PriorArt{
		SignalID:          signal.SignalID,
		RelatedPatents:    []string{},
		OverlapAssessment: "low",
		WhiteSpaceNotes:   "Patent search not yet enabled in MVP.",
		Disclaimer:        "Not legal advice.",
	}
}
