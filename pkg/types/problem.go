// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the animalmind pipeline:
// problem briefs, candidates, analyzer bundles, scored signals, and the
// published index documents.
package types

// ProblemBrief describes a veterinary need the pipeline should find
// repurposing candidates for. Briefs are created once per run and never
// mutated.
type ProblemBrief struct {
	// ProblemID is a stable slug for the brief (e.g. "canine-osteoarthritis").
	ProblemID string `json:"problem_id" yaml:"problem_id"`

	// TargetSpecies lists the species the brief targets, in priority order.
	TargetSpecies []string `json:"target_species" yaml:"target_species"`

	// Condition is the veterinary condition of interest.
	Condition string `json:"condition" yaml:"condition"`

	// Keywords are search terms associated with the condition.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Rationale explains why the condition is worth pursuing.
	Rationale string `json:"rationale" yaml:"rationale"`
}

// Candidate pairs a compound with a problem brief. One Candidate exists per
// (problem, compound) pair within a run.
type Candidate struct {
	// Compound is the candidate compound name.
	Compound string `json:"compound" yaml:"compound"`

	// OriginalIndication is the human indication the compound was developed for.
	OriginalIndication string `json:"original_indication" yaml:"original_indication"`

	// Mechanism describes the compound's mechanism of action.
	Mechanism string `json:"mechanism" yaml:"mechanism"`

	// SourceDocs lists document IDs supporting the candidate mapping.
	SourceDocs []string `json:"source_docs" yaml:"source_docs"`

	// TargetSpecies and TargetCondition are copied from the originating brief.
	TargetSpecies   []string `json:"target_species" yaml:"target_species"`
	TargetCondition string   `json:"target_condition" yaml:"target_condition"`

	// ProblemID links back to the originating ProblemBrief.
	ProblemID string `json:"problem_id" yaml:"problem_id"`

	// Index is the candidate's zero-based position within the run. It is
	// assigned once by the finder and is the sole source of signal ID
	// determinism; it must never be reassigned.
	Index int `json:"index" yaml:"index"`
}
