// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Disclaimer is attached verbatim to every published signal. Downstream
// consumers gate display on its exact presence; do not reword it.
const Disclaimer = "Research hypothesis only; not medical advice."

// BreakdownTerms lists the contributing terms of a confidence score.
type BreakdownTerms struct {
	VetEvidence      int `json:"vet_evidence" yaml:"vet_evidence"`
	SpeciesRationale int `json:"species_rationale" yaml:"species_rationale"`
	Addressability   int `json:"addressability" yaml:"addressability"`
	RecencyVolume    int `json:"recency_volume" yaml:"recency_volume"`
	RiskPenalty      int `json:"risk_penalty" yaml:"risk_penalty"`
}

// ScoreBreakdown is the scoring module's full output. All values are
// integers; ConfidenceScore, AddressabilityScore, and TranslationRisk are
// clamped to [0,100].
type ScoreBreakdown struct {
	ConfidenceScore     int            `json:"confidence_score" yaml:"confidence_score"`
	AddressabilityScore int            `json:"addressability_score" yaml:"addressability_score"`
	TranslationRisk     int            `json:"translation_risk" yaml:"translation_risk"`
	Breakdown           BreakdownTerms `json:"breakdown" yaml:"breakdown"`
}

// FailureExplanation restates the failure bundle in display form.
type FailureExplanation struct {
	Summary     string      `json:"summary" yaml:"summary"`
	FailureType FailureType `json:"failure_type" yaml:"failure_type"`
	KeyPoints   []string    `json:"key_points" yaml:"key_points"`
}

// SpeciesExplanation restates the species rationale in display form.
type SpeciesExplanation struct {
	Summary   string   `json:"summary" yaml:"summary"`
	KeyPoints []string `json:"key_points" yaml:"key_points"`
}

// SignalEvidence summarizes the evidence backing a signal. KeyDocs is
// deduplicated by exact string equality and contains no duplicates.
type SignalEvidence struct {
	VetStrength EvidenceStrength `json:"vet_strength" yaml:"vet_strength"`
	KeyDocs     []string         `json:"key_docs" yaml:"key_docs"`
	Notes       string           `json:"notes" yaml:"notes"`
}

// SignalRisk summarizes the risk screen across all target species.
type SignalRisk struct {
	OverallRisk int      `json:"overall_risk" yaml:"overall_risk"`
	KeyFlags    []string `json:"key_flags" yaml:"key_flags"`
}

// SpeciesSummary is a one-species prose summary of the rationale.
type SpeciesSummary struct {
	Species string `json:"species" yaml:"species"`
	Summary string `json:"summary" yaml:"summary"`
}

// ReasoningSummaries holds the derived prose summaries of a signal. Each
// summary restates structured fields on the signal; they are never authored
// independently of them.
type ReasoningSummaries struct {
	ExecutiveSummary      []string         `json:"executive_summary" yaml:"executive_summary"`
	FailureSummary        string           `json:"failure_summary" yaml:"failure_summary"`
	SpeciesBenefitSummary []SpeciesSummary `json:"species_benefit_summary" yaml:"species_benefit_summary"`
	EvidenceSummary       string           `json:"evidence_summary" yaml:"evidence_summary"`
	RiskSummary           string           `json:"risk_summary" yaml:"risk_summary"`
	NextStepsSummary      string           `json:"next_steps_summary" yaml:"next_steps_summary"`
}

// Provenance records which run(s) produced a signal and when.
type Provenance struct {
	AgentRunIDs []string `json:"agent_run_ids" yaml:"agent_run_ids"`
	Timestamps  []string `json:"timestamps" yaml:"timestamps"`
}

// PriorArt is the prior-art scout's assessment of a signal.
type PriorArt struct {
	SignalID          string   `json:"signal_id" yaml:"signal_id"`
	RelatedPatents    []string `json:"related_patents" yaml:"related_patents"`
	OverlapAssessment string   `json:"overlap_assessment" yaml:"overlap_assessment"`
	WhiteSpaceNotes   string   `json:"white_space_notes" yaml:"white_space_notes"`
	Disclaimer        string   `json:"disclaimer" yaml:"disclaimer"`
}

// RepurposeSignal is the terminal record of the pipeline: one ranked,
// scored research hypothesis with deduplicated evidence references and
// provenance. Signals are immutable once published.
type RepurposeSignal struct {
	// SignalID is unique within a run and a pure function of
	// (compound, condition, candidate index).
	SignalID string `json:"signal_id" yaml:"signal_id"`

	Compound          string   `json:"compound" yaml:"compound"`
	ProposedSpecies   []string `json:"proposed_species" yaml:"proposed_species"`
	ProposedCondition string   `json:"proposed_condition" yaml:"proposed_condition"`
	SummaryHypothesis string   `json:"summary_hypothesis" yaml:"summary_hypothesis"`

	WhyFailedOriginally     FailureExplanation `json:"why_failed_originally" yaml:"why_failed_originally"`
	WhyItMightWorkInAnimals SpeciesExplanation `json:"why_it_might_work_in_animals" yaml:"why_it_might_work_in_animals"`
	Evidence                SignalEvidence     `json:"evidence" yaml:"evidence"`
	Risk                    SignalRisk         `json:"risk" yaml:"risk"`

	// NoveltyVectors tags what is novel about the hypothesis
	// (e.g. "new_species", "new_indication").
	NoveltyVectors []string `json:"novelty_vectors" yaml:"novelty_vectors"`

	ConfidenceScore     int            `json:"confidence_score" yaml:"confidence_score"`
	AddressabilityScore int            `json:"addressability_score" yaml:"addressability_score"`
	TranslationRisk     int            `json:"translation_risk" yaml:"translation_risk"`
	ScoreBreakdown      BreakdownTerms `json:"score_breakdown" yaml:"score_breakdown"`

	RecommendedNextSteps []string           `json:"recommended_next_steps" yaml:"recommended_next_steps"`
	Provenance           Provenance         `json:"provenance" yaml:"provenance"`
	ReasoningSummaries   ReasoningSummaries `json:"reasoning_summaries" yaml:"reasoning_summaries"`

	// PriorArt is present only when prior-art screening was enabled for the run.
	PriorArt *PriorArt `json:"prior_art,omitempty" yaml:"prior_art,omitempty"`

	// Disclaimer is the fixed research-only disclaimer, always present.
	Disclaimer string `json:"disclaimer" yaml:"disclaimer"`
}

// IndexEntry is the abbreviated view of one signal in the run index.
type IndexEntry struct {
	SignalID          string   `json:"signal_id" yaml:"signal_id"`
	Compound          string   `json:"compound" yaml:"compound"`
	ProposedSpecies   []string `json:"proposed_species" yaml:"proposed_species"`
	ProposedCondition string   `json:"proposed_condition" yaml:"proposed_condition"`
	ConfidenceScore   int      `json:"confidence_score" yaml:"confidence_score"`
	RiskOverall       int      `json:"risk_overall" yaml:"risk_overall"`
	SummaryHypothesis string   `json:"summary_hypothesis" yaml:"summary_hypothesis"`
	ExecutiveSummary  []string `json:"executive_summary" yaml:"executive_summary"`
	Disclaimer        string   `json:"disclaimer" yaml:"disclaimer"`
}

// RunIndex is the aggregate document published alongside the per-signal
// documents. Total always equals len(Signals).
type RunIndex struct {
	RunID     string       `json:"run_id" yaml:"run_id"`
	UpdatedAt string       `json:"updated_at" yaml:"updated_at"`
	Total     int          `json:"total" yaml:"total"`
	Signals   []IndexEntry `json:"signals" yaml:"signals"`
}

// RunMarker records the most recent run, independent of signal count.
type RunMarker struct {
	RunID     string `json:"run_id" yaml:"run_id"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}
