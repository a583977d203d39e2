// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FailureType classifies why a compound's original clinical program failed.
type FailureType string

const (
	FailureEfficacy    FailureType = "efficacy"
	FailureTrialDesign FailureType = "trial_design"
	FailureStrategy    FailureType = "strategy"
	FailurePK          FailureType = "pk"
	FailureToxicity    FailureType = "toxicity"
	FailureUnknown     FailureType = "unknown"
)

// EvidenceStrength grades the overall veterinary evidence for a candidate.
type EvidenceStrength string

const (
	StrengthWeak     EvidenceStrength = "weak"
	StrengthModerate EvidenceStrength = "moderate"
	StrengthStrong   EvidenceStrength = "strong"
)

// FailureReason is one documented reason the original program failed.
type FailureReason struct {
	// Reason is the failure description.
	Reason string `json:"reason" yaml:"reason"`

	// EvidenceDocIDs cites the supporting documents.
	EvidenceDocIDs []string `json:"evidence_doc_ids" yaml:"evidence_doc_ids"`

	// Confidence is a value between 0.0 and 1.0.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// TrialMetadata holds summary facts about the failed trial, when known.
type TrialMetadata struct {
	Phase      string `json:"phase" yaml:"phase"`
	Endpoint   string `json:"endpoint" yaml:"endpoint"`
	Population string `json:"population" yaml:"population"`
	DoseRange  string `json:"dose_range" yaml:"dose_range"`
}

// FailureBundle is the failure analyzer's output for one candidate.
// Failure history is intrinsic to the compound/indication pair, so there is
// exactly one bundle per candidate regardless of target species.
type FailureBundle struct {
	Compound           string          `json:"compound" yaml:"compound"`
	OriginalIndication string          `json:"original_indication" yaml:"original_indication"`
	FailureType        FailureType     `json:"failure_type" yaml:"failure_type"`
	KeyReasons         []FailureReason `json:"key_reasons" yaml:"key_reasons"`
	TrialMetadata      *TrialMetadata  `json:"trial_metadata,omitempty" yaml:"trial_metadata,omitempty"`
}

// RationalePoint is one hypothesis for why a compound might work in a species.
type RationalePoint struct {
	Hypothesis      string   `json:"hypothesis" yaml:"hypothesis"`
	BiologicalBasis string   `json:"biological_basis" yaml:"biological_basis"`
	EvidenceDocIDs  []string `json:"evidence_doc_ids" yaml:"evidence_doc_ids"`
	Confidence      float64  `json:"confidence" yaml:"confidence"`
}

// SpeciesRationaleBundle is the species-rationale analyzer's output for one
// candidate and one target species.
type SpeciesRationaleBundle struct {
	Compound        string           `json:"compound" yaml:"compound"`
	TargetSpecies   string           `json:"target_species" yaml:"target_species"`
	RationalePoints []RationalePoint `json:"rationale_points" yaml:"rationale_points"`
	PKPDNotes       string           `json:"pk_pd_notes" yaml:"pk_pd_notes"`
}

// EvidenceItem is one piece of veterinary evidence for a candidate/species pair.
type EvidenceItem struct {
	// Type classifies the evidence (e.g. "case_report", "retrospective", "mechanistic").
	Type string `json:"type" yaml:"type"`

	// Finding summarizes what the evidence shows.
	Finding string `json:"finding" yaml:"finding"`

	// SampleSize records the study size as reported (e.g. "n=18").
	SampleSize string `json:"sample_size" yaml:"sample_size"`

	EvidenceDocIDs []string         `json:"evidence_doc_ids" yaml:"evidence_doc_ids"`
	StrengthGrade  EvidenceStrength `json:"strength_grade" yaml:"strength_grade"`
}

// VetEvidenceBundle is the evidence miner's output for one candidate and one
// target species.
type VetEvidenceBundle struct {
	Compound        string           `json:"compound" yaml:"compound"`
	TargetSpecies   string           `json:"target_species" yaml:"target_species"`
	TargetCondition string           `json:"target_condition" yaml:"target_condition"`
	EvidenceItems   []EvidenceItem   `json:"evidence_items" yaml:"evidence_items"`
	OverallStrength EvidenceStrength `json:"overall_strength" yaml:"overall_strength"`
}

// RiskFlag is one identified safety concern.
type RiskFlag struct {
	Flag           string   `json:"flag" yaml:"flag"`
	Severity       int      `json:"severity" yaml:"severity"`
	EvidenceDocIDs []string `json:"evidence_doc_ids" yaml:"evidence_doc_ids"`
}

// RiskBundle is the risk screener's output for one candidate and one target
// species. OverallRisk is an integer in [0,100].
type RiskBundle struct {
	Compound      string     `json:"compound" yaml:"compound"`
	TargetSpecies string     `json:"target_species" yaml:"target_species"`
	RiskFlags     []RiskFlag `json:"risk_flags" yaml:"risk_flags"`
	OverallRisk   int        `json:"overall_risk" yaml:"overall_risk"`
}
