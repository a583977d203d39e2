// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evidence provides the knowledge lookups behind the analyzer set.
//
// Knowledge access goes through the Provider interface so the bundled
// static tables are one implementation among several; a database-backed or
// API-backed provider can be swapped in without touching the analyzers,
// the synthesizer, or the scoring contract.
package evidence

import "github.com/burrows3/AnimalMind/pkg/types"

// CandidateSeed is one known compound for a condition, before it is bound
// to a problem brief.
type CandidateSeed struct {
	Compound           string   `json:"compound" yaml:"compound"`
	OriginalIndication string   `json:"original_indication" yaml:"original_indication"`
	Mechanism          string   `json:"mechanism" yaml:"mechanism"`
	SourceDocs         []string `json:"source_docs" yaml:"source_docs"`
}

// FailureRecord is the stored failure history for a compound.
type FailureRecord struct {
	FailureType   types.FailureType     `json:"failure_type" yaml:"failure_type"`
	KeyReasons    []types.FailureReason `json:"key_reasons" yaml:"key_reasons"`
	TrialMetadata *types.TrialMetadata  `json:"trial_metadata,omitempty" yaml:"trial_metadata,omitempty"`
}

// VetEvidenceRecord is the stored veterinary evidence for a compound and
// species.
type VetEvidenceRecord struct {
	Condition       string                 `json:"condition" yaml:"condition"`
	EvidenceItems   []types.EvidenceItem   `json:"evidence_items" yaml:"evidence_items"`
	OverallStrength types.EvidenceStrength `json:"overall_strength" yaml:"overall_strength"`
}

// RiskRecord is the stored risk profile for a compound and species.
type RiskRecord struct {
	OverallRisk int              `json:"overall_risk" yaml:"overall_risk"`
	RiskFlags   []types.RiskFlag `json:"risk_flags" yaml:"risk_flags"`
}

// Provider answers knowledge lookups for the candidate finder and the four
// analyzers. A false second return value is a normal miss, never an error;
// the analyzers convert misses into documented defaults. Implementations
// must be safe for concurrent use: candidate analysis fans out across
// goroutines sharing one provider.
type Provider interface {
	// Candidates returns the known compounds for a condition, in table order.
	Candidates(condition string) ([]CandidateSeed, bool)

	// Failure returns the failure history for a compound.
	Failure(compound string) (FailureRecord, bool)

	// Rationale returns the species-specific rationale points for a compound.
	Rationale(compound, species string) ([]types.RationalePoint, bool)

	// VetEvidence returns the veterinary evidence for a compound and species.
	VetEvidence(compound, species string) (VetEvidenceRecord, bool)

	// Risk returns the risk profile for a compound and species.
	Risk(compound, species string) (RiskRecord, bool)
}
