// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evidence

import "github.com/burrows3/AnimalMind/pkg/types"

// defaultConfidence is attached to generic reasons and rationale points
// produced on a knowledge miss.
const defaultConfidence = 0.3

// defaultOverallRisk is the fixed moderate risk assumed when a compound and
// species have no risk profile on record.
const defaultOverallRisk = 40

const pkpdNotes = "No dosing guidance provided; research-only hypothesis."

// AnalyzeFailure returns the failure bundle for a candidate. Failure
// history is evaluated once per candidate, not per species. An unknown
// compound yields a "unknown" failure type with a single low-confidence
// generic reason citing the candidate's own source documents.
func AnalyzeFailure(p Provider, c types.Candidate) types.FailureBundle {
	rec, ok := p.Failure(c.Compound)
	if !ok {
		rec = FailureRecord{
			FailureType: types.FailureUnknown,
			KeyReasons: []types.FailureReason{
				{
					Reason:         "Failure reason not clearly disclosed in public summary.",
					EvidenceDocIDs: docsOrEmpty(c.SourceDocs),
					Confidence:     defaultConfidence,
				},
			},
		}
	}
	return types.FailureBundle{
		Compound:           c.Compound,
		OriginalIndication: c.OriginalIndication,
		FailureType:        rec.FailureType,
		KeyReasons:         rec.KeyReasons,
		TrialMetadata:      rec.TrialMetadata,
	}
}

// AnalyzeRationale returns one species-rationale bundle per target species
// of the candidate, in the candidate's species order. A miss yields one
// generic rationale point citing the candidate's source documents.
func AnalyzeRationale(p Provider, c types.Candidate) []types.SpeciesRationaleBundle {
	bundles := make([]types.SpeciesRationaleBundle, 0, len(c.TargetSpecies))
	for _, species := range c.TargetSpecies {
		points, ok := p.Rationale(c.Compound, species)
		if !ok {
			points = []types.RationalePoint{
				{
					Hypothesis:      "Species-specific factors may alter response.",
					BiologicalBasis: "insufficient evidence",
					EvidenceDocIDs:  docsOrEmpty(c.SourceDocs),
					Confidence:      defaultConfidence,
				},
			}
		}
		bundles = append(bundles, types.SpeciesRationaleBundle{
			Compound:        c.Compound,
			TargetSpecies:   species,
			RationalePoints: points,
			PKPDNotes:       pkpdNotes,
		})
	}
	return bundles
}

// MineVetEvidence returns one veterinary-evidence bundle per target
// species, in the candidate's species order. A miss yields an empty item
// list graded weak.
func MineVetEvidence(p Provider, c types.Candidate) []types.VetEvidenceBundle {
	bundles := make([]types.VetEvidenceBundle, 0, len(c.TargetSpecies))
	for _, species := range c.TargetSpecies {
		rec, ok := p.VetEvidence(c.Compound, species)
		if !ok {
			rec = VetEvidenceRecord{
				Condition:       c.TargetCondition,
				EvidenceItems:   []types.EvidenceItem{},
				OverallStrength: types.StrengthWeak,
			}
		}
		bundles = append(bundles, types.VetEvidenceBundle{
			Compound:        c.Compound,
			TargetSpecies:   species,
			TargetCondition: rec.Condition,
			EvidenceItems:   rec.EvidenceItems,
			OverallStrength: rec.OverallStrength,
		})
	}
	return bundles
}

// docsOrEmpty keeps evidence doc lists non-nil so they marshal as JSON
// arrays even when a candidate carries no source documents.
func docsOrEmpty(docs []string) []string {
	if docs == nil {
		return []string{}
	}
	return docs
}

// ScreenRisk returns one risk bundle per target species, in the
// candidate's species order. A miss yields the fixed moderate default risk
// with no flags.
func ScreenRisk(p Provider, c types.Candidate) []types.RiskBundle {
	bundles := make([]types.RiskBundle, 0, len(c.TargetSpecies))
	for _, species := range c.TargetSpecies {
		rec, ok := p.Risk(c.Compound, species)
		if !ok {
			rec = RiskRecord{
				OverallRisk: defaultOverallRisk,
				RiskFlags:   []types.RiskFlag{},
			}
		}
		bundles = append(bundles, types.RiskBundle{
			Compound:      c.Compound,
			TargetSpecies: species,
			RiskFlags:     rec.RiskFlags,
			OverallRisk:   rec.OverallRisk,
		})
	}
	return bundles
}
