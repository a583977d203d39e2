// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scoring computes the deterministic confidence score for a
// candidate from its analyzer outputs.
//
// The weights and clamp bounds are a frozen contract: downstream consumers
// compare scores across runs, so reproducing the exact arithmetic matters
// more than the values themselves.
package scoring

import (
	"math"

	"github.com/burrows3/AnimalMind/pkg/types"
)

// vetEvidenceScore maps overall evidence strength to its score term.
// Unrecognized strengths score 10.
var vetEvidenceScore = map[types.EvidenceStrength]int{
	types.StrengthWeak:     12,
	types.StrengthModerate: 22,
	types.StrengthStrong:   32,
}

const defaultVetScore = 10

// failureAddressability estimates how fixable each failure type is.
// Unrecognized types get 0.4.
var failureAddressability = map[types.FailureType]float64{
	types.FailureEfficacy:    0.7,
	types.FailureTrialDesign: 0.7,
	types.FailureStrategy:    0.65,
	types.FailurePK:          0.6,
	types.FailureToxicity:    0.3,
	types.FailureUnknown:     0.4,
}

const defaultAddressability = 0.4

// Inputs are the aggregated analyzer outputs for one candidate.
type Inputs struct {
	// FailureType is the compound's original failure classification.
	FailureType types.FailureType

	// VetEvidenceStrength is the overall strength of the first
	// vet-evidence bundle.
	VetEvidenceStrength types.EvidenceStrength

	// RationaleConfidence is the mean confidence across every rationale
	// point gathered for the candidate.
	RationaleConfidence float64

	// RiskScore is the maximum overall risk across all species risk
	// bundles, in [0,100].
	RiskScore int

	// SignalVolume is the count of distinct evidence document IDs across
	// all bundles, computed on the already-deduplicated set.
	SignalVolume int
}

// Score maps analyzer outputs to the confidence score, the reported
// addressability and translation-risk scores, and the per-term breakdown.
// Pure and side-effect free; safe to share across concurrent candidate
// tasks.
func Score(in Inputs) types.ScoreBreakdown {
	vetScore, ok := vetEvidenceScore[in.VetEvidenceStrength]
	if !ok {
		vetScore = defaultVetScore
	}

	rationaleScore := clamp(round(in.RationaleConfidence*25), 0, 25)

	addressability, ok := failureAddressability[in.FailureType]
	if !ok {
		addressability = defaultAddressability
	}
	addressabilityScore := round(addressability * 20)

	recencyScore := clamp(in.SignalVolume, 0, 10)
	riskPenalty := round(float64(in.RiskScore) / 100 * 40)

	confidence := clamp(vetScore+rationaleScore+addressabilityScore+recencyScore-riskPenalty, 0, 100)

	return types.ScoreBreakdown{
		ConfidenceScore: confidence,
		// Reported on a 0-100 scale, unlike the 0-20 breakdown term.
		AddressabilityScore: round(addressability * 100),
		TranslationRisk:     clamp(round(100-addressability*100), 0, 100),
		Breakdown: types.BreakdownTerms{
			VetEvidence:      vetScore,
			SpeciesRationale: rationaleScore,
			Addressability:   addressabilityScore,
			RecencyVolume:    recencyScore,
			RiskPenalty:      riskPenalty,
		},
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
