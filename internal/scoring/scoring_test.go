// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"testing"

	"github.com/burrows3/AnimalMind/pkg/types"
)

func TestScoreKnownCandidate(t *testing.T) {
	// Efficacy failure, weak evidence, mean rationale confidence 0.55,
	// risk 35, two distinct evidence docs.
	got := Score(Inputs{
		FailureType:         types.FailureEfficacy,
		VetEvidenceStrength: types.StrengthWeak,
		RationaleConfidence: 0.55,
		RiskScore:           35,
		SignalVolume:        2,
	})

	if got.ConfidenceScore != 28 {
		t.Errorf("ConfidenceScore = %d, want 28", got.ConfidenceScore)
	}
	if got.AddressabilityScore != 70 {
		t.Errorf("AddressabilityScore = %d, want 70", got.AddressabilityScore)
	}
	if got.TranslationRisk != 30 {
		t.Errorf("TranslationRisk = %d, want 30", got.TranslationRisk)
	}

	want := types.BreakdownTerms{
		VetEvidence:      12,
		SpeciesRationale: 14,
		Addressability:   14,
		RecencyVolume:    2,
		RiskPenalty:      14,
	}
	if got.Breakdown != want {
		t.Errorf("Breakdown = %+v, want %+v", got.Breakdown, want)
	}
}

func TestScoreTerms(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want types.ScoreBreakdown
	}{
		{
			name: "moderate evidence pk failure",
			in: Inputs{
				FailureType:         types.FailurePK,
				VetEvidenceStrength: types.StrengthModerate,
				RationaleConfidence: 0.5,
				RiskScore:           55,
				SignalVolume:        2,
			},
			want: types.ScoreBreakdown{
				ConfidenceScore:     27,
				AddressabilityScore: 60,
				TranslationRisk:     40,
				Breakdown: types.BreakdownTerms{
					VetEvidence:      22,
					SpeciesRationale: 13,
					Addressability:   12,
					RecencyVolume:    2,
					RiskPenalty:      22,
				},
			},
		},
		{
			name: "high risk trial design",
			in: Inputs{
				FailureType:         types.FailureTrialDesign,
				VetEvidenceStrength: types.StrengthWeak,
				RationaleConfidence: 0.52,
				RiskScore:           72,
				SignalVolume:        2,
			},
			want: types.ScoreBreakdown{
				ConfidenceScore:     12,
				AddressabilityScore: 70,
				TranslationRisk:     30,
				Breakdown: types.BreakdownTerms{
					VetEvidence:      12,
					SpeciesRationale: 13,
					Addressability:   14,
					RecencyVolume:    2,
					RiskPenalty:      29,
				},
			},
		},
		{
			name: "unknown failure type and strength fall back to defaults",
			in: Inputs{
				FailureType:         types.FailureType("mystery"),
				VetEvidenceStrength: types.EvidenceStrength("anecdotal"),
				RationaleConfidence: 0.3,
				RiskScore:           40,
				SignalVolume:        1,
			},
			want: types.ScoreBreakdown{
				ConfidenceScore:     11,
				AddressabilityScore: 40,
				TranslationRisk:     60,
				Breakdown: types.BreakdownTerms{
					VetEvidence:      10,
					SpeciesRationale: 8,
					Addressability:   8,
					RecencyVolume:    1,
					RiskPenalty:      16,
				},
			},
		},
		{
			name: "toxicity failure carries high translation risk",
			in: Inputs{
				FailureType:         types.FailureToxicity,
				VetEvidenceStrength: types.StrengthStrong,
				RationaleConfidence: 0.9,
				RiskScore:           0,
				SignalVolume:        0,
			},
			want: types.ScoreBreakdown{
				ConfidenceScore:     61,
				AddressabilityScore: 30,
				TranslationRisk:     70,
				Breakdown: types.BreakdownTerms{
					VetEvidence:      32,
					SpeciesRationale: 23,
					Addressability:   6,
					RecencyVolume:    0,
					RiskPenalty:      0,
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.in); got != tt.want {
				t.Errorf("Score() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScoreClamps(t *testing.T) {
	// Rationale term caps at 25 and signal volume at 10; maximum risk
	// cannot push confidence below zero.
	got := Score(Inputs{
		FailureType:         types.FailureToxicity,
		VetEvidenceStrength: types.EvidenceStrength("none"),
		RationaleConfidence: 2.0,
		RiskScore:           100,
		SignalVolume:        50,
	})
	if got.Breakdown.SpeciesRationale != 25 {
		t.Errorf("SpeciesRationale = %d, want clamp at 25", got.Breakdown.SpeciesRationale)
	}
	if got.Breakdown.RecencyVolume != 10 {
		t.Errorf("RecencyVolume = %d, want clamp at 10", got.Breakdown.RecencyVolume)
	}
	if got.Breakdown.RiskPenalty != 40 {
		t.Errorf("RiskPenalty = %d, want 40", got.Breakdown.RiskPenalty)
	}
	if got.ConfidenceScore != 11 {
		t.Errorf("ConfidenceScore = %d, want 11", got.ConfidenceScore)
	}

	floor := Score(Inputs{
		FailureType:         types.FailureToxicity,
		VetEvidenceStrength: types.EvidenceStrength("none"),
		RationaleConfidence: 0,
		RiskScore:           100,
		SignalVolume:        0,
	})
	if floor.ConfidenceScore != 0 {
		t.Errorf("ConfidenceScore = %d, want floor at 0", floor.ConfidenceScore)
	}
}

func TestScoreRoundsHalfUp(t *testing.T) {
	// 0.5 * 25 = 12.5 rounds up, matching the published contract.
	got := Score(Inputs{
		FailureType:         types.FailurePK,
		VetEvidenceStrength: types.StrengthWeak,
		RationaleConfidence: 0.5,
	})
	if got.Breakdown.SpeciesRationale != 13 {
		t.Errorf("SpeciesRationale = %d, want 13 (12.5 rounds up)", got.Breakdown.SpeciesRationale)
	}
}
