// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evidence

import "github.com/burrows3/AnimalMind/pkg/types"

// tables holds the knowledge maps backing a StaticProvider. Candidate
// lists are slices so table order is preserved; the candidate finder
// depends on that order for index determinism.
type tables struct {
	Candidates  map[string][]CandidateSeed                   `yaml:"candidates"`
	Failures    map[string]FailureRecord                     `yaml:"failures"`
	Rationales  map[string]map[string][]types.RationalePoint `yaml:"rationales"`
	VetEvidence map[string]map[string]VetEvidenceRecord      `yaml:"vet_evidence"`
	Risks       map[string]map[string]RiskRecord             `yaml:"risks"`
}

// StaticProvider serves lookups from in-memory tables. The zero value is
// unusable; construct with NewStaticProvider or LoadProvider.
type StaticProvider struct {
	t tables
}

// NewStaticProvider returns a provider backed by the bundled example
// knowledge tables. The table contents are a frozen stand-in for a real
// mining capability; scores computed from them are reproducible run to run.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{t: builtinTables()}
}

// Candidates returns the known compounds for a condition, in table order.
func (p *StaticProvider) Candidates(condition string) ([]CandidateSeed, bool) {
	seeds, ok := p.t.Candidates[condition]
	return seeds, ok
}

// Failure returns the failure history for a compound.
func (p *StaticProvider) Failure(compound string) (FailureRecord, bool) {
	rec, ok := p.t.Failures[compound]
	return rec, ok
}

// Rationale returns the species-specific rationale points for a compound.
func (p *StaticProvider) Rationale(compound, species string) ([]types.RationalePoint, bool) {
	points, ok := p.t.Rationales[compound][species]
	return points, ok
}

// VetEvidence returns the veterinary evidence for a compound and species.
func (p *StaticProvider) VetEvidence(compound, species string) (VetEvidenceRecord, bool) {
	rec, ok := p.t.VetEvidence[compound][species]
	return rec, ok
}

// Risk returns the risk profile for a compound and species.
func (p *StaticProvider) Risk(compound, species string) (RiskRecord, bool) {
	rec, ok := p.t.Risks[compound][species]
	return rec, ok
}

func builtinTables() tables {
	return tables{
		Candidates: map[string][]CandidateSeed{
			"Osteoarthritis": {
				{
					Compound:           "Compound AX-17 (example)",
					OriginalIndication: "Human osteoarthritis",
					Mechanism:          "Inflammatory pathway modulation",
					SourceDocs:         []string{"ctgov:EXAMPLE-OA-001"},
				},
			},
			"Chronic kidney disease": {
				{
					Compound:           "Compound RN-44 (example)",
					OriginalIndication: "Human CKD fibrosis",
					Mechanism:          "Anti-fibrotic signaling",
					SourceDocs:         []string{"ctgov:EXAMPLE-CKD-002"},
				},
			},
			"Laminitis": {
				{
					Compound:           "Compound LM-12 (example)",
					OriginalIndication: "Human peripheral vascular disease",
					Mechanism:          "Microvascular perfusion support",
					SourceDocs:         []string{"ctgov:EXAMPLE-LAM-003"},
				},
			},
		},
		Failures: map[string]FailureRecord{
			"Compound AX-17 (example)": {
				FailureType: types.FailureEfficacy,
				KeyReasons: []types.FailureReason{
					{
						Reason:         "Primary endpoint did not reach statistical significance in target population.",
						EvidenceDocIDs: []string{"ctgov:EXAMPLE-OA-001"},
						Confidence:     0.7,
					},
					{
						Reason:         "Enrollment skewed toward late-stage disease, limiting responsiveness.",
						EvidenceDocIDs: []string{"ctgov:EXAMPLE-OA-001"},
						Confidence:     0.55,
					},
				},
				TrialMetadata: &types.TrialMetadata{
					Phase:      "Phase 2",
					Endpoint:   "Pain score reduction",
					Population: "Adults with advanced OA",
					DoseRange:  "Example dosing range",
				},
			},
			"Compound RN-44 (example)": {
				FailureType: types.FailurePK,
				KeyReasons: []types.FailureReason{
					{
						Reason:         "Insufficient bioavailability at planned dosing window.",
						EvidenceDocIDs: []string{"ctgov:EXAMPLE-CKD-002"},
						Confidence:     0.65,
					},
				},
				TrialMetadata: &types.TrialMetadata{
					Phase:      "Phase 2",
					Endpoint:   "eGFR stabilization",
					Population: "Stage 3 CKD",
					DoseRange:  "Example dosing range",
				},
			},
			"Compound LM-12 (example)": {
				FailureType: types.FailureTrialDesign,
				KeyReasons: []types.FailureReason{
					{
						Reason:         "Trial endpoints focused on short-term perfusion and missed chronic outcomes.",
						EvidenceDocIDs: []string{"ctgov:EXAMPLE-LAM-003"},
						Confidence:     0.6,
					},
				},
				TrialMetadata: &types.TrialMetadata{
					Phase:      "Phase 1/2",
					Endpoint:   "Perfusion index",
					Population: "Peripheral vascular disease",
					DoseRange:  "Example dosing range",
				},
			},
		},
		Rationales: map[string]map[string][]types.RationalePoint{
			"Compound AX-17 (example)": {
				"canine": {
					{
						Hypothesis:      "Canine inflammatory response may be more responsive to short-term modulation.",
						BiologicalBasis: "Species differences in inflammatory mediator profiles and activity patterns.",
						EvidenceDocIDs:  []string{"pmid:EXAMPLE-VET-101"},
						Confidence:      0.55,
					},
				},
			},
			"Compound RN-44 (example)": {
				"feline": {
					{
						Hypothesis:      "Feline CKD progression windows may allow earlier intervention.",
						BiologicalBasis: "Different progression tempo and management context in cats.",
						EvidenceDocIDs:  []string{"pmid:EXAMPLE-VET-202"},
						Confidence:      0.5,
					},
				},
			},
			"Compound LM-12 (example)": {
				"equine": {
					{
						Hypothesis:      "Equine laminitis endpoints differ from human perfusion metrics.",
						BiologicalBasis: "Different clinical outcome measures and care pathways.",
						EvidenceDocIDs:  []string{"pmid:EXAMPLE-VET-303"},
						Confidence:      0.52,
					},
				},
			},
		},
		VetEvidence: map[string]map[string]VetEvidenceRecord{
			"Compound AX-17 (example)": {
				"canine": {
					Condition: "Osteoarthritis",
					EvidenceItems: []types.EvidenceItem{
						{
							Type:           "case_report",
							Finding:        "Single case report suggests improved mobility in canine OA model.",
							SampleSize:     "n=1",
							EvidenceDocIDs: []string{"pmid:EXAMPLE-VET-101"},
							StrengthGrade:  types.StrengthWeak,
						},
					},
					OverallStrength: types.StrengthWeak,
				},
			},
			"Compound RN-44 (example)": {
				"feline": {
					Condition: "Chronic kidney disease",
					EvidenceItems: []types.EvidenceItem{
						{
							Type:           "retrospective",
							Finding:        "Retrospective review notes potential stabilization signal.",
							SampleSize:     "n=18",
							EvidenceDocIDs: []string{"pmid:EXAMPLE-VET-202"},
							StrengthGrade:  types.StrengthModerate,
						},
					},
					OverallStrength: types.StrengthModerate,
				},
			},
			"Compound LM-12 (example)": {
				"equine": {
					Condition: "Laminitis",
					EvidenceItems: []types.EvidenceItem{
						{
							Type:           "mechanistic",
							Finding:        "Mechanistic study aligns with perfusion support hypothesis.",
							SampleSize:     "n=12",
							EvidenceDocIDs: []string{"pmid:EXAMPLE-VET-303"},
							StrengthGrade:  types.StrengthWeak,
						},
					},
					OverallStrength: types.StrengthWeak,
				},
			},
		},
		Risks: map[string]map[string]RiskRecord{
			"Compound AX-17 (example)": {
				"canine": {
					OverallRisk: 35,
					RiskFlags: []types.RiskFlag{
						{Flag: "GI intolerance risk", Severity: 2, EvidenceDocIDs: []string{"ctgov:EXAMPLE-OA-001"}},
					},
				},
			},
			"Compound RN-44 (example)": {
				"feline": {
					OverallRisk: 55,
					RiskFlags: []types.RiskFlag{
						{Flag: "Renal clearance uncertainty", Severity: 3, EvidenceDocIDs: []string{"ctgov:EXAMPLE-CKD-002"}},
					},
				},
			},
			"Compound LM-12 (example)": {
				"equine": {
					OverallRisk: 72,
					RiskFlags: []types.RiskFlag{
						{Flag: "Cardiovascular risk profile unclear", Severity: 4, EvidenceDocIDs: []string{"ctgov:EXAMPLE-LAM-003"}},
					},
				},
			},
		},
	}
}
