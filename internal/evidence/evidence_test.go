// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evidence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/burrows3/AnimalMind/pkg/types"
)

func knownCandidate() types.Candidate {
	return types.Candidate{
		Compound:           "Compound AX-17 (example)",
		OriginalIndication: "Human osteoarthritis",
		Mechanism:          "Inflammatory pathway modulation",
		SourceDocs:         []string{"ctgov:EXAMPLE-OA-001"},
		TargetSpecies:      []string{"canine"},
		TargetCondition:    "Osteoarthritis",
		ProblemID:          "canine-osteoarthritis",
	}
}

func unknownCandidate() types.Candidate {
	return types.Candidate{
		Compound:        "Compound ZZ-99",
		SourceDocs:      []string{"ctgov:EXAMPLE-ZZ-999"},
		TargetSpecies:   []string{"canine", "feline"},
		TargetCondition: "Osteoarthritis",
	}
}

func TestAnalyzeFailureKnownCompound(t *testing.T) {
	p := NewStaticProvider()
	bundle := AnalyzeFailure(p, knownCandidate())

	if bundle.FailureType != types.FailureEfficacy {
		t.Errorf("FailureType = %q, want efficacy", bundle.FailureType)
	}
	if bundle.Compound != "Compound AX-17 (example)" {
		t.Errorf("Compound = %q", bundle.Compound)
	}
	if bundle.OriginalIndication != "Human osteoarthritis" {
		t.Errorf("OriginalIndication = %q", bundle.OriginalIndication)
	}
	if len(bundle.KeyReasons) != 2 {
		t.Fatalf("len(KeyReasons) = %d, want 2", len(bundle.KeyReasons))
	}
	if bundle.KeyReasons[0].Confidence != 0.7 {
		t.Errorf("KeyReasons[0].Confidence = %v, want 0.7", bundle.KeyReasons[0].Confidence)
	}
	if bundle.TrialMetadata == nil || bundle.TrialMetadata.Phase != "Phase 2" {
		t.Errorf("TrialMetadata = %+v, want Phase 2", bundle.TrialMetadata)
	}
}

func TestAnalyzeFailureUnknownCompound(t *testing.T) {
	p := NewStaticProvider()
	bundle := AnalyzeFailure(p, unknownCandidate())

	if bundle.FailureType != types.FailureUnknown {
		t.Errorf("FailureType = %q, want unknown", bundle.FailureType)
	}
	if len(bundle.KeyReasons) != 1 {
		t.Fatalf("len(KeyReasons) = %d, want 1", len(bundle.KeyReasons))
	}
	r := bundle.KeyReasons[0]
	if r.Reason != "Failure reason not clearly disclosed in public summary." {
		t.Errorf("Reason = %q", r.Reason)
	}
	if r.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3", r.Confidence)
	}
	if len(r.EvidenceDocIDs) != 1 || r.EvidenceDocIDs[0] != "ctgov:EXAMPLE-ZZ-999" {
		t.Errorf("EvidenceDocIDs = %v, want candidate's source docs", r.EvidenceDocIDs)
	}
	if bundle.TrialMetadata != nil {
		t.Errorf("TrialMetadata = %+v, want nil", bundle.TrialMetadata)
	}
}

func TestAnalyzeFailureMissWithNoSourceDocs(t *testing.T) {
	p := NewStaticProvider()
	c := unknownCandidate()
	c.SourceDocs = nil

	bundle := AnalyzeFailure(p, c)
	if bundle.KeyReasons[0].EvidenceDocIDs == nil {
		t.Error("EvidenceDocIDs is nil, want empty slice")
	}
}

func TestAnalyzeRationale(t *testing.T) {
	p := NewStaticProvider()
	bundles := AnalyzeRationale(p, knownCandidate())

	if len(bundles) != 1 {
		t.Fatalf("len(bundles) = %d, want 1", len(bundles))
	}
	b := bundles[0]
	if b.TargetSpecies != "canine" {
		t.Errorf("TargetSpecies = %q", b.TargetSpecies)
	}
	if b.PKPDNotes != "No dosing guidance provided; research-only hypothesis." {
		t.Errorf("PKPDNotes = %q", b.PKPDNotes)
	}
	if len(b.RationalePoints) != 1 || b.RationalePoints[0].Confidence != 0.55 {
		t.Errorf("RationalePoints = %+v", b.RationalePoints)
	}
}

func TestAnalyzeRationaleMiss(t *testing.T) {
	p := NewStaticProvider()
	bundles := AnalyzeRationale(p, unknownCandidate())

	if len(bundles) != 2 {
		t.Fatalf("len(bundles) = %d, want one per target species", len(bundles))
	}
	for _, b := range bundles {
		if len(b.RationalePoints) != 1 {
			t.Fatalf("species %s: len(RationalePoints) = %d, want 1", b.TargetSpecies, len(b.RationalePoints))
		}
		pt := b.RationalePoints[0]
		if pt.Hypothesis != "Species-specific factors may alter response." {
			t.Errorf("Hypothesis = %q", pt.Hypothesis)
		}
		if pt.BiologicalBasis != "insufficient evidence" {
			t.Errorf("BiologicalBasis = %q", pt.BiologicalBasis)
		}
		if pt.Confidence != 0.3 {
			t.Errorf("Confidence = %v, want 0.3", pt.Confidence)
		}
	}
}

func TestMineVetEvidence(t *testing.T) {
	p := NewStaticProvider()
	bundles := MineVetEvidence(p, knownCandidate())

	if len(bundles) != 1 {
		t.Fatalf("len(bundles) = %d, want 1", len(bundles))
	}
	b := bundles[0]
	if b.OverallStrength != types.StrengthWeak {
		t.Errorf("OverallStrength = %q, want weak", b.OverallStrength)
	}
	if b.TargetCondition != "Osteoarthritis" {
		t.Errorf("TargetCondition = %q", b.TargetCondition)
	}
	if len(b.EvidenceItems) != 1 || b.EvidenceItems[0].Type != "case_report" {
		t.Errorf("EvidenceItems = %+v", b.EvidenceItems)
	}
}

func TestMineVetEvidenceMiss(t *testing.T) {
	p := NewStaticProvider()
	bundles := MineVetEvidence(p, unknownCandidate())

	if len(bundles) != 2 {
		t.Fatalf("len(bundles) = %d, want 2", len(bundles))
	}
	for _, b := range bundles {
		if b.OverallStrength != types.StrengthWeak {
			t.Errorf("species %s: OverallStrength = %q, want weak", b.TargetSpecies, b.OverallStrength)
		}
		if b.EvidenceItems == nil || len(b.EvidenceItems) != 0 {
			t.Errorf("species %s: EvidenceItems = %v, want empty non-nil", b.TargetSpecies, b.EvidenceItems)
		}
		if b.TargetCondition != "Osteoarthritis" {
			t.Errorf("species %s: TargetCondition = %q, want candidate's condition", b.TargetSpecies, b.TargetCondition)
		}
	}
}

func TestScreenRisk(t *testing.T) {
	p := NewStaticProvider()
	bundles := ScreenRisk(p, knownCandidate())

	if len(bundles) != 1 {
		t.Fatalf("len(bundles) = %d, want 1", len(bundles))
	}
	b := bundles[0]
	if b.OverallRisk != 35 {
		t.Errorf("OverallRisk = %d, want 35", b.OverallRisk)
	}
	if len(b.RiskFlags) != 1 || b.RiskFlags[0].Flag != "GI intolerance risk" {
		t.Errorf("RiskFlags = %+v", b.RiskFlags)
	}
}

func TestScreenRiskMiss(t *testing.T) {
	p := NewStaticProvider()
	bundles := ScreenRisk(p, unknownCandidate())

	for _, b := range bundles {
		if b.OverallRisk != 40 {
			t.Errorf("species %s: OverallRisk = %d, want default 40", b.TargetSpecies, b.OverallRisk)
		}
		if b.RiskFlags == nil || len(b.RiskFlags) != 0 {
			t.Errorf("species %s: RiskFlags = %v, want empty non-nil", b.TargetSpecies, b.RiskFlags)
		}
	}
}

func TestLoadProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	content := `candidates:
  Osteoarthritis:
    - compound: Compound QQ-1
      original_indication: Human OA
      mechanism: Test mechanism
      source_docs: [ctgov:TEST-1]
failures:
  Compound QQ-1:
    failure_type: toxicity
    key_reasons:
      - reason: Hepatotoxicity at therapeutic dose.
        evidence_doc_ids: [ctgov:TEST-1]
        confidence: 0.8
risks:
  Compound QQ-1:
    canine:
      overall_risk: 80
      risk_flags:
        - flag: Liver toxicity
          severity: 5
          evidence_doc_ids: [ctgov:TEST-1]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProvider(path)
	if err != nil {
		t.Fatalf("LoadProvider: %v", err)
	}

	seeds, ok := p.Candidates("Osteoarthritis")
	if !ok || len(seeds) != 1 || seeds[0].Compound != "Compound QQ-1" {
		t.Errorf("Candidates = %+v, ok=%v", seeds, ok)
	}
	rec, ok := p.Failure("Compound QQ-1")
	if !ok || rec.FailureType != types.FailureToxicity {
		t.Errorf("Failure = %+v, ok=%v", rec, ok)
	}
	risk, ok := p.Risk("Compound QQ-1", "canine")
	if !ok || risk.OverallRisk != 80 {
		t.Errorf("Risk = %+v, ok=%v", risk, ok)
	}

	// Missing tables are ordinary misses.
	if _, ok := p.Rationale("Compound QQ-1", "canine"); ok {
		t.Error("Rationale hit on absent table")
	}
	if _, ok := p.VetEvidence("Compound QQ-1", "canine"); ok {
		t.Error("VetEvidence hit on absent table")
	}
}

func TestLoadProviderErrors(t *testing.T) {
	if _, err := LoadProvider(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProvider(empty); err == nil {
		t.Error("expected error for file with no tables")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte(":\n\t- broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProvider(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
