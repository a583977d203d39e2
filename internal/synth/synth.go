// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synth fuses analyzer bundles into published repurpose signals.
package synth

import (
	"fmt"
	"strings"
	"time"

	"github.com/burrows3/AnimalMind/internal/ids"
	"github.com/burrows3/AnimalMind/internal/priorart"
	"github.com/burrows3/AnimalMind/internal/scoring"
	"github.com/burrows3/AnimalMind/pkg/types"
)

const (
	evidenceNotes   = "Evidence is research-only and requires validation."
	noEvidenceNote  = "No veterinary evidence found in current sources."
	timestampLayout = "2006-01-02T15:04:05.000Z"
)

// BuildInput carries one candidate's bundles into synthesis.
type BuildInput struct {
	Candidate   types.Candidate
	Failure     types.FailureBundle
	Rationale   []types.SpeciesRationaleBundle
	VetEvidence []types.VetEvidenceBundle
	Risk        []types.RiskBundle
	RunID       string
}

// Synthesizer builds signals from analyzer bundles. Scout attaches
// prior-art assessments when enabled. Now is overridable for tests and
// defaults to time.Now.
type Synthesizer struct {
	Scout priorart.Scout
	Now   func() time.Time
}

// New returns a synthesizer with the given scout, or the disabled default
// when scout is nil.
func New(scout priorart.Scout) *Synthesizer {
	if scout == nil {
		scout = priorart.Noop{}
	}
	return &Synthesizer{Scout: scout, Now: time.Now}
}

// Build fuses the bundles for one candidate into an immutable signal:
// evidence references are deduplicated, scores computed, summaries derived
// from the structured fields, and the deterministic signal ID assigned from
// (compound, condition, index).
func (s *Synthesizer) Build(in BuildInput) types.RepurposeSignal {
	c := in.Candidate

	var rationalePoints []types.RationalePoint
	for _, b := range in.Rationale {
		rationalePoints = append(rationalePoints, b.RationalePoints...)
	}
	rationaleConfidence := averageConfidence(rationalePoints)

	vetStrength := types.StrengthWeak
	if len(in.VetEvidence) > 0 {
		// Species bundles arrive in the candidate's target_species order,
		// so "first" is deterministic.
		vetStrength = in.VetEvidence[0].OverallStrength
	}

	// Collect evidence doc IDs across all bundle groups, deduplicated by
	// exact string equality in first-seen order.
	var vetDocs []string
	for _, b := range in.VetEvidence {
		for _, item := range b.EvidenceItems {
			vetDocs = append(vetDocs, item.EvidenceDocIDs...)
		}
	}
	var failureDocs []string
	for _, reason := range in.Failure.KeyReasons {
		failureDocs = append(failureDocs, reason.EvidenceDocIDs...)
	}
	var rationaleDocs []string
	for _, point := range rationalePoints {
		rationaleDocs = append(rationaleDocs, point.EvidenceDocIDs...)
	}
	keyDocs := dedupe(vetDocs, failureDocs, rationaleDocs)

	riskOverall := 0
	for _, b := range in.Risk {
		if b.OverallRisk > riskOverall {
			riskOverall = b.OverallRisk
		}
	}
	keyFlags := []string{}
	for _, b := range in.Risk {
		for _, f := range b.RiskFlags {
			keyFlags = append(keyFlags, fmt.Sprintf("%s (severity %d)", f.Flag, f.Severity))
		}
	}

	score := scoring.Score(scoring.Inputs{
		FailureType:         in.Failure.FailureType,
		VetEvidenceStrength: vetStrength,
		RationaleConfidence: rationaleConfidence,
		RiskScore:           riskOverall,
		SignalVolume:        len(keyDocs),
	})

	failureSummary := joinTop(reasonTexts(in.Failure.KeyReasons), 2)
	if failureSummary == "" {
		failureSummary = "Failure reason not clearly disclosed in public sources."
	}
	animalsSummary := joinTop(hypothesisTexts(rationalePoints), 2)
	if animalsSummary == "" {
		animalsSummary = "Species rationale not yet established."
	}

	evidenceSummary := noEvidenceNote
	if len(in.VetEvidence) > 0 {
		evidenceSummary = fmt.Sprintf(
			"Veterinary evidence is %s with %d cited item(s). Evidence remains limited.",
			vetStrength, len(vetDocs))
	}

	// The risk summary must say "high" exactly when the do-not-pursue
	// threshold fires; it restates the structured risk field.
	var riskSummary string
	if riskOverall >= 70 {
		riskSummary = "Risk profile is high. Not recommended for further pursuit."
	} else {
		riskSummary = fmt.Sprintf(
			"Risk profile is moderate (%d/100) with flagged contraindications requiring review.", riskOverall)
	}

	nextSteps := recommendNextSteps(riskOverall, vetStrength)
	nextStepsSummary := fmt.Sprintf("Next steps: %s (research-only).", strings.Join(nextSteps, ", "))

	speciesSummaries := make([]types.SpeciesSummary, 0, len(in.Rationale))
	for _, b := range in.Rationale {
		summary := "Species rationale requires additional review."
		if len(b.RationalePoints) > 0 {
			summary = strings.Join(hypothesisTexts(b.RationalePoints), " ")
		}
		speciesSummaries = append(speciesSummaries, types.SpeciesSummary{
			Species: b.TargetSpecies,
			Summary: summary,
		})
	}

	timestamp := s.now().UTC().Format(timestampLayout)

	signal := types.RepurposeSignal{
		SignalID:          ids.SignalID(c.Compound, c.TargetCondition, c.Index),
		Compound:          c.Compound,
		ProposedSpecies:   stringsOrEmpty(c.TargetSpecies),
		ProposedCondition: c.TargetCondition,
		SummaryHypothesis: fmt.Sprintf(
			"Research hypothesis: %s may warrant evaluation for %s in %s.",
			c.Compound, c.TargetCondition, strings.Join(c.TargetSpecies, ", ")),
		WhyFailedOriginally: types.FailureExplanation{
			Summary:     failureSummary,
			FailureType: in.Failure.FailureType,
			KeyPoints:   reasonTexts(in.Failure.KeyReasons),
		},
		WhyItMightWorkInAnimals: types.SpeciesExplanation{
			Summary:   animalsSummary,
			KeyPoints: hypothesisTexts(rationalePoints),
		},
		Evidence: types.SignalEvidence{
			VetStrength: vetStrength,
			KeyDocs:     keyDocs,
			Notes:       evidenceNotes,
		},
		Risk: types.SignalRisk{
			OverallRisk: riskOverall,
			KeyFlags:    keyFlags,
		},
		NoveltyVectors:       []string{"new_species", "new_indication"},
		ConfidenceScore:      score.ConfidenceScore,
		AddressabilityScore:  score.AddressabilityScore,
		TranslationRisk:      score.TranslationRisk,
		ScoreBreakdown:       score.Breakdown,
		RecommendedNextSteps: nextSteps,
		Provenance: types.Provenance{
			AgentRunIDs: []string{in.RunID},
			Timestamps:  []string{timestamp},
		},
		ReasoningSummaries: types.ReasoningSummaries{
			ExecutiveSummary: []string{
				fmt.Sprintf("%s: %s", c.Compound, failureSummary),
				firstSpeciesSummary(speciesSummaries),
				evidenceSummary,
				riskSummary,
			},
			FailureSummary:        fmt.Sprintf("%s Failure type: %s.", failureSummary, in.Failure.FailureType),
			SpeciesBenefitSummary: speciesSummaries,
			EvidenceSummary:       evidenceSummary,
			RiskSummary:           riskSummary,
			NextStepsSummary:      nextStepsSummary,
		},
		Disclaimer: types.Disclaimer,
	}

	if s.Scout != nil && s.Scout.Enabled() {
		art := s.Scout.Assess(signal)
		signal.PriorArt = &art
	}

	return signal
}

// recommendNextSteps applies the decision rule top to bottom, first match
// wins. High risk vetoes everything else.
func recommendNextSteps(riskOverall int, vetStrength types.EvidenceStrength) []string {
	switch {
	case riskOverall >= 70:
		return []string{"do_not_pursue"}
	case vetStrength == types.StrengthStrong:
		return []string{"retrospective_review", "pilot_study"}
	default:
		return []string{"retrospective_review", "in_vitro", "pilot_study"}
	}
}

// averageConfidence is the arithmetic mean of point confidences, or 0.3
// when no rationale points were gathered.
func averageConfidence(points []types.RationalePoint) float64 {
	if len(points) == 0 {
		return 0.3
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Confidence
	}
	return sum / float64(len(points))
}

// dedupe flattens the given ID lists into one slice with exact-string
// duplicates removed, preserving first-seen order. Always non-nil so the
// published key_docs field marshals as an array.
func dedupe(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func reasonTexts(reasons []types.FailureReason) []string {
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, r.Reason)
	}
	return out
}

func hypothesisTexts(points []types.RationalePoint) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.Hypothesis)
	}
	return out
}

// joinTop joins the first n items with single spaces.
func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, " ")
}

func firstSpeciesSummary(summaries []types.SpeciesSummary) string {
	if len(summaries) == 0 {
		return "Species rationale requires additional review."
	}
	return summaries[0].Summary
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (s *Synthesizer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
