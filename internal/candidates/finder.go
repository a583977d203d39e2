// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package candidates maps problem briefs to candidate compounds.
package candidates

import (
	"github.com/burrows3/AnimalMind/internal/evidence"
	"github.com/burrows3/AnimalMind/pkg/types"
)

// Find looks up known compounds for each brief's condition and returns the
// concatenated candidate list. Briefs are processed in input order and
// seeds in table order, and Index records each candidate's position in the
// combined output. That index feeds signal ID generation, so the ordering
// here must stay stable; do not parallelize or reorder this loop.
//
// An unknown condition contributes zero candidates and is not an error.
func Find(p evidence.Provider, briefs []types.ProblemBrief) []types.Candidate {
	var found []types.Candidate
	for _, brief := range briefs {
		seeds, ok := p.Candidates(brief.Condition)
		if !ok {
			continue
		}
		for _, seed := range seeds {
			found = append(found, types.Candidate{
				Compound:           seed.Compound,
				OriginalIndication: seed.OriginalIndication,
				Mechanism:          seed.Mechanism,
				SourceDocs:         seed.SourceDocs,
				TargetSpecies:      brief.TargetSpecies,
				TargetCondition:    brief.Condition,
				ProblemID:          brief.ProblemID,
				Index:              len(found),
			})
		}
	}
	return found
}
