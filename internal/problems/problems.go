// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package problems supplies the target problem briefs a run starts from.
package problems

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/burrows3/AnimalMind/pkg/types"
)

// defaultBriefs is the fixed problem list used when no brief file is given.
var defaultBriefs = []types.ProblemBrief{
	{
		ProblemID:     "canine-osteoarthritis",
		TargetSpecies: []string{"canine"},
		Condition:     "Osteoarthritis",
		Keywords:      []string{"pain", "inflammation", "mobility"},
		Rationale:     "High prevalence with ongoing need for safer long-term management.",
	},
	{
		ProblemID:     "feline-ckd",
		TargetSpecies: []string{"feline"},
		Condition:     "Chronic kidney disease",
		Keywords:      []string{"renal", "fibrosis", "glomerular"},
		Rationale:     "Progressive disease with limited disease-modifying options.",
	},
	{
		ProblemID:     "equine-laminitis",
		TargetSpecies: []string{"equine"},
		Condition:     "Laminitis",
		Keywords:      []string{"inflammation", "vascular", "metabolic"},
		Rationale:     "Severe outcomes; need for mechanism-based interventions.",
	},
}

// Default returns a fresh copy of the built-in problem briefs. Callers may
// not observe mutations from other runs.
func Default() []types.ProblemBrief {
	briefs := make([]types.ProblemBrief, len(defaultBriefs))
	copy(briefs, defaultBriefs)
	return briefs
}

// briefFile is the YAML shape of a custom problem-brief file.
type briefFile struct {
	Problems []types.ProblemBrief `yaml:"problems"`
}

// Load reads problem briefs from a YAML file. The file must contain at
// least one brief, and every brief needs a problem_id, a condition, and at
// least one target species.
func Load(path string) ([]types.ProblemBrief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem briefs: %w", err)
	}

	var file briefFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing problem briefs: %w", err)
	}
	if len(file.Problems) == 0 {
		return nil, fmt.Errorf("no problem briefs found in %s", path)
	}

	for i, brief := range file.Problems {
		if brief.ProblemID == "" {
			return nil, fmt.Errorf("brief %d: problem_id is required", i)
		}
		if brief.Condition == "" {
			return nil, fmt.Errorf("brief %q: condition is required", brief.ProblemID)
		}
		if len(brief.TargetSpecies) == 0 {
			return nil, fmt.Errorf("brief %q: at least one target species is required", brief.ProblemID)
		}
	}

	return file.Problems, nil
}
