// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evidence

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// LoadProvider reads knowledge tables from a YAML file and returns a
// provider backed by them. The file mirrors the built-in table shapes:
//
//	candidates:
//	  Osteoarthritis:
//	    - compound: ...
//	      original_indication: ...
//	failures:
//	  "Compound AX-17 (example)":
//	    failure_type: efficacy
//	    ...
//	rationales: { <compound>: { <species>: [...] } }
//	vet_evidence: { <compound>: { <species>: {...} } }
//	risks: { <compound>: { <species>: {...} } }
//
// Missing tables are allowed; lookups against them are ordinary misses.
func LoadProvider(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge file: %w", err)
	}

	var t tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing knowledge file: %w", err)
	}

	if len(t.Candidates) == 0 && len(t.Failures) == 0 && len(t.Rationales) == 0 &&
		len(t.VetEvidence) == 0 && len(t.Risks) == 0 {
		return nil, fmt.Errorf("knowledge file %s contains no tables", path)
	}

	return &StaticProvider{t: t}, nil
}
