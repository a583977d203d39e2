// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package connectors

import (
	"strings"

	"github.com/burrows3/AnimalMind/pkg/types"
)

// knownSpecies maps colloquial species names to their canonical form.
var knownSpecies = map[string]string{
	"dog":    "canine",
	"dogs":   "canine",
	"canine": "canine",
	"cat":    "feline",
	"cats":   "feline",
	"feline": "feline",
	"horse":  "equine",
	"horses": "equine",
	"equine": "equine",
	"bovine": "bovine",
	"cattle": "bovine",
}

// NormalizeSpecies canonicalizes a species name. Unknown names pass
// through unchanged.
func NormalizeSpecies(value string) string {
	if value == "" {
		return value
	}
	if canonical, ok := knownSpecies[strings.ToLower(value)]; ok {
		return canonical
	}
	return value
}

// normalizeList applies the normalizer to each entry, drops empties, and
// removes duplicates while preserving first-seen order.
func normalizeList(list []string, normalize func(string) string) []string {
	seen := make(map[string]struct{}, len(list))
	out := []string{}
	for _, v := range list {
		n := normalize(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func identity(v string) string { return v }

// NormalizeDocument canonicalizes a document's entity lists: species names
// are mapped to canonical forms and every list is deduplicated with empty
// entries removed. All other fields pass through unchanged.
func NormalizeDocument(doc types.Document) types.Document {
	doc.Entities = types.DocumentEntities{
		Drugs:      normalizeList(doc.Entities.Drugs, identity),
		Species:    normalizeList(doc.Entities.Species, NormalizeSpecies),
		Conditions: normalizeList(doc.Entities.Conditions, identity),
		Mechanisms: normalizeList(doc.Entities.Mechanisms, identity),
	}
	return doc
}
