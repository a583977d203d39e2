// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ids builds the deterministic identifiers used across the
// pipeline: URL-safe slugs, run IDs, and signal IDs.
package ids

import (
	"fmt"
	"strings"
	"time"
)

const maxSlugLen = 60

// Slug lowercases value, replaces every run of non-alphanumeric characters
// with a single hyphen, trims leading and trailing hyphens, and truncates
// the result to 60 characters.
func Slug(value string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(value) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	return s
}

// RunID generates a fresh run identifier from the current UTC time, e.g.
// "repurpose-2026-08-29T12-04-05-123Z".
func RunID() string {
	return RunIDAt(time.Now().UTC())
}

// RunIDAt builds the run identifier for a specific time.
func RunIDAt(t time.Time) string {
	stamp := t.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return "repurpose-" + stamp
}

// SignalID builds the deterministic signal identifier for a candidate:
// "repurpose-<slug(compound)>-<slug(condition)>-<NN>" where NN is the
// zero-padded candidate index plus one. When both slugs are empty the base
// falls back to "signal-<index>".
func SignalID(compound, condition string, index int) string {
	compoundSlug := Slug(compound)
	conditionSlug := Slug(condition)
	base := compoundSlug + "-" + conditionSlug
	if compoundSlug == "" && conditionSlug == "" {
		base = fmt.Sprintf("signal-%d", index)
	}
	return fmt.Sprintf("repurpose-%s-%02d", base, index+1)
}
