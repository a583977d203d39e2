// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/burrows3/AnimalMind/internal/evidence"
	"github.com/burrows3/AnimalMind/internal/priorart"
	"github.com/burrows3/AnimalMind/internal/problems"
	"github.com/burrows3/AnimalMind/pkg/types"
)

const testRunID = "repurpose-2026-08-29T10-00-00-000Z"

func newTestEngine(scout priorart.Scout) *Engine {
	e := New(evidence.NewStaticProvider(), scout)
	e.Synthesizer.Now = func() time.Time {
		return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	}
	return e
}

func TestRunDefaultBriefs(t *testing.T) {
	var buf bytes.Buffer
	signals, err := newTestEngine(nil).Run(context.Background(), problems.Default(), testRunID, &buf)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(signals) != 3 {
		t.Fatalf("len(signals) = %d, want 3", len(signals))
	}

	// Output order follows candidate index regardless of goroutine
	// completion order.
	wantIDs := []string{
		"repurpose-compound-ax-17-example-osteoarthritis-01",
		"repurpose-compound-rn-44-example-chronic-kidney-disease-02",
		"repurpose-compound-lm-12-example-laminitis-03",
	}
	for i, s := range signals {
		if s.SignalID != wantIDs[i] {
			t.Errorf("signals[%d].SignalID = %q, want %q", i, s.SignalID, wantIDs[i])
		}
		if s.Disclaimer != types.Disclaimer {
			t.Errorf("signals[%d] missing disclaimer", i)
		}
	}

	log := buf.String()
	if !strings.Contains(log, "analyzing 3 candidate(s) from 3 brief(s)") {
		t.Errorf("progress log missing candidate count: %q", log)
	}
	for _, id := range wantIDs {
		if !strings.Contains(log, "synthesized "+id) {
			t.Errorf("progress log missing %q", id)
		}
	}
}

func TestRunDeterministicAcrossRuns(t *testing.T) {
	engine := newTestEngine(nil)
	ctx := context.Background()

	first, err := engine.Run(ctx, problems.Default(), testRunID, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := engine.Run(ctx, problems.Default(), testRunID, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different signal sets")
	}
}

func TestRunUnknownConditions(t *testing.T) {
	briefs := []types.ProblemBrief{
		{ProblemID: "bovine-mastitis", TargetSpecies: []string{"bovine"}, Condition: "Mastitis"},
	}
	signals, err := newTestEngine(nil).Run(context.Background(), briefs, testRunID, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(signals) != 0 {
		t.Errorf("len(signals) = %d, want 0", len(signals))
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestEngine(nil).Run(ctx, problems.Default(), testRunID, &bytes.Buffer{}); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestRunWithPriorArt(t *testing.T) {
	signals, err := newTestEngine(priorart.Stub{}).Run(context.Background(), problems.Default(), testRunID, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, s := range signals {
		if s.PriorArt == nil {
			t.Errorf("%s: PriorArt is nil, want stub assessment", s.SignalID)
			continue
		}
		if s.PriorArt.SignalID != s.SignalID {
			t.Errorf("%s: PriorArt.SignalID = %q", s.SignalID, s.PriorArt.SignalID)
		}
	}
}
