package ids

import (
	"strings"
	"testing"
	"time"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Osteoarthritis", "osteoarthritis"},
		{"compound name", "Compound AX-17 (example)", "compound-ax-17-example"},
		{"run of separators", "a  --  b", "a-b"},
		{"leading and trailing", "--hello world--", "hello-world"},
		{"unicode collapses", "naïve café", "na-ve-caf"},
		{"empty", "", ""},
		{"only separators", "---!!!---", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugTruncates(t *testing.T) {
	long := strings.Repeat("abcde ", 20)
	got := Slug(long)
	if len(got) != 60 {
		t.Errorf("len(Slug(long)) = %d, want 60", len(got))
	}
}

func TestRunIDAt(t *testing.T) {
	stamp := time.Date(2026, 8, 29, 12, 4, 5, 123_000_000, time.UTC)
	got := RunIDAt(stamp)
	want := "repurpose-2026-08-29T12-04-05-123Z"
	if got != want {
		t.Errorf("RunIDAt() = %q, want %q", got, want)
	}
}

func TestSignalID(t *testing.T) {
	tests := []struct {
		name     string
		compound string
		cond     string
		index    int
		want     string
	}{
		{
			"example compound",
			"Compound AX-17 (example)", "Osteoarthritis", 0,
			"repurpose-compound-ax-17-example-osteoarthritis-01",
		},
		{
			"second index pads",
			"Compound RN-44 (example)", "Chronic kidney disease", 1,
			"repurpose-compound-rn-44-example-chronic-kidney-disease-02",
		},
		{
			"fallback when both slugs empty",
			"!!!", "???", 4,
			"repurpose-signal-4-05",
		},
		{
			"two digit padding",
			"x", "y", 9,
			"repurpose-x-y-10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignalID(tt.compound, tt.cond, tt.index); got != tt.want {
				t.Errorf("SignalID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSignalIDDeterministic(t *testing.T) {
	a := SignalID("Compound AX-17 (example)", "Osteoarthritis", 0)
	b := SignalID("Compound AX-17 (example)", "Osteoarthritis", 0)
	if a != b {
		t.Errorf("SignalID not deterministic: %q vs %q", a, b)
	}
}
