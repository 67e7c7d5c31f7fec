package trigger

import (
	"math"
	"strings"
	"testing"

	"github.com/seenimoa/adlens/pkg/models"
)

func TestBelongingIsPrimary(t *testing.T) {
	res := New(nil, nil).Analyze("Join our community. Part of the family. Together. Belong with us.")
	if res.Primary != models.TriggerBelonging {
		t.Fatalf("Primary: got %s, want belonging (scores %v)", res.Primary, res.Scores)
	}
	if res.Scores[models.TriggerBelonging] != 10 {
		t.Errorf("belonging intensity: got %.2f, want capped 10", res.Scores[models.TriggerBelonging])
	}
	if !res.Has(models.TriggerBelonging) {
		t.Error("expected Has(belonging)")
	}
}

func TestNoTriggers(t *testing.T) {
	res := New(nil, nil).Analyze("A chair.")
	if res.Primary != models.TriggerNone {
		t.Errorf("Primary: got %s, want none", res.Primary)
	}
	if len(res.Detected) != 0 {
		t.Errorf("Detected: got %v, want empty", res.Detected)
	}
}

func TestKeywordThreshold(t *testing.T) {
	a := New(nil, nil)

	one := a.Analyze("Fresh.")
	if one.Scores[models.TriggerNovelty] != 0.5 {
		t.Errorf("novelty: got %.2f, want 0.5", one.Scores[models.TriggerNovelty])
	}
	if one.Has(models.TriggerNovelty) {
		t.Error("a single keyword should stay below the detection threshold")
	}

	two := a.Analyze("Fresh and modern.")
	if !two.Has(models.TriggerNovelty) {
		t.Errorf("two keywords should be detected, scores %v", two.Scores)
	}
}

func TestTieBreakByTriggerOrder(t *testing.T) {
	res := New(nil, nil).Analyze("Fresh, modern, safe, secure.")
	if len(res.Detected) != 2 {
		t.Fatalf("Detected: got %v, want 2 entries", res.Detected)
	}
	if res.Detected[0].Trigger != models.TriggerSecurity || res.Detected[1].Trigger != models.TriggerNovelty {
		t.Errorf("Detected order: got %v", res.Detected)
	}
}

func TestStrength(t *testing.T) {
	late := strings.Repeat("a", 100) + " new"
	tests := []struct {
		name       string
		text       string
		start, end int
		want       float64
	}{
		{"early phrase", "Join our club", 0, 8, 1.7},
		{"capped", "SINCE 1999!!", 0, 10, 2},
		{"late short", late, 101, 104, 1.15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strength(tt.text, tt.start, tt.end); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %.3f, want %.3f", got, tt.want)
			}
		})
	}
}

func TestIntensityBounds(t *testing.T) {
	text := strings.Repeat("Join our community together! ", 30)
	res := New(nil, nil).Analyze(text)
	for trig, s := range res.Scores {
		if s < 0 || s > 10 {
			t.Errorf("%s: %.2f out of range", trig, s)
		}
	}
	for i := 1; i < len(res.Detected); i++ {
		if res.Detected[i].Intensity > res.Detected[i-1].Intensity {
			t.Errorf("Detected not ranked: %v", res.Detected)
		}
	}
}
