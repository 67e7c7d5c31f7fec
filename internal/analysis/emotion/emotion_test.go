package emotion

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/seenimoa/adlens/pkg/models"
)

func newTestAnalyzer() *Analyzer {
	return New(nil, nil)
}

func TestPrimaryTrust(t *testing.T) {
	res := newTestAnalyzer().Analyze("Guaranteed results. Proven. Certified experts. Trusted by millions.")
	if res.Primary != models.EmotionTrust {
		t.Errorf("Primary: got %s, want trust", res.Primary)
	}
	if res.Scores[models.EmotionTrust] <= 0 {
		t.Errorf("expected positive trust score, got %.2f", res.Scores[models.EmotionTrust])
	}
	if res.Polarity != models.PolarityPositive {
		t.Errorf("Polarity: got %s, want positive", res.Polarity)
	}
}

func TestIntensityShoutedVersusCalm(t *testing.T) {
	a := newTestAnalyzer()
	loud := a.Analyze("AMAZING!!! INCREDIBLE!!! FANTASTIC!!! WOW!!!")
	calm := a.Analyze("Nice product. Good quality.")
	if loud.IntensityScore <= calm.IntensityScore {
		t.Errorf("expected loud intensity %.1f > calm intensity %.1f", loud.IntensityScore, calm.IntensityScore)
	}
	if loud.IntensityScore != 10 {
		t.Errorf("expected capped intensity 10, got %.1f", loud.IntensityScore)
	}
}

func TestEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "!!!", "12345"} {
		res := newTestAnalyzer().Analyze(text)
		if res.Primary != models.EmotionNeutral {
			t.Errorf("%q: Primary got %s, want neutral", text, res.Primary)
		}
		if res.Arc != models.ArcFlat {
			t.Errorf("%q: Arc got %s, want flat", text, res.Arc)
		}
		if res.Polarity != models.PolarityNeutral {
			t.Errorf("%q: Polarity got %s, want neutral", text, res.Polarity)
		}
		if res.IntensityScore < 1 || res.IntensityScore > 10 {
			t.Errorf("%q: intensity %.1f out of range", text, res.IntensityScore)
		}
		if len(res.Secondary) != 0 {
			t.Errorf("%q: expected no secondary emotions, got %v", text, res.Secondary)
		}
	}
}

func TestModifiersScaleAllScores(t *testing.T) {
	a := newTestAnalyzer()
	plain := a.Analyze("This is good")
	amplified := a.Analyze("This is very good")
	toned := a.Analyze("This is somewhat good")

	base := plain.Scores[models.EmotionJoy]
	if got := amplified.Scores[models.EmotionJoy]; math.Abs(got-base*1.3) > 0.01 {
		t.Errorf("amplified joy: got %.2f, want %.2f", got, base*1.3)
	}
	if got := toned.Scores[models.EmotionJoy]; math.Abs(got-base*0.7) > 0.01 {
		t.Errorf("downtoned joy: got %.2f, want %.2f", got, base*0.7)
	}
}

func TestArcDetection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.EmotionalArc
	}{
		{
			name: "fear to trust",
			text: "Worried about danger and risk? Scary threats everywhere. Our guaranteed, proven and certified protection. Trusted and reliable.",
			want: models.ArcFearTrust,
		},
		{
			name: "problem to solution",
			text: "Frustrated and fed up with the hassle? Tired of it. Finally a happy, amazing fix you will love.",
			want: models.ArcProblemSolution,
		},
		{
			name: "single sentence",
			text: "Amazing, wonderful, fantastic deals for everyone",
			want: models.ArcFlat,
		},
		{
			name: "no emotion",
			text: "Open Monday to Friday. Located downtown.",
			want: models.ArcFlat,
		},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Analyze(tt.text).Arc; got != tt.want {
				t.Errorf("Arc: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPolarity(t *testing.T) {
	a := newTestAnalyzer()
	if got := a.Analyze("Terrible, disgusting, awful stuff.").Polarity; got != models.PolarityNegative {
		t.Errorf("negative text: got %s", got)
	}
	if got := a.Analyze("Happy and sad at once.").Polarity; got != models.PolarityMixed {
		t.Errorf("mixed text: got %s", got)
	}
}

func TestSecondaryEmotions(t *testing.T) {
	res := newTestAnalyzer().Analyze("Amazing wow trusted secure coming soon, scary too")
	if len(res.Secondary) > 2 {
		t.Fatalf("expected at most 2 secondary emotions, got %v", res.Secondary)
	}
	for _, e := range res.Secondary {
		if e == res.Primary {
			t.Errorf("secondary contains primary %s", e)
		}
		if res.Scores[e] <= 0 {
			t.Errorf("secondary %s has non-positive score", e)
		}
	}
}

func TestCurlyApostropheMatches(t *testing.T) {
	res := newTestAnalyzer().Analyze("We can’t wait to show you")
	if res.Scores[models.EmotionAnticipation] < 3 {
		t.Errorf("expected strong anticipation from curly apostrophe, got %.2f", res.Scores[models.EmotionAnticipation])
	}
}

func TestBreakdownSumsToOne(t *testing.T) {
	inputs := []string{
		"Amazing deals you will love, guaranteed!",
		"Don't risk it. Terrible, dangerous, scary.",
		"Plain text about opening hours",
		strings.Repeat("WOW! ", 200),
	}
	for _, text := range inputs {
		res := newTestAnalyzer().Analyze(text)
		total := 0.0
		for _, e := range models.Emotions {
			total += res.Breakdown[e]
		}
		if total != 0 && math.Abs(total-1) > 0.001 {
			t.Errorf("%q: breakdown sums to %.4f", text, total)
		}
		if res.IntensityScore < 1 || res.IntensityScore > 10 {
			t.Errorf("%q: intensity %.1f out of range", text, res.IntensityScore)
		}
		if !res.Primary.Valid() {
			t.Errorf("%q: invalid primary %q", text, res.Primary)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := newTestAnalyzer()
	text := "Hurry! Amazing, trusted, and scary-good deals. Can't wait? Neither can we."
	if !reflect.DeepEqual(a.Analyze(text), a.Analyze(text)) {
		t.Error("expected identical results for identical input")
	}
}
