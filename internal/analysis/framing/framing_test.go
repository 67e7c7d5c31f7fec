package framing

import (
	"testing"

	"github.com/seenimoa/adlens/pkg/models"
)

func TestFrames(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantFrame   models.Frame
		wantStyle   models.FramingStyle
		wantBalance float64
	}{
		{
			name:        "gain framed",
			text:        "Save more, earn rewards and unlock the benefits. Discover new possibilities.",
			wantFrame:   models.FramePositive,
			wantStyle:   models.StyleGain,
			wantBalance: 1,
		},
		{
			name:        "risk framed",
			text:        "Don't lose your savings. Avoid the risk of costly mistakes. Beware hidden danger.",
			wantFrame:   models.FrameNegative,
			wantStyle:   models.StyleRisk,
			wantBalance: -1,
		},
		{
			name:        "even split",
			text:        "Gain and lose.",
			wantFrame:   models.FrameBalanced,
			wantStyle:   models.StyleGain,
			wantBalance: 0,
		},
		{
			name:        "no framing",
			text:        "A chair.",
			wantFrame:   models.FrameBalanced,
			wantStyle:   models.StyleNone,
			wantBalance: 0,
		},
	}

	a := New(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.Analyze(tt.text)
			if res.PrimaryFrame != tt.wantFrame {
				t.Errorf("PrimaryFrame: got %s, want %s", res.PrimaryFrame, tt.wantFrame)
			}
			if res.Style != tt.wantStyle {
				t.Errorf("Style: got %s, want %s (counts %v)", res.Style, tt.wantStyle, res.StyleCounts)
			}
			if res.Balance != tt.wantBalance {
				t.Errorf("Balance: got %.3f, want %.3f", res.Balance, tt.wantBalance)
			}
		})
	}
}

func TestTimeOrientation(t *testing.T) {
	tests := []struct {
		text string
		want models.TimeOrientation
	}{
		{"Tomorrow will be the future, coming soon.", models.TimeFuture},
		{"Since 1952, heritage and classic recipes.", models.TimePast},
		{"Today and tomorrow.", models.TimePresent},
		{"Shop now.", models.TimePresent},
		{"A chair.", models.TimePresent},
	}
	a := New(nil, nil)
	for _, tt := range tests {
		if got := a.Analyze(tt.text).TimeOrientation; got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestFocus(t *testing.T) {
	tests := []struct {
		text string
		want models.Focus
	}{
		{"Tired of the hassle and stress? Problem after problem.", models.FocusProblem},
		{"Finally an easy, simple fix that works.", models.FocusSolution},
		{"One problem, one fix.", models.FocusBalanced},
		{"A chair.", models.FocusBalanced},
	}
	a := New(nil, nil)
	for _, tt := range tests {
		if got := a.Analyze(tt.text).Focus; got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestSignalTotals(t *testing.T) {
	res := New(nil, nil).Analyze("Win big, avoid loss, explore more and never again overpay.")
	sum := 0
	for _, s := range models.FramingStyles {
		sum += res.StyleCounts[s]
	}
	if sum != res.PositiveSignals+res.NegativeSignals {
		t.Errorf("style counts %d != positive %d + negative %d", sum, res.PositiveSignals, res.NegativeSignals)
	}
	if len(res.Signals) != sum {
		t.Errorf("signals: got %d, want %d", len(res.Signals), sum)
	}
	if res.Balance < -1 || res.Balance > 1 {
		t.Errorf("balance %.3f out of range", res.Balance)
	}
}
