package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/seenimoa/adlens/api"
	"github.com/seenimoa/adlens/internal/config"
	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	primary = lipgloss.Color("#7D56F4")
	muted   = lipgloss.Color("#6C6C6C")

	titleStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(16)

	bodyStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// writeOutput encodes v as json or yaml, or writes the text rendering.
func writeOutput(w io.Writer, format string, v interface{}, text func() string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case formatText, "":
		_, err := fmt.Fprintln(w, text())
		return err
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

func kv(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func section(title string, lines ...string) string {
	return sectionStyle.Render(title) + "\n" + bodyStyle.Render(strings.Join(lines, "\n"))
}

func bullets(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = "• " + s
	}
	return strings.Join(out, "\n")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func list[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return orNone(strings.Join(parts, ", "))
}

func renderRecord(rec models.AnalysisRecord) string {
	title := "Ad analysis"
	if rec.AdID != "" {
		title += " · " + rec.AdID
	}

	techniques := make([]string, len(rec.Persuasion.Techniques))
	for i, ts := range rec.Persuasion.Techniques {
		techniques[i] = fmt.Sprintf("%s ×%d", ts.Technique.Label(), ts.Count)
	}
	triggers := make([]string, len(rec.Triggers.Detected))
	for i, d := range rec.Triggers.Detected {
		triggers[i] = fmt.Sprintf("%s (%s)", d.Trigger.Label(), utils.FormatScore(d.Intensity))
	}

	parts := []string{
		titleStyle.Render(title),
		section("Overall",
			kv("Sentiment", fmt.Sprintf("%s (%+.2f)", rec.Overall.Sentiment, rec.Overall.Score)),
			kv("Confidence", utils.FormatPct(float64(rec.Overall.Confidence))),
		),
		section("Emotion",
			kv("Primary", string(rec.Emotions.Primary)),
			kv("Secondary", list(rec.Emotions.Secondary)),
			kv("Intensity", utils.FormatScore(rec.Emotions.IntensityScore)),
			kv("Arc", rec.Emotions.Arc.Label()),
		),
		section("Persuasion",
			kv("Primary", rec.Persuasion.Primary.Label()),
			kv("Techniques", orNone(strings.Join(techniques, ", "))),
			kv("Pressure", fmt.Sprintf("%s (%s)", utils.FormatScore(rec.Persuasion.PressureScore), rec.Persuasion.Intensity)),
		),
		section("Tone",
			kv("Formality", fmt.Sprintf("%s (%s)", rec.Tone.Formality, utils.FormatScore(rec.Tone.FormalityScore))),
			kv("Personality", list(rec.Tone.Personality.Detected)),
			kv("Voice", rec.Tone.VoiceSummary),
		),
		section("Framing",
			kv("Frame", string(rec.Framing.PrimaryFrame)),
			kv("Style", string(rec.Framing.Style)),
			kv("Time", string(rec.Framing.TimeOrientation)),
			kv("Focus", string(rec.Framing.Focus)),
		),
		section("Triggers",
			kv("Primary", rec.Triggers.Primary.Label()),
			kv("Detected", orNone(strings.Join(triggers, ", "))),
		),
		section("Positioning",
			kv("Position", string(rec.Positioning.MarketPosition)),
			kv("Stance", string(rec.Positioning.Aggressiveness)),
			kv("Score", utils.FormatScore(rec.Positioning.PositioningScore)),
		),
		section("Strategy",
			rec.Insights.EmotionalStrategy,
			rec.Insights.PersuasionApproach,
			rec.Insights.BrandVoice,
			rec.Insights.CompetitivePosture,
		),
		section("Strengths", bullets(rec.Insights.Strengths)),
		section("Weaknesses", bullets(rec.Insights.Weaknesses)),
		section("Recommendations", bullets(rec.Insights.Recommendations)),
	}
	if rec.Metadata.Truncated {
		parts = append(parts, lipgloss.NewStyle().Foreground(muted).Render("input truncated"))
	}
	return strings.Join(parts, "\n")
}

func gapLines(gaps ...[]models.Gap) []string {
	var out []string
	for _, gs := range gaps {
		for _, g := range gs {
			out = append(out, g.Description)
		}
	}
	return out
}

func renderSummary(s models.CompetitorSummary) string {
	traits := list(s.Voice.TopTraits)
	return strings.Join([]string{
		titleStyle.Render(fmt.Sprintf("Competitor · %s (%d ads)", s.Competitor, s.AdsAnalyzed)),
		section("Profile",
			kv("Emotion", fmt.Sprintf("%s, consistency %s", s.Emotional.Dominant, utils.FormatPct(s.Emotional.Consistency))),
			kv("Persuasion", s.Persuasion.Style),
			kv("Trigger", s.Triggers.Dominant.Label()),
			kv("Voice", fmt.Sprintf("%s, %s", s.Voice.DominantFormality, traits)),
			kv("Framing", fmt.Sprintf("%s / %s / %s", s.Framing.DominantFrame, s.Framing.DominantStyle, s.Framing.DominantTimeOrientation)),
			kv("Posture", fmt.Sprintf("%s %s, score %s", s.Posture.DominantAggressiveness, s.Posture.DominantPosition, utils.FormatScore(s.Posture.AverageScore))),
			kv("Threat", string(s.Posture.ThreatLevel)),
		),
		section("Opportunities", bullets(gapLines(
			s.Opportunities.EmotionalGaps,
			s.Opportunities.TechniqueGaps,
			s.Opportunities.TriggerGaps,
			s.Opportunities.VoiceGaps,
		))),
		section("Recommendations", bullets(s.Recommendations)),
		section("Top insights", bullets(s.TopInsights)),
	}, "\n")
}

func renderLexicon(info api.LexiconInfo) string {
	names := make([]string, 0, len(info.Tables))
	for name := range info.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%-24s %d", name, info.Tables[name])
	}
	return strings.Join([]string{
		titleStyle.Render("Lexicon " + info.Version),
		kv("Engine", info.EngineVersion),
		section("Tables", lines...),
	}, "\n")
}

func renderStatus(settings []config.SettingStatus) string {
	lines := make([]string, len(settings))
	for i, s := range settings {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(28).Render(s.Key),
			lipgloss.NewStyle().Width(24).Render(s.Value),
			lipgloss.NewStyle().Foreground(muted).Render(string(s.Source)))
	}
	return strings.Join([]string{
		titleStyle.Render(fmt.Sprintf("adlens %s (%s)", version, commit)),
		section("Configuration", lines...),
	}, "\n")
}
