// Package engine orchestrates the six dimension analyzers, derives the
// overall sentiment and attaches insights and metadata to each record.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/adlens/internal/analysis/emotion"
	"github.com/seenimoa/adlens/internal/analysis/framing"
	"github.com/seenimoa/adlens/internal/analysis/persuasion"
	"github.com/seenimoa/adlens/internal/analysis/positioning"
	"github.com/seenimoa/adlens/internal/analysis/tone"
	"github.com/seenimoa/adlens/internal/analysis/trigger"
	"github.com/seenimoa/adlens/internal/insights"
	"github.com/seenimoa/adlens/internal/lexicon"
	"github.com/seenimoa/adlens/internal/summary"
	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

// Version is the engine version stamped on every record.
const Version = "1.0.0"

// Defaults used when no option overrides them.
const (
	DefaultMinTextRunes  = 10
	DefaultMaxInputRunes = 20000
)

const (
	sentimentThreshold = 0.15
	frameAdjustment    = 0.1
	baseConfidence     = 0.3
	confidenceSpan     = 0.7
)

// Engine runs full analyses. It is safe for concurrent use.
type Engine struct {
	lex           *lexicon.Lexicon
	log           *zap.Logger
	now           func() time.Time
	minTextRunes  int
	maxInputRunes int
	workers       int

	emotion     *emotion.Analyzer
	persuasion  *persuasion.Analyzer
	tone        *tone.Analyzer
	framing     *framing.Analyzer
	trigger     *trigger.Analyzer
	positioning *positioning.Analyzer
	summary     *summary.Aggregator
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger passed to every analyzer.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithLexicon replaces the process-wide default lexicon.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(e *Engine) {
		if lex != nil {
			e.lex = lex
		}
	}
}

// WithMinTextRunes sets the length below which text gets the baseline result.
func WithMinTextRunes(n int) Option {
	return func(e *Engine) { e.minTextRunes = n }
}

// WithMaxInputRunes sets the length at which input is truncated.
func WithMaxInputRunes(n int) Option {
	return func(e *Engine) { e.maxInputRunes = n }
}

// WithWorkers bounds the concurrency of AnalyzeMany.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithClock sets the time source for AnalyzedAt and ElapsedMs.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		lex:           lexicon.Default(),
		log:           zap.NewNop(),
		now:           time.Now,
		minTextRunes:  DefaultMinTextRunes,
		maxInputRunes: DefaultMaxInputRunes,
		workers:       runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.emotion = emotion.New(e.lex, e.log)
	e.persuasion = persuasion.New(e.lex, e.log)
	e.tone = tone.New(e.lex, e.log)
	e.framing = framing.New(e.lex, e.log)
	e.trigger = trigger.New(e.lex, e.log)
	e.positioning = positioning.New(e.lex, e.log)
	e.summary = summary.New(e.lex, e.log)
	return e
}

// LexiconVersion returns the version of the tables the engine scores against.
func (e *Engine) LexiconVersion() string { return e.lex.Version }

// Lexicon returns the tables the engine scores against.
func (e *Engine) Lexicon() *lexicon.Lexicon { return e.lex }

// Analyze runs all six analyzers over text. It never fails: text shorter
// than the minimum length gets a fixed baseline record.
func (e *Engine) Analyze(text string) models.AnalysisRecord {
	start := e.now()
	text, truncated := utils.Truncate(text, e.maxInputRunes)

	rec := models.AnalysisRecord{
		Text:       text,
		AnalyzedAt: start.UTC(),
	}

	if utils.RuneLen(strings.TrimSpace(text)) < e.minTextRunes {
		rec.Dimensions = baseline()
		rec.Overall = models.OverallSentiment{Sentiment: models.SentimentNeutral}
		rec.Insights = insights.ShortText()
	} else {
		rec.Dimensions = models.Dimensions{
			Emotions:    e.emotion.Analyze(text),
			Persuasion:  e.persuasion.Analyze(text),
			Tone:        e.tone.Analyze(text),
			Framing:     e.framing.Analyze(text),
			Triggers:    e.trigger.Analyze(text),
			Positioning: e.positioning.Analyze(text),
		}
		rec.Overall = overall(rec.Emotions, rec.Framing)
		rec.Insights = insights.Generate(rec.Dimensions)
	}

	rec.Metadata = models.AnalysisMetadata{
		WordCount:      utils.WordCount(text),
		SentenceCount:  len(utils.Sentences(text)),
		EngineVersion:  Version,
		LexiconVersion: e.lex.Version,
		ElapsedMs:      float64(e.now().Sub(start).Microseconds()) / 1000,
		Truncated:      truncated,
	}

	e.log.Debug("text analyzed",
		zap.Int("words", rec.Metadata.WordCount),
		zap.String("sentiment", string(rec.Overall.Sentiment)),
		zap.Float64("elapsed_ms", rec.Metadata.ElapsedMs))
	return rec
}

// AnalyzeAd analyzes the joined text fields of ad and tags the record with
// the ad's ID.
func (e *Engine) AnalyzeAd(ad models.Ad) models.AnalysisRecord {
	rec := e.Analyze(ad.Text())
	rec.AdID = ad.ID
	return rec
}

// AnalyzeMany analyzes ads concurrently. Records are returned in input
// order. If ctx is cancelled the context error is returned.
func (e *Engine) AnalyzeMany(ctx context.Context, ads []models.Ad) ([]models.AnalysisRecord, error) {
	records := make([]models.AnalysisRecord, len(ads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, ad := range ads {
		if gctx.Err() != nil {
			break
		}
		i, ad := i, ad
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = e.AnalyzeAd(ad)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyzing %d ads: %w", len(ads), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyzing %d ads: %w", len(ads), err)
	}
	return records, nil
}

// AnalyzeCompetitor analyzes every ad of a competitor and summarizes them.
func (e *Engine) AnalyzeCompetitor(ctx context.Context, name string, ads []models.Ad) (*models.CompetitorAnalysis, error) {
	records, err := e.AnalyzeMany(ctx, ads)
	if err != nil {
		return nil, fmt.Errorf("competitor %q: %w", name, err)
	}
	e.log.Info("competitor analyzed", zap.String("competitor", name), zap.Int("ads", len(records)))
	return &models.CompetitorAnalysis{
		Records: records,
		Summary: e.summary.Summarize(name, records),
	}, nil
}

// Summarize aggregates existing records without re-analyzing them.
func (e *Engine) Summarize(name string, records []models.AnalysisRecord) models.CompetitorSummary {
	return e.summary.Summarize(name, records)
}

// overall derives sentiment from the emotion shares, nudged by the frame.
func overall(em models.EmotionResult, fr models.FramingResult) models.OverallSentiment {
	score := 0.0
	for _, e := range models.PositiveEmotions {
		score += em.Breakdown[e]
	}
	for _, e := range models.NegativeEmotions {
		score -= em.Breakdown[e]
	}
	switch fr.PrimaryFrame {
	case models.FramePositive:
		score += frameAdjustment
	case models.FrameNegative:
		score -= frameAdjustment
	}
	score = utils.Round(utils.Clamp(score, -1, 1), 3)

	label := models.SentimentNeutral
	switch {
	case score > sentimentThreshold:
		label = models.SentimentPositive
	case score < -sentimentThreshold:
		label = models.SentimentNegative
	}

	conf := baseConfidence + confidenceSpan*(em.IntensityScore-1)/9
	return models.OverallSentiment{
		Sentiment:  label,
		Score:      score,
		Confidence: models.Confidence(utils.Round(utils.Clamp(conf, 0, 1), 3)),
	}
}
