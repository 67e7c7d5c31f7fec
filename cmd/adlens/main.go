// adlens profiles the psychology and persuasion of advertising copy.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seenimoa/adlens/api"
	"github.com/seenimoa/adlens/internal/adsource"
	"github.com/seenimoa/adlens/internal/config"
	"github.com/seenimoa/adlens/internal/engine"
	"github.com/seenimoa/adlens/internal/infra"
	"github.com/seenimoa/adlens/internal/logging"
	"github.com/seenimoa/adlens/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger
var (
	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adlens",
	Short: "adlens: psychological profiling of ad copy",
	Long: `adlens profiles advertising copy along six dimensions: emotion,
persuasion, tone, framing, psychological triggers and market positioning.
It derives strategic insights per ad and summarizes a competitor's
messaging across many ads.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}

		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		logger, err = logging.New(cfg.Logging)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("format", formatText, "output format (text, json, yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(adsCmd)
	rootCmd.AddCommand(competitorCmd)
	rootCmd.AddCommand(lexiconCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// newEngine builds the engine from the loaded config.
func newEngine() *engine.Engine {
	return engine.New(
		engine.WithLogger(logger),
		engine.WithMinTextRunes(cfg.Engine.MinTextRunes),
		engine.WithMaxInputRunes(cfg.Engine.MaxInputRunes),
		engine.WithWorkers(cfg.Engine.Workers),
	)
}

func outputFormat(cmd *cobra.Command) string {
	f, _ := cmd.Flags().GetString("format")
	return f
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "adlens %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
		fmt.Fprintf(out, "  engine:  %s\n", engine.Version)
		fmt.Fprintf(out, "  lexicon: %s\n", newEngine().LexiconVersion())
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze a single piece of ad copy",
	Long: `Analyze one piece of ad copy given as arguments, read from a file or
read from standard input.

Examples:
  adlens analyze "Only 3 left! Order now."
  adlens analyze --file copy.txt --format json
  cat copy.txt | adlens analyze --stdin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		rec := newEngine().Analyze(text)
		return writeOutput(cmd.OutOrStdout(), outputFormat(cmd), rec, func() string {
			return renderRecord(rec)
		})
	},
}

func init() {
	analyzeCmd.Flags().String("file", "", "read the ad copy from a text file")
	analyzeCmd.Flags().Bool("stdin", false, "read the ad copy from standard input")
}

// readText picks the text source: --file, --stdin or the arguments.
func readText(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	stdin, _ := cmd.Flags().GetBool("stdin")

	switch {
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(b), nil
	case stdin:
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	return "", errors.New("provide ad copy as arguments, --file or --stdin")
}

// --- Ads Command ---

var adsCmd = &cobra.Command{
	Use:   "ads",
	Short: "Analyze every ad in a file or feed",
	Long: `Analyze every ad loaded from a JSON, YAML or CSV file, or from an
RSS/Atom feed. Records are printed in input order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ads, err := loadAds(cmd)
		if err != nil {
			return err
		}
		records, err := newEngine().AnalyzeMany(cmd.Context(), ads)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat(cmd), records, func() string {
			parts := make([]string, len(records))
			for i, rec := range records {
				parts[i] = renderRecord(rec)
			}
			return strings.Join(parts, "\n")
		})
	},
}

// --- Competitor Command ---

var competitorCmd = &cobra.Command{
	Use:   "competitor NAME",
	Short: "Summarize a competitor's messaging across its ads",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ads, err := loadAds(cmd)
		if err != nil {
			return err
		}
		result, err := newEngine().AnalyzeCompetitor(cmd.Context(), args[0], ads)
		if err != nil {
			return err
		}

		var data interface{} = result
		if only, _ := cmd.Flags().GetBool("summary-only"); only {
			data = result.Summary
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat(cmd), data, func() string {
			return renderSummary(result.Summary)
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{adsCmd, competitorCmd} {
		c.Flags().String("file", "", "ads file (.json, .yaml, .yml, .csv)")
		c.Flags().String("feed", "", "RSS or Atom feed URL")
		c.MarkFlagsMutuallyExclusive("file", "feed")
		c.MarkFlagsOneRequired("file", "feed")
	}
	competitorCmd.Flags().Bool("summary-only", false, "omit per-ad records from json/yaml output")
}

func loadAds(cmd *cobra.Command) ([]models.Ad, error) {
	file, _ := cmd.Flags().GetString("file")
	feed, _ := cmd.Flags().GetString("feed")

	var (
		ads []models.Ad
		err error
	)
	if file != "" {
		ads, err = adsource.LoadFile(file)
	} else {
		reader := adsource.NewFeedReader(infra.NewLimiter(0, 1), logger)
		ads, err = reader.ParseFeed(cmd.Context(), feed)
	}
	if err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(ads, func(ad models.Ad) bool { return ad.Text() != "" }) {
		return nil, errors.New("no ads with text found")
	}
	logger.Debug("ads loaded", zap.Int("count", len(ads)))
	return ads, nil
}

// --- Lexicon Command ---

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Show the lexicon version and table sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine()
		info := api.LexiconInfo{
			Version:       eng.LexiconVersion(),
			EngineVersion: engine.Version,
			Tables:        eng.Lexicon().Stats(),
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat(cmd), info, func() string {
			return renderLexicon(info)
		})
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.API.Port = port
		}
		srv := api.NewServer(cfg, newEngine(), logger)
		return srv.ListenAndServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port override")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and where each setting came from",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Describe(cfg)
		sort.SliceStable(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
		return writeOutput(cmd.OutOrStdout(), outputFormat(cmd), settings, func() string {
			return renderStatus(settings)
		})
	},
}
