package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	applog "github.com/recmetrics/fairprep/internal/logger"

	"github.com/recmetrics/fairprep/internal/cleaning"
	"github.com/recmetrics/fairprep/internal/embedding"
	"github.com/recmetrics/fairprep/internal/filtering"
	"github.com/recmetrics/fairprep/internal/geo"
	"github.com/recmetrics/fairprep/internal/scoring"
	"github.com/recmetrics/fairprep/internal/secrets"
	"github.com/recmetrics/fairprep/internal/table"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

// defaultScoreColumns feed the overall score when scoring.score-columns is
// not set.
var defaultScoreColumns = []string{
	scoring.ColStudyTitleScore,
	scoring.ColExperienceScore,
	scoring.ColSalaryFitScore,
	scoring.ColStudyAreaScore,
	scoring.ColProfessionalScore,
	scoring.ColProfileSimilarityScore,
	scoring.ColProximityScore,
	scoring.ColOverallScaled,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the fairprep pipeline on a dataset",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before geocoding addresses")
	runCmd.Flags().StringP("output", "o", "", "path of the prepared csv. Overrides dataset.output.")

	viper.BindPFlag("dataset.output", runCmd.Flags().Lookup("output"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := applog.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	logger = applog.WithRunID(logger)

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the fairprep", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Dataset == nil || config.Dataset.Input == "" {
		logger.Fatal("input dataset path is required under dataset.input")
	}

	if config.Dataset.Output == "" {
		logger.Fatal("output path is required under dataset.output or the --output flag")
	}

	if config.Reconcile == nil || len(config.Reconcile.InvariantColumns) == 0 {
		logger.Fatal("identifier reconciliation needs reconcile.invariant-columns",
			zap.String("hint", "list the columns that must stay constant within one identifier"),
		)
	}

	events, err := table.Load(config.Dataset.Input)
	if err != nil {
		logger.Fatal("loading the dataset", zap.Error(err))
	}

	logger.Info("loaded the dataset",
		zap.String("path", config.Dataset.Input),
		zap.Int("rows", events.Len()),
		zap.Int("columns", len(events.Columns)),
	)

	if _, err := cleaning.SplitDuplicateIDs(events, config.Reconcile.InvariantColumns, logger); err != nil {
		logger.Fatal("reconciling identifiers", zap.Error(err))
	}

	filtered, err := prepareFilters(config, logger).RunFilters(ctx, events)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	events = filtered

	if events.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no rows left after filters"))
		return
	}

	embedder, err := newEmbedder(ctx, config.Embedding, logger)
	if err != nil {
		logger.Fatal("building the embedding provider", zap.Error(err))
	}

	geocoder := geo.NewCachedGeocoder(geo.NewNominatim(), logger)

	calculator, err := scoring.NewCalculator(scoringPolicy(config.Scoring), &scoring.Deps{
		Embedder: embedder,
		Geocoder: geocoder,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("building the score calculator", zap.Error(err))
	}
	defer calculator.Close()

	scoring.Attach(events, scoring.ColStudyTitleScore, calculator.EducationScores(events))
	scoring.Attach(events, scoring.ColExperienceScore, calculator.ExperienceScores(events))
	scoring.Attach(events, scoring.ColSalaryFitScore, calculator.SalaryScores(events))
	scoring.Attach(events, scoring.ColStudyAreaScore, calculator.StudyAreaScores(ctx, events))
	scoring.Attach(events, scoring.ColProfessionalScore, calculator.ProfessionalScores(ctx, events))
	scoring.Attach(events, scoring.ColProfileSimilarityScore, calculator.ProfileSimilarityScores(ctx, events))

	if geocodingApproved(cmd, config, events, logger) {
		distances, proximities := calculator.GeoScores(ctx, events)
		scoring.Attach(events, scoring.ColDistanceKm, distances)
		scoring.Attach(events, scoring.ColProximityScore, proximities)

		hits, misses := geocoder.Stats()
		logger.Info("geocoding done", zap.Int("cache_hits", hits), zap.Int("lookups", misses))
	}

	scoreColumns := []string{}
	if config.Scoring != nil {
		scoreColumns = config.Scoring.ScoreColumns
	}
	if len(scoreColumns) == 0 {
		scoreColumns = defaultScoreColumns
	}
	scoring.Attach(events, scoring.ColOverallScore, scoring.OverallScores(events, scoreColumns))

	if len(config.Dataset.KeepColumns) > 0 {
		events.KeepColumns(config.Dataset.KeepColumns)
	}

	if err := events.Write(config.Dataset.Output); err != nil {
		logger.Fatal("writing the prepared dataset", zap.Error(err))
	}

	logger.Info("wrote the prepared dataset",
		zap.String("path", config.Dataset.Output),
		zap.Int("rows", events.Len()),
		zap.Int("columns", len(events.Columns)),
	)
}

// geocodingApproved decides whether the geographic features run. The lookups
// are rate limited to roughly one per second, so on big datasets the user is
// told the expected duration and asked first.
func geocodingApproved(cmd *cobra.Command, config *Config, events *table.Table, logger *zap.Logger) bool {
	if config.Scoring != nil && config.Scoring.SkipGeocoding {
		logger.Info("skipping geographic features", zap.String("reason", "disabled in config"))
		return false
	}

	addresses := scoring.DistinctAddresses(events)
	if len(addresses) == 0 {
		logger.Info("skipping geographic features", zap.String("reason", "no residence addresses in the dataset"))
		return false
	}

	estimate := time.Duration(len(addresses)+1) * 1100 * time.Millisecond

	if cmd.Flag("auto-approve").Value.String() == "true" {
		logger.Info("geocoding addresses",
			zap.Int("count", len(addresses)),
			zap.Duration("estimated", estimate),
		)
		return true
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("Geocoding %d addresses takes about %s. Proceed?", len(addresses), estimate.Round(time.Second)),
		Items: []string{PromptYes, PromptNo},
	}

	_, action, err := prompt.Run()
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	if action != PromptYes {
		logger.Info("skipping geographic features", zap.String("reason", "got no from prompt"))
		return false
	}

	return true
}

func prepareFilters(config *Config, logger *zap.Logger) *filtering.Filtering {
	filters := config.Filters
	if filters == nil {
		filters = &FiltersConfig{}
	}

	earlyStage := filtering.NewEarlyStage()
	if filters.SkipEarlyStage {
		earlyStage.Disable("disabled in config")
	}

	outcome := filtering.NewOutcome(filters.Outcome)
	if filters.SkipOutcome {
		outcome.Disable("disabled in config")
	}

	return filtering.New([]filtering.Filter{earlyStage, outcome}, logger)
}

func scoringPolicy(config *ScoringConfig) scoring.Policy {
	if config == nil {
		return scoring.Policy{}
	}

	return scoring.Policy{
		HQAddress:         config.HQAddress,
		ExperienceMissing: scoring.ExperiencePolicy(strings.ToLower(strings.TrimSpace(config.ExperiencePolicy))),
		UseCurrentSalary:  config.UseCurrentSalary,
	}
}

func newEmbedder(ctx context.Context, config *EmbeddingConfig, logger *zap.Logger) (embedding.Embedder, error) {
	if config == nil {
		config = &EmbeddingConfig{}
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	switch provider {
	case "", "fastembed":
		model, err := embedding.NewFastEmbed(embedding.FastEmbedConfig{
			Model:    config.Model,
			CacheDir: config.CacheDir,
		})
		if err != nil {
			return nil, err
		}

		applog.WithEmbeddingFields(logger, "fastembed", model.Model()).
			Info("embedding provider ready")

		return model, nil
	case "gemini":
		if config.Gemini == nil || config.Gemini.APIKeyFile == "" {
			return nil, fmt.Errorf("gemini api key file is not configured (set embedding.gemini.api-key-file or GEMINI_API_KEY_FILE)")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: config.Gemini.APIKeyFile,
		})
		if err != nil {
			return nil, err
		}

		client, err := embedding.NewGemini(ctx, apiKey, config.Gemini.Model)
		if err != nil {
			return nil, err
		}

		applog.WithEmbeddingFields(logger, "gemini", client.Model()).
			Info("embedding provider ready")

		return client, nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", config.Provider)
	}
}
