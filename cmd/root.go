package cmd

import (
	"log"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/recmetrics/fairprep/internal/filtering"
)

const (
	app = "fairprep"
)

type Config struct {
	Dataset   *DatasetConfig   `mapstructure:"dataset"`
	Reconcile *ReconcileConfig `mapstructure:"reconcile"`
	Filters   *FiltersConfig   `mapstructure:"filters"`
	Scoring   *ScoringConfig   `mapstructure:"scoring"`
	Embedding *EmbeddingConfig `mapstructure:"embedding"`
}

type DatasetConfig struct {
	Input       string   `mapstructure:"input"`
	Output      string   `mapstructure:"output"`
	KeepColumns []string `mapstructure:"keep-columns"`
}

type ReconcileConfig struct {
	InvariantColumns []string `mapstructure:"invariant-columns"`
}

type FiltersConfig struct {
	SkipEarlyStage bool                     `mapstructure:"skip-early-stage"`
	SkipOutcome    bool                     `mapstructure:"skip-outcome"`
	Outcome        *filtering.OutcomeConfig `mapstructure:"outcome"`
}

type ScoringConfig struct {
	HQAddress        string   `mapstructure:"hq-address"`
	ExperiencePolicy string   `mapstructure:"experience-policy"`
	UseCurrentSalary bool     `mapstructure:"use-current-salary"`
	SkipGeocoding    bool     `mapstructure:"skip-geocoding"`
	ScoreColumns     []string `mapstructure:"score-columns"`
}

type EmbeddingConfig struct {
	Provider string        `mapstructure:"provider"`
	Model    string        `mapstructure:"model"`
	CacheDir string        `mapstructure:"cache-dir"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "fairprep is a cli for cleaning recruitment event exports and deriving match features",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("embedding.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is fairprep.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	viper.SetEnvPrefix(strings.ToUpper(app))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config

	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &config,
		TagName:  "mapstructure",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, err
	}

	return config, nil
}
