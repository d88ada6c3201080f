package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Processing ProcessingConfig `yaml:"processing" envconfig:"PROCESSING"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Paths      PathsConfig      `yaml:"paths" envconfig:"PATHS"`
}

// ProcessingConfig contains the pipeline options that feed revisions
// disagree on. Encodings is the ordered candidate list tried against
// raw bytes; LoserColumns is the loser-report projection.
type ProcessingConfig struct {
	Encodings    []string `yaml:"encodings" envconfig:"ENCODINGS" default:"utf-8,shift_jis,utf-16" validate:"min=1,dive,oneof=utf-8 shift_jis cp932 euc-jp utf-16"`
	LoserColumns []string `yaml:"loser_columns" envconfig:"LOSER_COLUMNS" validate:"min=1"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/processor.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	InputDir string `yaml:"input_dir" envconfig:"INPUT_DIR" default:"." validate:"required"`
}

// DefaultLoserColumns is the three-column loser projection of the
// canonical revision: rank, candidate name, total votes. A later
// revision used a five-column projection adding party name and status;
// select it via processing.loser_columns.
var DefaultLoserColumns = []string{"順位", "政党名／候補者名", "合 計"}

var validate = validator.New()

// Load loads configuration from environment variables and an optional
// YAML config file. File values override environment values, matching
// how the tool is deployed alongside its feeds.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("TOKUHYO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no config file
// or environment overrides are present.
func Default() *Config {
	cfg := &Config{
		Processing: ProcessingConfig{
			Encodings: []string{"utf-8", "shift_jis", "utf-16"},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/processor.log",
		},
		Paths: PathsConfig{InputDir: "."},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills slice fields that envconfig default tags cannot
// express reliably across override sources.
func (c *Config) applyDefaults() {
	if len(c.Processing.Encodings) == 0 {
		c.Processing.Encodings = []string{"utf-8", "shift_jis", "utf-16"}
	}
	if len(c.Processing.LoserColumns) == 0 {
		c.Processing.LoserColumns = append([]string(nil), DefaultLoserColumns...)
	}
}
