// SPDX-License-Identifier: MIT

// Package config loads charnet settings from an optional YAML file, .env
// files and CHARNET_* environment variables, and builds the slog logger.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key: pipeline.top_num is read
// from CHARNET_PIPELINE_TOP_NUM.
const EnvPrefix = "CHARNET"

// Segmenter names accepted in pipeline.segmenter.
const (
	SegmenterPunkt = "punkt"
	SegmenterRule  = "rule"
)

// Scorer names accepted in sentiment.scorer.
const (
	ScorerVader   = "vader"
	ScorerLexicon = "lexicon"
)

// Config holds all application configuration.
type Config struct {
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	Names     NamesConfig     `mapstructure:"names"`
	Sentiment SentimentConfig `mapstructure:"sentiment"`
	Log       LogConfig       `mapstructure:"log"`
}

// PipelineConfig tunes sentence segmentation, name aggregation and ranking,
// and the per-sentence fan-out.
type PipelineConfig struct {
	Segmenter     string  `mapstructure:"segmenter"`
	ThresholdRate float64 `mapstructure:"threshold_rate"`
	TopNum        int     `mapstructure:"top_num"`
	Workers       int     `mapstructure:"workers"`
}

// NamesConfig controls candidate filtering: an optional JSON blocklist of
// common words and the shortest kept name word.
type NamesConfig struct {
	BlocklistPath string `mapstructure:"blocklist_path"`
	MinLength     int    `mapstructure:"min_length"`
}

// SentimentConfig picks the sentence scorer. LexiconPath is only read when
// Scorer is "lexicon".
type SentimentConfig struct {
	Scorer      string `mapstructure:"scorer"`
	LexiconPath string `mapstructure:"lexicon_path"`
}

// LogConfig selects the slog level (debug, info, warn, error) and handler
// format (text or json).
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// setDefaults registers every key, which also lets AutomaticEnv override
// keys that no config file mentions.
func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.segmenter", SegmenterPunkt)
	v.SetDefault("pipeline.threshold_rate", 0.0005)
	v.SetDefault("pipeline.top_num", 20)
	v.SetDefault("pipeline.workers", 1)
	v.SetDefault("names.blocklist_path", "")
	v.SetDefault("names.min_length", 3)
	v.SetDefault("sentiment.scorer", ScorerVader)
	v.SetDefault("sentiment.lexicon_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from path (skipped when empty), the environment
// and defaults, in increasing order of precedence: defaults < file < env.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. With no arguments it reads
// ./.env. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	return nil
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Pipeline.Segmenter != SegmenterPunkt && c.Pipeline.Segmenter != SegmenterRule {
		warnings = append(warnings, fmt.Sprintf("unknown pipeline segmenter '%s'", c.Pipeline.Segmenter))
	}
	if c.Pipeline.ThresholdRate < 0 || c.Pipeline.ThresholdRate > 1 {
		warnings = append(warnings, fmt.Sprintf("pipeline threshold_rate %g is outside [0, 1]", c.Pipeline.ThresholdRate))
	}
	if c.Pipeline.TopNum <= 0 {
		warnings = append(warnings, fmt.Sprintf("pipeline top_num %d must be positive", c.Pipeline.TopNum))
	}
	if c.Pipeline.Workers < 1 {
		warnings = append(warnings, fmt.Sprintf("pipeline workers %d is below 1; 1 will be used", c.Pipeline.Workers))
	}
	if c.Names.MinLength < 1 {
		warnings = append(warnings, fmt.Sprintf("names min_length %d is below 1; the default will be used", c.Names.MinLength))
	}

	switch c.Sentiment.Scorer {
	case ScorerVader:
	case ScorerLexicon:
		if c.Sentiment.LexiconPath == "" {
			warnings = append(warnings, "sentiment scorer 'lexicon' is configured but lexicon_path is empty")
		}
	default:
		warnings = append(warnings, fmt.Sprintf("unknown sentiment scorer '%s'", c.Sentiment.Scorer))
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		warnings = append(warnings, fmt.Sprintf("unknown log format '%s'", c.Log.Format))
	}

	return warnings
}
