// Package config loads the identifier settings from defaults, an optional .env file and LANGID_* variables
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/neurlang/langid/language"
)

const envPrefix = "LANGID_"

// Config holds all settings of the langid command
type Config struct {
	Dataset DatasetConfig
	Log     LogConfig
}

// DatasetConfig locates the sentence files and bounds training
type DatasetConfig struct {
	Dir        string
	TrainLimit int
}

// LogConfig selects the logger level and encoder
type LogConfig struct {
	Level  string
	Format string
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Dir:        "./example/datasets",
			TrainLimit: 200,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns the defaults overridden by .env and the environment
func Load() (*Config, error) {
	// a missing .env is not an error
	_ = godotenv.Load()

	cfg := Default()
	if v, ok := lookup("DATASET_DIR"); ok {
		cfg.Dataset.Dir = v
	}
	if v, ok := lookup("TRAIN_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %sTRAIN_LIMIT %q", envPrefix, v)
		}
		cfg.Dataset.TrainLimit = n
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
	return cfg, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// TrainingFile is the training corpus of l
func (d DatasetConfig) TrainingFile(l language.Language) string {
	return filepath.Join(d.Dir, l.Code()+"_50K_sentences.txt")
}

// TestFile is the labeled test set of l
func (d DatasetConfig) TestFile(l language.Language) string {
	return filepath.Join(d.Dir, l.Code()+"_test_1k.txt")
}
