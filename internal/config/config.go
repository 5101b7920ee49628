package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the corpus toolkit
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Stats   StatsConfig   `yaml:"stats"`
	Export  ExportConfig  `yaml:"export"`
	Mallet  MalletConfig  `yaml:"mallet"`
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig holds corpus loading and tokenization settings
type CorpusConfig struct {
	Dir             string `yaml:"dir"`
	TokenPattern    string `yaml:"tokenPattern"`
	Lowercase       bool   `yaml:"lowercase"`
	RemoveStopwords bool   `yaml:"removeStopwords"`
	StopwordFile    string `yaml:"stopwordFile"`
	Stem            bool   `yaml:"stem"`
	SkipHTML        bool   `yaml:"skipHtml"`
	SkipHeader      bool   `yaml:"skipHeader"`
	Metadata        bool   `yaml:"metadata"`
	Workers         int    `yaml:"workers"`
}

// StatsConfig holds frequency statistics settings
type StatsConfig struct {
	TopN int `yaml:"topN"`
}

// ExportConfig holds output paths; empty paths disable the matching export
type ExportConfig struct {
	CSVPath    string `yaml:"csvPath"`
	SQLitePath string `yaml:"sqlitePath"`
	ReportPath string `yaml:"reportPath"`
}

// MalletConfig holds settings for the external MALLET runner
type MalletConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Executable    string `yaml:"executable"`
	OutputDir     string `yaml:"outputDir"`
	NumTopics     int    `yaml:"numTopics"`
	NumIterations int    `yaml:"numIterations"`
	NumThreads    int    `yaml:"numThreads"`
	NumTopWords   int    `yaml:"numTopWords"`
	RandomSeed    int    `yaml:"randomSeed"`
}

// LoggingConfig controls log level and output format
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file (if provided) and applies environment
// variable overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Dir:       "./corpus",
			Lowercase: true,
			Workers:   4,
		},
		Stats: StatsConfig{
			TopN: 50,
		},
		Export: ExportConfig{
			ReportPath: "./frequency_report.json",
		},
		Mallet: MalletConfig{
			Executable:    "mallet",
			OutputDir:     "./mallet_output",
			NumTopics:     10,
			NumIterations: 1000,
			NumThreads:    1,
			NumTopWords:   10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides reads CT_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	cfg.Corpus.Dir = GetStringEnv("CT_CORPUS_DIR", cfg.Corpus.Dir)
	cfg.Corpus.TokenPattern = GetStringEnv("CT_CORPUS_TOKEN_PATTERN", cfg.Corpus.TokenPattern)
	cfg.Corpus.Lowercase = GetBoolEnv("CT_CORPUS_LOWERCASE", cfg.Corpus.Lowercase)
	cfg.Corpus.RemoveStopwords = GetBoolEnv("CT_CORPUS_REMOVE_STOPWORDS", cfg.Corpus.RemoveStopwords)
	cfg.Corpus.StopwordFile = GetStringEnv("CT_CORPUS_STOPWORD_FILE", cfg.Corpus.StopwordFile)
	cfg.Corpus.Stem = GetBoolEnv("CT_CORPUS_STEM", cfg.Corpus.Stem)
	cfg.Corpus.SkipHTML = GetBoolEnv("CT_CORPUS_SKIP_HTML", cfg.Corpus.SkipHTML)
	cfg.Corpus.SkipHeader = GetBoolEnv("CT_CORPUS_SKIP_HEADER", cfg.Corpus.SkipHeader)
	cfg.Corpus.Metadata = GetBoolEnv("CT_CORPUS_METADATA", cfg.Corpus.Metadata)
	cfg.Corpus.Workers = GetIntEnv("CT_CORPUS_WORKERS", cfg.Corpus.Workers)

	cfg.Stats.TopN = GetIntEnv("CT_STATS_TOP_N", cfg.Stats.TopN)

	cfg.Export.CSVPath = GetStringEnv("CT_EXPORT_CSV_PATH", cfg.Export.CSVPath)
	cfg.Export.SQLitePath = GetStringEnv("CT_EXPORT_SQLITE_PATH", cfg.Export.SQLitePath)
	cfg.Export.ReportPath = GetStringEnv("CT_EXPORT_REPORT_PATH", cfg.Export.ReportPath)

	cfg.Mallet.Enabled = GetBoolEnv("CT_MALLET_ENABLED", cfg.Mallet.Enabled)
	cfg.Mallet.Executable = GetStringEnv("CT_MALLET_EXECUTABLE", cfg.Mallet.Executable)
	cfg.Mallet.OutputDir = GetStringEnv("CT_MALLET_OUTPUT_DIR", cfg.Mallet.OutputDir)
	cfg.Mallet.NumTopics = GetIntEnv("CT_MALLET_NUM_TOPICS", cfg.Mallet.NumTopics)
	cfg.Mallet.NumIterations = GetIntEnv("CT_MALLET_NUM_ITERATIONS", cfg.Mallet.NumIterations)
	cfg.Mallet.NumThreads = GetIntEnv("CT_MALLET_NUM_THREADS", cfg.Mallet.NumThreads)
	cfg.Mallet.NumTopWords = GetIntEnv("CT_MALLET_NUM_TOP_WORDS", cfg.Mallet.NumTopWords)
	cfg.Mallet.RandomSeed = GetIntEnv("CT_MALLET_RANDOM_SEED", cfg.Mallet.RandomSeed)

	cfg.Logging.Level = GetStringEnv("CT_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = GetStringEnv("CT_LOG_FORMAT", cfg.Logging.Format)
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
