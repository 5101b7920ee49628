package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corpus-engine/toolkit/internal/config"
)

var envVars = []string{
	"CT_CORPUS_DIR", "CT_CORPUS_TOKEN_PATTERN", "CT_CORPUS_LOWERCASE",
	"CT_CORPUS_REMOVE_STOPWORDS", "CT_CORPUS_STOPWORD_FILE", "CT_CORPUS_STEM",
	"CT_CORPUS_SKIP_HTML", "CT_CORPUS_SKIP_HEADER", "CT_CORPUS_METADATA",
	"CT_CORPUS_WORKERS", "CT_STATS_TOP_N", "CT_EXPORT_CSV_PATH",
	"CT_EXPORT_SQLITE_PATH", "CT_EXPORT_REPORT_PATH", "CT_MALLET_ENABLED",
	"CT_MALLET_EXECUTABLE", "CT_MALLET_OUTPUT_DIR", "CT_MALLET_NUM_TOPICS",
	"CT_MALLET_NUM_ITERATIONS", "CT_MALLET_NUM_THREADS",
	"CT_MALLET_NUM_TOP_WORDS", "CT_MALLET_RANDOM_SEED",
	"CT_LOG_LEVEL", "CT_LOG_FORMAT",
}

func clearEnvVars() {
	for _, key := range envVars {
		os.Unsetenv(key)
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	clearEnvVars()

	cfg, err := config.Load("")
	assert.NoError(t, err)

	assert.Equal(t, "./corpus", cfg.Corpus.Dir)
	assert.True(t, cfg.Corpus.Lowercase)
	assert.False(t, cfg.Corpus.RemoveStopwords)
	assert.Equal(t, 4, cfg.Corpus.Workers)

	assert.Equal(t, 50, cfg.Stats.TopN)
	assert.Equal(t, "./frequency_report.json", cfg.Export.ReportPath)

	assert.False(t, cfg.Mallet.Enabled)
	assert.Equal(t, "mallet", cfg.Mallet.Executable)
	assert.Equal(t, 10, cfg.Mallet.NumTopics)
	assert.Equal(t, 1000, cfg.Mallet.NumIterations)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnvVars()

	yamlContent := `
corpus:
  dir: /data/texts
  tokenPattern: '\p{L}+'
  lowercase: false
  removeStopwords: true
  workers: 8
stats:
  topN: 25
export:
  csvPath: /out/matrix.csv
mallet:
  enabled: true
  numTopics: 30
logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := config.Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "/data/texts", cfg.Corpus.Dir)
	assert.Equal(t, `\p{L}+`, cfg.Corpus.TokenPattern)
	assert.False(t, cfg.Corpus.Lowercase)
	assert.True(t, cfg.Corpus.RemoveStopwords)
	assert.Equal(t, 8, cfg.Corpus.Workers)
	assert.Equal(t, 25, cfg.Stats.TopN)
	assert.Equal(t, "/out/matrix.csv", cfg.Export.CSVPath)
	assert.True(t, cfg.Mallet.Enabled)
	assert.Equal(t, 30, cfg.Mallet.NumTopics)
	// Untouched fields keep their defaults.
	assert.Equal(t, 1000, cfg.Mallet.NumIterations)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	os.Setenv("CT_CORPUS_DIR", "/env/corpus")
	os.Setenv("CT_CORPUS_STEM", "true")
	os.Setenv("CT_STATS_TOP_N", "7")
	os.Setenv("CT_MALLET_NUM_TOPICS", "15")
	os.Setenv("CT_LOG_LEVEL", "warn")

	cfg, err := config.Load("")
	assert.NoError(t, err)

	assert.Equal(t, "/env/corpus", cfg.Corpus.Dir)
	assert.True(t, cfg.Corpus.Stem)
	assert.Equal(t, 7, cfg.Stats.TopN)
	assert.Equal(t, 15, cfg.Mallet.NumTopics)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestGetStringEnv(t *testing.T) {
	os.Unsetenv("CT_TEST_STRING")
	assert.Equal(t, "fallback", config.GetStringEnv("CT_TEST_STRING", "fallback"))

	os.Setenv("CT_TEST_STRING", "set")
	defer os.Unsetenv("CT_TEST_STRING")
	assert.Equal(t, "set", config.GetStringEnv("CT_TEST_STRING", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	os.Unsetenv("CT_TEST_INT")
	assert.Equal(t, 3, config.GetIntEnv("CT_TEST_INT", 3))

	os.Setenv("CT_TEST_INT", "12")
	defer os.Unsetenv("CT_TEST_INT")
	assert.Equal(t, 12, config.GetIntEnv("CT_TEST_INT", 3))

	os.Setenv("CT_TEST_INT", "not-a-number")
	assert.Equal(t, 3, config.GetIntEnv("CT_TEST_INT", 3))
}

func TestGetBoolEnv(t *testing.T) {
	os.Unsetenv("CT_TEST_BOOL")
	assert.True(t, config.GetBoolEnv("CT_TEST_BOOL", true))

	os.Setenv("CT_TEST_BOOL", "false")
	defer os.Unsetenv("CT_TEST_BOOL")
	assert.False(t, config.GetBoolEnv("CT_TEST_BOOL", true))
}
