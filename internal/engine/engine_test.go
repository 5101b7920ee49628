package engine_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/corpus-engine/toolkit/internal/config"
	"github.com/corpus-engine/toolkit/internal/corpus"
	"github.com/corpus-engine/toolkit/internal/dtm"
	"github.com/corpus-engine/toolkit/internal/engine"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("service", "test")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "doc1.txt"), []byte("the cat sat"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "doc2.txt"), []byte("the dog sat"), 0644))

	cfg, err := config.Load("")
	assert.NoError(t, err)
	cfg.Corpus.Dir = dir
	cfg.Stats.TopN = 2
	cfg.Export.ReportPath = ""
	return cfg
}

func TestEngineRun(t *testing.T) {
	cfg := testConfig(t)
	outDir := t.TempDir()
	cfg.Export.CSVPath = filepath.Join(outDir, "matrix.csv")
	cfg.Export.SQLitePath = filepath.Join(outDir, "matrix.db")
	cfg.Export.ReportPath = filepath.Join(outDir, "report.json")

	eng, err := engine.NewEngine(cfg, testLogger())
	assert.NoError(t, err)

	result, err := eng.Run(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, result.Corpus.Len())
	assert.Equal(t, 4, result.Matrix.NumTerms())
	assert.Equal(t, []dtm.TermCount{
		{Term: "the", Count: 2},
		{Term: "sat", Count: 2},
	}, result.Report.TopTerms)
	assert.Equal(t, []string{"cat", "dog"}, result.Report.Hapax)

	for _, path := range []string{cfg.Export.CSVPath, cfg.Export.SQLitePath, cfg.Export.ReportPath} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "expected export at %s", path)
	}
}

func TestEngineRunWithoutExports(t *testing.T) {
	cfg := testConfig(t)

	eng, err := engine.NewEngine(cfg, testLogger())
	assert.NoError(t, err)

	result, err := eng.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 6, result.Matrix.TotalTokens())
}

func TestEngineRunStopwordRemoval(t *testing.T) {
	cfg := testConfig(t)
	cfg.Corpus.RemoveStopwords = true

	eng, err := engine.NewEngine(cfg, testLogger())
	assert.NoError(t, err)

	result, err := eng.Run(context.Background())
	assert.NoError(t, err)

	// "the" is filtered before counting.
	assert.Equal(t, 0, result.Matrix.TermTotal("the"))
	assert.Equal(t, 2, result.Matrix.TermTotal("sat"))
}

func TestEngineRunMissingCorpus(t *testing.T) {
	cfg := testConfig(t)
	cfg.Corpus.Dir = filepath.Join(t.TempDir(), "missing")

	eng, err := engine.NewEngine(cfg, testLogger())
	assert.NoError(t, err)

	_, err = eng.Run(context.Background())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, corpus.ErrNotFound))
}

func TestNewEngineBadTokenPattern(t *testing.T) {
	cfg := testConfig(t)
	cfg.Corpus.TokenPattern = `(`

	_, err := engine.NewEngine(cfg, testLogger())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, corpus.ErrInvalidArgument))
}
