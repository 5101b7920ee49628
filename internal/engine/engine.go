package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/corpus-engine/toolkit/internal/config"
	"github.com/corpus-engine/toolkit/internal/corpus"
	"github.com/corpus-engine/toolkit/internal/dtm"
	"github.com/corpus-engine/toolkit/internal/export"
	"github.com/corpus-engine/toolkit/internal/mallet"
)

// Engine orchestrates the pipeline: corpus loading, matrix construction,
// frequency statistics, exports, and the optional MALLET run.
type Engine struct {
	Config *config.Config
	Logger *logrus.Entry
	Loader *corpus.Loader
	Mallet *mallet.Runner // nil unless enabled in config
}

// Result bundles everything a pipeline run produces.
type Result struct {
	Corpus  *corpus.Corpus
	Matrix  *dtm.Matrix
	Report  *export.Report
	Elapsed time.Duration
}

// NewEngine wires the components described by cfg. The MALLET runner is only
// constructed when enabled, so a missing installation does not break plain
// statistics runs.
func NewEngine(cfg *config.Config, logger *logrus.Entry) (*Engine, error) {
	var stopwords map[string]struct{}
	if cfg.Corpus.RemoveStopwords {
		stopwords = corpus.DefaultStopwords()
		if cfg.Corpus.StopwordFile != "" {
			var err error
			stopwords, err = corpus.LoadStopwords(cfg.Corpus.StopwordFile, stopwords)
			if err != nil {
				return nil, err
			}
		}
	}

	loader, err := corpus.NewLoader(corpus.LoaderOptions{
		Tokenizer: corpus.TokenizerOptions{
			Pattern:   cfg.Corpus.TokenPattern,
			Lowercase: cfg.Corpus.Lowercase,
			Stem:      cfg.Corpus.Stem,
			Stopwords: stopwords,
		},
		Metadata:   cfg.Corpus.Metadata,
		SkipHTML:   cfg.Corpus.SkipHTML,
		SkipHeader: cfg.Corpus.SkipHeader,
		Workers:    cfg.Corpus.Workers,
	}, logger)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		Config: cfg,
		Logger: logger,
		Loader: loader,
	}

	if cfg.Mallet.Enabled {
		runner, err := mallet.NewRunner(cfg.Mallet.Executable, cfg.Mallet.OutputDir, logger)
		if err != nil {
			return nil, err
		}
		e.Mallet = runner
	}

	return e, nil
}

// Run executes the pipeline once. Every step is synchronous and fails fast;
// nothing here is retried since the inputs are static.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	// 1. Corpus
	c, err := e.Loader.Load(ctx, e.Config.Corpus.Dir)
	if err != nil {
		return nil, err
	}

	// 2. Matrix
	m := dtm.Build(c)
	e.Logger.Infof("Built document-term matrix: %d documents, %d terms, %d tokens",
		m.NumDocs(), m.NumTerms(), m.TotalTokens())

	// 3. Statistics
	report, err := export.BuildReport(m, e.Config.Stats.TopN)
	if err != nil {
		return nil, err
	}
	e.Logger.Infof("Top terms: %d stopword candidates, %d hapax legomena",
		len(report.TopTerms), len(report.Hapax))

	// 4. Exports
	if path := e.Config.Export.CSVPath; path != "" {
		if err := export.WriteCSV(m, path); err != nil {
			return nil, err
		}
		e.Logger.Infof("Wrote CSV matrix to %s", path)
	}
	if path := e.Config.Export.SQLitePath; path != "" {
		if err := export.WriteSQLite(m, path); err != nil {
			return nil, err
		}
		e.Logger.Infof("Wrote SQLite matrix to %s", path)
	}
	if path := e.Config.Export.ReportPath; path != "" {
		if err := export.WriteReport(report, path); err != nil {
			return nil, err
		}
		e.Logger.Infof("Wrote frequency report to %s", path)
	}

	// 5. MALLET
	if e.Mallet != nil {
		if err := e.runMallet(ctx); err != nil {
			return nil, err
		}
	}

	return &Result{
		Corpus:  c,
		Matrix:  m,
		Report:  report,
		Elapsed: time.Since(start),
	}, nil
}

// runMallet imports the corpus directory into a MALLET binary and trains a
// topic model on it. Import options follow the loader settings so MALLET
// sees the corpus the same way the matrix builder does.
func (e *Engine) runMallet(ctx context.Context) error {
	importOpts := mallet.DefaultImportOptions()
	importOpts.TokenRegex = e.Loader.TokenPattern()
	importOpts.PreserveCase = !e.Config.Corpus.Lowercase
	importOpts.RemoveStopwords = e.Config.Corpus.RemoveStopwords
	importOpts.ExtraStopwords = e.Config.Corpus.StopwordFile
	importOpts.SkipHeader = e.Config.Corpus.SkipHeader
	importOpts.SkipHTML = e.Config.Corpus.SkipHTML

	binary, err := e.Mallet.ImportDir(ctx, e.Config.Corpus.Dir, importOpts)
	if err != nil {
		return err
	}
	e.Logger.Infof("Imported corpus into %s", binary)

	trainOpts := mallet.DefaultTrainOptions()
	trainOpts.NumTopics = e.Config.Mallet.NumTopics
	trainOpts.NumIterations = e.Config.Mallet.NumIterations
	trainOpts.NumThreads = e.Config.Mallet.NumThreads
	trainOpts.NumTopWords = e.Config.Mallet.NumTopWords
	trainOpts.RandomSeed = e.Config.Mallet.RandomSeed

	if err := e.Mallet.TrainTopics(ctx, binary, trainOpts); err != nil {
		return err
	}
	e.Logger.Info("MALLET training finished")
	return nil
}
