package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/corpus-engine/toolkit/internal/config"
	"github.com/corpus-engine/toolkit/internal/engine"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	corpusDir := flag.String("dir", "", "corpus directory (overrides config)")
	topN := flag.Int("top", 0, "number of stopword candidates to report (overrides config)")
	flag.Parse()

	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "corpustool")

	// 1. Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		entry.Fatalf("Failed to load configuration: %v", err)
	}
	if *corpusDir != "" {
		cfg.Corpus.Dir = *corpusDir
	}
	if *topN > 0 {
		cfg.Stats.TopN = *topN
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// 2. Engine
	eng, err := engine.NewEngine(cfg, entry)
	if err != nil {
		entry.Fatalf("Failed to initialize engine: %v", err)
	}

	// 3. Run
	result, err := eng.Run(context.Background())
	if err != nil {
		entry.Fatalf("Pipeline failed: %v", err)
	}

	printReport(result)
	entry.Infof("Done in %s", result.Elapsed)
}

// printReport writes the human-readable summary to stdout.
func printReport(result *engine.Result) {
	report := result.Report
	fmt.Printf("Documents:    %d\n", report.Documents)
	fmt.Printf("Vocabulary:   %d\n", report.Vocabulary)
	fmt.Printf("Total tokens: %d\n", report.TotalTokens)

	fmt.Printf("\nTop %d terms (stopword candidates):\n", len(report.TopTerms))
	for i, tc := range report.TopTerms {
		fmt.Printf("%4d. %-24s %d\n", i+1, tc.Term, tc.Count)
	}

	fmt.Printf("\nHapax legomena (%d):\n", len(report.Hapax))
	for _, term := range report.Hapax {
		fmt.Printf("      %s\n", term)
	}
}
