package mallet

import (
	"fmt"
	"regexp"
	"strconv"
)

var whitespace = regexp.MustCompile(`\s`)

// checkPath rejects paths MALLET cannot handle on its command line.
func checkPath(p string) error {
	if whitespace.MatchString(p) {
		return fmt.Errorf("%w: whitespace is not allowed in %q", ErrInvalidArgument, p)
	}
	return nil
}

// ImportOptions mirror the flags of "mallet import-dir" and "import-file".
type ImportOptions struct {
	TokenRegex      string // tokenization pattern handed to MALLET
	PreserveCase    bool   // keep case instead of lowercasing features
	KeepSequence    bool   // preserve documents as feature sequences
	RemoveStopwords bool   // apply MALLET's built-in English stoplist
	StoplistFile    string // plain-text stoplist replacing the built-in one
	ExtraStopwords  string // whitespace-separated words added to the stoplist
	SkipHeader      bool   // drop text before a blank line in each document
	SkipHTML        bool   // drop text inside <...> markup
	GramSizes       string // n-gram sizes, e.g. "1,2"
}

// DefaultImportOptions keep feature sequences, which train-topics requires.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		KeepSequence:    true,
		RemoveStopwords: true,
	}
}

// args renders the options as MALLET command-line flags.
func (o ImportOptions) args() ([]string, error) {
	var args []string
	if o.TokenRegex != "" {
		args = append(args, "--token-regex", o.TokenRegex)
	}
	if o.PreserveCase {
		args = append(args, "--preserve-case")
	}
	if o.KeepSequence {
		args = append(args, "--keep-sequence")
	}
	if o.RemoveStopwords {
		args = append(args, "--remove-stopwords")
	}
	if o.StoplistFile != "" {
		if err := checkPath(o.StoplistFile); err != nil {
			return nil, err
		}
		args = append(args, "--stoplist-file", o.StoplistFile)
	}
	if o.ExtraStopwords != "" {
		if err := checkPath(o.ExtraStopwords); err != nil {
			return nil, err
		}
		args = append(args, "--extra-stopwords", o.ExtraStopwords)
	}
	if o.SkipHeader {
		args = append(args, "--skip-header")
	}
	if o.SkipHTML {
		args = append(args, "--skip-html")
	}
	if o.GramSizes != "" {
		args = append(args, "--gram-sizes", o.GramSizes)
	}
	return args, nil
}

// TrainOptions mirror the flags of "mallet train-topics". Output files are
// chosen by the Runner inside its output directory.
type TrainOptions struct {
	NumTopics          int
	NumIterations      int
	NumThreads         int
	NumTopWords        int
	RandomSeed         int
	OptimizeInterval   int
	OptimizeBurnIn     int
	Alpha              float64 // sum over topics of doc-topic smoothing
	Beta               float64 // per topic-word smoothing
	DocTopicsThreshold float64 // drop doc-topic proportions below this
	OutputState        bool    // write the gzipped Gibbs sampling state
	WordWeights        bool    // write unnormalized topic-word weights
	Diagnostics        bool    // write topic quality measures in XML
	Inferencer         bool    // write a topic inferencer for new documents
	Evaluator          bool    // write a held-out likelihood evaluator
}

// DefaultTrainOptions match MALLET's usual tutorial settings.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		NumTopics:      10,
		NumIterations:  1000,
		NumThreads:     1,
		NumTopWords:    10,
		OptimizeBurnIn: 200,
		Alpha:          5.0,
		Beta:           0.01,
	}
}

// args renders the scalar training parameters as flags.
func (o TrainOptions) args() []string {
	var args []string
	if o.NumTopics > 0 {
		args = append(args, "--num-topics", strconv.Itoa(o.NumTopics))
	}
	if o.NumIterations > 0 {
		args = append(args, "--num-iterations", strconv.Itoa(o.NumIterations))
	}
	if o.NumThreads > 0 {
		args = append(args, "--num-threads", strconv.Itoa(o.NumThreads))
	}
	if o.NumTopWords > 0 {
		args = append(args, "--num-top-words", strconv.Itoa(o.NumTopWords))
	}
	if o.RandomSeed > 0 {
		args = append(args, "--random-seed", strconv.Itoa(o.RandomSeed))
	}
	if o.OptimizeInterval > 0 {
		args = append(args, "--optimize-interval", strconv.Itoa(o.OptimizeInterval))
	}
	if o.OptimizeBurnIn > 0 {
		args = append(args, "--optimize-burn-in", strconv.Itoa(o.OptimizeBurnIn))
	}
	if o.Alpha > 0 {
		args = append(args, "--alpha", strconv.FormatFloat(o.Alpha, 'f', -1, 64))
	}
	if o.Beta > 0 {
		args = append(args, "--beta", strconv.FormatFloat(o.Beta, 'f', -1, 64))
	}
	return args
}
