// Package mallet drives an external MALLET installation. It only builds
// command lines and shells out; no topic-modeling math lives here.
package mallet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Error kinds surfaced by the runner.
var (
	// ErrNotFound reports a MALLET executable that is not on the PATH.
	ErrNotFound = errors.New("mallet executable not found")

	// ErrInvalidArgument reports options MALLET cannot accept.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Runner executes MALLET commands against a fixed output directory. Progress
// output (MALLET writes it to stderr) is captured to mallet.log inside that
// directory.
type Runner struct {
	executable string
	outputDir  string
	logger     *logrus.Entry
}

// NewRunner verifies the executable is reachable and prepares the output
// directory. An empty executable defaults to "mallet".
func NewRunner(executable, outputDir string, logger *logrus.Entry) (*Runner, error) {
	if executable == "" {
		executable = "mallet"
	}
	if err := checkPath(executable); err != nil {
		return nil, err
	}
	if err := checkPath(outputDir); err != nil {
		return nil, err
	}
	if _, err := exec.LookPath(executable); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, executable)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Runner{executable: executable, outputDir: outputDir, logger: logger}, nil
}

// ImportArgs builds the argument list for importing a corpus directory into
// a MALLET binary file.
func ImportArgs(inputDir, outputFile string, opts ImportOptions) ([]string, error) {
	if err := checkPath(inputDir); err != nil {
		return nil, err
	}
	if err := checkPath(outputFile); err != nil {
		return nil, err
	}
	args := []string{"import-dir", "--input", inputDir, "--output", outputFile}
	optArgs, err := opts.args()
	if err != nil {
		return nil, err
	}
	return append(args, optArgs...), nil
}

// ImportFileArgs is the single-file variant of ImportArgs.
func ImportFileArgs(inputFile, outputFile string, opts ImportOptions) ([]string, error) {
	if err := checkPath(inputFile); err != nil {
		return nil, err
	}
	if err := checkPath(outputFile); err != nil {
		return nil, err
	}
	args := []string{"import-file", "--input", inputFile, "--output", outputFile}
	optArgs, err := opts.args()
	if err != nil {
		return nil, err
	}
	return append(args, optArgs...), nil
}

// TrainArgs builds the argument list for train-topics, placing every output
// file inside outputDir.
func TrainArgs(binaryFile, outputDir string, opts TrainOptions) ([]string, error) {
	if err := checkPath(binaryFile); err != nil {
		return nil, err
	}
	if err := checkPath(outputDir); err != nil {
		return nil, err
	}
	args := []string{"train-topics", "--input", binaryFile}
	args = append(args, opts.args()...)
	args = append(args,
		"--output-topic-keys", filepath.Join(outputDir, "topic_keys.txt"),
		"--output-doc-topics", filepath.Join(outputDir, "doc_topics.txt"),
	)
	if opts.DocTopicsThreshold > 0 {
		args = append(args, "--doc-topics-threshold",
			strconv.FormatFloat(opts.DocTopicsThreshold, 'f', -1, 64))
	}
	if opts.WordWeights {
		args = append(args, "--topic-word-weights-file",
			filepath.Join(outputDir, "topic_word_weights.txt"))
	}
	if opts.OutputState {
		args = append(args, "--output-state", filepath.Join(outputDir, "state.gz"))
	}
	if opts.Diagnostics {
		args = append(args, "--diagnostics-file", filepath.Join(outputDir, "diagnostics.xml"))
	}
	if opts.Inferencer {
		args = append(args, "--inferencer-filename", filepath.Join(outputDir, "inferencer"))
	}
	if opts.Evaluator {
		args = append(args, "--evaluator-filename", filepath.Join(outputDir, "evaluator"))
	}
	return args, nil
}

// ImportDir imports every document under corpusDir and returns the path of
// the created MALLET binary file.
func (r *Runner) ImportDir(ctx context.Context, corpusDir string, opts ImportOptions) (string, error) {
	outputFile := filepath.Join(r.outputDir, "corpus.mallet")
	args, err := ImportArgs(corpusDir, outputFile, opts)
	if err != nil {
		return "", err
	}
	if err := r.run(ctx, args); err != nil {
		return "", err
	}
	return outputFile, nil
}

// TrainTopics trains an LDA model on a previously imported binary file. The
// topic keys, document-topic proportions, and any optional outputs land in
// the runner's output directory.
func (r *Runner) TrainTopics(ctx context.Context, binaryFile string, opts TrainOptions) error {
	args, err := TrainArgs(binaryFile, r.outputDir, opts)
	if err != nil {
		return err
	}
	return r.run(ctx, args)
}

func (r *Runner) run(ctx context.Context, args []string) error {
	logFile, err := os.Create(filepath.Join(r.outputDir, "mallet.log"))
	if err != nil {
		return fmt.Errorf("failed to create mallet.log: %w", err)
	}
	defer logFile.Close()

	r.logger.Infof("Running %s %s", r.executable, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, r.executable, args...)
	cmd.Stderr = logFile
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mallet %s failed: %w", args[0], err)
	}
	return nil
}
