package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// LoaderOptions configures corpus loading.
type LoaderOptions struct {
	Tokenizer  TokenizerOptions
	Extensions []string // eligible file extensions; defaults to .txt
	Metadata   bool     // attach file metadata to each document
	SkipHTML   bool     // strip HTML/SGML markup before tokenizing
	SkipHeader bool     // drop text before the first blank line
	Workers    int      // parallel file loads; <= 1 means sequential
}

// Loader reads a directory of text files into a Corpus.
type Loader struct {
	opts      LoaderOptions
	tokenizer *Tokenizer
	logger    *logrus.Entry
}

// NewLoader validates the options and builds a loader.
func NewLoader(opts LoaderOptions, logger *logrus.Entry) (*Loader, error) {
	tok, err := NewTokenizer(opts.Tokenizer)
	if err != nil {
		return nil, err
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt"}
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Loader{opts: opts, tokenizer: tok, logger: logger}, nil
}

// TokenPattern returns the pattern the loader actually tokenizes with,
// including the default applied for an empty option.
func (l *Loader) TokenPattern() string {
	return l.tokenizer.Pattern()
}

// Load reads every eligible file directly under dir into a Corpus. Document
// order follows sorted filename order regardless of the worker count, so the
// resulting corpus is reproducible.
func (l *Loader) Load(ctx context.Context, dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNotFound, dir)
		}
		// Existing but unreadable directories are not "not found".
		return nil, fmt.Errorf("reading corpus directory %s: %w", dir, err)
	}

	// ReadDir returns entries in sorted order already.
	var paths []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() || !l.eligible(e.Name()) {
			continue
		}
		name := docName(e.Name())
		if seen[name] {
			l.logger.Warnf("Skipping %s: duplicate document name %q", e.Name(), name)
			continue
		}
		seen[name] = true
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no eligible files in %s", ErrNotFound, dir)
	}

	docs := make([]*Document, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := l.loadFile(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Corpus{Documents: docs}
	l.logger.Infof("Loaded %d documents (%d tokens) from %s", c.Len(), c.TotalTokens(), dir)
	return c, nil
}

func (l *Loader) eligible(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range l.opts.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func (l *Loader) loadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrDecode, path)
	}

	text := string(data)
	if l.opts.SkipHeader {
		text = stripHeader(text)
	}
	if l.opts.SkipHTML {
		text = stripMarkup(text)
	}

	doc := &Document{
		Name:   docName(filepath.Base(path)),
		Tokens: l.tokenizer.Tokenize(text),
	}
	if l.opts.Metadata {
		if info, err := os.Stat(path); err == nil {
			doc.Meta = &Metadata{Path: path, Size: info.Size(), ModTime: info.ModTime()}
		}
	}
	return doc, nil
}

// docName derives the document identifier from its source filename.
func docName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// stripHeader drops everything up to and including the first blank line, as
// in mail or UseNet messages. Text without a blank line is returned unchanged.
func stripHeader(text string) string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	if i := strings.Index(normalized, "\n\n"); i >= 0 {
		return normalized[i+2:]
	}
	return text
}

// stripMarkup removes HTML/SGML tags using the standard tokenizer, keeping
// text content outside script and style elements.
func stripMarkup(text string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(text))
	var textBuilder strings.Builder
	skip := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// EOF or malformed markup: keep whatever text was collected.
			return textBuilder.String()

		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "script", "style":
				skip++
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "script", "style":
				if skip > 0 {
					skip--
				}
			}

		case html.TextToken:
			if skip == 0 {
				textBuilder.Write(tokenizer.Text())
				textBuilder.WriteByte(' ')
			}
		}
	}
}
