package corpus

import "errors"

// Error kinds surfaced by the loader and tokenizer. Callers match them
// with errors.Is.
var (
	// ErrNotFound reports a missing corpus directory or a directory with
	// no eligible text files.
	ErrNotFound = errors.New("corpus not found")

	// ErrDecode reports a file whose content could not be read as text.
	ErrDecode = errors.New("undecodable document")

	// ErrInvalidArgument reports malformed loader or tokenizer options.
	ErrInvalidArgument = errors.New("invalid argument")
)
