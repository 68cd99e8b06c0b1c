package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates the search configuration is unusable.
	ErrInvalidConfig = errors.New("invalid search configuration")

	// ErrUnknownSection indicates a section label that is not one of the known sections.
	ErrUnknownSection = errors.New("unknown section")

	// Corpus Errors.

	// ErrDuplicateID indicates two documents share an ID.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrEmptyCorpus indicates a corpus source produced no documents.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrUnsupportedCorpus indicates a corpus file type with no loader.
	ErrUnsupportedCorpus = errors.New("unsupported corpus format")
)
