package config

import "errors"

// Sentinel errors returned by the loader and store. Failures wrap
// one of these so callers can branch with errors.Is.
var (
	// ErrAlreadyInitialized is returned when Init or
	// InitFromFile is called while the store already holds a
	// configuration, including an empty one. Reset must be
	// called before initializing again.
	ErrAlreadyInitialized = errors.New(
		"config is already initialized",
	)

	// ErrNotInitialized is returned when Get or HasKey is
	// called before a successful initialization.
	ErrNotInitialized = errors.New(
		"config is not initialized",
	)

	// ErrKeyNotFound is returned when a lookup key is absent
	// at some depth, or the path descends through a value that
	// is not a mapping. The wrapping error names the offending
	// key.
	ErrKeyNotFound = errors.New("key not found in config")

	// ErrSourceNotFound is returned when InitFromFile is given
	// a path that does not exist or is not a regular file.
	ErrSourceNotFound = errors.New(
		"config source not found",
	)

	// ErrDocumentSyntax is returned when the rendered text
	// fails to parse as YAML. The wrapping error carries the
	// parser diagnostic.
	ErrDocumentSyntax = errors.New(
		"invalid config document",
	)
)
