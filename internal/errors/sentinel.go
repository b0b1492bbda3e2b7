// Package errors defines sentinel errors shared across the CLI.
package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrConfig indicates an invalid or incomplete configuration.
	ErrConfig = errors.New("configuration error")

	// ErrNotFound indicates a tag, release, or pull request was not found.
	ErrNotFound = errors.New("not found")

	// ErrNoHistory indicates the repository has no version tags to bump from.
	ErrNoHistory = errors.New("no releases found")
)
