package theme

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMetadata marks a theme.toml that could not be read or decoded.
	ErrMetadata = errors.New("invalid theme metadata")

	// ErrMissingFields marks metadata lacking required keys.
	ErrMissingFields = errors.New("missing required metadata")

	// ErrMissingFile marks a theme directory without one of its required files.
	ErrMissingFile = errors.New("missing required file")
)

// MetadataError reports a theme whose metadata could not be parsed.
type MetadataError struct {
	Theme string
	Err   error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("Theme '%s' encountered a TOML parsing issue: %v", e.Theme, e.Err)
}

func (e *MetadataError) Unwrap() []error { return []error{ErrMetadata, e.Err} }

// MissingFieldsError lists the required metadata keys a theme does not set.
type MissingFieldsError struct {
	Theme  string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Theme '%s' is missing required metadata: %s.", e.Theme, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error { return ErrMissingFields }

// MissingFileError reports a required file absent from a theme directory.
type MissingFileError struct {
	Theme string
	File  string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("Theme '%s' is missing %s.", e.Theme, e.File)
}

func (e *MissingFileError) Unwrap() error { return ErrMissingFile }
