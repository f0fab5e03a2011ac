package rustdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionFieldError means the document could not be read far enough to learn
// its format version: either it is not valid JSON, or the format_version
// field is missing or not an integer.
type VersionFieldError struct {
	Err error
}

func (e *VersionFieldError) Error() string {
	return fmt.Sprintf("reading rustdoc format_version: %v", e.Err)
}

func (e *VersionFieldError) Unwrap() error { return e.Err }

// UnsupportedVersionError means the document declared a format version the
// registry has no adapter for. Adjacent versions are never assumed
// compatible.
type UnsupportedVersionError struct {
	Version   int
	Supported []int
}

func (e *UnsupportedVersionError) Error() string {
	supported := make([]string, len(e.Supported))
	for i, v := range e.Supported {
		supported[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("unsupported rustdoc format version: %d (supported versions: %s)",
		e.Version, strings.Join(supported, ", "))
}

// SchemaMismatchError means the document claimed a supported format version
// but its structure does not conform to that version's shape.
type SchemaMismatchError struct {
	Version int
	Err     error
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("document does not match rustdoc format version %d: %v", e.Version, e.Err)
}

func (e *SchemaMismatchError) Unwrap() error { return e.Err }

// RootNotFoundError means the document's root item ID is absent from its
// index.
type RootNotFoundError struct {
	RootID ID
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("root item '%s' not found in index", e.RootID)
}

// ItemNotFoundError means neither resolution phase matched the queried path.
type ItemNotFoundError struct {
	Path string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item '%s' not found in crate", e.Path)
}
