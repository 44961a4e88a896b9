// FILE: configfile/errors.go
package configfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. The typed errors below wrap
// these so callers can match the kind without caring about the payload.
var (
	// ErrMalformedFile indicates a syntax error while parsing a config file.
	ErrMalformedFile = errors.New("malformed config file")
	// ErrSectionNotFound indicates a strict path lookup failed to resolve.
	ErrSectionNotFound = errors.New("section not found")
	// ErrTagNotFound indicates a strict tag lookup failed.
	ErrTagNotFound = errors.New("tag not found")
	// ErrDecoding indicates a stored string is not a valid encoding of the
	// requested type.
	ErrDecoding = errors.New("decoding error")
)

// MalformedFileError reports a syntax error in a configuration file.
// Line is 1-based.
type MalformedFileError struct {
	File string
	Line int
	Msg  string
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("malformed config file '%s' line %d: %s", e.File, e.Line, e.Msg)
}

func (e *MalformedFileError) Is(target error) bool {
	return target == ErrMalformedFile
}

// SectionNotFoundError reports a strict path resolution failure. Path is the
// absolute path that could not be resolved.
type SectionNotFoundError struct {
	Path string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section not found: %s", e.Path)
}

func (e *SectionNotFoundError) Is(target error) bool {
	return target == ErrSectionNotFound
}

// TagNotFoundError reports a strict tag lookup failure. SectionPath is the
// absolute path of the section that was searched.
type TagNotFoundError struct {
	Tag         string
	SectionPath string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("tag '%s' not found in section %s", e.Tag, e.SectionPath)
}

func (e *TagNotFoundError) Is(target error) bool {
	return target == ErrTagNotFound
}

// DecodingError reports that a stored string is not a valid encoding of the
// requested value type.
type DecodingError struct {
	Type  string
	Value string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("cannot decode %q as %s", e.Value, e.Type)
}

func (e *DecodingError) Is(target error) bool {
	return target == ErrDecoding
}
