package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures. Every exit path of the
// pipeline resolves to either success or a member of this taxonomy;
// no unstructured failure crosses the pipeline boundary.
type ErrorKind string

const (
	// ErrInvalidInput means the URL was malformed, absent, or
	// implausibly short. Detected before any external call.
	ErrInvalidInput ErrorKind = "invalid_input"

	// ErrUnsupportedPlatform means the host matched no allow-list entry.
	ErrUnsupportedPlatform ErrorKind = "unsupported_platform"

	// ErrMetadataUnavailable means metadata resolution failed (network,
	// private content, platform-side error). The caller may retry the
	// whole pipeline.
	ErrMetadataUnavailable ErrorKind = "metadata_unavailable"

	// ErrExtractionFailed means download or transcode failed after the
	// delegated transport retries were exhausted. Partial files may
	// remain in the session directory.
	ErrExtractionFailed ErrorKind = "extraction_failed"

	// ErrStorage means the session directory could not be created,
	// locked, or listed. An unexpected-state condition.
	ErrStorage ErrorKind = "storage_error"
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// PipelineError is a classified stage failure. Message carries the
// underlying diagnostic verbatim; the kind is the only contract.
type PipelineError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds a PipelineError with a formatted message.
func NewError(kind ErrorKind, format string, args ...any) *PipelineError {
	return &PipelineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Classify returns err as a PipelineError, wrapping unclassified errors
// under the given fallback kind so callers always see a taxonomy member.
func Classify(err error, fallback ErrorKind) *PipelineError {
	var perr *PipelineError
	if errors.As(err, &perr) {
		return perr
	}
	return &PipelineError{Kind: fallback, Message: err.Error()}
}
