package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a per-document pipeline failure. Each kind maps to one
// stage of the extraction pipeline; the batch driver logs the kind and
// moves on to the next document.
type Kind string

const (
	// KindEncodingUnresolved means no candidate encoding produced text
	// containing both a headline tag and a body tag.
	KindEncodingUnresolved Kind = "ENCODING_UNRESOLVED"
	// KindTagNotFound means the decoded text lacked a headline or body tag.
	KindTagNotFound Kind = "TAG_NOT_FOUND"
	// KindHeaderNotFound means the parsed body had no sentinel header row.
	KindHeaderNotFound Kind = "HEADER_NOT_FOUND"
	// KindNoCandidateData means zero rows passed candidate classification.
	KindNoCandidateData Kind = "NO_CANDIDATE_DATA"
	// KindRenderFailure means a report could not be written.
	KindRenderFailure Kind = "RENDER_FAILURE"
)

// PipelineError is a typed per-document failure. It records which stage
// failed so callers and tests can assert on the failure kind rather than
// matching message strings.
type PipelineError struct {
	Kind    Kind
	Stage   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a PipelineError of the same kind. This
// lets predefined sentinel values below work with errors.Is.
func (e *PipelineError) Is(target error) bool {
	var pe *PipelineError
	if !errors.As(target, &pe) {
		return false
	}
	return e.Kind == pe.Kind
}

// New creates a new PipelineError with the given parameters.
func New(kind Kind, stage, message string) *PipelineError {
	return &PipelineError{Kind: kind, Stage: stage, Message: message}
}

// Wrap creates a new PipelineError wrapping an underlying cause.
func Wrap(kind Kind, stage, message string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Stage: stage, Message: message, Err: err}
}

// Predefined sentinels for errors.Is checks.
var (
	ErrEncodingUnresolved = New(KindEncodingUnresolved, "resolve", "no candidate encoding yielded both required tags")
	ErrTagNotFound        = New(KindTagNotFound, "extract", "headline or body tag not found")
	ErrHeaderNotFound     = New(KindHeaderNotFound, "classify", "sentinel header row not found")
	ErrNoCandidateData    = New(KindNoCandidateData, "classify", "no rows passed candidate classification")
	ErrRenderFailure      = New(KindRenderFailure, "render", "report rendering failed")
)

// KindOf extracts the failure kind from an error chain. The second
// return value is false when the chain carries no PipelineError.
func KindOf(err error) (Kind, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}
