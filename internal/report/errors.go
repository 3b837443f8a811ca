package report

import (
	"errors"
	"fmt"
)

// ErrNoCandidates signals that report generation was aborted before any page
// was created because there is nothing to export. It is a caller-facing
// condition, not a layout failure.
var ErrNoCandidates = errors.New("no candidates to export")

// GenerationError represents a fatal failure of the underlying document
// surface. No partial artifact accompanies it.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("report generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
