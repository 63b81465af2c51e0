package analysis

import (
	"errors"
	"fmt"
)

// Kind classifies an analysis failure.
type Kind string

const (
	// KindEmptyInput means the input carried no skills.
	KindEmptyInput Kind = "empty_input"
	// KindAnalysis means the pipeline failed after input was accepted.
	KindAnalysis Kind = "analysis_error"
)

// EmptyInputMessage is shown when no skills were entered.
const EmptyInputMessage = "Please enter at least one skill."

// Error is a user-facing analysis failure. Message is safe to display.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func emptyInputError(err error) *Error {
	return &Error{Kind: KindEmptyInput, Message: EmptyInputMessage, Err: err}
}

func analysisError(err error) *Error {
	return &Error{Kind: KindAnalysis, Message: fmt.Sprintf("Analysis error: %v", err), Err: err}
}

// IsEmptyInput reports whether err is an empty-input failure.
func IsEmptyInput(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindEmptyInput
}
