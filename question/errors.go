package question

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidTypeError reports that an answer could not be converted to the
// question's declared type.
type InvalidTypeError struct {
	Attempted string // the answer that failed to convert
	TypeName  string // human-readable name of the requested type
	cause     error
}

// Error returns a formatted error message.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Attempted, e.TypeName)
}

// Unwrap returns the underlying parse error, if any.
func (e *InvalidTypeError) Unwrap() error { return e.cause }

// AmbiguousCompletionError reports that an abbreviated answer was a prefix
// of more than one choice, with no exact match to break the tie.
type AmbiguousCompletionError struct {
	Attempted  string   // the abbreviated answer
	Candidates []string // every choice the answer is a prefix of, in choice order
}

// Error returns a formatted error message.
func (e *AmbiguousCompletionError) Error() string {
	return fmt.Sprintf("%q is ambiguous: matches %s", e.Attempted, strings.Join(e.Candidates, ", "))
}

// InvalidPatternError reports that the answer to a pattern-typed question
// was not a syntactically valid regular expression.
type InvalidPatternError struct {
	Attempted string // the answer that failed to compile
	cause     error
}

// Error returns a formatted error message.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("%q is not a valid pattern: %v", e.Attempted, e.cause)
}

// Unwrap returns the underlying compile error.
func (e *InvalidPatternError) Unwrap() error { return e.cause }

// ResponseKeyFor maps a Convert error to the response catalog entry the
// prompt driver should show for it.
func ResponseKeyFor(err error) ResponseKey {
	var ambiguous *AmbiguousCompletionError
	if errors.As(err, &ambiguous) {
		return AmbiguousCompletion
	}
	return InvalidType
}
