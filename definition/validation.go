package definition

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/simonhull/firebird-suite/quill/question"
)

// ValidationError represents a definition validation error with context.
type ValidationError struct {
	Field      string // Field name in the definition (e.g., "type")
	Message    string // Error message
	Suggestion string // Helpful suggestion (optional)
}

// Error returns a formatted error message.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	result := fmt.Sprintf("found %d validation errors:\n", len(e))
	for i, err := range e {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

// Validate checks every field of the definition and reports all problems
// at once. A nil return means Build will succeed.
func (d *Definition) Validate() error {
	var errs ValidationErrors

	typeName := strings.ToLower(strings.TrimSpace(d.Type))
	if typeName == "choice" {
		if len(d.Choices) == 0 {
			errs = append(errs, ValidationError{
				Field:      "choices",
				Message:    "type \"choice\" requires at least one choice",
				Suggestion: "list the allowed answers under choices",
			})
		}
	} else {
		if _, ok := typeNames[typeName]; !ok {
			errs = append(errs, ValidationError{
				Field:      "type",
				Message:    fmt.Sprintf("unknown answer type %q", d.Type),
				Suggestion: "one of: " + strings.Join(knownTypeNames(), ", "),
			})
		}
		if len(d.Choices) > 0 {
			errs = append(errs, ValidationError{
				Field:      "choices",
				Message:    fmt.Sprintf("choices are only valid for type \"choice\", not %q", d.Type),
				Suggestion: "set type: choice",
			})
		}
	}

	if d.Whitespace != "" {
		if _, ok := question.ParseWhitespaceMode(d.Whitespace); !ok {
			errs = append(errs, ValidationError{
				Field:      "whitespace",
				Message:    fmt.Sprintf("unknown whitespace mode %q", d.Whitespace),
				Suggestion: "one of: strip, chomp, collapse, strip_and_collapse, chomp_and_collapse, remove, none",
			})
		}
	}

	if d.Pattern != "" {
		if _, err := regexp.Compile(d.Pattern); err != nil {
			errs = append(errs, ValidationError{
				Field:   "pattern",
				Message: fmt.Sprintf("invalid pattern: %v", err),
			})
		}
	}

	for key := range d.Responses {
		if !question.KnownResponseKey(key) {
			errs = append(errs, ValidationError{
				Field:      "responses." + key,
				Message:    fmt.Sprintf("unknown response key %q", key),
				Suggestion: "one of: ambiguous_completion, ask_on_error, invalid_type, not_in_range, not_valid",
			})
		}
	}

	errs = append(errs, d.validateBounds(typeName)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateBounds checks that bound and membership strings convert under
// the declared type, so range mistakes surface at load time rather than
// mid-prompt.
func (d *Definition) validateBounds(typeName string) ValidationErrors {
	ctor, ok := typeNames[typeName]
	if !ok {
		// Unknown or choice type: bound conversion is checked elsewhere or
		// not meaningful.
		return nil
	}
	answerType := ctor()

	var errs ValidationErrors
	check := func(field, raw string) {
		if raw == "" {
			return
		}
		if _, err := answerType.Convert(raw); err != nil {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%q does not convert to %s", raw, answerType.Name()),
			})
		}
	}

	check("above", d.Above)
	check("below", d.Below)
	for i, member := range d.In {
		check(fmt.Sprintf("in[%d]", i), member)
	}
	return errs
}

// knownTypeNames lists the accepted type spellings for suggestions.
func knownTypeNames() []string {
	names := []string{"choice"}
	for name := range typeNames {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
