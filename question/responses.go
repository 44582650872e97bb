package question

import "fmt"

// ResponseKey names an entry in a Question's response catalog.
type ResponseKey string

const (
	// AmbiguousCompletion is shown when an abbreviated answer completes to
	// more than one choice.
	AmbiguousCompletion ResponseKey = "ambiguous_completion"

	// AskOnError is the re-prompt fragment shown before re-asking.
	AskOnError ResponseKey = "ask_on_error"

	// InvalidType is shown when the answer cannot be converted.
	InvalidType ResponseKey = "invalid_type"

	// NotInRange is shown when the converted answer is outside the bounds
	// or membership set.
	NotInRange ResponseKey = "not_in_range"

	// NotValid is shown when the raw answer fails validation.
	NotValid ResponseKey = "not_valid"
)

// RepeatQuestion is a sentinel AskOnError value telling the prompt driver
// to re-print the full question instead of a short fragment.
const RepeatQuestion = "question"

// responseKeys lists every catalog key, for definition validation.
var responseKeys = []ResponseKey{
	AmbiguousCompletion,
	AskOnError,
	InvalidType,
	NotInRange,
	NotValid,
}

// KnownResponseKey reports whether name is a catalog key.
func KnownResponseKey(name string) bool {
	for _, key := range responseKeys {
		if name == string(key) {
			return true
		}
	}
	return false
}

// buildResponses computes the default catalog from the question's final
// configuration, then merges caller overrides over it. Called exactly once,
// at the end of New; later mutation of the configuration does not reach the
// message text.
func (q *Question) buildResponses() {
	typeName := q.Type.Name()

	defaults := map[ResponseKey]string{
		AmbiguousCompletion: fmt.Sprintf("Ambiguous choice. Please enter an unambiguous %s.", typeName),
		AskOnError:          "? ",
		InvalidType:         fmt.Sprintf("You must enter a valid %s.", typeName),
		NotInRange:          fmt.Sprintf("Your answer isn't within the expected range (%s).", q.ExpectedRange()),
		NotValid:            q.notValidDefault(),
	}

	for key, text := range q.Responses {
		defaults[key] = text
	}
	q.Responses = defaults
}

// notValidDefault renders the NotValid message from the validation rule.
func (q *Question) notValidDefault() string {
	if q.Validation == nil {
		return "Your answer isn't valid."
	}
	return fmt.Sprintf("Your answer isn't valid (must match %s).", q.Validation.Describe())
}
