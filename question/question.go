package question

import "strings"

// Question is the full configuration behind one interactive prompt: how to
// normalize, default, validate, convert, and range-check a single line of
// input, plus the messages shown when any of that fails.
//
// Fields are set inside the configure callback passed to New and are
// treated as read-only afterward. A finalized Question never mutates
// itself, so it is safe for concurrent use.
type Question struct {
	// Type declares the target type the answer converts to. The zero value
	// passes answers through unchanged.
	Type AnswerType

	// Whitespace selects how the raw answer is normalized. Defaults to
	// Strip.
	Whitespace WhitespaceMode

	// Default is substituted for an empty answer and embedded into the
	// prompt at construction. Empty means no default.
	Default string

	// Validation, when set, checks the raw answer before conversion.
	Validation Validator

	// Above and Below are exclusive bounds on the converted answer.
	Above any
	Below any

	// In is a membership set the converted answer must belong to.
	In []any

	// Responses holds message overrides during configuration. After New
	// returns it is the complete catalog: computed defaults with the
	// overrides merged over them.
	Responses map[ResponseKey]string

	prompt string
}

// New builds a finalized Question. The configure callback, when non-nil,
// customizes the question; New then embeds the default into the prompt and
// computes the response catalog, both exactly once. Mutating the Question
// after New returns does not recompute either.
//
// Example:
//
//	q := question.New("Port? ", question.Int(), func(q *question.Question) {
//		q.Default = "8080"
//		q.Above = 0
//		q.Below = 65536
//	})
func New(prompt string, answerType AnswerType, configure func(*Question)) *Question {
	q := &Question{
		Type:   answerType,
		prompt: prompt,
	}
	if configure != nil {
		configure(q)
	}
	if q.Default != "" {
		q.prompt = appendDefault(q.prompt, q.Default)
	}
	q.buildResponses()
	return q
}

// AnswerOrDefault substitutes the question's default for an empty answer.
// Non-empty answers pass through untouched.
func (q *Question) AnswerOrDefault(raw string) string {
	if raw == "" && q.Default != "" {
		return q.Default
	}
	return raw
}

// RemoveWhitespace normalizes a raw answer with the question's whitespace
// mode.
func (q *Question) RemoveWhitespace(raw string) string {
	return RemoveWhitespace(raw, q.Whitespace)
}

// Convert parses a normalized answer into the question's declared type.
func (q *Question) Convert(answer string) (any, error) {
	return q.Type.Convert(answer)
}

// String returns the prompt text, with any default already embedded.
func (q *Question) String() string {
	return q.prompt
}

// appendDefault embeds |def| into the prompt text. Placement preserves the
// prompt's trailing shape: before a trailing run of spaces and tabs; two
// characters before the end when the prompt ends in a single line
// terminator; "|def|  " for an empty prompt; otherwise appended after two
// spaces.
func appendDefault(prompt, def string) string {
	bracket := "|" + def + "|"

	if i := trailingHorizontal(prompt); i < len(prompt) {
		return prompt[:i] + bracket + prompt[i:]
	}
	if prompt == "" {
		return bracket + "  "
	}
	if len(prompt) >= 2 && strings.HasSuffix(prompt, "\n") && !strings.HasSuffix(prompt, "\n\n") {
		return prompt[:len(prompt)-2] + "  " + bracket + prompt[len(prompt)-2:]
	}
	return prompt + "  " + bracket
}

// trailingHorizontal returns the index where the trailing run of spaces and
// tabs begins, or len(prompt) when there is none.
func trailingHorizontal(prompt string) int {
	i := len(prompt)
	for i > 0 && (prompt[i-1] == ' ' || prompt[i-1] == '\t') {
		i--
	}
	return i
}
