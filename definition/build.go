package definition

import (
	"fmt"
	"regexp"

	"github.com/simonhull/firebird-suite/quill/question"
)

// Build validates the definition and constructs a finalized Question from
// it. Bounds and membership entries are converted through the declared
// answer type, so an integer question gets int bounds and a date question
// gets time.Time bounds.
func (d *Definition) Build() (*question.Question, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	answerType, err := d.answerType()
	if err != nil {
		return nil, err
	}

	var above, below any
	if d.Above != "" {
		if above, err = answerType.Convert(d.Above); err != nil {
			return nil, fmt.Errorf("failed to convert bound: %w", err)
		}
	}
	if d.Below != "" {
		if below, err = answerType.Convert(d.Below); err != nil {
			return nil, fmt.Errorf("failed to convert bound: %w", err)
		}
	}

	var members []any
	for _, raw := range d.In {
		member, err := answerType.Convert(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to convert membership entry: %w", err)
		}
		members = append(members, member)
	}

	return question.New(d.Prompt, answerType, func(q *question.Question) {
		if d.Whitespace != "" {
			// Validate already vetted the name.
			mode, _ := question.ParseWhitespaceMode(d.Whitespace)
			q.Whitespace = mode
		}
		q.Default = d.Default
		if d.Pattern != "" {
			q.Validation = question.MatchPattern(regexp.MustCompile(d.Pattern))
		}
		q.Above = above
		q.Below = below
		q.In = members
		if len(d.Responses) > 0 {
			q.Responses = make(map[question.ResponseKey]string, len(d.Responses))
			for key, text := range d.Responses {
				q.Responses[question.ResponseKey(key)] = text
			}
		}
	}), nil
}
