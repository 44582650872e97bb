// Package question defines the validation and conversion pipeline behind a
// single interactive prompt.
//
// # Overview
//
// Tools in the Firebird Suite ask users one-line questions. A Question holds
// everything needed to turn the typed line into a validated, typed answer:
// whitespace normalization, default substitution, validation, type
// conversion with prefix completion, range and membership checks, and the
// messages shown when any of those fail. The terminal loop itself lives in
// the calling tool; this package never reads or writes the terminal.
//
// # Usage
//
// Build a Question once, then run its operations per attempt:
//
//	q := question.New("Environment? ", question.OneOf("dev", "development", "prod"), func(q *question.Question) {
//		q.Default = "dev"
//	})
//
//	answer := q.RemoveWhitespace(line)
//	answer = q.AnswerOrDefault(answer)
//	if !q.ValidAnswer(answer) {
//		// show q.Responses[question.NotValid], re-ask
//	}
//	value, err := q.Convert(answer)
//	if err != nil {
//		// show q.Responses[question.ResponseKeyFor(err)], re-ask
//	}
//	if !q.InRange(value) {
//		// show q.Responses[question.NotInRange], re-ask
//	}
//
// Re-asking, echo control, and styling are the caller's job. Every
// operation above is side-effect-free, so a finalized Question is safe for
// concurrent use across goroutines.
package question
