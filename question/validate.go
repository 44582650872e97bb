package question

import "regexp"

// Validator checks a raw answer before any conversion is attempted.
type Validator interface {
	// Valid reports whether the raw answer passes the check.
	Valid(answer string) bool

	// Describe returns the rule description embedded in the NotValid
	// response message.
	Describe() string
}

// MatchPattern returns a Validator satisfied by answers the pattern matches
// anywhere.
func MatchPattern(re *regexp.Regexp) Validator {
	return patternValidator{re: re}
}

// MatchFunc returns a Validator backed by an arbitrary predicate. The
// NotValid message describes it opaquely; use DescribedFunc to name the
// rule in messages.
func MatchFunc(fn func(string) bool) Validator {
	return predicateValidator{fn: fn, desc: "a custom check"}
}

// DescribedFunc is MatchFunc with a description for response messages,
// e.g. DescribedFunc("an existing directory", isDir).
func DescribedFunc(desc string, fn func(string) bool) Validator {
	return predicateValidator{fn: fn, desc: desc}
}

type patternValidator struct {
	re *regexp.Regexp
}

func (v patternValidator) Valid(answer string) bool { return v.re.MatchString(answer) }
func (v patternValidator) Describe() string         { return v.re.String() }

type predicateValidator struct {
	fn   func(string) bool
	desc string
}

func (v predicateValidator) Valid(answer string) bool { return v.fn(answer) }
func (v predicateValidator) Describe() string         { return v.desc }

// ValidAnswer reports whether the raw, pre-conversion answer passes the
// question's validation. Questions without validation accept everything.
func (q *Question) ValidAnswer(answer string) bool {
	if q.Validation == nil {
		return true
	}
	return q.Validation.Valid(answer)
}
