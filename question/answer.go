package question

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Symbol is the interned token type produced by Atom questions. Two Symbols
// compare equal exactly when their text does.
type Symbol string

// AnswerKind enumerates the convertible answer types.
type AnswerKind int

const (
	KindString AnswerKind = iota
	KindInt
	KindFloat
	KindSymbol
	KindRegexp
	KindDate
	KindDateTime
	KindChoice
	KindCustom
)

// dateLayout is the accepted calendar date form.
const dateLayout = "2006-01-02"

// dateTimeLayouts are tried in order for DateTime questions.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// AnswerType declares the target type an answer string is converted to.
// Build one with the constructors below. The zero value passes answers
// through unchanged, which is the right behavior for untyped questions.
type AnswerType struct {
	kind      AnswerKind
	choices   []string
	transform func(string) (any, error)
}

// Text declares a plain text answer. Conversion is the identity; it exists
// so definitions can request "text" explicitly.
func Text() AnswerType { return AnswerType{kind: KindString} }

// Int declares an integer answer, parsed with strict literal rules.
func Int() AnswerType { return AnswerType{kind: KindInt} }

// Float declares a floating-point answer, parsed with strict literal rules.
func Float() AnswerType { return AnswerType{kind: KindFloat} }

// Atom declares a symbol-like token answer. Conversion always succeeds and
// yields a Symbol.
func Atom() AnswerType { return AnswerType{kind: KindSymbol} }

// Pattern declares that the answer itself is a regular expression, compiled
// during conversion.
func Pattern() AnswerType { return AnswerType{kind: KindRegexp} }

// Date declares a calendar date answer in YYYY-MM-DD form.
func Date() AnswerType { return AnswerType{kind: KindDate} }

// DateTime declares a calendar date-and-time answer (RFC 3339, or
// "YYYY-MM-DD HH:MM[:SS]" with a space or "T" separator).
func DateTime() AnswerType { return AnswerType{kind: KindDateTime} }

// OneOf declares an enumerated choice answer. Abbreviated answers complete
// to the unique choice they are a case-sensitive prefix of; an answer equal
// to a choice wins outright even when it is also a prefix of others.
func OneOf(choices ...string) AnswerType {
	return AnswerType{kind: KindChoice, choices: choices}
}

// Transform declares a custom conversion. Errors from fn propagate to the
// caller as InvalidTypeError values; they are never swallowed.
func Transform(fn func(string) (any, error)) AnswerType {
	return AnswerType{kind: KindCustom, transform: fn}
}

// Kind returns the declared kind.
func (t AnswerType) Kind() AnswerKind { return t.kind }

// Choices returns a copy of the enumerated choices, in declaration order.
// It is empty for non-choice types.
func (t AnswerType) Choices() []string {
	out := make([]string, len(t.choices))
	copy(out, t.choices)
	return out
}

// Name returns the human-readable type name used in response messages.
func (t AnswerType) Name() string {
	switch t.kind {
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindRegexp:
		return "pattern"
	case KindDate:
		return "date"
	case KindDateTime:
		return "date and time"
	case KindChoice:
		return "choice of [" + strings.Join(t.choices, ", ") + "]"
	case KindCustom:
		return "answer"
	}
	return "string"
}

// Convert parses input according to the declared type. The result is one
// of string, int, float64, Symbol, *regexp.Regexp, time.Time, or whatever a
// custom Transform returned. Failures are InvalidTypeError,
// AmbiguousCompletionError, or InvalidPatternError values; Convert has no
// side effects and is referentially stable.
func (t AnswerType) Convert(input string) (any, error) {
	switch t.kind {
	case KindInt:
		n, err := strconv.Atoi(input)
		if err != nil {
			return nil, &InvalidTypeError{Attempted: input, TypeName: t.Name(), cause: err}
		}
		return n, nil

	case KindFloat:
		f, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return nil, &InvalidTypeError{Attempted: input, TypeName: t.Name(), cause: err}
		}
		return f, nil

	case KindSymbol:
		return Symbol(input), nil

	case KindRegexp:
		re, err := regexp.Compile(input)
		if err != nil {
			return nil, &InvalidPatternError{Attempted: input, cause: err}
		}
		return re, nil

	case KindDate:
		d, err := time.Parse(dateLayout, input)
		if err != nil {
			return nil, &InvalidTypeError{Attempted: input, TypeName: t.Name(), cause: err}
		}
		return d, nil

	case KindDateTime:
		var firstErr error
		for _, layout := range dateTimeLayouts {
			d, err := time.Parse(layout, input)
			if err == nil {
				return d, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		return nil, &InvalidTypeError{Attempted: input, TypeName: t.Name(), cause: firstErr}

	case KindChoice:
		return t.complete(input)

	case KindCustom:
		v, err := t.transform(input)
		if err != nil {
			return nil, &InvalidTypeError{Attempted: input, TypeName: t.Name(), cause: err}
		}
		return v, nil
	}

	return input, nil
}

// complete resolves a possibly abbreviated answer against the choices.
func (t AnswerType) complete(input string) (any, error) {
	var candidates []string
	for _, choice := range t.choices {
		if choice == input {
			return choice, nil
		}
		if strings.HasPrefix(choice, input) {
			candidates = append(candidates, choice)
		}
	}

	switch len(candidates) {
	case 0:
		return nil, &InvalidTypeError{Attempted: input, TypeName: t.Name()}
	case 1:
		return candidates[0], nil
	}
	return nil, &AmbiguousCompletionError{Attempted: input, Candidates: candidates}
}
