package question

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponses_Defaults(t *testing.T) {
	q := New("Count: ", Int(), func(q *Question) {
		q.Above = 0
		q.Below = 10
	})

	assert.Equal(t, "You must enter a valid integer.", q.Responses[InvalidType])
	assert.Equal(t, "Your answer isn't within the expected range (above 0 and below 10).", q.Responses[NotInRange])
	assert.Equal(t, "Your answer isn't valid.", q.Responses[NotValid])
	assert.Equal(t, "? ", q.Responses[AskOnError])
	assert.Equal(t, "Ambiguous choice. Please enter an unambiguous integer.", q.Responses[AmbiguousCompletion])
}

func TestResponses_EmbedTypeName(t *testing.T) {
	q := New("Env: ", OneOf("dev", "prod"), nil)

	assert.Equal(t, "You must enter a valid choice of [dev, prod].", q.Responses[InvalidType])
	assert.Equal(t, "Ambiguous choice. Please enter an unambiguous choice of [dev, prod].", q.Responses[AmbiguousCompletion])
}

func TestResponses_EmbedValidationRule(t *testing.T) {
	q := New("Version: ", Text(), func(q *Question) {
		q.Validation = MatchPattern(regexp.MustCompile(`^v\d+`))
	})

	assert.Equal(t, `Your answer isn't valid (must match ^v\d+).`, q.Responses[NotValid])
}

func TestResponses_OverridesWin(t *testing.T) {
	q := New("Count: ", Int(), func(q *Question) {
		q.Responses = map[ResponseKey]string{
			InvalidType: "Digits only, please.",
			AskOnError:  RepeatQuestion,
		}
	})

	assert.Equal(t, "Digits only, please.", q.Responses[InvalidType])
	assert.Equal(t, RepeatQuestion, q.Responses[AskOnError])
	// Untouched keys still get computed defaults.
	assert.Equal(t, "Your answer isn't valid.", q.Responses[NotValid])
	assert.Equal(t, "Ambiguous choice. Please enter an unambiguous integer.", q.Responses[AmbiguousCompletion])
}

func TestResponses_SnapshotConfigurationAtFinalize(t *testing.T) {
	q := New("Count: ", Int(), func(q *Question) {
		q.Above = 0
	})

	// Mutating bounds after New must not rewrite the message text.
	q.Above = 100
	assert.Equal(t, "Your answer isn't within the expected range (above 0).", q.Responses[NotInRange])
}

func TestKnownResponseKey(t *testing.T) {
	assert.True(t, KnownResponseKey("not_in_range"))
	assert.True(t, KnownResponseKey("ask_on_error"))
	assert.False(t, KnownResponseKey("on_fire"))
}

func TestResponseKeyFor(t *testing.T) {
	_, err := OneOf("dev", "development").Convert("de")
	assert.Equal(t, AmbiguousCompletion, ResponseKeyFor(err))

	_, err = Int().Convert("4.2")
	assert.Equal(t, InvalidType, ResponseKeyFor(err))

	_, err = Pattern().Convert("[")
	assert.Equal(t, InvalidType, ResponseKeyFor(err))
}
