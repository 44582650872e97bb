package question

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAnswer_NoValidationAcceptsEverything(t *testing.T) {
	q := New("Name: ", Text(), nil)
	assert.True(t, q.ValidAnswer(""))
	assert.True(t, q.ValidAnswer("anything"))
}

func TestValidAnswer_Pattern(t *testing.T) {
	q := New("Module path: ", Text(), func(q *Question) {
		q.Validation = MatchPattern(regexp.MustCompile(`^[a-z]+(\.[a-z]+)+/`))
	})

	assert.True(t, q.ValidAnswer("github.com/simonhull/firebird-suite/quill"))
	assert.False(t, q.ValidAnswer("not a module path"))
}

func TestValidAnswer_PatternMatchesAnywhere(t *testing.T) {
	q := New("Note: ", Text(), func(q *Question) {
		q.Validation = MatchPattern(regexp.MustCompile(`bird`))
	})

	assert.True(t, q.ValidAnswer("the firebird rises"), "pattern is unanchored")
}

func TestValidAnswer_Predicate(t *testing.T) {
	q := New("Shout: ", Text(), func(q *Question) {
		q.Validation = MatchFunc(func(s string) bool {
			return s == strings.ToUpper(s)
		})
	})

	assert.True(t, q.ValidAnswer("LOUD"))
	assert.False(t, q.ValidAnswer("quiet"))
}

func TestValidatorDescribe(t *testing.T) {
	assert.Equal(t, `^ya?ml$`, MatchPattern(regexp.MustCompile(`^ya?ml$`)).Describe())
	assert.Equal(t, "a custom check", MatchFunc(func(string) bool { return true }).Describe())
	assert.Equal(t, "an existing schema", DescribedFunc("an existing schema", func(string) bool { return true }).Describe())
}
