package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerOrDefault(t *testing.T) {
	withDefault := New("Name? ", Text(), func(q *Question) {
		q.Default = "bob"
	})
	noDefault := New("Name? ", Text(), nil)

	assert.Equal(t, "bob", withDefault.AnswerOrDefault(""))
	assert.Equal(t, "alice", withDefault.AnswerOrDefault("alice"), "non-empty answers win over the default")
	assert.Equal(t, "", noDefault.AnswerOrDefault(""))
	assert.Equal(t, "x", noDefault.AnswerOrDefault("x"))
}

func TestNew_AppendsDefaultToPrompt(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{
			name:     "before trailing space run",
			prompt:   "Name? ",
			expected: "Name?|bob| ",
		},
		{
			name:     "before trailing tab and space run",
			prompt:   "Name?\t  ",
			expected: "Name?|bob|\t  ",
		},
		{
			name:     "empty prompt",
			prompt:   "",
			expected: "|bob|  ",
		},
		{
			name:     "single trailing newline inserts two before the end",
			prompt:   "Name?\n",
			expected: "Name  |bob|?\n",
		},
		{
			name:     "no trailing whitespace appends with two spaces",
			prompt:   "Name?",
			expected: "Name?  |bob|",
		},
		// The next two shapes are not covered by the three documented
		// placement cases; they take the plain-append branch.
		{
			name:     "double trailing newline",
			prompt:   "Name?\n\n",
			expected: "Name?\n\n  |bob|",
		},
		{
			name:     "prompt that is only a newline",
			prompt:   "\n",
			expected: "\n  |bob|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(tt.prompt, Text(), func(q *Question) {
				q.Default = "bob"
			})
			assert.Equal(t, tt.expected, q.String())
		})
	}
}

func TestNew_NoDefaultLeavesPromptAlone(t *testing.T) {
	q := New("Name? ", Text(), nil)
	assert.Equal(t, "Name? ", q.String())
}

func TestNew_DefaultEmbeddedExactlyOnce(t *testing.T) {
	q := New("Name? ", Text(), func(q *Question) {
		q.Default = "bob"
	})

	// Changing the default afterward must not re-mutate the prompt.
	q.Default = "alice"
	assert.Equal(t, "Name?|bob| ", q.String())
	assert.Equal(t, "alice", q.AnswerOrDefault(""))
}

func TestNew_NilConfigure(t *testing.T) {
	q := New("Ready? ", Text(), nil)
	assert.Equal(t, "Ready? ", q.String())
	assert.Equal(t, Strip, q.Whitespace)
	assert.Len(t, q.Responses, 5)
}

func TestQuestion_Pipeline(t *testing.T) {
	// The full driver-side sequence: normalize, default, validate,
	// convert, range-check.
	q := New("Port? ", Int(), func(q *Question) {
		q.Default = "8080"
		q.Above = 0
		q.Below = 65536
	})

	answer := q.RemoveWhitespace("  8443\n")
	assert.Equal(t, "8443", answer)

	answer = q.AnswerOrDefault(answer)
	require.True(t, q.ValidAnswer(answer))

	value, err := q.Convert(answer)
	require.NoError(t, err)
	assert.Equal(t, 8443, value)
	assert.True(t, q.InRange(value))
}

func TestQuestion_PipelineUsesDefaultOnEmptyLine(t *testing.T) {
	q := New("Port? ", Int(), func(q *Question) {
		q.Default = "8080"
	})

	answer := q.AnswerOrDefault(q.RemoveWhitespace("\n"))
	value, err := q.Convert(answer)
	require.NoError(t, err)
	assert.Equal(t, 8080, value)
}

func TestQuestion_ConcurrentReads(t *testing.T) {
	q := New("Env? ", OneOf("dev", "development", "prod"), func(q *Question) {
		q.Default = "dev"
	})

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_, _ = q.Convert("pro")
				_ = q.AnswerOrDefault("")
				_ = q.RemoveWhitespace("  x  ")
				_ = q.ValidAnswer("x")
				_ = q.Responses[InvalidType]
				_ = q.String()
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
