package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQuestions(t *testing.T) {
	qs, err := DefaultQuestions()
	require.NoError(t, err)
	require.Len(t, qs, 5)

	assert.Equal(t, "Which HTML element is used to include JavaScript code in a page?", qs[0].Prompt)
	assert.Equal(t, []string{"<script>", "<js>", "<javascript>", "<code>"}, qs[0].Choices)
	for _, q := range qs {
		assert.NoError(t, q.Validate())
	}
}

func TestParseBank_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "questions: [unclosed"},
		{"no questions", "questions: []"},
		{"missing correct", "questions:\n  - prompt: p\n    choices: [a, b]\n"},
		{"one choice", "questions:\n  - prompt: p\n    choices: [a]\n    correct: 0\n"},
		{"negative correct", "questions:\n  - prompt: p\n    choices: [a, b]\n    correct: -1\n"},
		{"correct out of range", "questions:\n  - prompt: p\n    choices: [a, b]\n    correct: 2\n"},
		{"unknown field", "questions:\n  - prompt: p\n    choices: [a, b]\n    correct: 0\n    hint: h\n"},
		{"empty prompt", "questions:\n  - prompt: \"\"\n    choices: [a, b]\n    correct: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestParseBank_CorrectOutOfRangeIsInvalidQuestion(t *testing.T) {
	_, err := ParseBank([]byte("questions:\n  - prompt: p\n    choices: [a, b]\n    correct: 5\n"))
	require.ErrorIs(t, err, ErrInvalidQuestion)
}

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"valid", Question{Prompt: "p", Choices: []string{"a", "b"}, CorrectIndex: 1}, false},
		{"empty choice", Question{Prompt: "p", Choices: []string{"a", ""}, CorrectIndex: 0}, true},
		{"no prompt", Question{Choices: []string{"a", "b"}}, true},
		{"index too big", Question{Prompt: "p", Choices: []string{"a", "b"}, CorrectIndex: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidQuestion)
				return
			}
			require.NoError(t, err)
		})
	}
}
