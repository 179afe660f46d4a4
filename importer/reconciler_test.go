package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(question string, options [4]string, answer string) Row {
	r := Row{"Question": question, "Correct Answer": answer}
	r["Option 1"] = options[0]
	r["Option 2"] = options[1]
	r["Option 3"] = options[2]
	r["Option 4"] = options[3]
	return r
}

func TestReconcileKeepsIndexWhenNoOptionIsEmpty(t *testing.T) {
	result := Reconcile([]Row{
		row("Capital of the UK?", [4]string{"Paris", "London", "Rome", "Berlin"}, "2"),
	})

	require.Len(t, result.Questions, 1)
	q := result.Questions[0]
	require.Len(t, q.Options, 4)
	assert.Equal(t, 1, q.CorrectIndex)
	assert.Equal(t, "London", q.Options[q.CorrectIndex].Text)
	assert.Empty(t, result.Warnings)
}

func TestReconcileRemapsIndexAfterFilteringEmptyOptions(t *testing.T) {
	result := Reconcile([]Row{
		row("Capital of Italy?", [4]string{"Paris", "", "Rome", "Berlin"}, "3"),
	})

	require.Len(t, result.Questions, 1)
	q := result.Questions[0]
	require.Len(t, q.Options, 3)
	assert.Equal(t, 1, q.CorrectIndex)
	assert.Equal(t, "Rome", q.Options[q.CorrectIndex].Text)
}

func TestReconcileAcceptsLetterAnswers(t *testing.T) {
	options := [4]string{"Paris", "London", "Rome", "Berlin"}
	byLetter := Reconcile([]Row{row("Capital of Italy?", options, "C")})
	byNumber := Reconcile([]Row{row("Capital of Italy?", options, "3")})

	require.Len(t, byLetter.Questions, 1)
	require.Len(t, byNumber.Questions, 1)
	assert.Equal(t, byNumber.Questions[0].CorrectIndex, byLetter.Questions[0].CorrectIndex)

	lower := Reconcile([]Row{row("Capital of Italy?", options, "c")})
	require.Len(t, lower.Questions, 1)
	assert.Equal(t, 2, lower.Questions[0].CorrectIndex)
}

func TestReconcileDefaultsUnparseableAnswerToFirstOption(t *testing.T) {
	for _, raw := range []string{"7", "0", "xyz", "AB"} {
		result := Reconcile([]Row{
			row("Capital of France?", [4]string{"Paris", "London", "Rome", "Berlin"}, raw),
		})
		require.Len(t, result.Questions, 1, "answer %q", raw)
		assert.Equal(t, 0, result.Questions[0].CorrectIndex, "answer %q", raw)
		assert.NotEmpty(t, result.Warnings, "answer %q", raw)
	}
}

func TestReconcileDefaultsMissingAnswerColumn(t *testing.T) {
	result := Reconcile([]Row{{
		"Question": "Capital of France?",
		"Option 1": "Paris",
		"Option 2": "London",
	}})

	require.Len(t, result.Questions, 1)
	assert.Equal(t, 0, result.Questions[0].CorrectIndex)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, 1, result.Warnings[0].Row)
}

func TestReconcileWarnsWhenCorrectOptionIsEmpty(t *testing.T) {
	result := Reconcile([]Row{
		row("Capital of France?", [4]string{"Paris", "", "Rome", "Berlin"}, "2"),
	})

	require.Len(t, result.Questions, 1)
	q := result.Questions[0]
	assert.Equal(t, 0, q.CorrectIndex)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "correct option")
}

func TestReconcileDropsUnusableRows(t *testing.T) {
	result := Reconcile([]Row{
		{"Question": "Only one option", "Option 1": "Paris", "Correct Answer": "1"},
		{"Option 1": "Paris", "Option 2": "London", "Correct Answer": "1"},
		row("Keeper", [4]string{"Paris", "London", "", ""}, "1"),
	})

	require.Len(t, result.Questions, 1)
	assert.Equal(t, "Keeper", result.Questions[0].Text)
	assert.Equal(t, 2, result.Dropped)
}

func TestReconcileAlternateColumnNames(t *testing.T) {
	result := Reconcile([]Row{{
		"question":      "Capital of Germany?",
		"option1":       "Paris",
		"option2":       "Berlin",
		"correctAnswer": "2",
		"explanation":   "Berlin is the capital.",
		"difficulty":    "Hard",
	}})

	require.Len(t, result.Questions, 1)
	q := result.Questions[0]
	assert.Equal(t, 1, q.CorrectIndex)
	assert.Equal(t, "Berlin is the capital.", q.Explanation)
	assert.Equal(t, "hard", q.Difficulty)
	assert.Empty(t, result.Warnings)
}

func TestReconcileDefaultsDifficultyAndStatus(t *testing.T) {
	result := Reconcile([]Row{
		row("Capital of France?", [4]string{"Paris", "London", "", ""}, "1"),
	})

	require.Len(t, result.Questions, 1)
	assert.Equal(t, "medium", result.Questions[0].Difficulty)
	assert.Equal(t, "published", result.Questions[0].Status)
}

func TestReconcileTrimsOptionText(t *testing.T) {
	result := Reconcile([]Row{
		row("Capital of France?", [4]string{"  Paris  ", " London", "   ", ""}, "1"),
	})

	require.Len(t, result.Questions, 1)
	q := result.Questions[0]
	require.Len(t, q.Options, 2)
	assert.Equal(t, "Paris", q.Options[0].Text)
	assert.Equal(t, "London", q.Options[1].Text)
}
