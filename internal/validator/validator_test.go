package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answerInput struct {
	QuestionNumber int `json:"question_number" validate:"question_number"`
}

type bandInput struct {
	CorrectCount *int `json:"correct_count" validate:"required,correct_count"`
}

func intPtr(n int) *int { return &n }

func TestValidator_QuestionNumber(t *testing.T) {
	v := New()

	for _, n := range []int{1, 20, 40} {
		assert.NoError(t, v.Validate(answerInput{QuestionNumber: n}), "n=%d", n)
	}
	for _, n := range []int{0, -1, 41} {
		err := v.Validate(answerInput{QuestionNumber: n})
		require.Error(t, err, "n=%d", n)

		errs, ok := err.(ValidationErrors)
		require.True(t, ok)
		assert.Equal(t, "question_number", errs[0].Field)
		assert.Equal(t, "must be a question number between 1 and 40", errs[0].Message)
	}
}

func TestValidator_CorrectCount(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(bandInput{CorrectCount: intPtr(0)}))
	assert.NoError(t, v.Validate(bandInput{CorrectCount: intPtr(40)}))

	err := v.Validate(bandInput{CorrectCount: intPtr(41)})
	require.Error(t, err)
	assert.Equal(t, "correct_count", err.(ValidationErrors)[0].Rule)

	err = v.Validate(bandInput{})
	require.Error(t, err)
	assert.Equal(t, "required", err.(ValidationErrors)[0].Rule)
}

func TestValidator_Var(t *testing.T) {
	v := New()
	assert.NoError(t, v.Var(12, "correct_count"))
	assert.Error(t, v.Var(-3, "correct_count"))
}
