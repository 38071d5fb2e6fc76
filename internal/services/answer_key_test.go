package services

import (
	"testing"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnswerKey_OrdersByPosition(t *testing.T) {
	tfng := questionType(2, "True/False/Not Given", "TRUE", "NOT GIVEN")
	mcq := questionType(1, "Multiple Choice Questions (MCQ)", "A", "C")
	second := passage(2, questionType(1, "Sentence Completion", "photosynthesis"))
	first := passage(1, tfng, mcq)

	test := &models.ReadingTest{Passages: []models.Passage{second, first}}
	key := BuildAnswerKey(test)

	require.Len(t, key, 5)
	assert.Equal(t, scoring.KeyEntry{
		CorrectAnswer:        "A",
		QuestionType:         "Multiple Choice Questions (MCQ)",
		PassageID:            first.ID.String(),
		QuestionTypeID:       mcq.ID.String(),
		LocalQuestionNumber:  1,
		GlobalQuestionNumber: 1,
	}, key["1"])
	assert.Equal(t, "C", key["2"].CorrectAnswer)
	assert.Equal(t, "TRUE", key["3"].CorrectAnswer)
	assert.Equal(t, 2, key["4"].LocalQuestionNumber)
	assert.Equal(t, "NOT GIVEN", key["4"].CorrectAnswer)
	assert.Equal(t, "photosynthesis", key["5"].CorrectAnswer)
	assert.Equal(t, second.ID.String(), key["5"].PassageID)

	// the input is not reordered
	assert.Equal(t, 2, test.Passages[0].Order)
}

func TestBuildAnswerKey_CapsAtForty(t *testing.T) {
	test := &models.ReadingTest{Passages: []models.Passage{
		passage(1, questionType(1, "Matching Headings", repeatAnswer("i", 14)...)),
		passage(2, questionType(1, "Summary Completion", repeatAnswer("x", 14)...)),
		passage(3, questionType(1, "Yes/No/Not Given", repeatAnswer("YES", 14)...)),
	}}

	key := BuildAnswerKey(test)

	assert.Len(t, key, scoring.TotalQuestions)
	assert.Equal(t, "YES", key["40"].CorrectAnswer)
	assert.Equal(t, 12, key["40"].LocalQuestionNumber)
	_, ok := key["41"]
	assert.False(t, ok)
}

func TestBuildAnswerKey_UsesStoredQuestionNumbers(t *testing.T) {
	qt := models.QuestionType{Type: "Matching Headings", Order: 1, QuestionsData: []models.QuestionItem{
		{Number: 14, Answer: "iv"},
		{Number: 15, Answer: "ii"},
		{Answer: "vii"},
	}}
	key := BuildAnswerKey(&models.ReadingTest{Passages: []models.Passage{passage(1, qt)}})

	require.Len(t, key, 3)
	assert.Equal(t, 14, key["1"].LocalQuestionNumber)
	assert.Equal(t, 15, key["2"].LocalQuestionNumber)
	assert.Equal(t, 1, key["3"].LocalQuestionNumber)
	assert.Equal(t, 3, key["3"].GlobalQuestionNumber)
}

func TestBuildAnswerKey_Empty(t *testing.T) {
	assert.Empty(t, BuildAnswerKey(nil))
	assert.Empty(t, BuildAnswerKey(&models.ReadingTest{}))
}

func TestAssignStudentRanges(t *testing.T) {
	test := &models.ReadingTest{Passages: []models.Passage{
		passage(2, questionType(1, "Note Completion", "a", "b", "c")),
		passage(1,
			questionType(2, "True/False/Not Given", "TRUE", "FALSE"),
			questionType(1, "Multiple Choice Questions (MCQ)", "A", "B", "C", "D"),
			questionType(3, "Diagram Label Completion"),
		),
	}}

	AssignStudentRanges(test)

	first := test.Passages[0]
	require.Equal(t, 1, first.Order)
	assert.Equal(t, "1-4", first.QuestionTypes[0].StudentRange)
	assert.Equal(t, 4, first.QuestionTypes[0].ActualCount)
	assert.Equal(t, "5-6", first.QuestionTypes[1].StudentRange)
	assert.Equal(t, "", first.QuestionTypes[2].StudentRange)
	assert.Equal(t, "7-9", test.Passages[1].QuestionTypes[0].StudentRange)
}
