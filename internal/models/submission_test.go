package models

import (
	"testing"

	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestSubmission_StudentAnswers(t *testing.T) {
	s := &Submission{Answers: []StudentAnswer{
		{QuestionNumber: 1, Answer: datatypes.NewJSONType(scoring.Single("A"))},
		{QuestionNumber: 2, Answer: datatypes.NewJSONType(scoring.Multiple("B", "C"))},
		{QuestionNumber: 1, Answer: datatypes.NewJSONType(scoring.Single("D"))},
	}}

	answers := s.StudentAnswers()

	assert.Len(t, answers, 2)
	assert.Equal(t, "D", answers["1"].String())
	assert.Equal(t, []string{"B", "C"}, answers["2"].Values())
}

func TestEnsureID(t *testing.T) {
	var id uuid.UUID
	ensureID(&id)
	assert.NotEqual(t, uuid.Nil, id)

	kept := id
	ensureID(&id)
	assert.Equal(t, kept, id)
}

func TestAllModels_TableNames(t *testing.T) {
	type tabler interface{ TableName() string }

	var names []string
	for _, m := range AllModels() {
		names = append(names, m.(tabler).TableName())
	}
	assert.Equal(t, []string{
		"reading_tests", "reading_passages", "reading_question_types",
		"reading_submissions", "reading_student_answers",
	}, names)
}
