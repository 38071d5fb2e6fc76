package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/academiq/ielts-reading-service/internal/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestSubmissionService(repo *mockRepository) *submissionService {
	svc := NewSubmissionService(repo, validator.New(), quietLogger()).(*submissionService)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestSubmissionService_Submit(t *testing.T) {
	repo := newMockRepository()
	svc := newTestSubmissionService(repo)

	testID := uuid.New()
	var req SubmitRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"session_id": "session-1",
		"test_id": "`+testID.String()+`",
		"student_id": "student-9",
		"answers": [
			{"question_number": 1, "student_answer": "A"},
			{"question_number": 2, "student_answer": ["B", "D"]},
			{"question_number": 3, "student_answer": ""}
		]
	}`), &req))

	var saved *models.Submission
	repo.submission.On("ReplaceForSession", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Submission")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).(*models.Submission)
			saved.ID = uuid.New()
		}).
		Return(nil).Once()

	receipt, err := svc.Submit(context.Background(), &req)
	require.NoError(t, err)

	assert.Equal(t, "session-1", receipt.SessionID)
	assert.Equal(t, testID, receipt.TestID)
	assert.Equal(t, 3, receipt.AnswersSaved)
	assert.Equal(t, saved.ID, receipt.SubmissionID)

	require.NotNil(t, saved)
	assert.Equal(t, "student-9", saved.StudentID)
	assert.Equal(t, 3, saved.TotalQuestions)
	assert.False(t, saved.IsProcessed)
	require.Len(t, saved.Answers, 3)
	assert.Equal(t, []string{"B", "D"}, saved.Answers[1].Answer.Data().Values())
	assert.Equal(t, "", saved.Answers[2].Answer.Data().String())
	assert.Equal(t, "session-1", saved.Answers[0].SessionID)

	answers := saved.StudentAnswers()
	assert.Equal(t, scoring.Single("A"), answers["1"])

	repo.submission.AssertExpectations(t)
}

func TestSubmissionService_Submit_EmptyAnswers(t *testing.T) {
	repo := newMockRepository()
	svc := newTestSubmissionService(repo)
	repo.submission.On("ReplaceForSession", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	receipt, err := svc.Submit(context.Background(), &SubmitRequest{SessionID: "session-2"})
	require.NoError(t, err)

	assert.Equal(t, 0, receipt.AnswersSaved)
	assert.Equal(t, SessionTestID("session-2"), receipt.TestID)
	assert.Equal(t, SessionTestID("session-2"), SessionTestID("session-2"))
	assert.NotEqual(t, SessionTestID("session-2"), SessionTestID("session-3"))
}

func TestSubmissionService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   *SubmitRequest
		field string
	}{
		{name: "missing session", req: &SubmitRequest{}, field: "session_id"},
		{
			name:  "question number too high",
			req:   &SubmitRequest{SessionID: "s", Answers: []SubmitAnswerInput{{QuestionNumber: 41}}},
			field: "question_number",
		},
		{
			name: "duplicate question number",
			req: &SubmitRequest{SessionID: "s", Answers: []SubmitAnswerInput{
				{QuestionNumber: 3, StudentAnswer: scoring.Single("A")},
				{QuestionNumber: 3, StudentAnswer: scoring.Single("B")},
			}},
			field: "answers",
		},
		{
			name:  "more than forty answers",
			req:   &SubmitRequest{SessionID: "s", Answers: make([]SubmitAnswerInput, 41)},
			field: "answers",
		},
		{
			name:  "question number missing",
			req:   &SubmitRequest{SessionID: "s", Answers: []SubmitAnswerInput{{StudentAnswer: scoring.Single("A")}}},
			field: "question_number",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockRepository()
			svc := newTestSubmissionService(repo)

			_, err := svc.Submit(context.Background(), tc.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tc.field, verrs[0].Field)
			repo.submission.AssertNotCalled(t, "ReplaceForSession", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmissionService_Submit_RepositoryFailure(t *testing.T) {
	repo := newMockRepository()
	svc := newTestSubmissionService(repo)
	boom := errors.New("unique violation")
	repo.submission.On("ReplaceForSession", mock.Anything, mock.Anything, mock.Anything).Return(boom)

	_, err := svc.Submit(context.Background(), &SubmitRequest{SessionID: "s"})
	assert.ErrorIs(t, err, boom)
}

func TestSubmissionService_GetBySession(t *testing.T) {
	repo := newMockRepository()
	svc := newTestSubmissionService(repo)
	ctx := context.Background()

	stored := &models.Submission{ID: uuid.New(), SessionID: "known"}
	repo.submission.On("GetBySessionID", mock.Anything, mock.Anything, "known").Return(stored, nil)
	repo.submission.On("GetBySessionID", mock.Anything, mock.Anything, "unknown").Return(nil, gorm.ErrRecordNotFound)

	got, err := svc.GetBySession(ctx, "known")
	require.NoError(t, err)
	assert.Same(t, stored, got)

	_, err = svc.GetBySession(ctx, "unknown")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)

	_, err = svc.GetBySession(ctx, "")
	assert.True(t, IsValidation(err))
}
