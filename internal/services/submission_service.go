package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/academiq/ielts-reading-service/internal/repositories"
	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/academiq/ielts-reading-service/internal/validator"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmitAnswerInput is one answered (or deliberately blank) question
type SubmitAnswerInput struct {
	QuestionNumber int               `json:"question_number" validate:"question_number"`
	QuestionTypeID *uuid.UUID        `json:"question_type_id,omitempty"`
	StudentAnswer  scoring.RawAnswer `json:"student_answer"`
}

// SubmitRequest carries every answer of one exam session
type SubmitRequest struct {
	SessionID      string              `json:"session_id" validate:"required,max=100"`
	TestID         *uuid.UUID          `json:"test_id,omitempty"`
	StudentID      string              `json:"student_id,omitempty" validate:"max=100"`
	OrganizationID string              `json:"organization_id,omitempty" validate:"max=100"`
	Answers        []SubmitAnswerInput `json:"answers" validate:"max=40,unique=QuestionNumber,dive"`
}

type SubmissionReceipt struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	SessionID    string    `json:"session_id"`
	TestID       uuid.UUID `json:"test_id"`
	AnswersSaved int       `json:"answers_saved"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// SubmissionService stores and retrieves session submissions
type SubmissionService interface {
	Submit(ctx context.Context, req *SubmitRequest) (*SubmissionReceipt, error)
	GetBySession(ctx context.Context, sessionID string) (*models.Submission, error)
}

type submissionService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    *ServiceLogger
	now       func() time.Time
}

func NewSubmissionService(repo repositories.Repository, validator *validator.Validator, logger *slog.Logger) SubmissionService {
	return &submissionService{
		repo:      repo,
		validator: validator,
		logger:    NewServiceLogger(logger, "submission"),
		now:       time.Now,
	}
}

// sessionNamespace seeds the stand-in test id of submissions that arrive
// without one, so repeated submissions of a session agree.
var sessionNamespace = uuid.NameSpaceURL

// SessionTestID derives the stand-in test id for a session.
func SessionTestID(sessionID string) uuid.UUID {
	return uuid.NewSHA1(sessionNamespace, []byte("session-"+sessionID))
}

func (s *submissionService) Submit(ctx context.Context, req *SubmitRequest) (receipt *SubmissionReceipt, err error) {
	op := s.logger.WithOperation(ctx, "submit", "submission")
	defer func() {
		var sessionID string
		if req != nil {
			sessionID = req.SessionID
		}
		op.LogResult(sessionID, err)
	}()

	if req == nil {
		return nil, ErrValidationFailed
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	testID := SessionTestID(req.SessionID)
	if req.TestID != nil && *req.TestID != uuid.Nil {
		testID = *req.TestID
	}

	submission := &models.Submission{
		SessionID:      req.SessionID,
		TestID:         testID,
		StudentID:      req.StudentID,
		OrganizationID: req.OrganizationID,
		TotalQuestions: len(req.Answers),
		SubmittedAt:    s.now(),
		Answers:        make([]models.StudentAnswer, 0, len(req.Answers)),
	}
	for _, a := range req.Answers {
		submission.Answers = append(submission.Answers, models.StudentAnswer{
			SessionID:      req.SessionID,
			QuestionNumber: a.QuestionNumber,
			QuestionTypeID: a.QuestionTypeID,
			Answer:         datatypes.NewJSONType(a.StudentAnswer),
		})
	}

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.repo.Submission().ReplaceForSession(ctx, tx, submission)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	return &SubmissionReceipt{
		SubmissionID: submission.ID,
		SessionID:    submission.SessionID,
		TestID:       submission.TestID,
		AnswersSaved: len(submission.Answers),
		SubmittedAt:  submission.SubmittedAt,
	}, nil
}

func (s *submissionService) GetBySession(ctx context.Context, sessionID string) (submission *models.Submission, err error) {
	op := s.logger.WithOperation(ctx, "get_by_session", "submission")
	defer func() { op.LogResult(sessionID, err) }()

	if sessionID == "" {
		return nil, ValidationErrors{*NewValidationError("session_id", "is required", sessionID)}
	}

	submission, err = s.repo.Submission().GetBySessionID(ctx, nil, sessionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return submission, nil
}
