package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/academiq/ielts-reading-service/internal/errors"
	"github.com/academiq/ielts-reading-service/internal/events"
	"github.com/academiq/ielts-reading-service/internal/repositories"
	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComparisonReport is a comparison result together with its summary
type ComparisonReport struct {
	scoring.Result
	Summary scoring.Summary `json:"summary"`
}

// SessionScore is the outcome of scoring a stored submission
type SessionScore struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	SessionID    string    `json:"session_id"`
	TestID       uuid.UUID `json:"test_id"`
	ComparisonReport
}

type BandScoreResult struct {
	CorrectCount   int    `json:"correct_count"`
	TotalQuestions int    `json:"total_questions"`
	BandScore      string `json:"band_score"`
}

// GradingService grades answers against answer keys
type GradingService interface {
	Compare(ctx context.Context, testID uuid.UUID, answers scoring.StudentAnswers) (*ComparisonReport, error)
	ScoreSession(ctx context.Context, sessionID string) (*SessionScore, error)
	BandScore(count int) (*BandScoreResult, error)
	ExportResults(ctx context.Context, sessionID string) ([]byte, error)
}

type gradingService struct {
	repo        repositories.Repository
	content     ContentService
	submissions SubmissionService
	publisher   events.EventPublisher
	logger      *ServiceLogger
	slog        *slog.Logger
	now         func() time.Time
}

func NewGradingService(
	repo repositories.Repository,
	content ContentService,
	submissions SubmissionService,
	publisher events.EventPublisher,
	logger *slog.Logger,
) GradingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &gradingService{
		repo:        repo,
		content:     content,
		submissions: submissions,
		publisher:   publisher,
		logger:      NewServiceLogger(logger, "grading"),
		slog:        logger.With("service", "grading"),
		now:         time.Now,
	}
}

func (s *gradingService) compare(ctx context.Context, testID uuid.UUID, answers scoring.StudentAnswers) (*ComparisonReport, error) {
	key, err := s.content.GetAnswerKey(ctx, testID)
	if err != nil {
		return nil, err
	}

	result := scoring.CompareAnswers(answers, key,
		scoring.WithObserver(scoring.NewLogObserver(s.slog.With("test_id", testID.String()))))

	return &ComparisonReport{
		Result:  result,
		Summary: scoring.Summarize(result),
	}, nil
}

func (s *gradingService) Compare(ctx context.Context, testID uuid.UUID, answers scoring.StudentAnswers) (report *ComparisonReport, err error) {
	op := s.logger.WithOperation(ctx, "compare", "reading_test")
	defer func() { op.LogResult(testID.String(), err) }()

	if testID == uuid.Nil {
		return nil, ValidationErrors{*NewValidationError("test_id", "is required", testID)}
	}
	return s.compare(ctx, testID, answers)
}

func (s *gradingService) ScoreSession(ctx context.Context, sessionID string) (score *SessionScore, err error) {
	op := s.logger.WithOperation(ctx, "score_session", "submission")
	defer func() { op.LogResult(sessionID, err) }()

	submission, err := s.submissions.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report, err := s.compare(ctx, submission.TestID, submission.StudentAnswers())
	if err != nil {
		return nil, err
	}

	scoredAt := s.now()
	for i := range submission.Answers {
		n := submission.Answers[i].QuestionNumber
		correct := false
		if n >= 1 && n <= len(report.AnswersDetail) {
			correct = report.AnswersDetail[n-1].IsCorrect
		}
		submission.Answers[i].IsCorrect = &correct
		submission.Answers[i].ScoredAt = &scoredAt
	}
	correctAnswers := report.CorrectAnswers
	bandScore := report.BandScore
	submission.IsProcessed = true
	submission.CorrectAnswers = &correctAnswers
	submission.BandScore = &bandScore

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.repo.Submission().SaveScores(ctx, tx, submission)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save scores: %w", err)
	}

	if s.publisher != nil {
		event := events.NewSubmissionScoredEvent(events.SubmissionScoredEvent{
			SubmissionID:   submission.ID.String(),
			SessionID:      submission.SessionID,
			TestID:         submission.TestID.String(),
			StudentID:      submission.StudentID,
			CorrectAnswers: report.CorrectAnswers,
			TotalQuestions: report.TotalQuestions,
			BandScore:      report.BandScore,
		})
		// Scores are already stored; a failed publish is logged only.
		if err := s.publisher.PublishEvent(ctx, event); err != nil {
			s.slog.ErrorContext(ctx, "Failed to publish scoring event",
				"session_id", submission.SessionID,
				"event_id", event.ID,
				"error", err)
		}
	}

	return &SessionScore{
		SubmissionID:     submission.ID,
		SessionID:        submission.SessionID,
		TestID:           submission.TestID,
		ComparisonReport: *report,
	}, nil
}

func (s *gradingService) BandScore(count int) (*BandScoreResult, error) {
	if count < 0 || count > scoring.TotalQuestions {
		return nil, ValidationErrors{
			*apperrors.NewValidationErrorWithRule("correct_count", "must be between 0 and 40", "correct_count", count),
		}
	}
	return &BandScoreResult{
		CorrectCount:   count,
		TotalQuestions: scoring.TotalQuestions,
		BandScore:      scoring.BandScore(count),
	}, nil
}
