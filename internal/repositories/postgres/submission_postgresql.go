package postgres

import (
	"context"
	"fmt"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/academiq/ielts-reading-service/internal/repositories"
	"gorm.io/gorm"
)

type SubmissionPostgreSQL struct {
	db *gorm.DB
}

func NewSubmissionPostgreSQL(db *gorm.DB) repositories.SubmissionRepository {
	return &SubmissionPostgreSQL{db: db}
}

func (s *SubmissionPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.db
}

func (s *SubmissionPostgreSQL) ReplaceForSession(ctx context.Context, tx *gorm.DB, submission *models.Submission) error {
	db := s.getDB(tx).WithContext(ctx)

	if err := db.Where("session_id = ?", submission.SessionID).Delete(&models.StudentAnswer{}).Error; err != nil {
		return fmt.Errorf("failed to delete previous answers: %w", err)
	}
	if err := db.Where("session_id = ?", submission.SessionID).Delete(&models.Submission{}).Error; err != nil {
		return fmt.Errorf("failed to delete previous submission: %w", err)
	}
	if err := db.Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (s *SubmissionPostgreSQL) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) (*models.Submission, error) {
	var submission models.Submission
	err := s.getDB(tx).WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_number ASC")
		}).
		Where("session_id = ?", sessionID).
		First(&submission).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get submission for session %s: %w", sessionID, err)
	}
	return &submission, nil
}

func (s *SubmissionPostgreSQL) SaveScores(ctx context.Context, tx *gorm.DB, submission *models.Submission) error {
	db := s.getDB(tx).WithContext(ctx)

	for _, answer := range submission.Answers {
		err := db.Model(&models.StudentAnswer{}).
			Where("id = ?", answer.ID).
			Updates(map[string]interface{}{
				"is_correct": answer.IsCorrect,
				"scored_at":  answer.ScoredAt,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to score answer %d: %w", answer.QuestionNumber, err)
		}
	}

	err := db.Model(&models.Submission{}).
		Where("id = ?", submission.ID).
		Updates(map[string]interface{}{
			"is_processed":    submission.IsProcessed,
			"correct_answers": submission.CorrectAnswers,
			"band_score":      submission.BandScore,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	return nil
}
