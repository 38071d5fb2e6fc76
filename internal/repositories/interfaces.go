package repositories

import (
	"context"
	"errors"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Every method accepts an optional transaction; nil means the default
// connection.

// ContentRepository reads the Test -> Passage -> QuestionType hierarchy
type ContentRepository interface {
	// GetTestWithContent loads a test with passages and question types in
	// ascending order.
	GetTestWithContent(ctx context.Context, tx *gorm.DB, testID uuid.UUID) (*models.ReadingTest, error)
	// ListByOrganization loads every test of an organization with content.
	ListByOrganization(ctx context.Context, tx *gorm.DB, organizationID string) ([]*models.ReadingTest, error)
}

// SubmissionRepository stores one submission per session
type SubmissionRepository interface {
	// ReplaceForSession deletes any submission of the session and creates
	// the given one together with its answers.
	ReplaceForSession(ctx context.Context, tx *gorm.DB, submission *models.Submission) error
	// GetBySessionID loads the submission with answers ordered by question number.
	GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) (*models.Submission, error)
	// SaveScores writes per-answer correctness and the aggregate outcome.
	SaveScores(ctx context.Context, tx *gorm.DB, submission *models.Submission) error
}

// Repository groups the repositories and owns transactions
type Repository interface {
	Content() ContentRepository
	Submission() SubmissionRepository
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// IsNotFoundError reports whether err comes from a missing row
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
