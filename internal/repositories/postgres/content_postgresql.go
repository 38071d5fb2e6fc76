package postgres

import (
	"context"
	"fmt"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/academiq/ielts-reading-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentPostgreSQL struct {
	db *gorm.DB
}

func NewContentPostgreSQL(db *gorm.DB) repositories.ContentRepository {
	return &ContentPostgreSQL{db: db}
}

// getDB returns the transaction DB if provided, otherwise returns the default DB
func (c *ContentPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return c.db
}

func (c *ContentPostgreSQL) withContent(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Passages", orderedByPosition).
		Preload("Passages.QuestionTypes", orderedByPosition)
}

func (c *ContentPostgreSQL) GetTestWithContent(ctx context.Context, tx *gorm.DB, testID uuid.UUID) (*models.ReadingTest, error) {
	var test models.ReadingTest
	err := c.withContent(c.getDB(tx).WithContext(ctx)).
		Where("id = ?", testID).
		First(&test).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reading test %s: %w", testID, err)
	}
	return &test, nil
}

func (c *ContentPostgreSQL) ListByOrganization(ctx context.Context, tx *gorm.DB, organizationID string) ([]*models.ReadingTest, error) {
	var tests []*models.ReadingTest
	err := c.withContent(c.getDB(tx).WithContext(ctx)).
		Where("organization_id = ?", organizationID).
		Order("created_at ASC").
		Find(&tests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reading tests: %w", err)
	}
	return tests, nil
}
