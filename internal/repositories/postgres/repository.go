package postgres

import (
	"context"

	"github.com/academiq/ielts-reading-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	db         *gorm.DB
	content    repositories.ContentRepository
	submission repositories.SubmissionRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		db:         db,
		content:    NewContentPostgreSQL(db),
		submission: NewSubmissionPostgreSQL(db),
	}
}

func (r *repository) Content() repositories.ContentRepository {
	return r.content
}

func (r *repository) Submission() repositories.SubmissionRepository {
	return r.submission
}

func (r *repository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// orderedByPosition sorts by the quoted "order" column
func orderedByPosition(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}
