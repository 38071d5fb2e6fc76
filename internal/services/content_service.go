package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/academiq/ielts-reading-service/internal/repositories"
	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/google/uuid"
)

// AnswerKeyCache is the cache-aside surface used for answer keys
type AnswerKeyCache interface {
	CacheOrExecute(ctx context.Context, key string, dest interface{}, ttl time.Duration, fn func() (interface{}, error)) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
}

// ContentService serves reading tests and their answer keys
type ContentService interface {
	GetAnswerKey(ctx context.Context, testID uuid.UUID) (scoring.AnswerKey, error)
	GetRandomTests(ctx context.Context, organizationID string, count int) ([]*models.ReadingTest, error)
	// InvalidateAnswerKey drops the cached key of one test after its content changed.
	InvalidateAnswerKey(ctx context.Context, testID uuid.UUID) error
	// FlushAnswerKeys drops every cached answer key.
	FlushAnswerKeys(ctx context.Context) error
}

type contentService struct {
	repo     repositories.Repository
	cache    AnswerKeyCache
	cacheTTL time.Duration
	logger   *ServiceLogger
	shuffle  func(n int, swap func(i, j int))
}

func NewContentService(repo repositories.Repository, cache AnswerKeyCache, cacheTTL time.Duration, logger *slog.Logger) ContentService {
	return &contentService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   NewServiceLogger(logger, "content"),
		shuffle:  rand.Shuffle,
	}
}

const answerKeyCachePrefix = "answer_key:"

func answerKeyCacheKey(testID uuid.UUID) string {
	return answerKeyCachePrefix + testID.String()
}

func (s *contentService) GetAnswerKey(ctx context.Context, testID uuid.UUID) (key scoring.AnswerKey, err error) {
	op := s.logger.WithOperation(ctx, "get_answer_key", "reading_test")
	defer func() { op.LogResult(testID.String(), err) }()

	load := func() (interface{}, error) {
		test, err := s.repo.Content().GetTestWithContent(ctx, nil, testID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, ErrTestNotFound
			}
			return nil, fmt.Errorf("failed to load answer key: %w", err)
		}
		return BuildAnswerKey(test), nil
	}

	if s.cache == nil {
		value, err := load()
		if err != nil {
			return nil, err
		}
		return value.(scoring.AnswerKey), nil
	}

	key = make(scoring.AnswerKey)
	if err := s.cache.CacheOrExecute(ctx, answerKeyCacheKey(testID), &key, s.cacheTTL, load); err != nil {
		return nil, err
	}
	return key, nil
}

func (s *contentService) GetRandomTests(ctx context.Context, organizationID string, count int) (tests []*models.ReadingTest, err error) {
	op := s.logger.WithOperation(ctx, "get_random_tests", "organization")
	defer func() { op.LogResult(organizationID, err) }()

	var verrs ValidationErrors
	if organizationID == "" {
		verrs = append(verrs, *NewValidationError("organization_id", "is required", organizationID))
	}
	if count < 1 {
		verrs = append(verrs, *NewValidationError("count", "must be a positive integer", count))
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	all, err := s.repo.Content().ListByOrganization(ctx, nil, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reading tests: %w", err)
	}

	candidates := make([]*models.ReadingTest, 0, len(all))
	for _, t := range all {
		if len(t.Passages) == 0 {
			s.logger.logger.WarnContext(ctx, "Skipping reading test without passages", "test_id", t.ID)
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return nil, ErrNoTestsAvailable
	}

	s.shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	for _, t := range candidates {
		AssignStudentRanges(t)
	}
	return candidates, nil
}

func (s *contentService) InvalidateAnswerKey(ctx context.Context, testID uuid.UUID) (err error) {
	op := s.logger.WithOperation(ctx, "invalidate_answer_key", "reading_test")
	defer func() { op.LogResult(testID.String(), err) }()

	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, answerKeyCacheKey(testID)); err != nil {
		return fmt.Errorf("failed to invalidate answer key: %w", err)
	}
	return nil
}

func (s *contentService) FlushAnswerKeys(ctx context.Context) (err error) {
	op := s.logger.WithOperation(ctx, "flush_answer_keys", "answer_key")
	defer func() { op.LogResult("*", err) }()

	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeletePattern(ctx, answerKeyCachePrefix+"*"); err != nil {
		return fmt.Errorf("failed to flush answer keys: %w", err)
	}
	return nil
}
