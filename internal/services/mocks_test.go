package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/academiq/ielts-reading-service/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockContentRepository struct {
	mock.Mock
}

func (m *mockContentRepository) GetTestWithContent(ctx context.Context, tx *gorm.DB, testID uuid.UUID) (*models.ReadingTest, error) {
	args := m.Called(ctx, tx, testID)
	test, _ := args.Get(0).(*models.ReadingTest)
	return test, args.Error(1)
}

func (m *mockContentRepository) ListByOrganization(ctx context.Context, tx *gorm.DB, organizationID string) ([]*models.ReadingTest, error) {
	args := m.Called(ctx, tx, organizationID)
	tests, _ := args.Get(0).([]*models.ReadingTest)
	return tests, args.Error(1)
}

type mockSubmissionRepository struct {
	mock.Mock
}

func (m *mockSubmissionRepository) ReplaceForSession(ctx context.Context, tx *gorm.DB, submission *models.Submission) error {
	return m.Called(ctx, tx, submission).Error(0)
}

func (m *mockSubmissionRepository) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) (*models.Submission, error) {
	args := m.Called(ctx, tx, sessionID)
	submission, _ := args.Get(0).(*models.Submission)
	return submission, args.Error(1)
}

func (m *mockSubmissionRepository) SaveScores(ctx context.Context, tx *gorm.DB, submission *models.Submission) error {
	return m.Called(ctx, tx, submission).Error(0)
}

type mockRepository struct {
	content    *mockContentRepository
	submission *mockSubmissionRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		content:    &mockContentRepository{},
		submission: &mockSubmissionRepository{},
	}
}

func (m *mockRepository) Content() repositories.ContentRepository       { return m.content }
func (m *mockRepository) Submission() repositories.SubmissionRepository { return m.submission }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// memoryCache is a map-backed AnswerKeyCache that round-trips through JSON
// like the redis cache does.
type memoryCache struct {
	entries   map[string][]byte
	hits      int
	deleteErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) CacheOrExecute(ctx context.Context, key string, dest interface{}, ttl time.Duration, fn func() (interface{}, error)) error {
	if data, ok := c.entries[key]; ok {
		c.hits++
		return json.Unmarshal(data, dest)
	}
	value, err := fn()
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// questionType builds a question type holding one question per answer.
func questionType(order int, typ string, answers ...string) models.QuestionType {
	qt := models.QuestionType{ID: uuid.New(), Type: typ, Order: order}
	for i, a := range answers {
		qt.QuestionsData = append(qt.QuestionsData, models.QuestionItem{Number: i + 1, Answer: a})
	}
	return qt
}

func passage(order int, qts ...models.QuestionType) models.Passage {
	return models.Passage{ID: uuid.New(), Order: order, QuestionTypes: qts}
}

func repeatAnswer(answer string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = answer
	}
	return out
}
