package handlers

import (
	"net/http"
	"strconv"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/academiq/ielts-reading-service/internal/services"
	"github.com/academiq/ielts-reading-service/internal/utils"
	"github.com/academiq/ielts-reading-service/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContentHandler struct {
	BaseHandler
	contentService services.ContentService
}

type RandomTestsResponse struct {
	OrganizationID string                `json:"organization_id"`
	Count          int                   `json:"count"`
	Tests          []*models.ReadingTest `json:"tests"`
}

type AnswerKeyResponse struct {
	TestID         uuid.UUID         `json:"test_id"`
	TotalQuestions int               `json:"total_questions"`
	Answers        scoring.AnswerKey `json:"answers"`
}

func NewContentHandler(contentService services.ContentService, validator *validator.Validator, logger utils.Logger) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    NewBaseHandler(logger, validator),
		contentService: contentService,
	}
}

// GetRandomTests returns randomly picked tests of an organization
// @Router /reading/tests/random [get]
func (h *ContentHandler) GetRandomTests(c *gin.Context) {
	organizationID := c.Query("organization_id")

	count := 1
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.RespondWithError(c, http.StatusBadRequest, CodeInvalidRequest, "Count must be a positive integer", err)
			return
		}
		count = n
	}

	h.LogRequest(c, "Getting random reading tests", "organization_id", organizationID, "count", count)

	tests, err := h.contentService.GetRandomTests(c.Request.Context(), organizationID, count)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, RandomTestsResponse{
		OrganizationID: organizationID,
		Count:          len(tests),
		Tests:          tests,
	})
}

// GetAnswerKey returns the flattened answer key of a test
// @Router /reading/tests/{test_id}/answers [get]
func (h *ContentHandler) GetAnswerKey(c *gin.Context) {
	testID, ok := h.parseUUIDParam(c, "test_id")
	if !ok {
		return
	}

	h.LogRequest(c, "Getting answer key", "test_id", testID)

	key, err := h.contentService.GetAnswerKey(c.Request.Context(), testID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnswerKeyResponse{
		TestID:         testID,
		TotalQuestions: len(key),
		Answers:        key,
	})
}

// InvalidateAnswerKey drops the cached answer key of a test
// @Router /reading/tests/{test_id}/answers/cache [delete]
func (h *ContentHandler) InvalidateAnswerKey(c *gin.Context) {
	testID, ok := h.parseUUIDParam(c, "test_id")
	if !ok {
		return
	}

	h.LogRequest(c, "Invalidating answer key", "test_id", testID)

	if err := h.contentService.InvalidateAnswerKey(c.Request.Context(), testID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Answer key cache cleared", gin.H{"test_id": testID})
}
