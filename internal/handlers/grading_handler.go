package handlers

import (
	"mime"
	"net/http"

	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/academiq/ielts-reading-service/internal/services"
	"github.com/academiq/ielts-reading-service/internal/utils"
	"github.com/academiq/ielts-reading-service/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type GradingHandler struct {
	BaseHandler
	gradingService services.GradingService
}

type CompareAnswersRequest struct {
	TestID         uuid.UUID              `json:"test_id" validate:"required"`
	StudentAnswers scoring.StudentAnswers `json:"student_answers" validate:"required,min=1"`
}

type BandScoreRequest struct {
	CorrectCount *int `json:"correct_count" validate:"required,correct_count"`
}

func NewGradingHandler(gradingService services.GradingService, validator *validator.Validator, logger utils.Logger) *GradingHandler {
	return &GradingHandler{
		BaseHandler:    NewBaseHandler(logger, validator),
		gradingService: gradingService,
	}
}

// CompareAnswers grades a set of answers against a test's answer key
// @Router /reading/answers/compare [post]
func (h *GradingHandler) CompareAnswers(c *gin.Context) {
	var req CompareAnswersRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Comparing answers", "test_id", req.TestID, "answers", len(req.StudentAnswers))

	report, err := h.gradingService.Compare(c.Request.Context(), req.TestID, req.StudentAnswers)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// BandScore converts a correct-answer count into a band
// @Router /reading/answers/band-score [post]
func (h *GradingHandler) BandScore(c *gin.Context) {
	var req BandScoreRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.gradingService.BandScore(*req.CorrectCount)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ScoreSession scores a stored submission and records the outcome
// @Router /reading/submissions/{session_id}/score [post]
func (h *GradingHandler) ScoreSession(c *gin.Context) {
	sessionID, ok := h.parseStringParam(c, "session_id")
	if !ok {
		return
	}

	h.LogRequest(c, "Scoring session", "session_id", sessionID)

	score, err := h.gradingService.ScoreSession(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, score)
}

// ExportResults downloads a session's results as xlsx
// @Router /reading/submissions/{session_id}/export [get]
func (h *GradingHandler) ExportResults(c *gin.Context) {
	sessionID, ok := h.parseStringParam(c, "session_id")
	if !ok {
		return
	}

	h.LogRequest(c, "Exporting results", "session_id", sessionID)

	data, err := h.gradingService.ExportResults(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": "reading-results-" + sessionID + ".xlsx",
	}))
	c.Data(http.StatusOK, xlsxContentType, data)
}
