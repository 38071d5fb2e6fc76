package handlers

import (
	"net/http"

	"github.com/academiq/ielts-reading-service/internal/services"
	"github.com/academiq/ielts-reading-service/internal/utils"
	"github.com/academiq/ielts-reading-service/internal/validator"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	BaseHandler
	submissionService services.SubmissionService
}

func NewSubmissionHandler(submissionService services.SubmissionService, validator *validator.Validator, logger utils.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler:       NewBaseHandler(logger, validator),
		submissionService: submissionService,
	}
}

// Submit stores a session's answers, replacing any earlier submission
// @Router /reading/submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req services.SubmitRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Saving submission", "session_id", req.SessionID, "answers", len(req.Answers))

	receipt, err := h.submissionService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Submission saved", receipt)
}

// GetSubmission returns the stored submission of a session
// @Router /reading/submissions/{session_id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	sessionID, ok := h.parseStringParam(c, "session_id")
	if !ok {
		return
	}

	submission, err := h.submissionService.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}
