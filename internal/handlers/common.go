package handlers

import (
	"errors"
	"net/http"

	"github.com/academiq/ielts-reading-service/internal/services"
	"github.com/academiq/ielts-reading-service/internal/utils"
	"github.com/academiq/ielts-reading-service/internal/validator"
	"github.com/gin-gonic/gin"
)

// Error codes carried in ErrorResponse.Code
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BaseHandler provides common logging and response helpers for all handlers
type BaseHandler struct {
	logger    utils.Logger
	validator *validator.Validator
}

func NewBaseHandler(logger utils.Logger, validator *validator.Validator) BaseHandler {
	return BaseHandler{
		logger:    logger,
		validator: validator,
	}
}

func (h *BaseHandler) requestLogger(c *gin.Context) utils.Logger {
	return utils.GetLoggerFromContext(c, h.logger)
}

// LogRequest logs an incoming request with its request id
func (h *BaseHandler) LogRequest(c *gin.Context, message string, additionalFields ...interface{}) {
	fields := append([]interface{}{
		"request_id", c.GetHeader("X-Request-ID"),
		"remote_addr", c.ClientIP(),
	}, additionalFields...)
	h.requestLogger(c).Info(message, fields...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	fields := append([]interface{}{
		"request_id", c.GetHeader("X-Request-ID"),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}, additionalFields...)
	h.requestLogger(c).LogError(err, message, fields...)
}

// RespondWithError sends a consistent error response and logs it
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, code, message string, err error, details ...interface{}) {
	resp := ErrorResponse{
		Message: message,
		Code:    code,
	}
	if len(details) > 0 {
		resp.Details = details[0]
	}

	if statusCode >= http.StatusInternalServerError {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.requestLogger(c).Warn(message, "status_code", statusCode, "error", err)
	}

	c.AbortWithStatusJSON(statusCode, resp)
}

func (h *BaseHandler) RespondWithSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// bindJSON decodes and validates a request body. It writes the 400
// response itself and reports whether the handler may continue.
func (h *BaseHandler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request payload", err, err.Error())
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeValidation, "Validation failed", err, validator.ToValidationErrors(err))
		return false
	}
	return true
}

// handleServiceError maps service errors onto HTTP responses
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		h.RespondWithError(c, http.StatusBadRequest, CodeValidation, "Validation failed", err, validationErrors)
	case services.IsValidation(err):
		h.RespondWithError(c, http.StatusBadRequest, CodeValidation, "Validation failed", err, err.Error())
	case errors.Is(err, services.ErrTestNotFound):
		h.RespondWithError(c, http.StatusNotFound, CodeNotFound, "Reading test not found", err)
	case errors.Is(err, services.ErrNoTestsAvailable):
		h.RespondWithError(c, http.StatusNotFound, CodeNotFound, "No reading tests available for this organization", err)
	case errors.Is(err, services.ErrSubmissionNotFound):
		h.RespondWithError(c, http.StatusNotFound, CodeNotFound, "Submission not found", err)
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, CodeNotFound, "Resource not found", err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, CodeInternal, "Internal server error", err)
	}
}
