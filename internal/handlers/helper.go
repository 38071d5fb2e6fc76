package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseUUIDParam reads a UUID path parameter, answering 400 when it is not one
func (h *BaseHandler) parseUUIDParam(c *gin.Context, param string) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Param(param))
	id, err := uuid.Parse(raw)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid "+param, err, "must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// parseStringParam reads a non-empty path parameter
func (h *BaseHandler) parseStringParam(c *gin.Context, param string) (string, bool) {
	value := strings.TrimSpace(c.Param(param))
	if value == "" {
		h.RespondWithError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid "+param, nil, "cannot be empty")
		return "", false
	}
	return value, true
}
