package handlers

import (
	"net/http"
	"time"

	"github.com/academiq/ielts-reading-service/internal/services"
	"github.com/academiq/ielts-reading-service/internal/utils"
	"github.com/academiq/ielts-reading-service/internal/validator"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	contentHandler    *ContentHandler
	submissionHandler *SubmissionHandler
	gradingHandler    *GradingHandler
}

func NewHandlerManager(
	content services.ContentService,
	submissions services.SubmissionService,
	grading services.GradingService,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		contentHandler:    NewContentHandler(content, validator, logger),
		submissionHandler: NewSubmissionHandler(submissions, validator, logger),
		gradingHandler:    NewGradingHandler(grading, validator, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	reading := router.Group("/api/v1/reading")
	{
		reading.GET("/health", HealthCheck)

		tests := reading.Group("/tests")
		{
			tests.GET("/random", hm.contentHandler.GetRandomTests)
			tests.GET("/:test_id/answers", hm.contentHandler.GetAnswerKey)
			tests.DELETE("/:test_id/answers/cache", hm.contentHandler.InvalidateAnswerKey)
		}

		answers := reading.Group("/answers")
		{
			answers.POST("/compare", hm.gradingHandler.CompareAnswers)
			answers.POST("/band-score", hm.gradingHandler.BandScore)
		}

		submissions := reading.Group("/submissions")
		{
			submissions.POST("", hm.submissionHandler.Submit)
			submissions.GET("/:session_id", hm.submissionHandler.GetSubmission)
			submissions.POST("/:session_id/score", hm.gradingHandler.ScoreSession)
			submissions.GET("/:session_id/export", hm.gradingHandler.ExportResults)
		}
	}
}

// NewRouter builds the gin engine with recovery and logging middleware
func NewRouter(hm *HandlerManager, logger utils.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), utils.LoggerMiddleware(logger), utils.ContextLogger(logger))
	hm.SetupRoutes(router)
	return router
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "ielts-reading-service",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
