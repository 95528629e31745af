package rest

import (
	"errors"
	"net/http"

	"personalityai-service/internal/domain/entity"
	"personalityai-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type analyzeInput struct {
	Input string `json:"input" binding:"required"`
}

// AnalyzeScreening runs one classification call over the submitted text.
// Failures surface with their kind so the client can decide whether a retry
// is worth offering.
func (h *Handler) AnalyzeScreening(c *gin.Context) {
	var input analyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	analysis, err := h.screening.Analyze(c.Request.Context(), user.Email, input.Input)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "screening input must not be empty"})
			return
		}

		var aerr *entity.AnalysisError
		if errors.As(err, &aerr) {
			status := http.StatusBadGateway
			if aerr.Kind == entity.AnalysisTimeout {
				status = http.StatusGatewayTimeout
			}
			c.JSON(status, gin.H{
				"error":     "analysis failed",
				"kind":      aerr.Kind,
				"retryable": aerr.Kind == entity.AnalysisTimeout,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// ScreeningHistory returns the caller's session-local analysis history,
// most recent first
func (h *Handler) ScreeningHistory(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{"history": h.screening.History(user.Email)})
}
