package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// Login fabricates a session identity from the submitted email and persists
// it as the current user
func (h *Handler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := fabricateUser(input.Email, input.Name)
	if err := h.store.SetCurrentUser(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store session"})
		return
	}

	h.logger.Info("User logged in", "email", user.Email, "role", user.Role)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout drops the current session identity
func (h *Handler) Logout(c *gin.Context) {
	if err := h.store.ClearCurrentUser(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.Status(http.StatusNoContent)
}
