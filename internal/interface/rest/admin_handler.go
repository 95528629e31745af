package rest

import (
	"errors"
	"net/http"
	"time"

	"personalityai-service/internal/domain/entity"
	"personalityai-service/internal/domain/repository"
	"personalityai-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type changeStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type commitConfirmationInput struct {
	ClinicalHistory string `json:"clinicalHistory" binding:"required"`
}

type updateDoctorInput struct {
	Name      string  `json:"name" binding:"required"`
	Specialty string  `json:"specialty" binding:"required"`
	Image     string  `json:"image" binding:"required,url"`
	Bio       string  `json:"bio" binding:"required,max=500"`
	Rating    float64 `json:"rating" binding:"omitempty,min=0,max=5"`
}

// ListAppointments returns appointments filtered by status, search term and
// inclusive date range, most recent first
func (h *Handler) ListAppointments(c *gin.Context) {
	status := c.DefaultQuery("status", entity.StatusFilterAll)
	term := c.Query("search")

	start, ok := parseDateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end")
	if !ok {
		return
	}

	apts := h.lifecycle.FilterAppointments(c.Request.Context(), status, term, start, end)
	c.JSON(http.StatusOK, gin.H{"appointments": apts})
}

// ChangeAppointmentStatus transitions an appointment. A move to confirmed
// answers 202 with the opened confirmation intake instead of mutating.
func (h *Handler) ChangeAppointmentStatus(c *gin.Context) {
	var input changeStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	pending, err := h.lifecycle.SetStatus(c.Request.Context(), c.Param("id"), input.Status, user.Name)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if pending != nil {
		c.JSON(http.StatusAccepted, gin.H{"pendingConfirmation": pending})
		return
	}

	apt, _ := h.store.AppointmentByID(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"appointment": apt})
}

// CommitConfirmation completes the two-phase confirmation with the captured
// clinical history text
func (h *Handler) CommitConfirmation(c *gin.Context) {
	var input commitConfirmationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	err := h.lifecycle.CommitConfirmation(c.Request.Context(), input.ClinicalHistory, user.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrNoPendingConfirmation) {
			c.JSON(http.StatusConflict, gin.H{"error": "no confirmation intake open"})
			return
		}
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "appointment confirmed"})
}

// DiscardConfirmation drops the open confirmation intake
func (h *Handler) DiscardConfirmation(c *gin.Context) {
	h.lifecycle.DiscardConfirmation()
	c.Status(http.StatusNoContent)
}

// ListLogs returns the audit log, filtered by the search term
func (h *Handler) ListLogs(c *gin.Context) {
	logs := h.lifecycle.FilterLogs(c.Request.Context(), c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// ListInquiries returns the contact-form feed
func (h *Handler) ListInquiries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"inquiries": h.store.Inquiries(c.Request.Context())})
}

// UpdateDoctor replaces a practitioner profile wholesale
func (h *Handler) UpdateDoctor(c *gin.Context) {
	var input updateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor := &entity.Doctor{
		ID:        c.Param("id"),
		Name:      input.Name,
		Specialty: input.Specialty,
		Image:     input.Image,
		Bio:       input.Bio,
		Rating:    input.Rating,
	}

	user := currentUser(c)
	if err := h.lifecycle.UpdateDoctor(c.Request.Context(), doctor, user.Name); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. On a malformed
// value it answers 400 and reports ok=false.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must use YYYY-MM-DD format"})
		return nil, false
	}
	return &t, true
}
