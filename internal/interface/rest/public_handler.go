package rest

import (
	"net/http"
	"time"

	"personalityai-service/internal/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type bookAppointmentInput struct {
	PatientName string `json:"patientName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	ServiceID   string `json:"serviceId" binding:"required"`
	DoctorID    string `json:"doctorId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

type submitInquiryInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// ListServices returns the service catalog
func (h *Handler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.store.Services(c.Request.Context())})
}

// ListDoctors returns the practitioner profiles
func (h *Handler) ListDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"doctors": h.store.Doctors(c.Request.Context())})
}

// ListArticles returns the published articles
func (h *Handler) ListArticles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"articles": h.store.Articles(c.Request.Context())})
}

// BookAppointment accepts a booking request and queues it as pending
func (h *Handler) BookAppointment(c *gin.Context) {
	var input bookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must use YYYY-MM-DD format"})
		return
	}

	apt := &entity.Appointment{
		PatientName: input.PatientName,
		Email:       input.Email,
		ServiceID:   input.ServiceID,
		DoctorID:    input.DoctorID,
		Date:        input.Date,
		Time:        input.Time,
	}

	if err := h.lifecycle.Create(c.Request.Context(), apt); err != nil {
		h.logger.Error("Failed to book appointment", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to book appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Thank you! Your appointment request has been received. Our team will contact you shortly.",
		"appointment": apt,
	})
}

// SubmitInquiry records a contact-form submission
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var input submitInquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inquiry := &entity.Inquiry{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		Date:    time.Now().Format("Jan 2, 2006"),
	}

	if err := h.store.PrependInquiry(c.Request.Context(), inquiry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record inquiry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inquiry": inquiry})
}
