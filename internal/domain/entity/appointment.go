package entity

import (
	"time"
)

// Appointment status values
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// StatusFilterAll matches every status when filtering appointment lists.
const StatusFilterAll = "all"

// Appointment represents a booking request submitted by a patient
type Appointment struct {
	ID              string    `json:"id"`
	PatientName     string    `json:"patientName"`
	Email           string    `json:"email"`
	ServiceID       string    `json:"serviceId"`
	DoctorID        string    `json:"doctorId"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	ClinicalHistory string    `json:"clinicalHistory,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ValidStatus reports whether s is one of the known appointment statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// DateValue parses the appointment date (YYYY-MM-DD) for range comparisons
func (a *Appointment) DateValue() (time.Time, error) {
	return time.Parse("2006-01-02", a.Date)
}

// PendingConfirmation captures the intent to confirm an appointment before
// the clinical history text has been collected. It is committed or discarded,
// never applied directly.
type PendingConfirmation struct {
	AppointmentID string `json:"appointmentId"`
	DraftText     string `json:"draftText"`
}
