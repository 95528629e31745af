package entity

import (
	"time"
)

// Audit log entry types
const (
	LogTypeStatusChange  = "Status Change"
	LogTypeHistoryAdded  = "Clinical History Added"
	LogTypeDoctorUpdated = "Doctor Updated"
)

// LogNoAppointment marks entries that are not scoped to a single appointment
const LogNoAppointment = "N/A"

// LogEntry is an append-only audit record of a mutating admin action.
// PatientName and AdminName are snapshots taken at creation time, not live
// lookups. Timestamp is the human-readable form shown in the console;
// CreatedAt is the sortable instant.
type LogEntry struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	PatientName   string    `json:"patientName"`
	Type          string    `json:"type"`
	Timestamp     string    `json:"timestamp"`
	AdminName     string    `json:"adminName"`
	Details       string    `json:"details"`
	CreatedAt     time.Time `json:"createdAt"`
}
