package repository

import (
	"context"
	"errors"

	"personalityai-service/internal/domain/entity"
)

// Lookup misses on mutating operations fail loudly instead of no-opping
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
)

// RecordStore defines the interface for the application state container. It
// exclusively owns every collection; callers receive copies and mutate only
// through the typed commands. Every mutation is mirrored to the snapshot
// store before returning.
type RecordStore interface {
	// Appointments, most-recently-created-first
	Appointments(ctx context.Context) []*entity.Appointment
	AppointmentByID(ctx context.Context, id string) (*entity.Appointment, bool)
	PrependAppointment(ctx context.Context, apt *entity.Appointment) error
	UpdateAppointment(ctx context.Context, apt *entity.Appointment) error

	// Audit log, append-at-head
	Logs(ctx context.Context) []*entity.LogEntry
	PrependLog(ctx context.Context, log *entity.LogEntry) error

	// Doctors
	Doctors(ctx context.Context) []*entity.Doctor
	DoctorByID(ctx context.Context, id string) (*entity.Doctor, bool)
	ReplaceDoctor(ctx context.Context, doctor *entity.Doctor) error

	// Seeded content
	Services(ctx context.Context) []*entity.Service
	ServiceByID(ctx context.Context, id string) (*entity.Service, bool)
	Articles(ctx context.Context) []*entity.Article

	// Inquiries
	Inquiries(ctx context.Context) []*entity.Inquiry
	PrependInquiry(ctx context.Context, inquiry *entity.Inquiry) error

	// Session identity
	CurrentUser(ctx context.Context) (*entity.User, bool)
	SetCurrentUser(ctx context.Context, user *entity.User) error
	ClearCurrentUser(ctx context.Context) error
}
