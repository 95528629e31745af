package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"personalityai-service/internal/domain/entity"
	"personalityai-service/internal/domain/repository"
	"personalityai-service/pkg/logger"
	"personalityai-service/pkg/metrics"
	"personalityai-service/templates"

	"github.com/google/uuid"
)

// ErrNoPendingConfirmation is returned when a commit or discard arrives with
// no confirmation intake open
var ErrNoPendingConfirmation = errors.New("no pending confirmation")

// displayTimestamp is the human-readable form shown on audit entries
const displayTimestamp = "1/2/2006, 3:04:05 PM"

// LifecycleManager mediates every state change to an appointment and
// guarantees a matching audit trail. Confirmation is a two-phase commit:
// SetStatus(confirmed) only opens the clinical-history intake, and the
// transition lands when CommitConfirmation is called with the captured text.
type LifecycleManager struct {
	store    repository.RecordStore
	notifier repository.Notifier
	metrics  *metrics.Metrics
	logger   logger.Logger

	mu      sync.Mutex
	pending *entity.PendingConfirmation
}

// NewLifecycleManager creates a new appointment lifecycle manager
func NewLifecycleManager(store repository.RecordStore, notifier repository.Notifier, m *metrics.Metrics, log logger.Logger) *LifecycleManager {
	return &LifecycleManager{
		store:    store,
		notifier: notifier,
		metrics:  m,
		logger:   log,
	}
}

// Create inserts a fully-populated booking at the head of the appointment
// list with status pending
func (m *LifecycleManager) Create(ctx context.Context, apt *entity.Appointment) error {
	if apt.ID == "" {
		apt.ID = uuid.NewString()
	}
	apt.Status = entity.StatusPending
	if apt.CreatedAt.IsZero() {
		apt.CreatedAt = time.Now()
	}

	if err := m.store.PrependAppointment(ctx, apt); err != nil {
		return fmt.Errorf("failed to store appointment: %w", err)
	}

	m.metrics.AppointmentsCreated.Inc()
	m.logger.Info("Appointment booked",
		"appointmentId", apt.ID,
		"patient", apt.PatientName,
		"date", apt.Date,
		"time", apt.Time)

	return nil
}

// SetStatus transitions an appointment. Moving to pending or cancelled
// applies immediately and writes a Status Change audit entry. Moving to
// confirmed opens the clinical-history intake instead and returns the
// pending confirmation; nothing is mutated until CommitConfirmation.
func (m *LifecycleManager) SetStatus(ctx context.Context, appointmentID, newStatus, adminName string) (*entity.PendingConfirmation, error) {
	if !entity.ValidStatus(newStatus) {
		return nil, fmt.Errorf("unknown status %q", newStatus)
	}

	apt, ok := m.store.AppointmentByID(ctx, appointmentID)
	if !ok {
		return nil, repository.ErrAppointmentNotFound
	}

	if newStatus == entity.StatusConfirmed {
		m.mu.Lock()
		m.pending = &entity.PendingConfirmation{AppointmentID: appointmentID}
		p := *m.pending
		m.mu.Unlock()

		m.logger.Info("Confirmation intake opened", "appointmentId", appointmentID)
		return &p, nil
	}

	oldStatus := apt.Status
	apt.Status = newStatus
	if err := m.store.UpdateAppointment(ctx, apt); err != nil {
		return nil, err
	}

	m.metrics.StatusChanges.WithLabelValues(newStatus).Inc()
	m.appendLog(ctx, appointmentID, entity.LogTypeStatusChange,
		fmt.Sprintf("Status changed from %s to %s", oldStatus, newStatus), adminName)

	m.logger.Info("Appointment status changed",
		"appointmentId", appointmentID,
		"from", oldStatus,
		"to", newStatus)

	return nil, nil
}

// Pending returns the currently open confirmation intake, if any
func (m *LifecycleManager) Pending() *entity.PendingConfirmation {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending == nil {
		return nil
	}
	p := *m.pending
	return &p
}

// DiscardConfirmation drops the open confirmation intake without mutating
// the appointment
func (m *LifecycleManager) DiscardConfirmation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = nil
}

// CommitConfirmation applies the confirmed status, attaches the captured
// clinical history, writes the audit entry and dispatches the confirmation
// notification. The notification is fire-and-forget: a delivery failure is
// logged but never rolls back the commit.
func (m *LifecycleManager) CommitConfirmation(ctx context.Context, text, adminName string) error {
	m.mu.Lock()
	p := m.pending
	m.mu.Unlock()

	if p == nil {
		return ErrNoPendingConfirmation
	}

	apt, ok := m.store.AppointmentByID(ctx, p.AppointmentID)
	if !ok {
		return repository.ErrAppointmentNotFound
	}

	apt.Status = entity.StatusConfirmed
	apt.ClinicalHistory = text
	if err := m.store.UpdateAppointment(ctx, apt); err != nil {
		return err
	}

	m.metrics.AppointmentsConfirmed.Inc()
	m.metrics.StatusChanges.WithLabelValues(entity.StatusConfirmed).Inc()
	m.appendLog(ctx, apt.ID, entity.LogTypeHistoryAdded,
		"Patient history added and status confirmed.", adminName)

	m.dispatchConfirmation(ctx, apt)

	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()

	m.logger.Info("Appointment confirmed with clinical history", "appointmentId", apt.ID)
	return nil
}

// UpdateDoctor replaces the doctor record wholesale and writes a Doctor
// Updated audit entry. The entry carries the no-appointment sentinel since
// the action is not appointment-scoped.
func (m *LifecycleManager) UpdateDoctor(ctx context.Context, doctor *entity.Doctor, adminName string) error {
	if err := m.store.ReplaceDoctor(ctx, doctor); err != nil {
		return err
	}

	m.appendLog(ctx, entity.LogNoAppointment, entity.LogTypeDoctorUpdated,
		fmt.Sprintf("Updated credentials for %s", doctor.Name), adminName)

	m.logger.Info("Doctor profile updated", "doctorId", doctor.ID, "name", doctor.Name)
	return nil
}

// FilterAppointments returns the appointments satisfying the status, search
// and date-range predicates
func (m *LifecycleManager) FilterAppointments(ctx context.Context, status, term string, start, end *time.Time) []*entity.Appointment {
	return FilterAppointments(m.store.Appointments(ctx), status, term, start, end)
}

// FilterLogs returns the audit entries matching the search term
func (m *LifecycleManager) FilterLogs(ctx context.Context, term string) []*entity.LogEntry {
	return FilterLogs(m.store.Logs(ctx), term)
}

// appendLog writes one audit entry at the head of the log. The patient name
// is a snapshot taken now, never re-derived later.
func (m *LifecycleManager) appendLog(ctx context.Context, appointmentID, logType, details, adminName string) {
	patientName := "Unknown Patient"
	if apt, ok := m.store.AppointmentByID(ctx, appointmentID); ok {
		patientName = apt.PatientName
	}
	if adminName == "" {
		adminName = entity.AdminFallbackName
	}

	now := time.Now()
	entry := &entity.LogEntry{
		ID:            uuid.NewString(),
		AppointmentID: appointmentID,
		PatientName:   patientName,
		Type:          logType,
		Timestamp:     now.Format(displayTimestamp),
		AdminName:     adminName,
		Details:       details,
		CreatedAt:     now,
	}

	if err := m.store.PrependLog(ctx, entry); err != nil {
		m.logger.Error("Failed to append audit entry", "type", logType, "error", err)
		m.metrics.ErrorsCount.WithLabelValues("audit_log").Inc()
	}
}

// dispatchConfirmation sends the roadmap notification for a freshly
// confirmed appointment
func (m *LifecycleManager) dispatchConfirmation(ctx context.Context, apt *entity.Appointment) {
	var serviceName, doctorName string
	if svc, ok := m.store.ServiceByID(ctx, apt.ServiceID); ok {
		serviceName = svc.Name
	}
	if doc, ok := m.store.DoctorByID(ctx, apt.DoctorID); ok {
		doctorName = doc.Name
	}

	subject := templates.ConfirmationSubject(serviceName)
	body := templates.ConfirmationBody(apt, serviceName, doctorName)

	if err := m.notifier.Send(ctx, apt.Email, subject, body); err != nil {
		m.metrics.NotificationsSent.WithLabelValues("failure").Inc()
		m.logger.Error("Failed to dispatch confirmation notification",
			"appointmentId", apt.ID,
			"to", apt.Email,
			"error", err)
		return
	}

	m.metrics.NotificationsSent.WithLabelValues("success").Inc()
	m.logger.Info("Confirmation notification dispatched",
		"appointmentId", apt.ID,
		"to", apt.Email)
}
