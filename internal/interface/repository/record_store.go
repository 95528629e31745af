package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"personalityai-service/internal/domain/entity"
	"personalityai-service/internal/domain/repository"
	"personalityai-service/pkg/logger"
)

// MemoryRecordStore implements the RecordStore interface. Collections live
// in memory under one lock and are mirrored to the snapshot store on every
// change, so no read ever observes a partial write. Snapshot failures are
// logged and the store keeps serving from memory.
//
// Inquiries are intentionally not mirrored: the contact-form feed is
// session-scoped review material, not durable practice state.
type MemoryRecordStore struct {
	mu     sync.RWMutex
	snaps  repository.SnapshotStore
	logger logger.Logger

	services     []*entity.Service
	doctors      []*entity.Doctor
	articles     []*entity.Article
	appointments []*entity.Appointment
	inquiries    []*entity.Inquiry
	logs         []*entity.LogEntry
	user         *entity.User
}

// NewMemoryRecordStore creates a record store, hydrating every collection
// from the snapshot store once and falling back to seed content for the
// catalog collections
func NewMemoryRecordStore(ctx context.Context, snaps repository.SnapshotStore, log logger.Logger) (*MemoryRecordStore, error) {
	s := &MemoryRecordStore{
		snaps:  snaps,
		logger: log,
	}

	found, err := s.loadInto(ctx, repository.KeyServices, &s.services)
	if err != nil {
		return nil, err
	}
	if !found {
		s.services = seedServices()
	}

	found, err = s.loadInto(ctx, repository.KeyDoctors, &s.doctors)
	if err != nil {
		return nil, err
	}
	if !found {
		s.doctors = seedDoctors()
	}

	found, err = s.loadInto(ctx, repository.KeyArticles, &s.articles)
	if err != nil {
		return nil, err
	}
	if !found {
		s.articles = seedArticles()
	}

	if _, err = s.loadInto(ctx, repository.KeyAppointments, &s.appointments); err != nil {
		return nil, err
	}
	if _, err = s.loadInto(ctx, repository.KeyLogs, &s.logs); err != nil {
		return nil, err
	}
	if _, err = s.loadInto(ctx, repository.KeyAuthUser, &s.user); err != nil {
		return nil, err
	}

	log.Info("Record store hydrated",
		"services", len(s.services),
		"doctors", len(s.doctors),
		"articles", len(s.articles),
		"appointments", len(s.appointments),
		"logs", len(s.logs))

	return s, nil
}

func (s *MemoryRecordStore) loadInto(ctx context.Context, key string, v interface{}) (bool, error) {
	data, found, err := s.snaps.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to hydrate %s: %w", key, err)
	}
	if !found || len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// persist mirrors one collection to the snapshot store. Failures degrade to
// in-memory-only operation rather than failing the mutation.
func (s *MemoryRecordStore) persist(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to encode snapshot, keeping in-memory state only", "key", key, "error", err)
		return
	}
	if err := s.snaps.Save(ctx, key, data); err != nil {
		s.logger.Warn("Failed to persist snapshot, keeping in-memory state only", "key", key, "error", err)
	}
}

// Appointments returns a copy of the appointment list, most recent first
func (s *MemoryRecordStore) Appointments(ctx context.Context) []*entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Appointment, len(s.appointments))
	for i, apt := range s.appointments {
		cp := *apt
		out[i] = &cp
	}
	return out
}

// AppointmentByID returns a copy of the appointment with the given id
func (s *MemoryRecordStore) AppointmentByID(ctx context.Context, id string) (*entity.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, apt := range s.appointments {
		if apt.ID == id {
			cp := *apt
			return &cp, true
		}
	}
	return nil, false
}

// PrependAppointment inserts a new appointment at the head of the list
func (s *MemoryRecordStore) PrependAppointment(ctx context.Context, apt *entity.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *apt
	s.appointments = append([]*entity.Appointment{&cp}, s.appointments...)
	s.persist(ctx, repository.KeyAppointments, s.appointments)
	return nil
}

// UpdateAppointment replaces the appointment matching apt.ID
func (s *MemoryRecordStore) UpdateAppointment(ctx context.Context, apt *entity.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.appointments {
		if existing.ID == apt.ID {
			cp := *apt
			s.appointments[i] = &cp
			s.persist(ctx, repository.KeyAppointments, s.appointments)
			return nil
		}
	}
	return repository.ErrAppointmentNotFound
}

// Logs returns a copy of the audit log, most recent first
func (s *MemoryRecordStore) Logs(ctx context.Context) []*entity.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.LogEntry, len(s.logs))
	for i, log := range s.logs {
		cp := *log
		out[i] = &cp
	}
	return out
}

// PrependLog appends an audit entry at the head of the log
func (s *MemoryRecordStore) PrependLog(ctx context.Context, log *entity.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *log
	s.logs = append([]*entity.LogEntry{&cp}, s.logs...)
	s.persist(ctx, repository.KeyLogs, s.logs)
	return nil
}

// Doctors returns a copy of the doctor list
func (s *MemoryRecordStore) Doctors(ctx context.Context) []*entity.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Doctor, len(s.doctors))
	for i, d := range s.doctors {
		cp := *d
		out[i] = &cp
	}
	return out
}

// DoctorByID returns a copy of the doctor with the given id
func (s *MemoryRecordStore) DoctorByID(ctx context.Context, id string) (*entity.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.doctors {
		if d.ID == id {
			cp := *d
			return &cp, true
		}
	}
	return nil, false
}

// ReplaceDoctor replaces the doctor record matching doctor.ID wholesale
func (s *MemoryRecordStore) ReplaceDoctor(ctx context.Context, doctor *entity.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.doctors {
		if existing.ID == doctor.ID {
			cp := *doctor
			s.doctors[i] = &cp
			s.persist(ctx, repository.KeyDoctors, s.doctors)
			return nil
		}
	}
	return repository.ErrDoctorNotFound
}

// Services returns a copy of the service catalog
func (s *MemoryRecordStore) Services(ctx context.Context) []*entity.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Service, len(s.services))
	for i, svc := range s.services {
		cp := *svc
		out[i] = &cp
	}
	return out
}

// ServiceByID returns a copy of the service with the given id
func (s *MemoryRecordStore) ServiceByID(ctx context.Context, id string) (*entity.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, svc := range s.services {
		if svc.ID == id {
			cp := *svc
			return &cp, true
		}
	}
	return nil, false
}

// Articles returns a copy of the article list
func (s *MemoryRecordStore) Articles(ctx context.Context) []*entity.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Article, len(s.articles))
	for i, a := range s.articles {
		cp := *a
		out[i] = &cp
	}
	return out
}

// Inquiries returns a copy of the inquiry feed, most recent first
func (s *MemoryRecordStore) Inquiries(ctx context.Context) []*entity.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Inquiry, len(s.inquiries))
	for i, iq := range s.inquiries {
		cp := *iq
		out[i] = &cp
	}
	return out
}

// PrependInquiry inserts a contact-form submission at the head of the feed
func (s *MemoryRecordStore) PrependInquiry(ctx context.Context, inquiry *entity.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *inquiry
	s.inquiries = append([]*entity.Inquiry{&cp}, s.inquiries...)
	return nil
}

// CurrentUser returns the active session identity, if any
func (s *MemoryRecordStore) CurrentUser(ctx context.Context) (*entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, false
	}
	cp := *s.user
	return &cp, true
}

// SetCurrentUser stores the session identity
func (s *MemoryRecordStore) SetCurrentUser(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *user
	s.user = &cp
	s.persist(ctx, repository.KeyAuthUser, s.user)
	return nil
}

// ClearCurrentUser drops the session identity
func (s *MemoryRecordStore) ClearCurrentUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.persist(ctx, repository.KeyAuthUser, s.user)
	return nil
}
