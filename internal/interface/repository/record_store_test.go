package repository_test

import (
	"context"
	"sync"
	"testing"

	"personalityai-service/internal/domain/entity"
	domainRepo "personalityai-service/internal/domain/repository"
	"personalityai-service/internal/interface/repository"
	"personalityai-service/pkg/logger"

	"github.com/stretchr/testify/require"
)

// memSnapshotStore is an in-memory SnapshotStore for tests
type memSnapshotStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	failSave error
}

func newMemSnapshotStore() *memSnapshotStore {
	return &memSnapshotStore{data: make(map[string][]byte)}
}

func (s *memSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[key]
	return data, ok, nil
}

func (s *memSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return s.failSave
	}
	s.data[key] = append([]byte(nil), data...)
	return nil
}

func newStore(t *testing.T, snaps domainRepo.SnapshotStore) *repository.MemoryRecordStore {
	t.Helper()
	store, err := repository.NewMemoryRecordStore(context.Background(), snaps, logger.NewNopLogger())
	require.NoError(t, err)
	return store
}

func TestNewMemoryRecordStore_SeedsCatalogOnEmptySnapshot(t *testing.T) {
	store := newStore(t, newMemSnapshotStore())
	ctx := context.Background()

	services := store.Services(ctx)
	require.Len(t, services, 3)
	require.Equal(t, "Clinical Assessment", services[0].Name)

	doctors := store.Doctors(ctx)
	require.Len(t, doctors, 2)
	require.Equal(t, "Dr. Ramakant Gadiwan", doctors[0].Name)

	require.Len(t, store.Articles(ctx), 2)
	require.Empty(t, store.Appointments(ctx))
	require.Empty(t, store.Logs(ctx))

	_, ok := store.CurrentUser(ctx)
	require.False(t, ok)
}

func TestMemoryRecordStore_HydratesFromSnapshots(t *testing.T) {
	snaps := newMemSnapshotStore()
	ctx := context.Background()

	first := newStore(t, snaps)
	require.NoError(t, first.PrependAppointment(ctx, &entity.Appointment{
		ID:          "apt-1",
		PatientName: "Jane Doe",
		Email:       "jane.doe@example.com",
		ServiceID:   "s1",
		DoctorID:    "d1",
		Date:        "2024-06-01",
		Time:        "10:00",
		Status:      entity.StatusPending,
	}))
	require.NoError(t, first.PrependLog(ctx, &entity.LogEntry{
		ID:            "log-1",
		Type:          entity.LogTypeStatusChange,
		AppointmentID: "apt-1",
		PatientName:   "Jane Doe",
		AdminName:     "Admin User",
	}))
	require.NoError(t, first.SetCurrentUser(ctx, &entity.User{
		Name:  "Admin User",
		Email: "admin@example.com",
		Role:  entity.RoleAdmin,
	}))

	// A fresh store over the same snapshots sees the same state
	second := newStore(t, snaps)

	apts := second.Appointments(ctx)
	require.Len(t, apts, 1)
	require.Equal(t, "apt-1", apts[0].ID)
	require.Equal(t, "Jane Doe", apts[0].PatientName)

	logs := second.Logs(ctx)
	require.Len(t, logs, 1)
	require.Equal(t, "log-1", logs[0].ID)

	user, ok := second.CurrentUser(ctx)
	require.True(t, ok)
	require.Equal(t, entity.RoleAdmin, user.Role)
}

func TestMemoryRecordStore_PrependKeepsNewestFirst(t *testing.T) {
	store := newStore(t, newMemSnapshotStore())
	ctx := context.Background()

	require.NoError(t, store.PrependAppointment(ctx, &entity.Appointment{ID: "older"}))
	require.NoError(t, store.PrependAppointment(ctx, &entity.Appointment{ID: "newer"}))

	apts := store.Appointments(ctx)
	require.Equal(t, "newer", apts[0].ID)
	require.Equal(t, "older", apts[1].ID)
}

func TestMemoryRecordStore_UpdateAppointmentNotFound(t *testing.T) {
	store := newStore(t, newMemSnapshotStore())

	err := store.UpdateAppointment(context.Background(), &entity.Appointment{ID: "missing"})
	require.ErrorIs(t, err, domainRepo.ErrAppointmentNotFound)
}

func TestMemoryRecordStore_ReplaceDoctorNotFound(t *testing.T) {
	store := newStore(t, newMemSnapshotStore())

	err := store.ReplaceDoctor(context.Background(), &entity.Doctor{ID: "d99"})
	require.ErrorIs(t, err, domainRepo.ErrDoctorNotFound)
}

func TestMemoryRecordStore_ReadsReturnCopies(t *testing.T) {
	store := newStore(t, newMemSnapshotStore())
	ctx := context.Background()

	store.Doctors(ctx)[0].Bio = "mutated"
	require.NotEqual(t, "mutated", store.Doctors(ctx)[0].Bio)

	require.NoError(t, store.PrependAppointment(ctx, &entity.Appointment{ID: "apt-1", PatientName: "Jane Doe"}))
	got, ok := store.AppointmentByID(ctx, "apt-1")
	require.True(t, ok)
	got.PatientName = "mutated"

	again, ok := store.AppointmentByID(ctx, "apt-1")
	require.True(t, ok)
	require.Equal(t, "Jane Doe", again.PatientName)
}

func TestMemoryRecordStore_SaveFailureDegradesToMemory(t *testing.T) {
	snaps := newMemSnapshotStore()
	store := newStore(t, snaps)
	ctx := context.Background()

	snaps.failSave = context.DeadlineExceeded

	require.NoError(t, store.PrependAppointment(ctx, &entity.Appointment{ID: "apt-1"}))
	require.Len(t, store.Appointments(ctx), 1)
}

func TestMemoryRecordStore_InquiriesNotMirrored(t *testing.T) {
	snaps := newMemSnapshotStore()
	store := newStore(t, snaps)
	ctx := context.Background()

	require.NoError(t, store.PrependInquiry(ctx, &entity.Inquiry{
		ID:      "inq-1",
		Name:    "Jane Doe",
		Email:   "jane.doe@example.com",
		Message: "Do you take referrals?",
	}))
	require.Len(t, store.Inquiries(ctx), 1)

	// The inquiry feed is session-scoped and dies with the store
	second := newStore(t, snaps)
	require.Empty(t, second.Inquiries(ctx))
}

func TestMemoryRecordStore_ClearCurrentUser(t *testing.T) {
	snaps := newMemSnapshotStore()
	store := newStore(t, snaps)
	ctx := context.Background()

	require.NoError(t, store.SetCurrentUser(ctx, &entity.User{Email: "jane.doe@example.com", Role: entity.RolePatient}))
	require.NoError(t, store.ClearCurrentUser(ctx))

	_, ok := store.CurrentUser(ctx)
	require.False(t, ok)

	second := newStore(t, snaps)
	_, ok = second.CurrentUser(ctx)
	require.False(t, ok)
}
