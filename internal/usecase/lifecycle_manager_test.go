package usecase_test

import (
	"context"
	"strings"
	"testing"

	"personalityai-service/internal/domain/entity"
	"personalityai-service/internal/domain/repository"
	"personalityai-service/internal/usecase"
	"personalityai-service/pkg/logger"
	"personalityai-service/templates"

	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*usecase.LifecycleManager, repository.RecordStore, *fakeNotifier) {
	t.Helper()
	ctx := context.Background()

	store, err := newSeededStore(ctx)
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	m := usecase.NewLifecycleManager(store, notifier, testMetrics, logger.NewNopLogger())
	return m, store, notifier
}

func bookJaneDoe(t *testing.T, m *usecase.LifecycleManager) *entity.Appointment {
	t.Helper()
	apt := &entity.Appointment{
		PatientName: "Jane Doe",
		Email:       "jane.doe@example.com",
		ServiceID:   "s1",
		DoctorID:    "d1",
		Date:        "2024-06-01",
		Time:        "10:00",
	}
	require.NoError(t, m.Create(context.Background(), apt))
	return apt
}

func TestCreate_InsertsAtHeadWithPendingStatus(t *testing.T) {
	m, store, _ := newManager(t)
	ctx := context.Background()

	first := bookJaneDoe(t, m)

	second := &entity.Appointment{
		PatientName: "Bob Smith",
		Email:       "bob@example.com",
		ServiceID:   "s2",
		DoctorID:    "d2",
		Date:        "2024-06-02",
		Time:        "11:00",
	}
	require.NoError(t, m.Create(ctx, second))

	apts := store.Appointments(ctx)
	require.Len(t, apts, 2)
	require.Equal(t, second.ID, apts[0].ID)
	require.Equal(t, first.ID, apts[1].ID)
	require.Equal(t, entity.StatusPending, apts[0].Status)
	require.Equal(t, entity.StatusPending, apts[1].Status)
	require.NotEmpty(t, apts[0].ID)
}

func TestSetStatus_CancelledAppliesImmediatelyAndAudits(t *testing.T) {
	m, store, _ := newManager(t)
	ctx := context.Background()

	apt := bookJaneDoe(t, m)

	pending, err := m.SetStatus(ctx, apt.ID, entity.StatusCancelled, "Admin User")
	require.NoError(t, err)
	require.Nil(t, pending)

	updated, ok := store.AppointmentByID(ctx, apt.ID)
	require.True(t, ok)
	require.Equal(t, entity.StatusCancelled, updated.Status)

	logs := store.Logs(ctx)
	require.Len(t, logs, 1)
	require.Equal(t, entity.LogTypeStatusChange, logs[0].Type)
	require.Equal(t, "Status changed from pending to cancelled", logs[0].Details)
	require.Equal(t, apt.ID, logs[0].AppointmentID)
	require.Equal(t, "Jane Doe", logs[0].PatientName)
	require.Equal(t, "Admin User", logs[0].AdminName)
}

func TestSetStatus_ConfirmedOpensIntakeWithoutMutating(t *testing.T) {
	m, store, notifier := newManager(t)
	ctx := context.Background()

	apt := bookJaneDoe(t, m)

	pending, err := m.SetStatus(ctx, apt.ID, entity.StatusConfirmed, "Admin User")
	require.NoError(t, err)
	require.NotNil(t, pending)
	require.Equal(t, apt.ID, pending.AppointmentID)
	require.Empty(t, pending.DraftText)

	// Phase 1 records intent only
	unchanged, ok := store.AppointmentByID(ctx, apt.ID)
	require.True(t, ok)
	require.Equal(t, entity.StatusPending, unchanged.Status)
	require.Empty(t, unchanged.ClinicalHistory)
	require.Empty(t, store.Logs(ctx))
	require.Empty(t, notifier.messages())
}

func TestCommitConfirmation_AppliesStatusHistoryAuditAndNotification(t *testing.T) {
	m, store, notifier := newManager(t)
	ctx := context.Background()

	apt := bookJaneDoe(t, m)

	_, err := m.SetStatus(ctx, apt.ID, entity.StatusConfirmed, "Admin User")
	require.NoError(t, err)
	require.NoError(t, m.CommitConfirmation(ctx, "reports anxiety", "Admin User"))

	confirmed, ok := store.AppointmentByID(ctx, apt.ID)
	require.True(t, ok)
	require.Equal(t, entity.StatusConfirmed, confirmed.Status)
	require.Equal(t, "reports anxiety", confirmed.ClinicalHistory)

	logs := store.Logs(ctx)
	require.Len(t, logs, 1)
	require.Equal(t, entity.LogTypeHistoryAdded, logs[0].Type)
	require.Equal(t, "Patient history added and status confirmed.", logs[0].Details)
	require.Equal(t, apt.ID, logs[0].AppointmentID)

	msgs := notifier.messages()
	require.Len(t, msgs, 1)
	require.Equal(t, "jane.doe@example.com", msgs[0].To)
	require.Equal(t, "Confirmed: Clinical Assessment - Clinical Detection Roadmap Attached", msgs[0].Subject)
	require.Contains(t, msgs[0].Body, "Dear Jane Doe,")
	require.Contains(t, msgs[0].Body, "Dr. Ramakant Gadiwan")
	require.Contains(t, msgs[0].Body, "Note on Clinical Intake: reports anxiety")
	for _, point := range templates.ClinicalRoadmap {
		require.Contains(t, msgs[0].Body, point)
	}

	// Intake is closed after the commit
	require.Nil(t, m.Pending())
}

func TestCommitConfirmation_NotifierFailureDoesNotRollBack(t *testing.T) {
	m, store, notifier := newManager(t)
	ctx := context.Background()
	notifier.failWith = errBoom

	apt := bookJaneDoe(t, m)

	_, err := m.SetStatus(ctx, apt.ID, entity.StatusConfirmed, "Admin User")
	require.NoError(t, err)
	require.NoError(t, m.CommitConfirmation(ctx, "reports anxiety", "Admin User"))

	confirmed, ok := store.AppointmentByID(ctx, apt.ID)
	require.True(t, ok)
	require.Equal(t, entity.StatusConfirmed, confirmed.Status)
}

func TestCommitConfirmation_WithoutOpenIntake(t *testing.T) {
	m, _, _ := newManager(t)

	err := m.CommitConfirmation(context.Background(), "text", "Admin User")
	require.ErrorIs(t, err, usecase.ErrNoPendingConfirmation)
}

func TestDiscardConfirmation_DropsIntake(t *testing.T) {
	m, store, _ := newManager(t)
	ctx := context.Background()

	apt := bookJaneDoe(t, m)

	_, err := m.SetStatus(ctx, apt.ID, entity.StatusConfirmed, "Admin User")
	require.NoError(t, err)

	m.DiscardConfirmation()
	require.Nil(t, m.Pending())

	err = m.CommitConfirmation(ctx, "text", "Admin User")
	require.ErrorIs(t, err, usecase.ErrNoPendingConfirmation)

	unchanged, ok := store.AppointmentByID(ctx, apt.ID)
	require.True(t, ok)
	require.Equal(t, entity.StatusPending, unchanged.Status)
}

func TestSetStatus_UnknownAppointmentFailsLoudly(t *testing.T) {
	m, store, _ := newManager(t)
	ctx := context.Background()

	_, err := m.SetStatus(ctx, "missing", entity.StatusCancelled, "Admin User")
	require.ErrorIs(t, err, repository.ErrAppointmentNotFound)
	require.Empty(t, store.Logs(ctx))
}

func TestSetStatus_RejectsUnknownStatusValue(t *testing.T) {
	m, _, _ := newManager(t)

	apt := bookJaneDoe(t, m)

	_, err := m.SetStatus(context.Background(), apt.ID, "archived", "Admin User")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown status")
}

func TestUpdateDoctor_ReplacesAndAuditsWithSentinel(t *testing.T) {
	m, store, _ := newManager(t)
	ctx := context.Background()

	doctor := &entity.Doctor{
		ID:        "d2",
		Name:      "Dr. Sarah Mitchell",
		Specialty: "Lead Psychiatrist & AI Specialist",
		Image:     "https://picsum.photos/seed/doc1/400/400",
		Bio:       "Updated profile.",
		Rating:    4.9,
	}
	require.NoError(t, m.UpdateDoctor(ctx, doctor, "Admin User"))

	stored, ok := store.DoctorByID(ctx, "d2")
	require.True(t, ok)
	require.Equal(t, "Updated profile.", stored.Bio)
	require.Equal(t, 4.9, stored.Rating)

	logs := store.Logs(ctx)
	require.Len(t, logs, 1)
	require.Equal(t, entity.LogTypeDoctorUpdated, logs[0].Type)
	require.Equal(t, entity.LogNoAppointment, logs[0].AppointmentID)
	require.Equal(t, "Updated credentials for Dr. Sarah Mitchell", logs[0].Details)
	require.Equal(t, "Unknown Patient", logs[0].PatientName)
}

func TestUpdateDoctor_UnknownIDFailsLoudly(t *testing.T) {
	m, store, _ := newManager(t)
	ctx := context.Background()

	err := m.UpdateDoctor(ctx, &entity.Doctor{ID: "d99", Name: "Dr. Nobody"}, "Admin User")
	require.ErrorIs(t, err, repository.ErrDoctorNotFound)
	require.Empty(t, store.Logs(ctx))
}

func TestAppendLog_AdminNameFallback(t *testing.T) {
	m, store, _ := newManager(t)
	ctx := context.Background()

	apt := bookJaneDoe(t, m)

	_, err := m.SetStatus(ctx, apt.ID, entity.StatusCancelled, "")
	require.NoError(t, err)

	logs := store.Logs(ctx)
	require.Len(t, logs, 1)
	require.Equal(t, entity.AdminFallbackName, logs[0].AdminName)
	require.False(t, logs[0].CreatedAt.IsZero())
	require.True(t, strings.Contains(logs[0].Timestamp, "/"))
}
