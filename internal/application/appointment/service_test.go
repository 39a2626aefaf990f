package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/contactapp/backend/internal/domain/appointment"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/contactapp/backend/internal/infrastructure/persistence/memstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	store := memstore.New[*appointment.Appointment]()
	return NewService(store, store, zap.NewNop())
}

func newAppointment(t *testing.T, id, projectID string) *appointment.Appointment {
	t.Helper()
	a, err := appointment.New(shared.FixedClock{Instant: testNow}, id, testNow.Add(24*time.Hour), "Dentist visit", projectID, "")
	require.NoError(t, err)
	return a
}

func TestServiceAdd(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	svc := newTestService()

	added, err := svc.Add(ctx, owner, newAppointment(t, "a1", ""))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.Add(ctx, owner, newAppointment(t, "a1", ""))
	require.NoError(t, err)
	assert.False(t, added)

	_, err = svc.Add(ctx, owner, nil)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestServiceUpdateAndGet(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	svc := newTestService()
	_, err := svc.Add(ctx, owner, newAppointment(t, "a1", ""))
	require.NoError(t, err)

	moved := testNow.Add(48 * time.Hour)
	updated, err := svc.Update(ctx, owner, "a1", moved, "Follow-up visit", "p1", "t1")
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := svc.GetByID(ctx, owner, "a1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Date().Equal(moved))
	assert.Equal(t, "p1", got.ProjectID())

	missing, err := svc.GetByID(ctx, owner, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestServiceNormalizesIDs(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("padded id addresses the stored appointment", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Add(ctx, owner, newAppointment(t, "a1", ""))
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, owner, " a1 ")
		require.NoError(t, err)
		require.NotNil(t, got)

		deleted, err := svc.Delete(ctx, owner, " a1 ")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("blank id fails validation", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Delete(ctx, owner, "   ")
		assert.True(t, shared.IsValidationError(err))

		_, err = svc.Update(ctx, owner, "   ", testNow.Add(24*time.Hour), "Follow-up visit", "", "")
		assert.True(t, shared.IsValidationError(err))

		_, err = svc.GetByID(ctx, owner, "   ")
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestServiceListByProject(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	svc := newTestService()
	_, err := svc.Add(ctx, owner, newAppointment(t, "a1", "p1"))
	require.NoError(t, err)
	_, err = svc.Add(ctx, owner, newAppointment(t, "a2", ""))
	require.NoError(t, err)

	linked, err := svc.ListByProject(ctx, owner, "p1")
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "a1", linked[0].ID())
}

func TestServiceDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	svc := newTestService()
	_, err := svc.Add(ctx, owner, newAppointment(t, "a1", ""))
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, owner, "a1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, owner, "a1")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.Add(ctx, owner, newAppointment(t, "a2", ""))
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	all, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, all)
}
