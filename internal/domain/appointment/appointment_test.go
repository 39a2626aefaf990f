package appointment

import (
	"testing"
	"time"

	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testClock() shared.Clock {
	return shared.FixedClock{Instant: testNow}
}

func TestNewAppointment(t *testing.T) {
	t.Run("creates appointment successfully", func(t *testing.T) {
		date := testNow.Add(24 * time.Hour)
		a, err := New(testClock(), "a1", date, "Dentist visit", "", "")

		require.NoError(t, err)
		assert.Equal(t, "a1", a.ID())
		assert.True(t, a.Date().Equal(date))
		assert.Equal(t, "Dentist visit", a.Description())
		assert.Empty(t, a.ProjectID())
		assert.Empty(t, a.TaskID())
	})

	t.Run("accepts a date equal to now", func(t *testing.T) {
		_, err := New(testClock(), "a1", testNow, "Dentist visit", "", "")
		assert.NoError(t, err)
	})

	t.Run("rejects a date one second in the past", func(t *testing.T) {
		_, err := New(testClock(), "a1", testNow.Add(-time.Second), "Dentist visit", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "appointmentDate must not be in the past")
	})

	t.Run("rejects the zero date", func(t *testing.T) {
		_, err := New(testClock(), "a1", time.Time{}, "Dentist visit", "", "")
		assert.Error(t, err)
	})

	t.Run("rejects blank description", func(t *testing.T) {
		_, err := New(testClock(), "a1", testNow.Add(time.Hour), "   ", "", "")
		assert.Error(t, err)
	})

	t.Run("rejects description over fifty characters", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'd'
		}
		_, err := New(testClock(), "a1", testNow.Add(time.Hour), string(long), "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "description length must be between 1 and 50")
	})

	t.Run("rejects soft references over ten characters", func(t *testing.T) {
		_, err := New(testClock(), "a1", testNow.Add(time.Hour), "Dentist visit", "project0001", "")
		assert.Error(t, err)

		_, err = New(testClock(), "a1", testNow.Add(time.Hour), "Dentist visit", "", "task0000001")
		assert.Error(t, err)
	})
}

func TestAppointmentUpdate(t *testing.T) {
	newAppointment := func(t *testing.T) *Appointment {
		t.Helper()
		a, err := New(testClock(), "a1", testNow.Add(24*time.Hour), "Dentist visit", "", "")
		require.NoError(t, err)
		return a
	}

	t.Run("replaces every field", func(t *testing.T) {
		a := newAppointment(t)
		date := testNow.Add(48 * time.Hour)

		err := a.Update(date, "Follow-up visit", "p1", "t1")

		require.NoError(t, err)
		assert.True(t, a.Date().Equal(date))
		assert.Equal(t, "Follow-up visit", a.Description())
		assert.Equal(t, "p1", a.ProjectID())
		assert.Equal(t, "t1", a.TaskID())
	})

	t.Run("all or nothing on invalid date", func(t *testing.T) {
		a := newAppointment(t)

		err := a.Update(testNow.Add(-time.Hour), "Follow-up visit", "", "")

		require.Error(t, err)
		assert.Equal(t, "Dentist visit", a.Description())
		assert.True(t, a.Date().Equal(testNow.Add(24*time.Hour)))
	})
}

func TestAppointmentCopy(t *testing.T) {
	a, err := New(testClock(), "a1", testNow.Add(24*time.Hour), "Dentist visit", "p1", "")
	require.NoError(t, err)

	copied, err := a.Copy()
	require.NoError(t, err)
	assert.Equal(t, a.ID(), copied.ID())
	assert.True(t, copied.Date().Equal(a.Date()))

	require.NoError(t, copied.Update(testNow.Add(72*time.Hour), "Moved", "", ""))
	assert.Equal(t, "Dentist visit", a.Description())
}
