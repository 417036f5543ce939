package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRegistry_CreateAndGet(t *testing.T) {
	r := NewRegistry(nopLogger{})

	s := r.Create()
	assert.NotEmpty(t, s.ID)
	assert.Nil(t, s.SelectedDate)
	assert.False(t, s.IsMember)

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_SessionsAreIndependent(t *testing.T) {
	r := NewRegistry(nopLogger{})
	a := r.Create()
	b := r.Create()

	_, err := r.SetMember(a.ID, true)
	require.NoError(t, err)

	date := time.Date(2024, time.June, 10, 15, 30, 0, 0, time.Local)
	_, err = r.SetSelectedDate(a.ID, &date)
	require.NoError(t, err)

	gotA, err := r.Get(a.ID)
	require.NoError(t, err)
	gotB, err := r.Get(b.ID)
	require.NoError(t, err)

	assert.True(t, gotA.IsMember)
	require.NotNil(t, gotA.SelectedDate)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local), *gotA.SelectedDate)

	assert.False(t, gotB.IsMember)
	assert.Nil(t, gotB.SelectedDate)
}

func TestRegistry_ClearSelectedDate(t *testing.T) {
	r := NewRegistry(nopLogger{})
	s := r.Create()

	date := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)
	_, err := r.SetSelectedDate(s.ID, &date)
	require.NoError(t, err)

	updated, err := r.SetSelectedDate(s.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, updated.SelectedDate)
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := NewRegistry(nopLogger{})
	s := r.Create()

	date := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)
	updated, err := r.SetSelectedDate(s.ID, &date)
	require.NoError(t, err)

	*updated.SelectedDate = updated.SelectedDate.AddDate(1, 0, 0)

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.SelectedDate.Year())
}

func TestRegistry_UnknownSession(t *testing.T) {
	r := NewRegistry(nopLogger{})

	_, err := r.SetMember("missing", true)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = r.SetSelectedDate("missing", nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.False(t, r.Delete("missing"))
}

func TestRegistry_Delete(t *testing.T) {
	r := NewRegistry(nopLogger{})
	s := r.Create()

	assert.True(t, r.Delete(s.ID))
	_, err := r.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry(nopLogger{})
	s := r.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.SetMember(s.ID, i%2 == 0)
			_, _ = r.Get(s.ID)
			r.Create()
		}(i)
	}
	wg.Wait()

	_, err := r.Get(s.ID)
	assert.NoError(t, err)
}
