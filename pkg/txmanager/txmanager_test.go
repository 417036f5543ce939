package txmanager

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSerializable_PropagatesError(t *testing.T) {
	m := NewTransactionManager()
	wantErr := errors.New("capacity exceeded")

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, InTransaction(ctx))
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}

func TestDoSerializable_Nested(t *testing.T) {
	m := NewTransactionManager()
	calls := 0

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return m.DoSerializable(ctx, func(ctx context.Context) error {
			calls++
			return m.DoReadOnly(ctx, func(context.Context) error {
				calls++
				return nil
			})
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoSerializable_CancelledContext(t *testing.T) {
	m := NewTransactionManager()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.DoSerializable(ctx, func(context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDoSerializable_NoInterleaving(t *testing.T) {
	m := NewTransactionManager()
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.DoSerializable(context.Background(), func(context.Context) error {
				// чтение и запись без атомиков безопасны только при эксклюзивном доступе
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.False(t, InTransaction(context.Background()))
}
