package daylock

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoExclusive_RunsFn(t *testing.T) {
	l := New()

	called := false
	err := l.DoExclusive(context.Background(), "2026-09-12", func() error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestDoExclusive_PropagatesFnError(t *testing.T) {
	l := New()

	wantErr := errors.New("insert failed")
	err := l.DoExclusive(context.Background(), "2026-09-12", func() error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}

func TestDoExclusive_CancelledContextSkipsFn(t *testing.T) {
	l := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := l.DoExclusive(ctx, "2026-09-12", func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDoExclusive_SerializesSameDay(t *testing.T) {
	l := New()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_ = l.DoExclusive(context.Background(), "2026-09-12", func() error {
				// Без сериализации инкремент без атомиков словил бы гонку
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestDoExclusive_DifferentDaysDoNotBlockEachOther(t *testing.T) {
	l := New()

	firstHolds := make(chan struct{})
	firstRelease := make(chan struct{})

	go func() {
		_ = l.DoExclusive(context.Background(), "2026-09-12", func() error {
			close(firstHolds)
			<-firstRelease
			return nil
		})
	}()

	<-firstHolds

	// Другой день проходит, пока первый держит свою блокировку
	err := l.DoExclusive(context.Background(), "2026-09-13", func() error {
		return nil
	})
	require.NoError(t, err)

	close(firstRelease)
}

func TestDoExclusive_EntryTableDoesNotLeak(t *testing.T) {
	l := New()

	for i := 0; i < 10; i++ {
		_ = l.DoExclusive(context.Background(), "2026-09-12", func() error { return nil })
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.days)
}
