//go:build unit

package roomlock_test

import (
	"sync"
	"testing"

	"hotel-management-service/internal/pkg/roomlock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("serializes access to the same room", func(t *testing.T) {
		km := roomlock.NewKeyedMutex()
		roomID := uuid.New()

		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				km.Lock(roomID)
				defer km.Unlock(roomID)
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, counter)
	})

	t.Run("different rooms do not block each other", func(t *testing.T) {
		km := roomlock.NewKeyedMutex()
		roomA := uuid.New()
		roomB := uuid.New()

		km.Lock(roomA)
		done := make(chan struct{})
		go func() {
			km.Lock(roomB)
			km.Unlock(roomB)
			close(done)
		}()
		<-done
		km.Unlock(roomA)
	})

	t.Run("unlock of unheld lock panics", func(t *testing.T) {
		km := roomlock.NewKeyedMutex()
		assert.Panics(t, func() {
			km.Unlock(uuid.New())
		})
	})
}
