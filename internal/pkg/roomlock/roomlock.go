// Package roomlock serializes reservation creation per room. The pre-flight
// conflict check and the insert are separate operations, so two concurrent
// requests for the same room could otherwise both pass validation before
// either writes. Holding the room's mutex across validate-and-insert closes
// that window within a single process; the storage-level exclusion constraint
// remains the backstop across processes.
package roomlock

import (
	"sync"

	"github.com/google/uuid"
)

type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[uuid.UUID]*entry),
	}
}

func (k *KeyedMutex) Lock(roomID uuid.UUID) {
	k.mu.Lock()
	e, ok := k.locks[roomID]
	if !ok {
		e = &entry{}
		k.locks[roomID] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

func (k *KeyedMutex) Unlock(roomID uuid.UUID) {
	k.mu.Lock()
	e, ok := k.locks[roomID]
	if !ok {
		k.mu.Unlock()
		panic("roomlock: unlock of unheld room lock")
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, roomID)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
