package lock

import (
	"sync"
)

// GrantLockManager serializes operator-triggered retries per grant record so
// two concurrent "credit referrer" retries for the same record cannot race
// each other in-process. The duplicate-record check in the use case remains
// the authoritative guard.
type GrantLockManager struct {
	locks sync.Map // map[int64]*sync.Mutex
}

func NewGrantLockManager() *GrantLockManager {
	return &GrantLockManager{}
}

// TryLock attempts to acquire the lock for a grant record without blocking
func (m *GrantLockManager) TryLock(recordID int64) bool {
	mu := m.getOrCreateMutex(recordID)
	return mu.TryLock()
}

// Unlock releases the lock for a grant record
func (m *GrantLockManager) Unlock(recordID int64) {
	muInterface, ok := m.locks.Load(recordID)
	if !ok {
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

func (m *GrantLockManager) getOrCreateMutex(recordID int64) *sync.Mutex {
	if mu, ok := m.locks.Load(recordID); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(recordID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
