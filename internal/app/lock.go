package app

import "github.com/betops/bonusledger/internal/infrastructure/lock"

func (a *application) InitGrantLockManager() *lock.GrantLockManager {
	return lock.NewGrantLockManager()
}
