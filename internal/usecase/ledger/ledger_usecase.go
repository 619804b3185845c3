package ledger

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// LedgerUseCase implements domain.LedgerUseCase. It is a read model over
// recorded grants only; rows the executor deferred to the outbox become
// visible once the processor lands them.
type LedgerUseCase struct {
	grantRepo domain.GrantRepository
	logger    *logger.Logger
}

// NewLedgerUseCase creates a new ledger usecase
func NewLedgerUseCase(grantRepo domain.GrantRepository, logger *logger.Logger) domain.LedgerUseCase {
	return &LedgerUseCase{
		grantRepo: grantRepo,
		logger:    logger,
	}
}

// ListByPlayer returns a player's grant history, newest first
func (uc *LedgerUseCase) ListByPlayer(playerID int64, limit, offset int) ([]*domain.GrantRecord, error) {
	if playerID <= 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid player ID", 400, nil)
	}
	limit, offset = clampPage(limit, offset)

	records, err := uc.grantRepo.GetByPlayerID(playerID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list grants for player",
			zap.Int64("playerID", playerID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list grants", 500, err)
	}
	return records, nil
}

// List returns the global audit view of grants, newest first
func (uc *LedgerUseCase) List(limit, offset int) ([]*domain.GrantRecord, error) {
	limit, offset = clampPage(limit, offset)

	records, err := uc.grantRepo.List(limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list grants", zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list grants", 500, err)
	}
	return records, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
