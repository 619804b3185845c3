package grant

import (
	"errors"
	"time"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/outbox"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ***** Input Validation

// validateAmount validates amount is non-negative with at most 2 decimal places
func (uc *GrantUseCase) validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.NewAppError(domain.ErrCodeInvalidRequest, "Base amount must not be negative", 400, nil)
	}
	if !amount.Equal(amount.Round(2)) {
		return domain.NewAppError(domain.ErrCodeInvalidPrecision, "Amount cannot have more than 2 decimal places", 400, nil)
	}
	return nil
}

// validateSubmitInput validates grant submission parameters
func (uc *GrantUseCase) validateSubmitInput(bonusType domain.BonusType, baseAmount decimal.Decimal, grantedBy string) error {
	if !bonusType.IsValid() {
		return domain.NewAppError(domain.ErrCodeInvalidRequest, "Unknown bonus type", 400, nil)
	}
	if err := uc.validateAmount(baseAmount); err != nil {
		return err
	}
	if !baseAmount.IsPositive() {
		return domain.NewAppError(domain.ErrCodeInvalidRequest, "Base amount must be greater than 0", 400, nil)
	}
	if grantedBy == "" {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Operator attribution is required", 400, nil)
	}
	return nil
}

// ***** Entity Lookups

// getPlayerAndValidate validates the player exists
func (uc *GrantUseCase) getPlayerAndValidate(playerID int64) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByID(playerID)
	if err != nil {
		uc.logger.Error("Failed to get player from database", zap.Int64("playerID", playerID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player from DB", 500, err)
	}
	if player == nil {
		uc.logger.Warn("Player not found", zap.Int64("playerID", playerID))
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return player, nil
}

// getGameAndValidate validates the game exists
func (uc *GrantUseCase) getGameAndValidate(gameID int64) (*domain.Game, error) {
	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		uc.logger.Error("Failed to get game from database", zap.Int64("gameID", gameID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	if game == nil {
		uc.logger.Warn("Game not found", zap.Int64("gameID", gameID))
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	return game, nil
}

// ***** Error Classification

// isInsufficientStock checks if the error is the stock-reservation rejection
func (uc *GrantUseCase) isInsufficientStock(err error) bool {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.Code == domain.ErrCodeInsufficientStock
	}
	return false
}

// ***** Record Management

// newGrantRecord builds the ledger row for one credited leg of a grant
func (uc *GrantUseCase) newGrantRecord(playerID, gameID int64, bonusType domain.BonusType, payout, balanceBefore, balanceAfter decimal.Decimal, notes, grantedBy string, referralOf *int64) *domain.GrantRecord {
	return &domain.GrantRecord{
		PlayerID:      playerID,
		GameID:        gameID,
		BonusType:     bonusType,
		Amount:        payout,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		Notes:         notes,
		GrantedBy:     grantedBy,
		ReferralOf:    referralOf,
		CreatedAt:     time.Now(),
	}
}

// appendRecord writes the ledger row; on failure the row is parked in the
// outbox for async retry and the grant is still reported as recorded.
func (uc *GrantUseCase) appendRecord(record *domain.GrantRecord) {
	if err := uc.grantRepo.Create(record); err != nil {
		uc.logger.Error("Grant record append failed, deferring to outbox",
			zap.String("code", domain.ErrCodeLedgerWriteFailure),
			zap.Int64("playerID", record.PlayerID),
			zap.Int64("gameID", record.GameID),
			zap.String("bonusType", string(record.BonusType)),
			zap.Error(err))
		uc.enqueueLedgerAppend(record)
	}
}

// enqueueLedgerAppend parks a failed ledger write for the outbox processor
func (uc *GrantUseCase) enqueueLedgerAppend(record *domain.GrantRecord) {
	event := &domain.OutboxEvent{
		ID:        uuid.NewString(),
		Type:      domain.EventTypeLedgerAppend,
		Data:      outbox.EventDataFromRecord(record),
		Status:    domain.EventStatusPending,
		CreatedAt: time.Now(),
	}
	if err := uc.outboxRepo.Save(event); err != nil {
		// Both the direct append and the outbox write failed; all that is
		// left is the log line for manual reconciliation.
		uc.logger.Error("Failed to enqueue ledger append event",
			zap.String("code", domain.ErrCodeLedgerWriteFailure),
			zap.Int64("playerID", record.PlayerID),
			zap.Int64("gameID", record.GameID),
			zap.String("amount", record.Amount.String()),
			zap.Error(err))
	}
}
