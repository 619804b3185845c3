package grant

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/usecase/bonus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// submitGrant runs the grant state machine:
//
//	PENDING -> STOCK_RESERVED -> CREDITED -> RECORDED
//
// with REJECTED as the terminal failure state of any precondition. Once the
// stock deduction has committed the request runs to completion regardless of
// the caller; there is no request context past this point.
func (uc *GrantUseCase) submitGrant(playerID, gameID int64, bonusType domain.BonusType, baseAmount decimal.Decimal, notes, grantedBy string) (*domain.GrantResult, error) {
	uc.logger.Info("Grant request received",
		zap.Int64("playerID", playerID),
		zap.Int64("gameID", gameID),
		zap.String("bonusType", string(bonusType)),
		zap.String("baseAmount", baseAmount.String()),
		zap.String("grantedBy", grantedBy))

	// PENDING: validate the request before touching any store
	if err := uc.validateSubmitInput(bonusType, baseAmount, grantedBy); err != nil {
		return nil, err
	}

	player, err := uc.getPlayerAndValidate(playerID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.getGameAndValidate(gameID); err != nil {
		return nil, err
	}

	// The calculator runs again here with a fresh snapshot; any quote the
	// client previewed is advisory and never trusted.
	quote, err := bonus.Compute(bonusType, baseAmount, player.Snapshot())
	if err != nil {
		return nil, err
	}
	if !quote.Eligible {
		uc.logger.Warn("Bonus type not eligible for player",
			zap.Int64("playerID", playerID),
			zap.String("bonusType", string(bonusType)))
		return nil, domain.NewAppError(domain.ErrCodeBonusNotEligible, "Bonus type not eligible for this player", 400, nil)
	}
	if !quote.Payout.IsPositive() {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRequest, "Computed payout is zero", 400, nil)
	}

	// STOCK_RESERVED: the conditional decrement is the authoritative check
	newStock, err := uc.gameRepo.DeductStock(gameID, quote.StockCost)
	if err != nil {
		if uc.isInsufficientStock(err) {
			uc.logger.Warn("Grant rejected, insufficient stock",
				zap.Int64("gameID", gameID),
				zap.String("stockCost", quote.StockCost.String()))
			return nil, err
		}
		uc.logger.Error("Stock deduction failed", zap.Int64("gameID", gameID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to reserve game stock", 500, err)
	}

	uc.logger.Info("Stock reserved",
		zap.Int64("gameID", gameID),
		zap.String("stockCost", quote.StockCost.String()),
		zap.String("newStock", newStock.String()))

	// CREDITED: credit the player; a failure here compensates the stock
	// deduction so a rejected grant leaves no net mutation
	balanceBefore, balanceAfter, err := uc.playerRepo.CreditBalance(playerID, quote.Payout)
	if err != nil {
		uc.logger.Error("Player credit failed after stock reservation, restoring stock",
			zap.Int64("playerID", playerID),
			zap.Int64("gameID", gameID),
			zap.Error(err))
		if _, restoreErr := uc.gameRepo.AddStock(gameID, quote.StockCost); restoreErr != nil {
			uc.logger.Error("Stock restore failed, manual reconciliation required",
				zap.Int64("gameID", gameID),
				zap.String("stockCost", quote.StockCost.String()),
				zap.Error(restoreErr))
		}
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to credit player balance", 500, err)
	}

	if bonusType == domain.BonusTypeStreak {
		// Reset only after the credit has committed; the payout was computed
		// from the streak value the credit was based on.
		if err := uc.playerRepo.ResetStreak(playerID); err != nil {
			uc.logger.Error("Streak reset failed after credit",
				zap.Int64("playerID", playerID),
				zap.Error(err))
		}
	}

	// RECORDED: ledger append is best-effort, failures go through the outbox
	playerRecord := uc.newGrantRecord(playerID, gameID, bonusType, quote.Payout, balanceBefore, balanceAfter, notes, grantedBy, nil)
	uc.appendRecord(playerRecord)

	result := &domain.GrantResult{
		Status: domain.GrantStatusRecorded,
		Record: playerRecord,
	}

	if bonusType == domain.BonusTypeReferral {
		referrerRecord, err := uc.creditReferrer(player, gameID, quote.Payout, notes, grantedBy, playerRecord)
		if err != nil {
			result.Status = domain.GrantStatusCredited
			return result, err
		}
		result.ReferrerRecord = referrerRecord
	}

	uc.logger.Info("Grant recorded",
		zap.Int64("playerID", playerID),
		zap.Int64("gameID", gameID),
		zap.String("bonusType", string(bonusType)),
		zap.String("payout", quote.Payout.String()))

	return result, nil
}

// creditReferrer runs the second, independent credit of a referral grant.
// The stock for this leg was already deducted with the player's leg, so a
// failure here is a PartialCreditFailure that must be resumed explicitly.
func (uc *GrantUseCase) creditReferrer(player *domain.Player, gameID int64, payout decimal.Decimal, notes, grantedBy string, playerRecord *domain.GrantRecord) (*domain.GrantRecord, error) {
	referrerID := *player.ReferredBy

	balanceBefore, balanceAfter, err := uc.playerRepo.CreditBalance(referrerID, payout)
	if err != nil {
		uc.logger.Error("Referrer credit failed after player credit",
			zap.Int64("playerID", player.ID),
			zap.Int64("referrerID", referrerID),
			zap.Int64("playerRecordID", playerRecord.ID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodePartialCreditFailure,
			"Player credited but referrer credit failed; retry the referrer credit for this grant", 500, err)
	}

	var referralOf *int64
	if playerRecord.ID != 0 {
		referralOf = &playerRecord.ID
	}

	referrerRecord := uc.newGrantRecord(referrerID, gameID, domain.BonusTypeReferral, payout, balanceBefore, balanceAfter, notes, grantedBy, referralOf)
	uc.appendRecord(referrerRecord)

	return referrerRecord, nil
}

// preview maps calculator quotes for the operator UI; nothing is mutated
func (uc *GrantUseCase) preview(playerID int64, baseAmount decimal.Decimal, bonusTypes []domain.BonusType) ([]domain.BonusQuote, error) {
	if err := uc.validateAmount(baseAmount); err != nil {
		return nil, err
	}

	player, err := uc.getPlayerAndValidate(playerID)
	if err != nil {
		return nil, err
	}

	return bonus.Quotes(bonusTypes, baseAmount, player.Snapshot())
}
