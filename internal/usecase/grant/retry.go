package grant

import (
	"github.com/betops/bonusledger/internal/domain"
	"go.uber.org/zap"
)

// retryReferrerCredit resumes a referral grant at the referrer-credit step.
// The stock for the referrer leg was deducted when the original grant
// reserved 2x the payout, so this only credits and records. The duplicate
// check against the ledger is the authoritative guard; the in-process lock
// just keeps a double-clicked retry from racing itself.
func (uc *GrantUseCase) retryReferrerCredit(playerRecordID int64, grantedBy string) (*domain.GrantRecord, error) {
	uc.logger.Info("Referrer credit retry requested",
		zap.Int64("playerRecordID", playerRecordID),
		zap.String("grantedBy", grantedBy))

	if grantedBy == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Operator attribution is required", 400, nil)
	}

	if !uc.lockManager.TryLock(playerRecordID) {
		return nil, domain.NewAppError(domain.ErrCodeReferrerCreditInProgress, "A referrer credit retry for this grant is already running", 409, nil)
	}
	defer uc.lockManager.Unlock(playerRecordID)

	record, err := uc.grantRepo.GetByID(playerRecordID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get grant record", 500, err)
	}
	if record == nil {
		return nil, domain.NewAppError(domain.ErrCodeGrantNotFound, "Grant record not found", 404, nil)
	}
	if record.BonusType != domain.BonusTypeReferral {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRequest, "Grant is not a referral grant", 400, nil)
	}
	if record.ReferralOf != nil {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRequest, "Grant record is the referrer side, not the player side", 400, nil)
	}

	existing, err := uc.grantRepo.GetReferrerRecord(playerRecordID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check referrer record", 500, err)
	}
	if existing != nil {
		uc.logger.Warn("Referrer already credited for grant",
			zap.Int64("playerRecordID", playerRecordID),
			zap.Int64("referrerRecordID", existing.ID))
		return nil, domain.NewAppError(domain.ErrCodeReferrerAlreadyCredited, "Referrer has already been credited for this grant", 409, nil)
	}

	player, err := uc.getPlayerAndValidate(record.PlayerID)
	if err != nil {
		return nil, err
	}
	if player.ReferredBy == nil {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRequest, "Player has no referrer on record", 400, nil)
	}

	balanceBefore, balanceAfter, err := uc.playerRepo.CreditBalance(*player.ReferredBy, record.Amount)
	if err != nil {
		uc.logger.Error("Referrer credit retry failed",
			zap.Int64("playerRecordID", playerRecordID),
			zap.Int64("referrerID", *player.ReferredBy),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodePartialCreditFailure, "Referrer credit failed again; retry later", 500, err)
	}

	referrerRecord := uc.newGrantRecord(*player.ReferredBy, record.GameID, domain.BonusTypeReferral, record.Amount, balanceBefore, balanceAfter, record.Notes, grantedBy, &record.ID)
	uc.appendRecord(referrerRecord)

	uc.logger.Info("Referrer credit recovered",
		zap.Int64("playerRecordID", playerRecordID),
		zap.Int64("referrerID", *player.ReferredBy),
		zap.String("amount", record.Amount.String()))

	return referrerRecord, nil
}
