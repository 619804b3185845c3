package grant

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/lock"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
)

// GrantUseCase implements domain.GrantUseCase. One SubmitGrant call is one
// independent grant execution; a submission with several (game, bonus type)
// selections is several calls with no cross-call atomicity.
type GrantUseCase struct {
	playerRepo  domain.PlayerRepository
	gameRepo    domain.GameRepository
	grantRepo   domain.GrantRepository
	outboxRepo  domain.OutboxRepository
	lockManager *lock.GrantLockManager
	logger      *logger.Logger
}

// NewGrantUseCase creates a new grant usecase
func NewGrantUseCase(
	playerRepo domain.PlayerRepository,
	gameRepo domain.GameRepository,
	grantRepo domain.GrantRepository,
	outboxRepo domain.OutboxRepository,
	lockManager *lock.GrantLockManager,
	logger *logger.Logger,
) domain.GrantUseCase {
	logger.Info("GrantUseCase initialized successfully")
	return &GrantUseCase{
		playerRepo:  playerRepo,
		gameRepo:    gameRepo,
		grantRepo:   grantRepo,
		outboxRepo:  outboxRepo,
		lockManager: lockManager,
		logger:      logger,
	}
}

// SubmitGrant executes one grant request end to end
func (uc *GrantUseCase) SubmitGrant(playerID, gameID int64, bonusType domain.BonusType, baseAmount decimal.Decimal, notes, grantedBy string) (*domain.GrantResult, error) {
	return uc.submitGrant(playerID, gameID, bonusType, baseAmount, notes, grantedBy)
}

// RetryReferrerCredit resumes the referrer leg of a referral grant
func (uc *GrantUseCase) RetryReferrerCredit(playerRecordID int64, grantedBy string) (*domain.GrantRecord, error) {
	return uc.retryReferrerCredit(playerRecordID, grantedBy)
}

// Preview quotes the requested bonus types without mutating anything
func (uc *GrantUseCase) Preview(playerID int64, baseAmount decimal.Decimal, bonusTypes []domain.BonusType) ([]domain.BonusQuote, error) {
	return uc.preview(playerID, baseAmount, bonusTypes)
}
