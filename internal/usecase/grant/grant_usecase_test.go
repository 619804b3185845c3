package grant

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/domain/mocks"
	"github.com/betops/bonusledger/internal/infrastructure/lock"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	playerRepo *mocks.MockPlayerRepository
	gameRepo   *mocks.MockGameRepository
	grantRepo  *mocks.MockGrantRepository
	outboxRepo *mocks.MockOutboxRepository
}

func newTestUseCase(ctrl *gomock.Controller) (*GrantUseCase, *testMocks) {
	m := &testMocks{
		playerRepo: mocks.NewMockPlayerRepository(ctrl),
		gameRepo:   mocks.NewMockGameRepository(ctrl),
		grantRepo:  mocks.NewMockGrantRepository(ctrl),
		outboxRepo: mocks.NewMockOutboxRepository(ctrl),
	}
	uc := &GrantUseCase{
		playerRepo:  m.playerRepo,
		gameRepo:    m.gameRepo,
		grantRepo:   m.grantRepo,
		outboxRepo:  m.outboxRepo,
		lockManager: lock.NewGrantLockManager(),
		logger:      logger.NewLogger("test", "debug"),
	}
	return uc, m
}

func createTestPlayer(streak int, referredBy *int64) *domain.Player {
	return &domain.Player{
		ID:            123,
		Username:      "test_player",
		Balance:       decimal.NewFromInt(100),
		CurrentStreak: streak,
		ReferredBy:    referredBy,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func createTestGame() *domain.Game {
	return &domain.Game{
		ID:         7,
		Name:       "Lucky Sevens",
		PointStock: decimal.NewFromInt(1000),
	}
}

// decEq matches a decimal argument by value, not representation
type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "decimal equal to " + m.want.String()
}

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return appErr.Code
}

func TestSubmitStreakGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(5, nil), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)
	m.gameRepo.EXPECT().DeductStock(int64(7), decEq("5")).Return(decimal.NewFromInt(995), nil)
	m.playerRepo.EXPECT().CreditBalance(int64(123), decEq("5")).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(105), nil)
	m.playerRepo.EXPECT().ResetStreak(int64(123)).Return(nil)
	m.grantRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(record *domain.GrantRecord) error {
		record.ID = 42
		return nil
	})

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeStreak, decimal.NewFromInt(100), "weekly promo", "ops1")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, domain.GrantStatusRecorded, result.Status)
	require.NotNil(t, result.Record)
	assert.Equal(t, int64(42), result.Record.ID)
	assert.Equal(t, domain.BonusTypeStreak, result.Record.BonusType)
	assert.True(t, result.Record.Amount.Equal(decimal.NewFromInt(5)))
	assert.True(t, result.Record.BalanceBefore.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.Record.BalanceAfter.Equal(decimal.NewFromInt(105)))
	assert.Equal(t, "ops1", result.Record.GrantedBy)
	assert.Nil(t, result.Record.ReferralOf)
	assert.Nil(t, result.ReferrerRecord)
}

func TestSubmitStreakGrantZeroStreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(0, nil), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeStreak, decimal.NewFromInt(100), "", "ops1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domain.ErrCodeInvalidRequest, appErrCode(t, err))
}

func TestSubmitInputValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUseCase(ctrl)

	tests := []struct {
		name      string
		bonusType domain.BonusType
		amount    decimal.Decimal
		grantedBy string
		errCode   string
	}{
		{"UnknownBonusType", "jackpot", decimal.NewFromInt(10), "ops1", domain.ErrCodeInvalidRequest},
		{"NegativeAmount", domain.BonusTypeStreak, decimal.NewFromInt(-10), "ops1", domain.ErrCodeInvalidRequest},
		{"ZeroAmount", domain.BonusTypeStreak, decimal.Zero, "ops1", domain.ErrCodeInvalidRequest},
		{"TooManyDecimals", domain.BonusTypeStreak, decimal.RequireFromString("10.005"), "ops1", domain.ErrCodeInvalidPrecision},
		{"MissingOperator", domain.BonusTypeStreak, decimal.NewFromInt(10), "", domain.ErrCodeRequiredField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.SubmitGrant(123, 7, tt.bonusType, tt.amount, "", tt.grantedBy)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.errCode, appErrCode(t, err))
		})
	}
}

func TestSubmitPlayerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.playerRepo.EXPECT().GetByID(int64(123)).Return(nil, nil)

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeStreak, decimal.NewFromInt(100), "", "ops1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domain.ErrCodePlayerNotFound, appErrCode(t, err))
}

func TestSubmitGameNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(5, nil), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(nil, nil)

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeStreak, decimal.NewFromInt(100), "", "ops1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domain.ErrCodeGameNotFound, appErrCode(t, err))
}

func TestSubmitInsufficientStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(500, nil), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)
	m.gameRepo.EXPECT().DeductStock(int64(7), decEq("500")).
		Return(decimal.Zero, domain.NewAppError(domain.ErrCodeInsufficientStock, "Insufficient point stock", 409, nil))

	// no CreditBalance, no ResetStreak, no record: the rejection leaves no
	// net mutation

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeStreak, decimal.NewFromInt(100), "", "ops1")
	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientStock, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

// stockGameRepo is a concurrency-safe in-memory GameRepository. Its
// conditional decrement stands in for the single-statement UPDATE so racing
// grants can be exercised without a database.
type stockGameRepo struct {
	mu   sync.Mutex
	game domain.Game
}

func newStockGameRepo(stock int64) *stockGameRepo {
	return &stockGameRepo{game: domain.Game{ID: 7, Name: "Lucky Sevens", PointStock: decimal.NewFromInt(stock)}}
}

func (r *stockGameRepo) GetByID(id int64) (*domain.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game := r.game
	return &game, nil
}

func (r *stockGameRepo) List() ([]*domain.Game, error) {
	game, _ := r.GetByID(7)
	return []*domain.Game{game}, nil
}

func (r *stockGameRepo) Create(game *domain.Game) error { return nil }

func (r *stockGameRepo) DeductStock(gameID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.game.PointStock.LessThan(amount) {
		return decimal.Zero, domain.NewAppError(domain.ErrCodeInsufficientStock, "Insufficient point stock", 409, nil)
	}
	r.game.PointStock = r.game.PointStock.Sub(amount)
	return r.game.PointStock, nil
}

func (r *stockGameRepo) AddStock(gameID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.game.PointStock = r.game.PointStock.Add(amount)
	return r.game.PointStock, nil
}

func (r *stockGameRepo) Stock() decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.PointStock
}

func TestSubmitConcurrentGrantsNeverOverdrawStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	// stock of 10 covers one 6-point grant but not two
	gameRepo := newStockGameRepo(10)
	uc.gameRepo = gameRepo

	m.playerRepo.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id int64) (*domain.Player, error) {
		return &domain.Player{ID: id, Balance: decimal.NewFromInt(100), CurrentStreak: 6}, nil
	}).Times(2)

	// exactly one grant makes it past the stock reservation
	m.playerRepo.EXPECT().CreditBalance(gomock.Any(), decEq("6")).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(106), nil).Times(1)
	m.playerRepo.EXPECT().ResetStreak(gomock.Any()).Return(nil).Times(1)
	m.grantRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.SubmitGrant(int64(i+1), 7, domain.BonusTypeStreak, decimal.NewFromInt(100), "", "ops1")
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, domain.ErrCodeInsufficientStock, appErrCode(t, err))
		rejected++
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.True(t, gameRepo.Stock().Equal(decimal.NewFromInt(4)), "stock %s", gameRepo.Stock())
}

func TestSubmitCreditFailureRestoresStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(5, nil), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)
	m.gameRepo.EXPECT().DeductStock(int64(7), decEq("5")).Return(decimal.NewFromInt(995), nil)
	m.playerRepo.EXPECT().CreditBalance(int64(123), decEq("5")).
		Return(decimal.Zero, decimal.Zero, errors.New("connection reset"))
	m.gameRepo.EXPECT().AddStock(int64(7), decEq("5")).Return(decimal.NewFromInt(1000), nil)

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeStreak, decimal.NewFromInt(100), "", "ops1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domain.ErrCodeDatabaseQuery, appErrCode(t, err))
}

func TestSubmitStreakResetFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(3, nil), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)
	m.gameRepo.EXPECT().DeductStock(int64(7), decEq("3")).Return(decimal.NewFromInt(997), nil)
	m.playerRepo.EXPECT().CreditBalance(int64(123), decEq("3")).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(103), nil)
	m.playerRepo.EXPECT().ResetStreak(int64(123)).Return(errors.New("lock timeout"))
	m.grantRepo.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeStreak, decimal.NewFromInt(100), "", "ops1")
	require.NoError(t, err)
	assert.Equal(t, domain.GrantStatusRecorded, result.Status)
}

func TestSubmitLedgerAppendFailureDefersToOutbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(5, nil), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)
	m.gameRepo.EXPECT().DeductStock(int64(7), decEq("5")).Return(decimal.NewFromInt(995), nil)
	m.playerRepo.EXPECT().CreditBalance(int64(123), decEq("5")).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(105), nil)
	m.playerRepo.EXPECT().ResetStreak(int64(123)).Return(nil)
	m.grantRepo.EXPECT().Create(gomock.Any()).Return(errors.New("disk full"))
	m.outboxRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(event *domain.OutboxEvent) error {
		assert.Equal(t, domain.EventTypeLedgerAppend, event.Type)
		assert.Equal(t, domain.EventStatusPending, event.Status)
		assert.Equal(t, "5", event.Data["amount"])
		return nil
	})

	// the credits have committed, so the grant still reports as recorded
	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeStreak, decimal.NewFromInt(100), "", "ops1")
	require.NoError(t, err)
	assert.Equal(t, domain.GrantStatusRecorded, result.Status)
}

func TestSubmitReferralGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	referrerID := int64(99)
	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(0, &referrerID), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)

	// stock covers both legs in one reservation
	m.gameRepo.EXPECT().DeductStock(int64(7), decEq("100")).Return(decimal.NewFromInt(900), nil)

	m.playerRepo.EXPECT().CreditBalance(int64(123), decEq("50")).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(150), nil)
	m.grantRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(record *domain.GrantRecord) error {
		record.ID = 41
		return nil
	})

	m.playerRepo.EXPECT().CreditBalance(referrerID, decEq("50")).
		Return(decimal.NewFromInt(500), decimal.NewFromInt(550), nil)
	m.grantRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(record *domain.GrantRecord) error {
		require.NotNil(t, record.ReferralOf)
		assert.Equal(t, int64(41), *record.ReferralOf)
		record.ID = 42
		return nil
	})

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeReferral, decimal.NewFromInt(200), "", "ops1")
	require.NoError(t, err)

	assert.Equal(t, domain.GrantStatusRecorded, result.Status)
	require.NotNil(t, result.Record)
	require.NotNil(t, result.ReferrerRecord)
	assert.True(t, result.Record.Amount.Equal(result.ReferrerRecord.Amount))
	assert.Equal(t, referrerID, result.ReferrerRecord.PlayerID)
}

func TestSubmitReferralWithoutReferrer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(0, nil), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeReferral, decimal.NewFromInt(200), "", "ops1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domain.ErrCodeBonusNotEligible, appErrCode(t, err))
}

func TestSubmitReferralRejectsHalfCentPayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	referrerID := int64(99)
	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(0, &referrerID), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)

	// a 0.01 base halves to 0.005, below what the ledger can store; the
	// grant is rejected before any stock or balance mutation
	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeReferral, decimal.RequireFromString("0.01"), "", "ops1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domain.ErrCodeInvalidRequest, appErrCode(t, err))
}

func TestSubmitReferralPartialCreditFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	referrerID := int64(99)
	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(0, &referrerID), nil)
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(createTestGame(), nil)
	m.gameRepo.EXPECT().DeductStock(int64(7), decEq("100")).Return(decimal.NewFromInt(900), nil)
	m.playerRepo.EXPECT().CreditBalance(int64(123), decEq("50")).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(150), nil)
	m.grantRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(record *domain.GrantRecord) error {
		record.ID = 41
		return nil
	})
	m.playerRepo.EXPECT().CreditBalance(referrerID, decEq("50")).
		Return(decimal.Zero, decimal.Zero, errors.New("connection reset"))

	result, err := uc.SubmitGrant(123, 7, domain.BonusTypeReferral, decimal.NewFromInt(200), "", "ops1")
	require.Error(t, err)
	assert.Equal(t, domain.ErrCodePartialCreditFailure, appErrCode(t, err))

	// the player leg survives so the operator can retry the referrer leg
	require.NotNil(t, result)
	assert.Equal(t, domain.GrantStatusCredited, result.Status)
	require.NotNil(t, result.Record)
	assert.Equal(t, int64(41), result.Record.ID)
	assert.Nil(t, result.ReferrerRecord)
}

func createPlayerSideRecord() *domain.GrantRecord {
	return &domain.GrantRecord{
		ID:            41,
		PlayerID:      123,
		GameID:        7,
		BonusType:     domain.BonusTypeReferral,
		Amount:        decimal.NewFromInt(50),
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(150),
		GrantedBy:     "ops1",
		CreatedAt:     time.Now(),
	}
}

func TestRetryReferrerCredit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	referrerID := int64(99)
	m.grantRepo.EXPECT().GetByID(int64(41)).Return(createPlayerSideRecord(), nil)
	m.grantRepo.EXPECT().GetReferrerRecord(int64(41)).Return(nil, nil)
	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(0, &referrerID), nil)
	m.playerRepo.EXPECT().CreditBalance(referrerID, decEq("50")).
		Return(decimal.NewFromInt(500), decimal.NewFromInt(550), nil)
	m.grantRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(record *domain.GrantRecord) error {
		record.ID = 42
		return nil
	})

	record, err := uc.RetryReferrerCredit(41, "ops2")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, referrerID, record.PlayerID)
	assert.True(t, record.Amount.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, record.ReferralOf)
	assert.Equal(t, int64(41), *record.ReferralOf)
	assert.Equal(t, "ops2", record.GrantedBy)
}

func TestRetryReferrerCreditAlreadyCredited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	existingID := int64(41)
	existing := &domain.GrantRecord{ID: 42, PlayerID: 99, ReferralOf: &existingID}

	m.grantRepo.EXPECT().GetByID(int64(41)).Return(createPlayerSideRecord(), nil)
	m.grantRepo.EXPECT().GetReferrerRecord(int64(41)).Return(existing, nil)

	record, err := uc.RetryReferrerCredit(41, "ops2")
	require.Error(t, err)
	assert.Nil(t, record)

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeReferrerAlreadyCredited, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestRetryReferrerCreditNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	m.grantRepo.EXPECT().GetByID(int64(41)).Return(nil, nil)

	record, err := uc.RetryReferrerCredit(41, "ops2")
	require.Error(t, err)
	assert.Nil(t, record)
	assert.Equal(t, domain.ErrCodeGrantNotFound, appErrCode(t, err))
}

func TestRetryReferrerCreditRejectsNonReferral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	record := createPlayerSideRecord()
	record.BonusType = domain.BonusTypeStreak
	m.grantRepo.EXPECT().GetByID(int64(41)).Return(record, nil)

	result, err := uc.RetryReferrerCredit(41, "ops2")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domain.ErrCodeInvalidRequest, appErrCode(t, err))
}

func TestRetryReferrerCreditRejectsReferrerSideRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	playerSideID := int64(40)
	record := createPlayerSideRecord()
	record.ReferralOf = &playerSideID
	m.grantRepo.EXPECT().GetByID(int64(41)).Return(record, nil)

	result, err := uc.RetryReferrerCredit(41, "ops2")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domain.ErrCodeInvalidRequest, appErrCode(t, err))
}

func TestPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUseCase(ctrl)

	referrerID := int64(99)
	m.playerRepo.EXPECT().GetByID(int64(123)).Return(createTestPlayer(8, &referrerID), nil)

	quotes, err := uc.Preview(123, decimal.NewFromInt(100), []domain.BonusType{domain.BonusTypeStreak, domain.BonusTypeReferral})
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.True(t, quotes[0].Payout.Equal(decimal.NewFromInt(8)))
	assert.True(t, quotes[1].Payout.Equal(decimal.NewFromInt(50)))
	assert.True(t, quotes[1].StockCost.Equal(decimal.NewFromInt(100)))
}

func TestPreviewRejectsNegativeAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUseCase(ctrl)

	quotes, err := uc.Preview(123, decimal.NewFromInt(-5), []domain.BonusType{domain.BonusTypeStreak})
	require.Error(t, err)
	assert.Nil(t, quotes)
	assert.Equal(t, domain.ErrCodeInvalidRequest, appErrCode(t, err))
}
