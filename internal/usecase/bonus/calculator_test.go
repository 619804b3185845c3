package bonus

import (
	"testing"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(streak int, referredBy *int64) domain.PlayerSnapshot {
	return domain.PlayerSnapshot{
		PlayerID:      123,
		Balance:       decimal.NewFromInt(100),
		CurrentStreak: streak,
		ReferredBy:    referredBy,
	}
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name      string
		streak    int
		payout    string
		stockCost string
	}{
		{"FiveDayStreak", 5, "5", "5"},
		{"ZeroStreak", 0, "0", "0"},
		{"LongStreak", 365, "365", "365"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Compute(domain.BonusTypeStreak, decimal.NewFromInt(100), snapshot(tt.streak, nil))
			require.NoError(t, err)

			assert.Equal(t, domain.BonusTypeStreak, quote.BonusType)
			assert.True(t, quote.Eligible)
			assert.True(t, quote.Payout.Equal(decimal.RequireFromString(tt.payout)), "payout %s", quote.Payout)
			assert.True(t, quote.StockCost.Equal(decimal.RequireFromString(tt.stockCost)), "stock cost %s", quote.StockCost)
		})
	}
}

func TestComputeStreakIgnoresBaseAmount(t *testing.T) {
	a, err := Compute(domain.BonusTypeStreak, decimal.NewFromInt(1), snapshot(7, nil))
	require.NoError(t, err)
	b, err := Compute(domain.BonusTypeStreak, decimal.NewFromInt(100000), snapshot(7, nil))
	require.NoError(t, err)

	assert.True(t, a.Payout.Equal(b.Payout))
}

func TestComputeReferral(t *testing.T) {
	referrerID := int64(99)

	tests := []struct {
		name      string
		base      string
		payout    string
		stockCost string
	}{
		{"EvenBase", "100", "50", "100"},
		{"TwoCents", "0.02", "0.01", "0.02"},
		{"EvenCents", "12.34", "6.17", "12.34"},
		{"ZeroBase", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Compute(domain.BonusTypeReferral, decimal.RequireFromString(tt.base), snapshot(0, &referrerID))
			require.NoError(t, err)

			assert.True(t, quote.Eligible)
			assert.True(t, quote.Payout.Equal(decimal.RequireFromString(tt.payout)), "payout %s", quote.Payout)
			assert.True(t, quote.StockCost.Equal(decimal.RequireFromString(tt.stockCost)), "stock cost %s", quote.StockCost)
			// the stock cost always covers both legs exactly
			assert.True(t, quote.StockCost.Equal(quote.Payout.Mul(decimal.NewFromInt(2))))
		})
	}
}

func TestComputeReferralRejectsHalfCentPayout(t *testing.T) {
	referrerID := int64(99)

	// Valid 2-decimal bases whose half share lands on a half cent. Crediting
	// them would round each leg up and break the 2x stock cost guarantee.
	for _, base := range []string{"0.01", "0.03", "12.35", "99.99"} {
		t.Run(base, func(t *testing.T) {
			_, err := Compute(domain.BonusTypeReferral, decimal.RequireFromString(base), snapshot(0, &referrerID))
			require.Error(t, err)

			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, domain.ErrCodeInvalidRequest, appErr.Code)
		})
	}
}

func TestComputeReferralWithoutReferrer(t *testing.T) {
	quote, err := Compute(domain.BonusTypeReferral, decimal.NewFromInt(100), snapshot(3, nil))
	require.NoError(t, err)

	assert.False(t, quote.Eligible)
	assert.True(t, quote.Payout.IsZero())
	assert.True(t, quote.StockCost.IsZero())
}

func TestComputeInvalidInputs(t *testing.T) {
	_, err := Compute(domain.BonusType("jackpot"), decimal.NewFromInt(100), snapshot(1, nil))
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidRequest, appErr.Code)

	_, err = Compute(domain.BonusTypeStreak, decimal.NewFromInt(-1), snapshot(1, nil))
	require.Error(t, err)
	appErr, ok = domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidRequest, appErr.Code)
}

func TestQuotesPreservesOrder(t *testing.T) {
	referrerID := int64(99)
	quotes, err := Quotes(
		[]domain.BonusType{domain.BonusTypeReferral, domain.BonusTypeStreak},
		decimal.NewFromInt(40),
		snapshot(2, &referrerID),
	)
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, domain.BonusTypeReferral, quotes[0].BonusType)
	assert.True(t, quotes[0].Payout.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, domain.BonusTypeStreak, quotes[1].BonusType)
	assert.True(t, quotes[1].Payout.Equal(decimal.NewFromInt(2)))
}

func TestQuotesRejectsUnknownType(t *testing.T) {
	_, err := Quotes([]domain.BonusType{domain.BonusTypeStreak, "mystery"}, decimal.NewFromInt(10), snapshot(1, nil))
	assert.Error(t, err)
}
