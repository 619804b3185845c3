// Package bonus computes bonus payouts. It is pure: the same inputs always
// produce the same quote and nothing here touches a store. The executor
// recomputes every quote at commit time, so client-side previews built on
// these numbers are advisory only.
package bonus

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// streakRate is one unit of currency per consecutive day
	streakRate = decimal.NewFromInt(1)

	// referralRate is the share of the base amount paid to the player;
	// the referrer receives the same amount again
	referralRate = decimal.New(5, -1)

	// referralStockMultiplier covers both the player and the referrer payout
	referralStockMultiplier = decimal.NewFromInt(2)
)

// Compute returns the quote for one bonus type against a player snapshot.
// An ineligible quote carries zero payout and zero stock cost. Unknown
// bonus types, negative base amounts and referral bases whose half share
// is not a whole number of cents are InvalidRequest errors.
func Compute(bonusType domain.BonusType, baseAmount decimal.Decimal, snapshot domain.PlayerSnapshot) (domain.BonusQuote, error) {
	if !bonusType.IsValid() {
		return domain.BonusQuote{}, domain.NewAppError(domain.ErrCodeInvalidRequest, "Unknown bonus type", 400, nil)
	}
	if baseAmount.IsNegative() {
		return domain.BonusQuote{}, domain.NewAppError(domain.ErrCodeInvalidRequest, "Base amount must not be negative", 400, nil)
	}

	quote := domain.BonusQuote{
		BonusType: bonusType,
		Payout:    decimal.Zero,
		StockCost: decimal.Zero,
	}

	switch bonusType {
	case domain.BonusTypeStreak:
		quote.Eligible = true
		quote.Payout = decimal.NewFromInt(int64(snapshot.CurrentStreak)).Mul(streakRate)
		quote.StockCost = quote.Payout
	case domain.BonusTypeReferral:
		if snapshot.ReferredBy == nil {
			return quote, nil
		}
		payout := baseAmount.Mul(referralRate)
		// A half share below one cent cannot be credited exactly; the
		// ledger stores whole cents, so the base must split evenly.
		if !payout.Equal(payout.Round(2)) {
			return domain.BonusQuote{}, domain.NewAppError(domain.ErrCodeInvalidRequest, "Base amount must split into whole-cent payouts", 400, nil)
		}
		quote.Eligible = true
		quote.Payout = payout
		quote.StockCost = payout.Mul(referralStockMultiplier)
	}

	return quote, nil
}

// Quotes computes one quote per requested bonus type, preserving order
func Quotes(bonusTypes []domain.BonusType, baseAmount decimal.Decimal, snapshot domain.PlayerSnapshot) ([]domain.BonusQuote, error) {
	quotes := make([]domain.BonusQuote, 0, len(bonusTypes))
	for _, bt := range bonusTypes {
		quote, err := Compute(bt, baseAmount, snapshot)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}
