package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BonusType represents the type of bonus a grant pays out
type BonusType string

const (
	// BonusTypeStreak pays one unit of currency per consecutive day of the
	// player's current streak; a successful grant resets the streak to zero.
	BonusTypeStreak BonusType = "streak"

	// BonusTypeReferral pays half the base amount to the player and the same
	// amount again to the referrer, both funded from the same game's stock.
	BonusTypeReferral BonusType = "referral"
)

// IsValid reports whether the bonus type is part of the closed enumeration
func (b BonusType) IsValid() bool {
	return b == BonusTypeStreak || b == BonusTypeReferral
}

// GrantStatus represents the state of a grant request as it moves through
// the executor
type GrantStatus string

const (
	// GrantStatusPending grant request accepted, inputs not yet validated
	GrantStatusPending GrantStatus = "pending"

	// GrantStatusStockReserved game stock deducted for the full stock cost
	GrantStatusStockReserved GrantStatus = "stock_reserved"

	// GrantStatusCredited player (and referrer, for referral grants) credited
	GrantStatusCredited GrantStatus = "credited"

	// GrantStatusRecorded terminal success, ledger record(s) appended
	GrantStatusRecorded GrantStatus = "recorded"

	// GrantStatusRejected terminal failure before any mutation
	GrantStatusRejected GrantStatus = "rejected"
)

// GrantRecord is one append-only ledger row for an executed grant. A
// referral grant produces two records: one for the player and one for the
// referrer, the latter pointing back via ReferralOf.
type GrantRecord struct {
	ID            int64           `json:"grant_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	PlayerID      int64           `json:"player_id" gorm:"index;not null;type:bigint"`
	GameID        int64           `json:"game_id" gorm:"index;not null;type:bigint"`
	BonusType     BonusType       `json:"bonus_type" gorm:"type:varchar(16);not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(20,2);not null"`
	BalanceBefore decimal.Decimal `json:"balance_before" gorm:"type:numeric(20,2);not null"`
	BalanceAfter  decimal.Decimal `json:"balance_after" gorm:"type:numeric(20,2);not null"`
	Notes         string          `json:"notes" gorm:"type:varchar(256)"`
	GrantedBy     string          `json:"granted_by" gorm:"type:varchar(64);not null"`
	ReferralOf    *int64          `json:"referral_of,omitempty" gorm:"index;type:bigint"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null"`

	Player Player `json:"-" gorm:"foreignKey:PlayerID"`
	Game   Game   `json:"-" gorm:"foreignKey:GameID"`
}

// TableName specifies the table name for GrantRecord
func (g GrantRecord) TableName() string {
	return "grant_records"
}

// BonusQuote is the calculator output for one (player, bonus type, base
// amount) combination. StockCost is what the funding game pays; for
// referral grants it is twice the player-visible payout.
type BonusQuote struct {
	BonusType BonusType       `json:"bonus_type"`
	Eligible  bool            `json:"eligible"`
	Payout    decimal.Decimal `json:"payout"`
	StockCost decimal.Decimal `json:"stock_cost"`
}

// GrantResult is the outcome of one grant execution. ReferrerRecord is set
// only for fully recorded referral grants.
type GrantResult struct {
	Status         GrantStatus  `json:"status"`
	Record         *GrantRecord `json:"record,omitempty"`
	ReferrerRecord *GrantRecord `json:"referrer_record,omitempty"`
}

// GrantRepository defines the interface for the append-only grant ledger
type GrantRepository interface {
	Create(record *GrantRecord) error
	GetByID(id int64) (*GrantRecord, error)
	GetByPlayerID(playerID int64, limit, offset int) ([]*GrantRecord, error)
	List(limit, offset int) ([]*GrantRecord, error)
	// GetReferrerRecord returns the referrer-side record whose ReferralOf
	// points at the given player-side record, or nil if none exists.
	GetReferrerRecord(playerRecordID int64) (*GrantRecord, error)
}

// GrantUseCase defines the interface for grant execution business logic
type GrantUseCase interface {
	SubmitGrant(playerID, gameID int64, bonusType BonusType, baseAmount decimal.Decimal, notes, grantedBy string) (*GrantResult, error)
	// RetryReferrerCredit resumes a referral grant that failed after the
	// player credit, keyed by the player-side grant record.
	RetryReferrerCredit(playerRecordID int64, grantedBy string) (*GrantRecord, error)
	Preview(playerID int64, baseAmount decimal.Decimal, bonusTypes []BonusType) ([]BonusQuote, error)
}

// LedgerUseCase defines the interface for the grant ledger read model
type LedgerUseCase interface {
	ListByPlayer(playerID int64, limit, offset int) ([]*GrantRecord, error)
	List(limit, offset int) ([]*GrantRecord, error)
}
