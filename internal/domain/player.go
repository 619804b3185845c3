package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Player represents a registered player in the betting platform
type Player struct {
	ID            int64           `json:"player_id" gorm:"primaryKey;column:id;type:bigint"`
	Username      string          `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Balance       decimal.Decimal `json:"balance" gorm:"type:numeric(20,2);not null;default:0"`
	CurrentStreak int             `json:"current_streak" gorm:"not null;default:0"`
	ReferredBy    *int64          `json:"referred_by,omitempty" gorm:"type:bigint"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`

	// Self-referencing relationship for referred_by
	Referrer *Player `json:"-" gorm:"foreignKey:ReferredBy"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// PlayerSnapshot is a point-in-time view of the player fields the bonus
// calculator needs. Reads are advisory; the grant executor re-validates at
// commit time through the atomic repository operations.
type PlayerSnapshot struct {
	PlayerID      int64           `json:"player_id"`
	Balance       decimal.Decimal `json:"balance"`
	CurrentStreak int             `json:"current_streak"`
	ReferredBy    *int64          `json:"referred_by,omitempty"`
}

// Snapshot returns the calculator-facing view of the player
func (p *Player) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		PlayerID:      p.ID,
		Balance:       p.Balance,
		CurrentStreak: p.CurrentStreak,
		ReferredBy:    p.ReferredBy,
	}
}

// PlayerRepository defines the interface for player data.
// CreditBalance and ResetStreak are single-statement atomic mutations; they
// are the only write path for balance and streak within the grant core.
type PlayerRepository interface {
	GetByID(id int64) (*Player, error)
	GetByUsername(username string) (*Player, error)
	Create(player *Player) error
	// CreditBalance atomically increments the balance and returns the
	// balance observed before and after the increment.
	CreditBalance(playerID int64, amount decimal.Decimal) (before, after decimal.Decimal, err error)
	ResetStreak(playerID int64) error
}
