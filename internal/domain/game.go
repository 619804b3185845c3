package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game represents a game whose point stock funds bonus grants
type Game struct {
	ID         int64           `json:"game_id" gorm:"primaryKey;column:id;type:bigint"`
	Name       string          `json:"name" gorm:"uniqueIndex;not null;type:varchar(128)"`
	PointStock decimal.Decimal `json:"point_stock" gorm:"type:numeric(20,2);not null;default:0"`
	CreatedAt  time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// GameUseCase defines the interface for game catalog reads
type GameUseCase interface {
	ListGames() ([]*Game, error)
	GetGame(id int64) (*Game, error)
}

// GameRepository defines the interface for game data.
// DeductStock is the authoritative stock check: it rejects and leaves the
// row untouched when the remaining stock does not cover the amount, as one
// conditional update. GetByID reads are point-in-time only.
type GameRepository interface {
	GetByID(id int64) (*Game, error)
	List() ([]*Game, error)
	Create(game *Game) error
	// DeductStock atomically decrements point stock when amount <= current
	// stock and returns the new stock. Returns ErrCodeInsufficientStock as
	// an AppError when the condition fails; no mutation happens then.
	DeductStock(gameID int64, amount decimal.Decimal) (decimal.Decimal, error)
	// AddStock atomically increments point stock and returns the new stock.
	AddStock(gameID int64, amount decimal.Decimal) (decimal.Decimal, error)
}
