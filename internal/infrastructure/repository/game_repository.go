package repository

import (
	"errors"
	"time"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id int64) (*domain.Game, error) {
	var game domain.Game
	result := r.db.Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// List retrieves all games ordered by name
func (r *GameRepository) List() ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.db.Order("name ASC").Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}
	return games, nil
}

// Create creates a new game
func (r *GameRepository) Create(game *domain.Game) error {
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	return r.db.Create(game).Error
}

// DeductStock decrements point stock with the sufficiency check and the
// decrement in one conditional update. Concurrent calls for the same game
// serialize on the row; the one that finds point_stock < amount matches no
// row and leaves the stock untouched.
func (r *GameRepository) DeductStock(gameID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var newStock decimal.Decimal
	result := r.db.Raw(
		`UPDATE games SET point_stock = point_stock - ?, updated_at = ? WHERE id = ? AND point_stock >= ? RETURNING point_stock`,
		amount, time.Now(), gameID, amount,
	).Scan(&newStock)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, domain.NewAppError(domain.ErrCodeInsufficientStock, "Game stock does not cover the grant", 409, nil)
	}
	return newStock, nil
}

// AddStock atomically increments point stock and returns the new stock
func (r *GameRepository) AddStock(gameID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var newStock decimal.Decimal
	result := r.db.Raw(
		`UPDATE games SET point_stock = point_stock + ?, updated_at = ? WHERE id = ? RETURNING point_stock`,
		amount, time.Now(), gameID,
	).Scan(&newStock)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	return newStock, nil
}
