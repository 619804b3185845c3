package repository

import (
	"errors"
	"time"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id int64) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByUsername retrieves a player by username
func (r *PlayerRepository) GetByUsername(username string) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("username = ?", username).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// Create creates a new player
func (r *PlayerRepository) Create(player *domain.Player) error {
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	return r.db.Create(player).Error
}

// CreditBalance atomically increments a player's balance in a single
// statement. The returned before/after pair is the balance the statement
// itself observed, not a prior read.
func (r *PlayerRepository) CreditBalance(playerID int64, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	var after decimal.Decimal
	result := r.db.Raw(
		`UPDATE players SET balance = balance + ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL RETURNING balance`,
		amount, time.Now(), playerID,
	).Scan(&after)
	if result.Error != nil {
		return decimal.Zero, decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, decimal.Zero, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return after.Sub(amount), after, nil
}

// ResetStreak atomically sets the player's current streak to zero
func (r *PlayerRepository) ResetStreak(playerID int64) error {
	result := r.db.Model(&domain.Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"current_streak": 0,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return nil
}
