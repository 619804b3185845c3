package repository

import (
	"errors"
	"time"

	"github.com/betops/bonusledger/internal/domain"

	"gorm.io/gorm"
)

// GrantRepository implements domain.GrantRepository
type GrantRepository struct {
	db *gorm.DB
}

// NewGrantRepository creates a new grant repository
func NewGrantRepository(db *gorm.DB) domain.GrantRepository {
	return &GrantRepository{db: db}
}

// Create appends a new grant record; records are never updated afterwards
func (r *GrantRepository) Create(record *domain.GrantRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	return r.db.Create(record).Error
}

// GetByID retrieves a grant record by ID
func (r *GrantRepository) GetByID(id int64) (*domain.GrantRecord, error) {
	var record domain.GrantRecord
	result := r.db.Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &record, nil
}

// GetByPlayerID retrieves grant records for a player, newest first
func (r *GrantRepository) GetByPlayerID(playerID int64, limit, offset int) ([]*domain.GrantRecord, error) {
	var records []*domain.GrantRecord
	result := r.db.Where("player_id = ?", playerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records)

	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// List retrieves grant records across all players, newest first
func (r *GrantRepository) List(limit, offset int) ([]*domain.GrantRecord, error) {
	var records []*domain.GrantRecord
	result := r.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records)

	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// GetReferrerRecord retrieves the referrer-side record for a player-side
// referral record, or nil when the referrer has not been credited yet
func (r *GrantRepository) GetReferrerRecord(playerRecordID int64) (*domain.GrantRecord, error) {
	var record domain.GrantRecord
	result := r.db.Where("referral_of = ?", playerRecordID).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &record, nil
}
