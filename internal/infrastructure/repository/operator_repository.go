package repository

import (
	"errors"
	"time"

	"github.com/betops/bonusledger/internal/domain"

	"gorm.io/gorm"
)

// OperatorRepository implements domain.OperatorRepository
type OperatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) domain.OperatorRepository {
	return &OperatorRepository{db: db}
}

// GetByID retrieves an operator by ID
func (r *OperatorRepository) GetByID(id int64) (*domain.Operator, error) {
	var operator domain.Operator
	result := r.db.Where("id = ?", id).First(&operator)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &operator, nil
}

// GetByUsername retrieves an operator by username
func (r *OperatorRepository) GetByUsername(username string) (*domain.Operator, error) {
	var operator domain.Operator
	result := r.db.Where("username = ?", username).First(&operator)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &operator, nil
}

// Create creates a new operator
func (r *OperatorRepository) Create(operator *domain.Operator) error {
	operator.CreatedAt = time.Now()
	operator.UpdatedAt = time.Now()
	return r.db.Create(operator).Error
}
