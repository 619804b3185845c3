package domain

import (
	"time"

	"gorm.io/gorm"
)

// Operator represents a console operator who issues grants
type Operator struct {
	ID        int64          `json:"operator_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Password  string         `json:"-" gorm:"not null;type:varchar(128)"`
	CreatedAt time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"not null"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name for Operator
func (o Operator) TableName() string {
	return "operators"
}

// OperatorRepository defines the interface for operator data
type OperatorRepository interface {
	GetByID(id int64) (*Operator, error)
	GetByUsername(username string) (*Operator, error)
	Create(operator *Operator) error
}

// OperatorUseCase defines the interface for operator business logic
type OperatorUseCase interface {
	Authenticate(username, password string) (string, error)
	GetOperatorInfo(operatorID int64) (*Operator, error)
}
