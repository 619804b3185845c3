package operator

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/auth"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// OperatorUseCase implements domain.OperatorUseCase
type OperatorUseCase struct {
	operatorRepo domain.OperatorRepository
	jwtSvc       auth.JWTService
	logger       *logger.Logger
}

// NewOperatorUseCase creates a new operator use case
func NewOperatorUseCase(operatorRepo domain.OperatorRepository, jwtSvc auth.JWTService, logger *logger.Logger) domain.OperatorUseCase {
	return &OperatorUseCase{
		operatorRepo: operatorRepo,
		jwtSvc:       jwtSvc,
		logger:       logger,
	}
}

// Authenticate validates operator credentials and returns a JWT token
func (uc *OperatorUseCase) Authenticate(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	operator, err := uc.operatorRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to get operator during authentication",
			zap.String("username", username),
			zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get operator", 500, err)
	}
	if operator == nil {
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	if !uc.verifyPassword(password, operator.Password) {
		uc.logger.Warn("Authentication failed - invalid password",
			zap.String("username", username))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	token, err := uc.jwtSvc.GenerateToken(strconv.FormatInt(operator.ID, 10), operator.Username)
	if err != nil {
		uc.logger.Error("Failed to generate JWT token",
			zap.Int64("operator_id", operator.ID),
			zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", 500, err)
	}

	uc.logger.Info("Operator authenticated",
		zap.Int64("operator_id", operator.ID),
		zap.String("username", operator.Username))

	return token, nil
}

// GetOperatorInfo retrieves operator information by ID
func (uc *OperatorUseCase) GetOperatorInfo(operatorID int64) (*domain.Operator, error) {
	if operatorID <= 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid operator ID", 400, nil)
	}

	operator, err := uc.operatorRepo.GetByID(operatorID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get operator", 500, err)
	}
	if operator == nil {
		return nil, domain.NewAppError(domain.ErrCodeOperatorNotFound, "Operator not found", 404, nil)
	}

	return operator, nil
}

// verifyPassword checks if the provided password matches the stored hash
func (uc *OperatorUseCase) verifyPassword(password, hashedPassword string) bool {
	if password == "" || hashedPassword == "" {
		return false
	}

	hash := sha256.Sum256([]byte(password))
	passwordHash := hex.EncodeToString(hash[:])
	return passwordHash == hashedPassword
}
