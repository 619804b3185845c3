package operator

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/betops/bonusledger/internal/config"
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/domain/mocks"
	"github.com/betops/bonusledger/internal/infrastructure/auth"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(ctrl *gomock.Controller) (domain.OperatorUseCase, *mocks.MockOperatorRepository) {
	operatorRepo := mocks.NewMockOperatorRepository(ctrl)
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	uc := NewOperatorUseCase(operatorRepo, jwtSvc, logger.NewLogger("test", "debug"))
	return uc, operatorRepo
}

func createTestOperator() *domain.Operator {
	hash := sha256.Sum256([]byte("password123"))
	return &domain.Operator{
		ID:       1,
		Username: "ops1",
		Password: hex.EncodeToString(hash[:]),
	}
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, operatorRepo := newTestUseCase(ctrl)
	operatorRepo.EXPECT().GetByUsername("ops1").Return(createTestOperator(), nil)

	token, err := uc.Authenticate("ops1", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthenticateFailures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		setup    func(repo *mocks.MockOperatorRepository)
		errCode  string
	}{
		{
			name:     "WrongPassword",
			username: "ops1",
			password: "wrong",
			setup: func(repo *mocks.MockOperatorRepository) {
				repo.EXPECT().GetByUsername("ops1").Return(createTestOperator(), nil)
			},
			errCode: domain.ErrCodeInvalidCredentials,
		},
		{
			name:     "UnknownOperator",
			username: "ghost",
			password: "password123",
			setup: func(repo *mocks.MockOperatorRepository) {
				repo.EXPECT().GetByUsername("ghost").Return(nil, nil)
			},
			errCode: domain.ErrCodeInvalidCredentials,
		},
		{
			name:     "EmptyCredentials",
			username: "",
			password: "",
			setup:    func(repo *mocks.MockOperatorRepository) {},
			errCode:  domain.ErrCodeInvalidCredentials,
		},
		{
			name:     "RepositoryError",
			username: "ops1",
			password: "password123",
			setup: func(repo *mocks.MockOperatorRepository) {
				repo.EXPECT().GetByUsername("ops1").Return(nil, errors.New("connection refused"))
			},
			errCode: domain.ErrCodeDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, operatorRepo := newTestUseCase(ctrl)
			tt.setup(operatorRepo)

			token, err := uc.Authenticate(tt.username, tt.password)
			require.Error(t, err)
			assert.Empty(t, token)

			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.errCode, appErr.Code)
		})
	}
}

func TestGetOperatorInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, operatorRepo := newTestUseCase(ctrl)
	operatorRepo.EXPECT().GetByID(int64(1)).Return(createTestOperator(), nil)

	operator, err := uc.GetOperatorInfo(1)
	require.NoError(t, err)
	assert.Equal(t, "ops1", operator.Username)
}

func TestGetOperatorInfoNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, operatorRepo := newTestUseCase(ctrl)
	operatorRepo.EXPECT().GetByID(int64(2)).Return(nil, nil)

	_, err := uc.GetOperatorInfo(2)
	require.Error(t, err)

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeOperatorNotFound, appErr.Code)
}
