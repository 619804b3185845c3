package ledger

import (
	"errors"
	"testing"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/domain/mocks"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(ctrl *gomock.Controller) (*LedgerUseCase, *mocks.MockGrantRepository) {
	grantRepo := mocks.NewMockGrantRepository(ctrl)
	uc := &LedgerUseCase{
		grantRepo: grantRepo,
		logger:    logger.NewLogger("test", "debug"),
	}
	return uc, grantRepo
}

func TestListByPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, grantRepo := newTestUseCase(ctrl)

	records := []*domain.GrantRecord{{ID: 2}, {ID: 1}}
	grantRepo.EXPECT().GetByPlayerID(int64(123), 10, 0).Return(records, nil)

	got, err := uc.ListByPlayer(123, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestListByPlayerInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUseCase(ctrl)

	_, err := uc.ListByPlayer(0, 10, 0)
	require.Error(t, err)

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidFormat, appErr.Code)
}

func TestListClampsPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, grantRepo := newTestUseCase(ctrl)

	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"Defaults", 0, 0, defaultLimit, 0},
		{"NegativeValues", -5, -10, defaultLimit, 0},
		{"CapsAtMax", 10000, 20, maxLimit, 20},
		{"PassesThrough", 25, 50, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grantRepo.EXPECT().List(tt.wantLimit, tt.wantOffset).Return(nil, nil)
			_, err := uc.List(tt.limit, tt.offset)
			require.NoError(t, err)
		})
	}
}

func TestListRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, grantRepo := newTestUseCase(ctrl)

	grantRepo.EXPECT().List(defaultLimit, 0).Return(nil, errors.New("connection refused"))

	_, err := uc.List(0, 0)
	require.Error(t, err)

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeDatabaseQuery, appErr.Code)
}
