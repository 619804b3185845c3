package outbox

import (
	"errors"
	"testing"
	"time"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/domain/mocks"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(ctrl *gomock.Controller) (*Processor, *mocks.MockOutboxRepository, *mocks.MockGrantRepository) {
	outboxRepo := mocks.NewMockOutboxRepository(ctrl)
	grantRepo := mocks.NewMockGrantRepository(ctrl)
	p := NewProcessor(outboxRepo, grantRepo, logger.NewLogger("test", "debug"), time.Second, 10, 3)
	return p, outboxRepo, grantRepo
}

func createLedgerAppendEvent() *domain.OutboxEvent {
	referralOf := int64(41)
	record := &domain.GrantRecord{
		PlayerID:      99,
		GameID:        7,
		BonusType:     domain.BonusTypeReferral,
		Amount:        decimal.RequireFromString("50.25"),
		BalanceBefore: decimal.RequireFromString("500.00"),
		BalanceAfter:  decimal.RequireFromString("550.25"),
		Notes:         "weekly promo",
		GrantedBy:     "ops1",
		ReferralOf:    &referralOf,
		CreatedAt:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
	return &domain.OutboxEvent{
		ID:        "event-1",
		Type:      domain.EventTypeLedgerAppend,
		Data:      EventDataFromRecord(record),
		Status:    domain.EventStatusPending,
		CreatedAt: time.Now(),
	}
}

func TestEventDataRoundTrip(t *testing.T) {
	event := createLedgerAppendEvent()

	record, err := recordFromEventData(event.Data)
	require.NoError(t, err)

	assert.Equal(t, int64(99), record.PlayerID)
	assert.Equal(t, int64(7), record.GameID)
	assert.Equal(t, domain.BonusTypeReferral, record.BonusType)
	assert.True(t, record.Amount.Equal(decimal.RequireFromString("50.25")))
	assert.True(t, record.BalanceBefore.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, record.BalanceAfter.Equal(decimal.RequireFromString("550.25")))
	assert.Equal(t, "weekly promo", record.Notes)
	assert.Equal(t, "ops1", record.GrantedBy)
	require.NotNil(t, record.ReferralOf)
	assert.Equal(t, int64(41), *record.ReferralOf)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), record.CreatedAt.UTC())
}

func TestProcessEventLedgerAppend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, outboxRepo, grantRepo := newTestProcessor(ctrl)
	event := createLedgerAppendEvent()

	grantRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(record *domain.GrantRecord) error {
		assert.Equal(t, int64(99), record.PlayerID)
		assert.True(t, record.Amount.Equal(decimal.RequireFromString("50.25")))
		return nil
	})
	outboxRepo.EXPECT().MarkAsProcessed("event-1").Return(nil)

	err := p.ProcessEvent(event)
	require.NoError(t, err)
}

func TestProcessEventUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestProcessor(ctrl)

	err := p.ProcessEvent(&domain.OutboxEvent{ID: "event-2", Type: "UNKNOWN_TYPE"})
	assert.Error(t, err)
}

func TestProcessEventInvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestProcessor(ctrl)

	event := &domain.OutboxEvent{
		ID:   "event-3",
		Type: domain.EventTypeLedgerAppend,
		Data: domain.JSONB{"player_id": "not-a-number"},
	}

	err := p.ProcessEvent(event)
	assert.Error(t, err)
}

func TestProcessEventsIncrementsRetryOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, outboxRepo, grantRepo := newTestProcessor(ctrl)
	event := createLedgerAppendEvent()
	event.RetryCount = 1

	outboxRepo.EXPECT().GetPendingEvents(10).Return([]*domain.OutboxEvent{event}, nil)
	grantRepo.EXPECT().Create(gomock.Any()).Return(errors.New("still down"))
	outboxRepo.EXPECT().IncrementRetryCount("event-1").Return(nil)

	err := p.ProcessEvents()
	require.NoError(t, err)
}

func TestProcessEventsMarksFailedAfterMaxRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, outboxRepo, grantRepo := newTestProcessor(ctrl)
	event := createLedgerAppendEvent()
	event.RetryCount = 3

	outboxRepo.EXPECT().GetPendingEvents(10).Return([]*domain.OutboxEvent{event}, nil)
	grantRepo.EXPECT().Create(gomock.Any()).Return(errors.New("still down"))
	outboxRepo.EXPECT().MarkAsFailed("event-1", gomock.Any()).Return(nil)

	err := p.ProcessEvents()
	require.NoError(t, err)
}
