package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Processor implements domain.OutboxProcessor. It drains LEDGER_APPEND
// events: grant records whose first append failed after the balance and
// stock mutations had already committed.
type Processor struct {
	outboxRepo   domain.OutboxRepository
	grantRepo    domain.GrantRepository
	logger       *logger.Logger
	maxRetries   int
	pollInterval time.Duration
	batchSize    int

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

// NewProcessor creates a new outbox processor
func NewProcessor(
	outboxRepo domain.OutboxRepository,
	grantRepo domain.GrantRepository,
	logger *logger.Logger,
	pollInterval time.Duration,
	batchSize int,
	maxRetries int,
) *Processor {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxRetries <= 0 {
		maxRetries = 5
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		outboxRepo:   outboxRepo,
		grantRepo:    grantRepo,
		logger:       logger,
		maxRetries:   maxRetries,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// ProcessEvents processes all pending events
func (p *Processor) ProcessEvents() error {
	events, err := p.outboxRepo.GetPendingEvents(p.batchSize)
	if err != nil {
		p.logger.Error("Failed to get pending events", zap.Error(err))
		return err
	}

	for _, event := range events {
		select {
		case <-p.ctx.Done():
			return fmt.Errorf("processor cancelled")
		default:
		}

		if err := p.ProcessEvent(event); err != nil {
			p.logger.Error("Failed to process event",
				zap.String("eventID", event.ID),
				zap.String("eventType", event.Type),
				zap.Error(err))

			if event.RetryCount < p.maxRetries {
				if retryErr := p.outboxRepo.IncrementRetryCount(event.ID); retryErr != nil {
					p.logger.Error("Failed to increment retry count", zap.Error(retryErr))
				}
			} else {
				if failErr := p.outboxRepo.MarkAsFailed(event.ID, err.Error()); failErr != nil {
					p.logger.Error("Failed to mark event as failed", zap.Error(failErr))
				}
			}
		}
	}

	return nil
}

// ProcessEvent processes a single outbox event
func (p *Processor) ProcessEvent(event *domain.OutboxEvent) error {
	p.logger.Info("Processing outbox event",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))

	if event.Type == domain.EventTypeLedgerAppend {
		return p.handleLedgerAppend(event)
	}

	p.logger.Warn("Unknown event type",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))
	return fmt.Errorf("unknown event type: %s", event.Type)
}

// handleLedgerAppend re-creates the grant record carried in the event
func (p *Processor) handleLedgerAppend(event *domain.OutboxEvent) error {
	record, err := recordFromEventData(event.Data)
	if err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}

	if err := p.grantRepo.Create(record); err != nil {
		return fmt.Errorf("failed to append grant record: %w", err)
	}

	if err := p.outboxRepo.MarkAsProcessed(event.ID); err != nil {
		p.logger.Error("Failed to mark event as processed",
			zap.String("eventID", event.ID),
			zap.Error(err))
		return err
	}

	p.logger.Info("Ledger append recovered",
		zap.String("eventID", event.ID),
		zap.Int64("playerID", record.PlayerID),
		zap.Int64("gameID", record.GameID))
	return nil
}

// EventDataFromRecord serializes a grant record into outbox event data.
// Amounts travel as strings to keep decimal precision through JSONB.
func EventDataFromRecord(record *domain.GrantRecord) domain.JSONB {
	data := domain.JSONB{
		"player_id":      float64(record.PlayerID),
		"game_id":        float64(record.GameID),
		"bonus_type":     string(record.BonusType),
		"amount":         record.Amount.String(),
		"balance_before": record.BalanceBefore.String(),
		"balance_after":  record.BalanceAfter.String(),
		"notes":          record.Notes,
		"granted_by":     record.GrantedBy,
		"created_at":     record.CreatedAt.Format(time.RFC3339Nano),
	}
	if record.ReferralOf != nil {
		data["referral_of"] = float64(*record.ReferralOf)
	}
	return data
}

func recordFromEventData(data domain.JSONB) (*domain.GrantRecord, error) {
	playerID, ok := data["player_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid player_id in event data")
	}
	gameID, ok := data["game_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid game_id in event data")
	}
	bonusType, ok := data["bonus_type"].(string)
	if !ok || !domain.BonusType(bonusType).IsValid() {
		return nil, fmt.Errorf("invalid bonus_type in event data")
	}

	amount, err := decimalField(data, "amount")
	if err != nil {
		return nil, err
	}
	balanceBefore, err := decimalField(data, "balance_before")
	if err != nil {
		return nil, err
	}
	balanceAfter, err := decimalField(data, "balance_after")
	if err != nil {
		return nil, err
	}

	record := &domain.GrantRecord{
		PlayerID:      int64(playerID),
		GameID:        int64(gameID),
		BonusType:     domain.BonusType(bonusType),
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		CreatedAt:     time.Now(),
	}

	if notes, ok := data["notes"].(string); ok {
		record.Notes = notes
	}
	if grantedBy, ok := data["granted_by"].(string); ok {
		record.GrantedBy = grantedBy
	}
	if createdAt, ok := data["created_at"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			record.CreatedAt = ts
		}
	}
	if referralOf, ok := data["referral_of"].(float64); ok {
		id := int64(referralOf)
		record.ReferralOf = &id
	}

	return record, nil
}

func decimalField(data domain.JSONB, key string) (decimal.Decimal, error) {
	raw, ok := data[key].(string)
	if !ok {
		return decimal.Zero, fmt.Errorf("invalid %s in event data", key)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s in event data: %w", key, err)
	}
	return value, nil
}

// StartBackgroundProcessing starts the polling loop
func (p *Processor) StartBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		return
	}
	p.isRunning = true

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.pollInterval)
		defer ticker.Stop()

		p.logger.Info("Outbox processor started", zap.Duration("pollInterval", p.pollInterval))

		for {
			select {
			case <-p.ctx.Done():
				p.logger.Info("Outbox processor stopped")
				return
			case <-ticker.C:
				if err := p.ProcessEvents(); err != nil {
					p.logger.Error("Outbox processing cycle failed", zap.Error(err))
				}
			}
		}
	}()
}

// StopBackgroundProcessing stops the polling loop and waits for it to exit
func (p *Processor) StopBackgroundProcessing() {
	p.mu.Lock()
	if !p.isRunning {
		p.mu.Unlock()
		return
	}
	p.isRunning = false
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
}
