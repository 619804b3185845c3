package app

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/betops/bonusledger/internal/infrastructure/outbox"
)

func (a *application) InitOutboxProcessor(
	outboxRepo domain.OutboxRepository,
	grantRepo domain.GrantRepository,
	logger *logger.Logger,
) domain.OutboxProcessor {
	return outbox.NewProcessor(
		outboxRepo,
		grantRepo,
		logger,
		a.config.Outbox.PollInterval,
		a.config.Outbox.BatchSize,
		a.config.Outbox.MaxRetries,
	)
}
