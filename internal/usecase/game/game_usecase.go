package game

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// GameUseCase implements domain.GameUseCase
type GameUseCase struct {
	gameRepo domain.GameRepository
	logger   *logger.Logger
}

// NewGameUseCase creates a new game use case
func NewGameUseCase(gameRepo domain.GameRepository, logger *logger.Logger) domain.GameUseCase {
	return &GameUseCase{
		gameRepo: gameRepo,
		logger:   logger,
	}
}

// ListGames returns all games with their current point stock
func (uc *GameUseCase) ListGames() ([]*domain.Game, error) {
	games, err := uc.gameRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list games", zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list games", 500, err)
	}
	return games, nil
}

// GetGame returns a single game by ID
func (uc *GameUseCase) GetGame(id int64) (*domain.Game, error) {
	if id <= 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid game ID", 400, nil)
	}

	game, err := uc.gameRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game", 500, err)
	}
	if game == nil {
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	return game, nil
}
