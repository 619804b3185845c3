package handlers

import (
	"net/http"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlayerHandler handles HTTP requests for player lookups. Search goes to the
// external directory; detail reads merge the local ledger view of the player
// with the directory profile when the directory is reachable.
type PlayerHandler struct {
	playerRepo       domain.PlayerRepository
	directoryService domain.DirectoryService
	logger           *logger.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerRepo domain.PlayerRepository, directoryService domain.DirectoryService, logger *logger.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerRepo:       playerRepo,
		directoryService: directoryService,
		logger:           logger,
	}
}

// PlayerResponse represents a player detail in responses
type PlayerResponse struct {
	ID            int64  `json:"id" example:"123"`
	Username      string `json:"username" example:"player1"`
	Balance       string `json:"balance" example:"105.00"`
	CurrentStreak int    `json:"current_streak" example:"5"`
	ReferredBy    *int64 `json:"referred_by,omitempty" example:"99"`
	Email         string `json:"email,omitempty" example:"player1@example.com"`
	Country       string `json:"country,omitempty" example:"DE"`
}

// Search handles player directory search
// @Summary Search players
// @Description Search the player directory by username fragment
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query" example:"play"
// @Success 200 {array} domain.DirectoryPlayer
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 502 {object} domain.ErrorResponse
// @Router /players/search [get]
func (h *PlayerHandler) Search(c *gin.Context) {
	if _, _, ok := getAuthenticatedOperator(c); !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeRequiredField, "Query parameter 'q' is required", 400, nil))
		return
	}

	players, err := h.directoryService.SearchPlayers(query)
	if err != nil {
		h.logger.Error("Player directory search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusBadGateway, domain.NewAppError(domain.ErrCodeDirectoryServiceError, "Player directory unavailable", http.StatusBadGateway, err))
		return
	}

	c.JSON(http.StatusOK, players)
}

// Get handles getting a single player
// @Summary Get player
// @Description Get a player by ID; directory profile fields are merged in when available
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID" example:"123"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/{id} [get]
func (h *PlayerHandler) Get(c *gin.Context) {
	if _, _, ok := getAuthenticatedOperator(c); !ok {
		return
	}

	playerID, ok := parsePositiveInt64Param(c, "id")
	if !ok {
		return
	}

	player, err := h.playerRepo.GetByID(playerID)
	if err != nil {
		writeError(c, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err))
		return
	}
	if player == nil {
		c.JSON(http.StatusNotFound, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil))
		return
	}

	response := PlayerResponse{
		ID:            player.ID,
		Username:      player.Username,
		Balance:       player.Balance.StringFixed(2),
		CurrentStreak: player.CurrentStreak,
		ReferredBy:    player.ReferredBy,
	}

	// Directory enrichment is best-effort; the local record is authoritative
	// for everything the grant executor needs.
	if profile, err := h.directoryService.GetProfile(playerID); err == nil {
		response.Email = profile.Email
		response.Country = profile.Country
	} else {
		h.logger.Warn("Directory profile lookup failed",
			zap.Int64("player_id", playerID),
			zap.Error(err))
	}

	c.JSON(http.StatusOK, response)
}
