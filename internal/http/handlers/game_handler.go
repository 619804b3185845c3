package handlers

import (
	"net/http"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/gin-gonic/gin"
)

// GameHandler handles HTTP requests for the game catalog
type GameHandler struct {
	gameUseCase domain.GameUseCase
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUseCase domain.GameUseCase) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
	}
}

// GameResponse represents a game in responses
type GameResponse struct {
	ID         int64  `json:"id" example:"7"`
	Name       string `json:"name" example:"Lucky Sevens"`
	PointStock string `json:"point_stock" example:"10000.00"`
}

func newGameResponse(game *domain.Game) GameResponse {
	return GameResponse{
		ID:         game.ID,
		Name:       game.Name,
		PointStock: game.PointStock.StringFixed(2),
	}
}

// List handles listing games
// @Summary List games
// @Description List all games with their remaining point stock
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} GameResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /games [get]
func (h *GameHandler) List(c *gin.Context) {
	if _, _, ok := getAuthenticatedOperator(c); !ok {
		return
	}

	games, err := h.gameUseCase.ListGames()
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles getting a single game
// @Summary Get game
// @Description Get a game by ID with its remaining point stock
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID" example:"7"
// @Success 200 {object} GameResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	if _, _, ok := getAuthenticatedOperator(c); !ok {
		return
	}

	gameID, ok := parsePositiveInt64Param(c, "id")
	if !ok {
		return
	}

	game, err := h.gameUseCase.GetGame(gameID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}
