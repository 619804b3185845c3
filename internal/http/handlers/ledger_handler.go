package handlers

import (
	"net/http"
	"strconv"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LedgerHandler handles HTTP requests for the grant ledger read model
type LedgerHandler struct {
	ledgerUseCase domain.LedgerUseCase
	logger        *logger.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerUseCase domain.LedgerUseCase, logger *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// LedgerResponse represents a page of the grant ledger
type LedgerResponse struct {
	Records []*GrantRecordResponse `json:"records"`
	Limit   int                    `json:"limit" example:"50"`
	Offset  int                    `json:"offset" example:"0"`
}

// List handles listing grant records
// @Summary List grant records
// @Description List ledger records newest first, optionally filtered by player
// @Tags grants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param player_id query int false "Filter by player ID" example:"123"
// @Param limit query int false "Page size" example:"50"
// @Param offset query int false "Page offset" example:"0"
// @Success 200 {object} LedgerResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /grants [get]
func (h *LedgerHandler) List(c *gin.Context) {
	if _, _, ok := getAuthenticatedOperator(c); !ok {
		return
	}

	limit, offset := parsePaging(c)

	var (
		records []*domain.GrantRecord
		err     error
	)

	if playerIDStr := c.Query("player_id"); playerIDStr != "" {
		playerID, parseErr := strconv.ParseInt(playerIDStr, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid player_id parameter", 400, parseErr))
			return
		}
		records, err = h.ledgerUseCase.ListByPlayer(playerID, limit, offset)
	} else {
		records, err = h.ledgerUseCase.List(limit, offset)
	}

	if err != nil {
		h.logger.Error("Ledger list failed", zap.Error(err))
		writeError(c, err)
		return
	}

	response := LedgerResponse{
		Records: make([]*GrantRecordResponse, 0, len(records)),
		Limit:   limit,
		Offset:  offset,
	}
	for _, record := range records {
		response.Records = append(response.Records, newGrantRecordResponse(record))
	}

	c.JSON(http.StatusOK, response)
}
