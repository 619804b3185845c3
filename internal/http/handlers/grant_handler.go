package handlers

import (
	"net/http"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GrantHandler handles HTTP requests for bonus grant operations
type GrantHandler struct {
	grantUseCase domain.GrantUseCase
	logger       *logger.Logger
}

// NewGrantHandler creates a new grant handler
func NewGrantHandler(grantUseCase domain.GrantUseCase, logger *logger.Logger) *GrantHandler {
	return &GrantHandler{
		grantUseCase: grantUseCase,
		logger:       logger,
	}
}

// SubmitGrantRequest represents the grant submission request body
type SubmitGrantRequest struct {
	PlayerID   int64           `json:"player_id" binding:"required,gt=0" example:"123"`
	GameID     int64           `json:"game_id" binding:"required,gt=0" example:"7"`
	BonusType  string          `json:"bonus_type" binding:"required" example:"streak"`
	BaseAmount decimal.Decimal `json:"base_amount" binding:"required" example:"100.00"`
	Notes      string          `json:"notes" example:"weekly promo"`
}

// PreviewGrantRequest represents the grant preview request body
type PreviewGrantRequest struct {
	PlayerID   int64           `json:"player_id" binding:"required,gt=0" example:"123"`
	BaseAmount decimal.Decimal `json:"base_amount" binding:"required" example:"100.00"`
	BonusTypes []string        `json:"bonus_types" example:"streak,referral"`
}

// GrantRecordResponse represents one ledger record in responses
type GrantRecordResponse struct {
	GrantID       int64  `json:"grant_id" example:"42"`
	PlayerID      int64  `json:"player_id" example:"123"`
	GameID        int64  `json:"game_id" example:"7"`
	BonusType     string `json:"bonus_type" example:"streak"`
	Amount        string `json:"amount" example:"5.00"`
	BalanceBefore string `json:"balance_before" example:"100.00"`
	BalanceAfter  string `json:"balance_after" example:"105.00"`
	Notes         string `json:"notes,omitempty" example:"weekly promo"`
	GrantedBy     string `json:"granted_by" example:"ops1"`
	ReferralOf    *int64 `json:"referral_of,omitempty" example:"41"`
	CreatedAt     string `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// GrantResponse represents the grant execution response body
type GrantResponse struct {
	Status         string               `json:"status" example:"recorded"`
	Record         *GrantRecordResponse `json:"record,omitempty"`
	ReferrerRecord *GrantRecordResponse `json:"referrer_record,omitempty"`
}

// BonusQuoteResponse represents one calculator quote in responses
type BonusQuoteResponse struct {
	BonusType string `json:"bonus_type" example:"referral"`
	Eligible  bool   `json:"eligible" example:"true"`
	Payout    string `json:"payout" example:"50.00"`
	StockCost string `json:"stock_cost" example:"100.00"`
}

// validateNotes checks the free-text notes length
func (h *GrantHandler) validateNotes(notes string) bool {
	return len(notes) <= 256
}

// newGrantRecordResponse creates a standardized grant record response
func newGrantRecordResponse(record *domain.GrantRecord) *GrantRecordResponse {
	if record == nil {
		return nil
	}
	return &GrantRecordResponse{
		GrantID:       record.ID,
		PlayerID:      record.PlayerID,
		GameID:        record.GameID,
		BonusType:     string(record.BonusType),
		Amount:        record.Amount.StringFixed(2),
		BalanceBefore: record.BalanceBefore.StringFixed(2),
		BalanceAfter:  record.BalanceAfter.StringFixed(2),
		Notes:         record.Notes,
		GrantedBy:     record.GrantedBy,
		ReferralOf:    record.ReferralOf,
		CreatedAt:     record.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// createGrantResponse creates a standardized grant result response
func (h *GrantHandler) createGrantResponse(result *domain.GrantResult) GrantResponse {
	return GrantResponse{
		Status:         string(result.Status),
		Record:         newGrantRecordResponse(result.Record),
		ReferrerRecord: newGrantRecordResponse(result.ReferrerRecord),
	}
}

// Submit handles grant execution
// @Summary Execute a bonus grant
// @Description Execute a bonus grant for a player, funded by a game's point stock
// @Tags grants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitGrantRequest true "Grant details"
// @Success 200 {object} GrantResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /grants [post]
func (h *GrantHandler) Submit(c *gin.Context) {
	_, username, ok := getAuthenticatedOperator(c)
	if !ok {
		return
	}

	var req SubmitGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	if !h.validateNotes(req.Notes) {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidRange, "Notes too long", 400, nil))
		return
	}

	result, err := h.grantUseCase.SubmitGrant(req.PlayerID, req.GameID, domain.BonusType(req.BonusType), req.BaseAmount, req.Notes, username)
	if err != nil {
		// A partial credit failure has already mutated state; the response
		// carries the recorded player leg so the operator can retry the
		// referrer credit against it.
		if appErr, isApp := domain.IsAppError(err); isApp && appErr.Code == domain.ErrCodePartialCreditFailure && result != nil {
			c.JSON(appErr.HTTPStatus, gin.H{
				"error":   appErr,
				"success": false,
				"result":  h.createGrantResponse(result),
			})
			return
		}
		h.logger.Error("Grant submission failed",
			zap.Int64("player_id", req.PlayerID),
			zap.Int64("game_id", req.GameID),
			zap.String("bonus_type", req.BonusType),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.createGrantResponse(result))
}

// Preview handles grant quote previews
// @Summary Preview bonus quotes
// @Description Compute advisory payout quotes for a player without mutating anything
// @Tags grants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PreviewGrantRequest true "Preview details"
// @Success 200 {array} BonusQuoteResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /grants/preview [post]
func (h *GrantHandler) Preview(c *gin.Context) {
	if _, _, ok := getAuthenticatedOperator(c); !ok {
		return
	}

	var req PreviewGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	bonusTypes := make([]domain.BonusType, 0, len(req.BonusTypes))
	for _, bt := range req.BonusTypes {
		bonusTypes = append(bonusTypes, domain.BonusType(bt))
	}
	if len(bonusTypes) == 0 {
		bonusTypes = []domain.BonusType{domain.BonusTypeStreak, domain.BonusTypeReferral}
	}

	quotes, err := h.grantUseCase.Preview(req.PlayerID, req.BaseAmount, bonusTypes)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]BonusQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		response = append(response, BonusQuoteResponse{
			BonusType: string(q.BonusType),
			Eligible:  q.Eligible,
			Payout:    q.Payout.StringFixed(2),
			StockCost: q.StockCost.StringFixed(2),
		})
	}

	c.JSON(http.StatusOK, response)
}

// RetryReferrerCredit handles resuming a partially credited referral grant
// @Summary Retry a failed referrer credit
// @Description Resume a referral grant whose referrer credit failed after the player was credited
// @Tags grants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player-side grant record ID" example:"41"
// @Success 200 {object} GrantRecordResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /grants/{id}/referrer-retry [post]
func (h *GrantHandler) RetryReferrerCredit(c *gin.Context) {
	_, username, ok := getAuthenticatedOperator(c)
	if !ok {
		return
	}

	grantID, ok := parsePositiveInt64Param(c, "id")
	if !ok {
		return
	}

	record, err := h.grantUseCase.RetryReferrerCredit(grantID, username)
	if err != nil {
		h.logger.Error("Referrer credit retry failed",
			zap.Int64("grant_id", grantID),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGrantRecordResponse(record))
}
