package handlers

import (
	"net/http"
	"strconv"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
)

// OperatorHandler handles HTTP requests for operator authentication
type OperatorHandler struct {
	operatorUseCase domain.OperatorUseCase
	jwtService      auth.JWTService
}

// NewOperatorHandler creates a new operator handler
func NewOperatorHandler(operatorUseCase domain.OperatorUseCase, jwtService auth.JWTService) *OperatorHandler {
	return &OperatorHandler{
		operatorUseCase: operatorUseCase,
		jwtService:      jwtService,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ops1"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token    string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Operator OperatorInfo `json:"operator"`
}

// OperatorInfo represents operator information
type OperatorInfo struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"ops1"`
}

// Login handles operator authentication
// @Summary Operator login
// @Description Authenticate an operator and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *OperatorHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	token, err := h.operatorUseCase.Authenticate(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.NewInternalError("Failed to process token", err))
		return
	}

	operatorID, err := strconv.ParseInt(claims.OperatorID, 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.NewInternalError("Invalid operator ID in token", err))
		return
	}

	operator, err := h.operatorUseCase.GetOperatorInfo(operatorID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Operator: OperatorInfo{
			ID:       operator.ID,
			Username: operator.Username,
		},
	})
}

// GetOperatorInfo handles getting the authenticated operator's information
// @Summary Get operator information
// @Description Get current operator information from the JWT token
// @Tags operators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OperatorInfo
// @Failure 401 {object} domain.ErrorResponse
// @Router /operators/me [get]
func (h *OperatorHandler) GetOperatorInfo(c *gin.Context) {
	operatorID, _, ok := getAuthenticatedOperator(c)
	if !ok {
		return
	}

	operator, err := h.operatorUseCase.GetOperatorInfo(operatorID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, OperatorInfo{
		ID:       operator.ID,
		Username: operator.Username,
	})
}
