package handlers

import (
	"net/http"
	"strconv"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps a usecase error onto the HTTP response. AppError carries
// its own status; anything else is a 500.
func writeError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		c.JSON(status, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(domain.NewInternalError("", err)))
}

// getAuthenticatedOperator extracts the operator identity the JWT middleware
// stored on the context. The numeric ID is parsed for lookups; the username
// is what grant records carry as granted_by.
func getAuthenticatedOperator(c *gin.Context) (int64, string, bool) {
	operatorIDStr, exists := c.Get("operator_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, domain.NewUnauthorizedError("Operator not authenticated"))
		return 0, "", false
	}

	operatorID, err := strconv.ParseInt(operatorIDStr.(string), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid operator ID format", 400, err))
		return 0, "", false
	}

	username := ""
	if u, exists := c.Get("username"); exists {
		username = u.(string)
	}

	return operatorID, username, true
}

// parsePositiveInt64Param parses a positive int64 path parameter
func parsePositiveInt64Param(c *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || value <= 0 {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid "+name+" parameter", 400, err))
		return 0, false
	}
	return value, true
}

// parsePaging reads limit/offset query parameters, leaving clamping to the
// ledger usecase
func parsePaging(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
