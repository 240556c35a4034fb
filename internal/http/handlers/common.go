package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/http/middleware"
)

// TransactionResponse is one ledger record
type TransactionResponse struct {
	ID         int64  `json:"id" example:"17"`
	PlayerID   int64  `json:"player_id" example:"42"`
	PlayerName string `json:"player_name" example:"alice"`
	Reason     string `json:"reason" example:"payment"`
	Amount     int64  `json:"amount" example:"-250"`
	CreatedAt  string `json:"created_at" example:"2026-01-15T10:30:00Z"`
}

func toTransactionResponse(t *domain.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:         t.ID,
		PlayerID:   t.AccountID,
		PlayerName: t.PlayerName,
		Reason:     string(t.Reason),
		Amount:     t.Amount,
		CreatedAt:  t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// authenticatedPlayer returns the player id and name carried by the token
func authenticatedPlayer(c *gin.Context) (int64, string, bool) {
	id, exists := c.Get(middleware.ContextPlayerID)
	if !exists {
		middleware.Abort(c, domain.NewUnauthorizedError("Player not authenticated"))
		return 0, "", false
	}
	return id.(int64), c.GetString(middleware.ContextPlayerName), true
}

// idParam parses a numeric path parameter
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		middleware.Abort(c, domain.NewValidationError(name, "must be an integer"))
		return 0, false
	}
	return id, true
}

// bindJSON binds the body into req, answering 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.Abort(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", http.StatusBadRequest, err))
		return false
	}
	return true
}
