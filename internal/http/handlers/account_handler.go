package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/http/middleware"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AccountHandler handles balance, history and payment requests
type AccountHandler struct {
	ledger   domain.LedgerUseCase
	settings *config.Store
	logger   *logger.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(ledger domain.LedgerUseCase, settings *config.Store, logger *logger.Logger) *AccountHandler {
	return &AccountHandler{
		ledger:   ledger,
		settings: settings,
		logger:   logger,
	}
}

// BalanceResponse represents a balance lookup
type BalanceResponse struct {
	PlayerID int64  `json:"player_id" example:"42"`
	Balance  int64  `json:"balance" example:"1200"`
	Currency string `json:"currency" example:"coins"`
	Exists   bool   `json:"exists" example:"true"`
}

// PayRequest represents the payment request body
type PayRequest struct {
	To     int64 `json:"to" binding:"required" example:"43"`
	Amount int64 `json:"amount" binding:"required,gt=0" example:"250"`
}

// PayResponse represents a completed payment
type PayResponse struct {
	Debit  *TransactionResponse `json:"debit"`
	Credit *TransactionResponse `json:"credit"`
}

// MyBalance returns the caller's balance
// @Summary Own balance
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /accounts/me/balance [get]
func (h *AccountHandler) MyBalance(c *gin.Context) {
	playerID, _, ok := authenticatedPlayer(c)
	if !ok {
		return
	}
	h.respondBalance(c, playerID)
}

// Balance returns another player's balance
// @Summary Player balance
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /accounts/{id}/balance [get]
func (h *AccountHandler) Balance(c *gin.Context) {
	playerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	h.respondBalance(c, playerID)
}

func (h *AccountHandler) respondBalance(c *gin.Context, playerID int64) {
	ctx := c.Request.Context()
	exists, err := h.ledger.AccountExists(ctx, playerID)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	balance, err := h.ledger.GetBalance(ctx, playerID)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{
		PlayerID: playerID,
		Balance:  balance,
		Currency: h.settings.Get().Economy.CurrencyName,
		Exists:   exists,
	})
}

// History returns a page of a player's transactions, newest first
// @Summary Transaction history
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Records to skip" default(0)
// @Success 200 {array} TransactionResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /accounts/{id}/transactions [get]
func (h *AccountHandler) History(c *gin.Context) {
	playerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.ledger.History(c.Request.Context(), playerID, limit, offset)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response := make([]*TransactionResponse, 0, len(records))
	for _, r := range records {
		response = append(response, toTransactionResponse(r))
	}
	c.JSON(http.StatusOK, response)
}

// Pay moves currency from the caller to another player
// @Summary Pay another player
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PayRequest true "Payment details"
// @Success 200 {object} PayResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /payments [post]
func (h *AccountHandler) Pay(c *gin.Context) {
	playerID, _, ok := authenticatedPlayer(c)
	if !ok {
		return
	}
	var req PayRequest
	if !bindJSON(c, &req) {
		return
	}

	transfer, err := h.ledger.Pay(c.Request.Context(), playerID, req.To, req.Amount)
	if err != nil {
		h.logger.Info("Payment failed",
			zap.Int64("from", playerID), zap.Int64("to", req.To), zap.Int64("amount", req.Amount), zap.Error(err))
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, PayResponse{
		Debit:  toTransactionResponse(transfer.Debit),
		Credit: toTransactionResponse(transfer.Credit),
	})
}
