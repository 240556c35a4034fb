package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/http/middleware"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AdminHandler handles operator commands on the ledger
type AdminHandler struct {
	ledger domain.LedgerUseCase
	logger *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(ledger domain.LedgerUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{ledger: ledger, logger: logger}
}

// GrantRequest represents an administrative credit
type GrantRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0" example:"500"`
}

// GrantAllResponse summarises a credit to every account
type GrantAllResponse struct {
	Accounts int   `json:"accounts" example:"3"`
	Amount   int64 `json:"amount" example:"500"`
}

// ResetResponse summarises a balance reset
type ResetResponse struct {
	Accounts int64 `json:"accounts" example:"3"`
}

// Grant credits one player
// @Summary Grant currency
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param request body GrantRequest true "Amount"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /admin/accounts/{id}/grant [post]
func (h *AdminHandler) Grant(c *gin.Context) {
	playerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req GrantRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.ledger.Grant(c.Request.Context(), playerID, req.Amount)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	h.logger.Info("Admin grant", zap.String("operator", c.GetString(middleware.ContextPlayerName)),
		zap.Int64("playerID", playerID), zap.Int64("amount", req.Amount))
	c.JSON(http.StatusOK, toTransactionResponse(record))
}

// GrantAll credits every player
// @Summary Grant currency to everyone
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GrantRequest true "Amount"
// @Success 200 {object} GrantAllResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /admin/grants [post]
func (h *AdminHandler) GrantAll(c *gin.Context) {
	var req GrantRequest
	if !bindJSON(c, &req) {
		return
	}
	records, err := h.ledger.GrantAll(c.Request.Context(), req.Amount)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, GrantAllResponse{Accounts: len(records), Amount: req.Amount})
}

// Reset zeroes every player balance
// @Summary Reset all balances
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ResetResponse
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	n, err := h.ledger.ResetAllBalances(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	h.logger.Warn("Admin reset all balances", zap.String("operator", c.GetString(middleware.ContextPlayerName)))
	c.JSON(http.StatusOK, ResetResponse{Accounts: n})
}

// House audits the house account against the tax feed
// @Summary House account audit
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.HouseReport
// @Router /admin/house [get]
func (h *AdminHandler) House(c *gin.Context) {
	report, err := h.ledger.VerifyHouse(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
