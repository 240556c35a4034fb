package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/http/middleware"
)

// RankHandler handles rank listing, promotion and administration
type RankHandler struct {
	ranks domain.RankUseCase
}

// NewRankHandler creates a new rank handler
func NewRankHandler(ranks domain.RankUseCase) *RankHandler {
	return &RankHandler{ranks: ranks}
}

// AddRankRequest represents a new rank definition
type AddRankRequest struct {
	Name           string  `json:"name" binding:"required" example:"captain"`
	RequiredAmount int64   `json:"required_amount" binding:"gte=0" example:"2000"`
	GroupName      string  `json:"group_name" binding:"required" example:"captains"`
	NextRank       *string `json:"next_rank,omitempty" example:"major"`
}

// RelinkRequest sets or clears a rank's successor
type RelinkRequest struct {
	NextRank *string `json:"next_rank" example:"major"`
}

// RepriceRequest changes a rank's required amount
type RepriceRequest struct {
	RequiredAmount *int64 `json:"required_amount" binding:"required" example:"2500"`
}

// List returns every rank
// @Summary List ranks
// @Tags ranks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Rank
// @Router /ranks [get]
func (h *RankHandler) List(c *gin.Context) {
	ranks, err := h.ranks.List(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, ranks)
}

// Chain returns the progression from a rank, the initial one by default
// @Summary Rank progression
// @Tags ranks
// @Produce json
// @Security BearerAuth
// @Param start query string false "Rank to start from"
// @Success 200 {array} domain.Rank
// @Failure 404 {object} domain.ErrorResponse
// @Router /ranks/chain [get]
func (h *RankHandler) Chain(c *gin.Context) {
	chain, err := h.ranks.Chain(c.Request.Context(), c.Query("start"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, chain)
}

// Promote moves the caller to the next rank
// @Summary Promote to next rank
// @Tags ranks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.PromotionResult
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /ranks/promote [post]
func (h *RankHandler) Promote(c *gin.Context) {
	playerID, _, ok := authenticatedPlayer(c)
	if !ok {
		return
	}
	result, err := h.ranks.Promote(c.Request.Context(), playerID)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Add creates a rank
// @Summary Add rank
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddRankRequest true "Rank definition"
// @Success 201 {object} domain.Rank
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /admin/ranks [post]
func (h *RankHandler) Add(c *gin.Context) {
	var req AddRankRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.ranks.Add(c.Request.Context(), &domain.Rank{
		Name:           req.Name,
		RequiredAmount: req.RequiredAmount,
		GroupName:      req.GroupName,
		NextRank:       req.NextRank,
	})
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// Delete removes a rank
// @Summary Delete rank
// @Tags admin
// @Security BearerAuth
// @Param name path string true "Rank name"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /admin/ranks/{name} [delete]
func (h *RankHandler) Delete(c *gin.Context) {
	if err := h.ranks.Delete(c.Request.Context(), c.Param("name")); err != nil {
		middleware.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Relink changes a rank's successor
// @Summary Relink rank
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Rank name"
// @Param request body RelinkRequest true "New successor, null for terminal"
// @Success 200 {object} domain.Rank
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /admin/ranks/{name}/next [put]
func (h *RankHandler) Relink(c *gin.Context) {
	var req RelinkRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.ranks.Relink(c.Request.Context(), c.Param("name"), req.NextRank)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// Reprice changes a rank's required amount
// @Summary Reprice rank
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Rank name"
// @Param request body RepriceRequest true "New price"
// @Success 200 {object} domain.Rank
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /admin/ranks/{name}/price [put]
func (h *RankHandler) Reprice(c *gin.Context) {
	var req RepriceRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.ranks.Reprice(c.Request.Context(), c.Param("name"), *req.RequiredAmount)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
