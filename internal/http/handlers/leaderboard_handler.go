package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/http/middleware"
)

// LeaderboardHandler serves the leaderboard snapshot
type LeaderboardHandler struct {
	board domain.LeaderboardUseCase
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(board domain.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{board: board}
}

// Get returns the current snapshot
// @Summary Leaderboard
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.LeaderboardSnapshot
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.board.Snapshot())
}

// Refresh recomputes the snapshot immediately
// @Summary Refresh leaderboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.LeaderboardSnapshot
// @Failure 500 {object} domain.ErrorResponse
// @Router /admin/leaderboard/refresh [post]
func (h *LeaderboardHandler) Refresh(c *gin.Context) {
	snapshot, err := h.board.Recompute(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
