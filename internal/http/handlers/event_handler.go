package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/http/middleware"
)

// EventHandler receives game events from the host server
type EventHandler struct {
	ledger  domain.LedgerUseCase
	rewards domain.RewardUseCase
	ranks   domain.RankUseCase
}

// NewEventHandler creates a new event handler
func NewEventHandler(ledger domain.LedgerUseCase, rewards domain.RewardUseCase, ranks domain.RankUseCase) *EventHandler {
	return &EventHandler{ledger: ledger, rewards: rewards, ranks: ranks}
}

// PlayerEvent identifies a player joining or leaving
type PlayerEvent struct {
	PlayerID   int64  `json:"player_id" binding:"required" example:"42"`
	PlayerName string `json:"player_name" example:"alice"`
}

// JoinResponse reports whether the account was new
type JoinResponse struct {
	Created bool `json:"created" example:"true"`
}

// KillEventRequest is a kill credited to a player
type KillEventRequest struct {
	PlayerID       int64  `json:"player_id" binding:"required" example:"42"`
	PlayerName     string `json:"player_name" example:"alice"`
	NPCID          int    `json:"npc_id" example:"21"`
	Classification string `json:"classification,omitempty" example:"hostile"`
	HardMode       bool   `json:"hard_mode" example:"false"`
}

// BossEventRequest arms boss rewards
type BossEventRequest struct {
	Source string `json:"source" binding:"required" example:"bulb"`
}

// WorldEventRequest reports the identity of the loaded world
type WorldEventRequest struct {
	WorldID string `json:"world_id" binding:"required" example:"3f9a"`
}

// Join ensures the player has an account
// @Summary Player joined
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlayerEvent true "Player"
// @Success 200 {object} JoinResponse
// @Router /events/join [post]
func (h *EventHandler) Join(c *gin.Context) {
	var req PlayerEvent
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.ledger.EnsureAccount(c.Request.Context(), req.PlayerID, req.PlayerName)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, JoinResponse{Created: created})
}

// Disconnect drops the player's reward session
// @Summary Player left
// @Tags events
// @Accept json
// @Security BearerAuth
// @Param request body PlayerEvent true "Player"
// @Success 204
// @Router /events/disconnect [post]
func (h *EventHandler) Disconnect(c *gin.Context) {
	var req PlayerEvent
	if !bindJSON(c, &req) {
		return
	}
	h.rewards.PlayerDisconnected(req.PlayerID)
	c.Status(http.StatusNoContent)
}

// Kill evaluates the reward of a kill
// @Summary NPC killed
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body KillEventRequest true "Kill"
// @Success 200 {object} domain.RewardResult
// @Failure 400 {object} domain.ErrorResponse
// @Router /events/kill [post]
func (h *EventHandler) Kill(c *gin.Context) {
	var req KillEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event := domain.KillEvent{
		PlayerID:   req.PlayerID,
		PlayerName: req.PlayerName,
		NPCID:      req.NPCID,
		HardMode:   req.HardMode,
		At:         time.Now(),
	}
	if req.Classification != "" {
		class, err := domain.ParseNPCClass(req.Classification)
		if err != nil {
			middleware.Abort(c, domain.NewValidationError("classification", err.Error()))
			return
		}
		event.Classification = class
	}

	result, err := h.rewards.HandleKill(c.Request.Context(), event)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Boss arms the boss token
// @Summary Boss spawned or bulb broken
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BossEventRequest true "Trigger"
// @Success 200 {object} domain.BossToken
// @Router /events/boss [post]
func (h *EventHandler) Boss(c *gin.Context) {
	var req BossEventRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.rewards.ArmBoss(req.Source))
}

// World reports the loaded world and resets ranks when it changed
// @Summary World loaded
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WorldEventRequest true "World"
// @Success 200 {object} domain.WorldChangeResult
// @Router /events/world [post]
func (h *EventHandler) World(c *gin.Context) {
	var req WorldEventRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.ranks.CheckWorld(c.Request.Context(), req.WorldID)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
