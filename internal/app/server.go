package app

import (
	"github.com/saradorri/economyengine/internal/http"
	"github.com/saradorri/economyengine/internal/http/handlers"
	"github.com/saradorri/economyengine/internal/http/middleware"
	"github.com/saradorri/economyengine/internal/infrastructure/auth"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	accountHandler *handlers.AccountHandler,
	rankHandler *handlers.RankHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	adminHandler *handlers.AdminHandler,
	eventHandler *handlers.EventHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	return http.NewServer(jwtService, http.Handlers{
		Account:     accountHandler,
		Rank:        rankHandler,
		Leaderboard: leaderboardHandler,
		Admin:       adminHandler,
		Event:       eventHandler,
	}, errorHandler, log, a.config.GetServerAddress())
}
