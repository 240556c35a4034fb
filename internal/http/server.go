package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/economyengine/internal/http/handlers"
	"github.com/saradorri/economyengine/internal/http/middleware"
	"github.com/saradorri/economyengine/internal/infrastructure/auth"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every route handler served by the API
type Handlers struct {
	Account     *handlers.AccountHandler
	Rank        *handlers.RankHandler
	Leaderboard *handlers.LeaderboardHandler
	Admin       *handlers.AdminHandler
	Event       *handlers.EventHandler
}

// Server represents the HTTP server
type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	jwtService   auth.JWTService
	handlers     Handlers
	errorHandler *middleware.ErrorHandler
	logger       *logger.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	h Handlers,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	addr string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))

	server := &Server{
		router:       router,
		jwtService:   jwtService,
		handlers:     h,
		errorHandler: errorHandler,
		logger:       log,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	v1.Use(middleware.JWTMiddleware(s.jwtService))
	{
		players := v1.Group("/")
		{
			players.GET("/accounts/me/balance", s.handlers.Account.MyBalance)
			players.GET("/accounts/:id/balance", s.handlers.Account.Balance)
			players.GET("/accounts/:id/transactions", s.handlers.Account.History)
			players.POST("/payments", s.handlers.Account.Pay)

			players.GET("/ranks", s.handlers.Rank.List)
			players.GET("/ranks/chain", s.handlers.Rank.Chain)
			players.POST("/ranks/promote", s.handlers.Rank.Promote)

			players.GET("/leaderboard", s.handlers.Leaderboard.Get)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireRole(auth.RoleAdmin))
		{
			admin.POST("/accounts/:id/grant", s.handlers.Admin.Grant)
			admin.POST("/grants", s.handlers.Admin.GrantAll)
			admin.POST("/reset", s.handlers.Admin.Reset)
			admin.GET("/house", s.handlers.Admin.House)

			admin.POST("/ranks", s.handlers.Rank.Add)
			admin.DELETE("/ranks/:name", s.handlers.Rank.Delete)
			admin.PUT("/ranks/:name/next", s.handlers.Rank.Relink)
			admin.PUT("/ranks/:name/price", s.handlers.Rank.Reprice)

			admin.POST("/leaderboard/refresh", s.handlers.Leaderboard.Refresh)
		}

		events := v1.Group("/events")
		events.Use(middleware.RequireRole(auth.RoleServer))
		{
			events.POST("/join", s.handlers.Event.Join)
			events.POST("/disconnect", s.handlers.Event.Disconnect)
			events.POST("/kill", s.handlers.Event.Kill)
			events.POST("/boss", s.handlers.Event.Boss)
			events.POST("/world", s.handlers.Event.World)
		}
	}
}

// Router exposes the gin engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start serves in the background until Shutdown is called
func (s *Server) Start() {
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
