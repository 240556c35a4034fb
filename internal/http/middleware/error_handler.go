package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Context keys set by the middleware chain
const (
	ContextRequestID  = "request_id"
	ContextPlayerID   = "player_id"
	ContextPlayerName = "player_name"
	ContextRole       = "role"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *logger.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger.Named("http"),
	}
}

// ErrorHandlerMiddleware turns panics into 500 responses
func (h *ErrorHandler) ErrorHandlerMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.handlePanic(c, recovered)
	})
}

func (h *ErrorHandler) handlePanic(c *gin.Context, recovered interface{}) {
	requestID := h.getRequestID(c)
	playerID := getPlayerID(c)

	h.logger.Error("Panic recovered",
		zap.String("requestID", requestID),
		zap.String("playerID", playerID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Any("panic", recovered),
		zap.ByteString("stack", debug.Stack()))

	err := domain.NewInternalError("Internal server error", fmt.Errorf("panic: %v", recovered))
	err.RequestID = requestID
	err.PlayerID = playerID
	err.Path = c.Request.URL.Path
	err.Method = c.Request.Method

	c.AbortWithStatusJSON(http.StatusInternalServerError, domain.NewErrorResponse(err))
}

// getRequestID gets or generates a request ID
func (h *ErrorHandler) getRequestID(c *gin.Context) string {
	if requestID := c.GetString(ContextRequestID); requestID != "" {
		return requestID
	}
	return generateRequestID()
}

func getPlayerID(c *gin.Context) string {
	if id, exists := c.Get(ContextPlayerID); exists {
		return strconv.FormatInt(id.(int64), 10)
	}
	return ""
}

// RequestIDMiddleware adds a unique request ID to each request
func (h *ErrorHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = generateRequestID()
		}
		c.Set(ContextRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Abort writes err as the standard error body and stops the chain
func Abort(c *gin.Context, err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError("", err)
	}
	appErr.RequestID = c.GetString(ContextRequestID)
	appErr.PlayerID = getPlayerID(c)
	appErr.Path = c.Request.URL.Path
	appErr.Method = c.Request.Method

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, domain.NewErrorResponse(appErr))
}

// generateRequestID generates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)
}
