package app

import (
	"github.com/saradorri/economyengine/internal/http/middleware"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
