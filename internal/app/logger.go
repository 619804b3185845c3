package app

import (
	"github.com/betops/bonusledger/internal/config"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
