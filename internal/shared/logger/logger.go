package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// GetLogger returns the process-wide zap.Logger instance, created once and
// shared by every package. Development config by default, production config
// (JSON output) when APP_ENV=production.
func GetLogger() *zap.Logger {
	once.Do(func() {
		var err error
		if os.Getenv("APP_ENV") == "production" {
			logger, err = zap.NewProduction()
		} else {
			logger, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed logger setup : " + err.Error())
		}
	})
	return logger
}
