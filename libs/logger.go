package libs

import (
	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger builds the process-wide logger. Development mode gets the
// human-readable console encoder.
func InitLogger(appEnv string) *zap.Logger {
	var err error
	if appEnv == "production" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		Logger = zap.NewNop()
	}
	return Logger
}

func Log() *zap.SugaredLogger {
	if Logger == nil {
		Logger = zap.NewNop()
	}
	return Logger.Sugar()
}
