package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitLogger init logger
func InitLogger() {
	config := zap.NewProductionConfig()

	// Set output path
	config.OutputPaths = []string{"stdout"}

	// Set time format
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Set log level depending on environment
	if os.Getenv("GO_ENV") == "production" {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		// Additional settings for production
		config.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
	} else {
		// For local development
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.Development = true
		config.Encoding = "console" // More readable format for development

		// Set color output for console
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	options := []zap.Option{
		zap.AddStacktrace(zapcore.ErrorLevel),
	}

	var err error
	Logger, err = config.Build(options...)
	if err != nil {
		panic(err)
	}
}
