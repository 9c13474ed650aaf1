package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base *zap.Logger

// Init builds the process-wide logger. Production emits JSON on stdout;
// anything else gets the colored development console encoder.
func Init(env string) {
	var cfg zap.Config
	switch env {
	case "production":
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
		cfg.OutputPaths = []string{"stdout"}
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.CallerKey = "caller"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	built, err := cfg.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	base = built
}

// L returns the global logger, initializing it from APP_ENV on first use.
func L() *zap.Logger {
	if base == nil {
		Init(os.Getenv("APP_ENV"))
	}
	return base
}

// Sync flushes any buffered log entries.
func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}
