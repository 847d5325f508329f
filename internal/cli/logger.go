package cli

import (
	"fragdoc/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a stderr logger; stdout carries rendered documents.
func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if lc.Level != "" {
		parsed, err := zapcore.ParseLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	zc := zap.NewProductionConfig()
	if lc.Format != "json" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
