// Package zap_adapter реализует фасад logger.Logger поверх zap.
package zap_adapter

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cargoflash/pkg/logger"
)

type ZapAdapter struct {
	inner *zap.Logger
}

// NewZapAdapter собирает production-логгер: JSON в stdout, уровень
// берется из LOG_LEVEL (по умолчанию info).
func NewZapAdapter() (*ZapAdapter, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}

	inner, err := cfg.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}

	return &ZapAdapter{inner: inner}, nil
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.inner.Info(msg, toZapFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.inner.Warn(msg, toZapFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.inner.Error(msg, toZapFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	return &ZapAdapter{inner: z.inner.With(toZapFields(fields)...)}
}

func (z *ZapAdapter) Sync() error {
	return z.inner.Sync()
}

func toZapFields(fields []logger.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
