package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f Fields) { z.L.Error(msg, zf(f)...) }

func zf(f Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}

	return out
}

func newZap(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	return cfg.Build()
}
