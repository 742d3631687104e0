// Package logger предоставляет логгер приложения поверх zap.
package logger

import (
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger — интерфейс логирования, используемый во всех слоях приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
	// With возвращает логгер с добавленными полями (ключ, значение, ...).
	With(keysAndValues ...any) Logger
	Sync() error
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger создаёт логгер с указанным уровнем.
// asJSON переключает production JSON-энкодер и консольный энкодер для разработки.
func NewZapLogger(level string, asJSON bool) Logger {
	var zapConfig zap.Config
	if asJSON {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)

	l, err := zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewExample()
	}

	return &zapLogger{s: l.Sugar()}
}

// NewFromEnv читает LOGGER_LEVEL и LOGGER_AS_JSON.
// Логгер создаётся раньше конфигурации, поэтому переменные читаются напрямую.
func NewFromEnv() Logger {
	asJSON, err := strconv.ParseBool(os.Getenv("LOGGER_AS_JSON"))
	if err != nil {
		asJSON = false
	}

	return NewZapLogger(os.Getenv("LOGGER_LEVEL"), asJSON)
}

// NewNop возвращает логгер, который ничего не пишет.
func NewNop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debugf(format string, args ...any) {
	l.s.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...any) {
	l.s.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...any) {
	l.s.Warnf(format, args...)
}

func (l *zapLogger) Errorf(err error, format string, args ...any) {
	l.s.With(zap.Error(err)).Errorf(format, args...)
}

func (l *zapLogger) With(keysAndValues ...any) Logger {
	return &zapLogger{s: l.s.With(keysAndValues...)}
}

func (l *zapLogger) Sync() error {
	return l.s.Sync()
}
