// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

// Security returns the audit logger, emitting structured security events
// on a dedicated channel regardless of the configured log level.
func (l *Logger) Security() *SecurityLogger {
	return l.security
}

func NewLogger(level string) *Logger {
	logLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		logLevel = zapcore.ErrorLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger := zap.Must(cfg.Build())

	securityCfg := cfg
	securityCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	securityLogger := zap.Must(securityCfg.Build()).Named("security")

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: securityLogger},
	}
}
