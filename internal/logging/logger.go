// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Desugar().Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(l string) *Logger {
	var lvl string

	switch strings.ToLower(l) {
	case "debug", "info", "warn", "error":
		lvl = strings.ToLower(l)
	default:
		lvl = "error"
	}

	ll, err := zap.ParseAtomicLevel(lvl)
	if err != nil {
		ll = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	c := zap.NewProductionConfig()
	c.Level = ll
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	lgr, err := c.Build()
	if err != nil {
		panic(err)
	}

	logger := new(Logger)
	logger.SugaredLogger = lgr.Sugar()
	logger.security = newSecurityLogger()

	logger.Debugf("logger created with level %s", lvl)

	return logger
}
