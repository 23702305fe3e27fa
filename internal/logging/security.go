// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SecurityLogger emits audit events on a dedicated, always-on channel.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"), zap.Int("pid", os.Getpid()))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"), zap.Int("pid", os.Getpid()))
}

// AdminAction records that actor performed action on resource.
func (s *SecurityLogger) AdminAction(actor, action, resource string) {
	s.l.Info(
		"admin action",
		zap.String("event", "admin_action"),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

// newSecurityLogger logs at info level whatever the application level is.
func newSecurityLogger() *SecurityLogger {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	l, err := c.Build()
	if err != nil {
		l = zap.NewNop()
	}

	return &SecurityLogger{l: l.Named("security")}
}
