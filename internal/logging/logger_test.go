// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("DEBUG")
	if !l.Desugar().Core().Enabled(-1) {
		t.Fatal("expected debug level to be enabled")
	}
}

func TestInvalidLevel(t *testing.T) {
	l := NewLogger("invalid")
	if l.Desugar().Core().Enabled(1) {
		t.Fatal("expected warn level to be disabled on fallback to error")
	}
	if !l.Desugar().Core().Enabled(2) {
		t.Fatal("expected error level to be enabled")
	}
}

func TestSecurityLoggerAvailable(t *testing.T) {
	l := NewNoopLogger()
	l.Security().AdminAction("cli", "tenant.create", "acme")
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
}
