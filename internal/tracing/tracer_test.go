// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
)

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}
	if span.SpanContext().IsValid() {
		t.Fatal("noop spans must not carry a valid span context")
	}
}

func TestOpenTelemetryMiddleware(t *testing.T) {
	logger := logging.NewNoopLogger()
	mdw := NewMiddleware(monitoring.NewNoopMonitor("test", logger), logger)

	called := false
	h := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/acme/materials", nil))

	if !called || rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected result: called=%v status=%d", called, rec.Code)
	}
}
