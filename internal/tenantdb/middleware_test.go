// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/http/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenancy"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

func TestMiddlewareAttachesHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := logging.NewNoopLogger()
	client := NewMockDBClientInterface(ctrl)
	handle := NewHandle(&types.Tenant{Name: "acme", Active: true}, client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mockFactory := NewMockFactoryInterface(ctrl)
	mockFactory.EXPECT().CreateContext(gomock.Any(), "acme", ProvisionIfMissing).Return(handle, nil)

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), "tenantdb.Middleware.HTTPMiddleware").DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)

	var seen *Handle
	var resolved bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = HandleFromContext(r.Context())
		resolved = ClientFromRequest(r) == client
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/acme/materials", nil)
	req = req.WithContext(tenancy.WithTenant(req.Context(), "acme"))
	rec := httptest.NewRecorder()

	NewMiddleware(mockFactory, mockTracer, monitoring.NewNoopMonitor("test", logger), logger).HTTPMiddleware(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if seen != handle || seen.Database() != "tenant_acme" {
		t.Fatalf("unexpected handle %+v", seen)
	}
	if !resolved {
		t.Fatal("expected the request to resolve to the tenant client")
	}
}

func TestMiddlewareRejectsUnknownTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := NewMockFactoryInterface(ctrl)
	mockFactory.EXPECT().CreateContext(gomock.Any(), tenancy.DefaultTenant, RequireExisting).Return(nil, types.ErrUnknownTenant)

	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), "tenantdb.Middleware.HTTPMiddleware").Return(context.Background(), trace.SpanFromContext(context.Background()))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()

	NewMiddleware(mockFactory, mockTracer, monitoring.NewNoopMonitor("test", mockLogger), mockLogger).HTTPMiddleware(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body httptypes.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Status != http.StatusNotFound {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestClientFromRequestWithoutHandle(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if ClientFromRequest(req) != nil {
		t.Fatal("expected no client without a handle")
	}
}

func TestScopeFromRequestWithoutHandle(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, err := ContentFromRequest(req); !errors.Is(err, types.ErrUnknownTenant) {
		t.Fatalf("expected ErrUnknownTenant, got %v", err)
	}
	if _, err := TenantFromRequest(req); !errors.Is(err, types.ErrUnknownTenant) {
		t.Fatalf("expected ErrUnknownTenant, got %v", err)
	}
}
