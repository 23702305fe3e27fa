// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenantdb"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/material"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/tenant"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/trainingprogram"
)

type routerMocks struct {
	factory   *tenantdb.MockFactoryInterface
	client    *tenantdb.MockDBClientInterface
	tenants   *tenant.MockServiceInterface
	materials *material.MockServiceInterface
	programs  *trainingprogram.MockServiceInterface
}

func newRouter(t *testing.T, prefix string) (http.Handler, *routerMocks) {
	ctrl := gomock.NewController(t)

	m := &routerMocks{
		factory:   tenantdb.NewMockFactoryInterface(ctrl),
		client:    tenantdb.NewMockDBClientInterface(ctrl),
		tenants:   tenant.NewMockServiceInterface(ctrl),
		materials: material.NewMockServiceInterface(ctrl),
		programs:  trainingprogram.NewMockServiceInterface(ctrl),
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	router := NewRouter(
		Config{Prefix: prefix, MaxUploadSize: 1 << 20},
		Services{Tenants: m.tenants, Materials: m.materials, TrainingPrograms: m.programs},
		m.factory,
		m.client,
		tracer,
		monitor,
		logger,
	)
	return router, m
}

func (m *routerMocks) handle(name string) *tenantdb.Handle {
	logger := logging.NewNoopLogger()
	return tenantdb.NewHandle(
		&types.Tenant{Name: name, Active: true},
		m.client,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
}

func TestRouterTenantScopedRead(t *testing.T) {
	router, m := newRouter(t, "/api")

	m.factory.EXPECT().CreateContext(gomock.Any(), "Acme", tenantdb.RequireExisting).Return(m.handle("Acme"), nil)
	m.materials.EXPECT().List(gomock.Any(), gomock.Any(), types.MaterialKind("")).Return([]*types.Material{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/Acme/materials", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouterUnknownTenant(t *testing.T) {
	router, m := newRouter(t, "/api")

	m.factory.EXPECT().CreateContext(gomock.Any(), "ghost", tenantdb.RequireExisting).Return(nil, types.ErrUnknownTenant)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ghost/learning-paths", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouterWritesRunInTenantTransaction(t *testing.T) {
	router, m := newRouter(t, "api/")

	var committed error
	m.factory.EXPECT().CreateContext(gomock.Any(), "acme", tenantdb.ProvisionIfMissing).Return(m.handle("acme"), nil)
	m.client.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			committed = fn(ctx)
			return committed
		},
	)
	m.programs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, types.ErrInvalidArgument)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/acme/training-programs", strings.NewReader(`{"name":"onboarding"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if committed == nil {
		t.Fatal("expected the failed request to roll back its transaction")
	}
}

func TestRouterAdministrativeRoutesBypassTenancy(t *testing.T) {
	router, m := newRouter(t, "/api")

	m.tenants.EXPECT().ListTenants(gomock.Any()).Return([]*types.Tenant{}, nil)

	for _, path := range []string{"/api/v0/tenants", "/api/v0/status", "/api/v0/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestNormalizePrefix(t *testing.T) {
	for in, want := range map[string]string{
		"":           "/api",
		"/api":       "/api",
		"api/":       "/api",
		"/":          "",
		"/xr/v1/":    "/xr/v1",
		"/training/": "/training",
	} {
		if got := normalizePrefix(in); got != want {
			t.Errorf("normalizePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
