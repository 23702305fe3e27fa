// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
)

func TestResolverResolve(t *testing.T) {
	tests := []struct {
		prefix   string
		path     string
		expected string
	}{
		{prefix: "/api", path: "/api/acme/materials", expected: "acme"},
		{prefix: "/api", path: "/api/Acme-Corp/materials/42", expected: "Acme-Corp"},
		{prefix: "/api", path: "/api/acme", expected: "acme"},
		{prefix: "/api", path: "/api//acme/x", expected: "acme"},
		{prefix: "/api", path: "/api/", expected: DefaultTenant},
		{prefix: "/api", path: "/api", expected: DefaultTenant},
		{prefix: "/api", path: "/apiary/acme", expected: DefaultTenant},
		{prefix: "/api", path: "/other/acme", expected: DefaultTenant},
		{prefix: "/api", path: "", expected: DefaultTenant},
		{prefix: "api/", path: "/api/acme", expected: "acme"},
		{prefix: "/", path: "/acme/materials", expected: "acme"},
		{prefix: "", path: "/acme", expected: "acme"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+"|"+tt.path, func(t *testing.T) {
			if got := NewResolver(tt.prefix).Resolve(tt.path); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		tenant   string
		expected string
	}{
		{tenant: "acme", expected: "tenant_acme"},
		{tenant: "ACME", expected: "tenant_acme"},
		{tenant: "acme-corp.eu", expected: "tenant_acme_corp_eu"},
		{tenant: "a b", expected: "tenant_a_b"},
		{tenant: "café", expected: "tenant_caf_"},
		{tenant: "x1", expected: "tenant_x1"},
	}

	for _, tt := range tests {
		t.Run(tt.tenant, func(t *testing.T) {
			got := DatabaseName(tt.tenant)
			if got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
			if again := DatabaseName(tt.tenant); again != got {
				t.Fatalf("database name is not deterministic: %q != %q", got, again)
			}
		})
	}
}

func TestIsValidTenantName(t *testing.T) {
	for name, valid := range map[string]bool{
		"acme":                  true,
		"Acme-Corp":             true,
		"":                      false,
		"a/b":                   false,
		"with space":            false,
		strings.Repeat("a", 56): true,
		strings.Repeat("a", 57): false,
		"v0":                    false,
		"..":                    false,
		"tab\there":             false,
	} {
		if got := IsValidTenantName(name); got != valid {
			t.Fatalf("IsValidTenantName(%q) = %v, expected %v", name, got, valid)
		}
	}
}

func TestMiddlewareStoresTenant(t *testing.T) {
	m := NewMiddleware(
		NewResolver(DefaultPrefix),
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor("test", logging.NewNoopLogger()),
		logging.NewNoopLogger(),
	)

	var seen string
	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = TenantFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/acme/materials", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "acme" {
		t.Fatalf("expected tenant acme in context, got %q", seen)
	}
}

func TestTenantFromContextEmpty(t *testing.T) {
	if _, ok := TenantFromContext(context.Background()); ok {
		t.Fatal("expected no tenant")
	}
	if _, ok := TenantFromContext(WithTenant(context.Background(), "")); ok {
		t.Fatal("expected an empty tenant to be absent")
	}
}
