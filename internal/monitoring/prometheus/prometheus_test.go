// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
)

func TestMonitorDependencyAvailability(t *testing.T) {
	m := NewMonitor("test-dependencies", logging.NewNoopLogger())

	if err := m.SetDependencyAvailability(map[string]string{"component": "tenant_acme"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.dependencies.WithLabelValues("tenant_acme")); got != 1 {
		t.Fatalf("expected availability 1, got %v", got)
	}
}

func TestMonitorResponseTime(t *testing.T) {
	m := NewMonitor("test-response-time", logging.NewNoopLogger())

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/{tenant}/materials", "status": "200"}, 0.25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := testutil.CollectAndCount(m.responseTime); n != 1 {
		t.Fatalf("expected one series, got %d", n)
	}
}

func TestMonitorNotInstantiated(t *testing.T) {
	m := new(Monitor)

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Fatal("expected an error")
	}
	if err := m.SetDependencyAvailability(nil, 1); err == nil {
		t.Fatal("expected an error")
	}
	if err := m.SetOpenTenantPools(1); err == nil {
		t.Fatal("expected an error")
	}
}

func TestMonitorOpenTenantPools(t *testing.T) {
	m := NewMonitor("test-tenant-pools", logging.NewNoopLogger())

	for _, v := range []float64{1, 2, 1} {
		if err := m.SetOpenTenantPools(v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := testutil.ToFloat64(m.tenantPools); got != 1 {
		t.Fatalf("expected 1 open pool, got %v", got)
	}
}
