// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenantdb -destination ./mock_tenantdb.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenantdb -destination ./mock_db.go -source=../db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenantdb -destination ./mock_tracing.go -source=../tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenantdb -destination ./mock_logger.go -source=../logging/interfaces.go

type factoryMocks struct {
	registry    *MockRegistryInterface
	provisioner *MockProvisionerInterface
	pools       *MockPoolsInterface
	client      *MockDBClientInterface
}

func TestCreateContext(t *testing.T) {
	active := &types.Tenant{Name: "Acme", StorageKind: types.StorageKindOwnCloud, Directory: "acme-files", Active: true}
	inactive := &types.Tenant{Name: "Acme", StorageKind: types.StorageKindOwnCloud, Directory: "acme-files"}
	boom := errors.New("boom")

	tests := []struct {
		name   string
		policy Policy
		setup  func(m factoryMocks)
		err    error
	}{
		{
			name:   "existing database",
			policy: RequireExisting,
			setup: func(m factoryMocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "Acme").Return(active, nil)
				m.provisioner.EXPECT().DatabaseExists(gomock.Any(), "Acme").Return(true, nil)
				m.pools.EXPECT().Client(gomock.Any(), "tenant_acme").Return(m.client, nil)
			},
		},
		{
			name:   "unregistered tenant",
			policy: ProvisionIfMissing,
			setup: func(m factoryMocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "Acme").Return(nil, types.ErrNotFound)
			},
			err: types.ErrUnknownTenant,
		},
		{
			name:   "inactive tenant",
			policy: ProvisionIfMissing,
			setup: func(m factoryMocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "Acme").Return(inactive, nil)
			},
			err: types.ErrUnknownTenant,
		},
		{
			name:   "registry failure",
			policy: RequireExisting,
			setup: func(m factoryMocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "Acme").Return(nil, boom)
			},
			err: boom,
		},
		{
			name:   "missing database on a read path",
			policy: RequireExisting,
			setup: func(m factoryMocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "Acme").Return(active, nil)
				m.provisioner.EXPECT().DatabaseExists(gomock.Any(), "Acme").Return(false, nil)
			},
			err: types.ErrUnknownTenant,
		},
		{
			name:   "missing database on a write path",
			policy: ProvisionIfMissing,
			setup: func(m factoryMocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "Acme").Return(active, nil)
				m.provisioner.EXPECT().DatabaseExists(gomock.Any(), "Acme").Return(false, nil)
				m.provisioner.EXPECT().Provision(gomock.Any(), "Acme").Return([]string{"users"}, nil)
				m.pools.EXPECT().Client(gomock.Any(), "tenant_acme").Return(m.client, nil)
			},
		},
		{
			name:   "provisioning failure",
			policy: ProvisionIfMissing,
			setup: func(m factoryMocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "Acme").Return(active, nil)
				m.provisioner.EXPECT().DatabaseExists(gomock.Any(), "Acme").Return(false, nil)
				m.provisioner.EXPECT().Provision(gomock.Any(), "Acme").Return(nil, types.NewProvisioningError("Acme", boom))
			},
			err: types.ErrProvisioningFailed,
		},
		{
			name:   "database dropped between check and connect",
			policy: RequireExisting,
			setup: func(m factoryMocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "Acme").Return(active, nil)
				m.provisioner.EXPECT().DatabaseExists(gomock.Any(), "Acme").Return(true, nil)
				m.pools.EXPECT().Client(gomock.Any(), "tenant_acme").Return(nil, &pgconn.PgError{Code: "3D000"})
			},
			err: types.ErrUnknownTenant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := factoryMocks{
				registry:    NewMockRegistryInterface(ctrl),
				provisioner: NewMockProvisionerInterface(ctrl),
				pools:       NewMockPoolsInterface(ctrl),
				client:      NewMockDBClientInterface(ctrl),
			}
			tt.setup(m)

			mockTracer := NewMockTracingInterface(ctrl)
			mockTracer.EXPECT().Start(gomock.Any(), "tenantdb.Factory.CreateContext").Return(context.Background(), trace.SpanFromContext(context.Background()))

			logger := logging.NewNoopLogger()
			f := NewFactory(m.registry, m.provisioner, m.pools, mockTracer, monitoring.NewNoopMonitor("test", logger), logger)

			h, err := f.CreateContext(context.Background(), "Acme", tt.policy)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if tt.err != nil {
				if h != nil {
					t.Fatalf("expected no handle, got %+v", h)
				}
				return
			}

			if h.Database() != "tenant_acme" || h.Tenant().Name != "Acme" {
				t.Fatalf("unexpected handle %s for %s", h.Database(), h.Tenant().Name)
			}
			if h.DB() != m.client {
				t.Fatal("expected the handle to use the tenant pool")
			}
			if h.Content() == nil {
				t.Fatal("expected tenant scoped content storage")
			}
		})
	}
}

func TestPolicy(t *testing.T) {
	if RequireExisting.String() != "require-existing" || ProvisionIfMissing.String() != "provision-if-missing" {
		t.Fatal("unexpected policy names")
	}
	if Policy(7).String() != "policy(7)" {
		t.Fatalf("unexpected name %q", Policy(7).String())
	}

	tests := map[string]Policy{
		"GET":    RequireExisting,
		"HEAD":   RequireExisting,
		"POST":   ProvisionIfMissing,
		"PUT":    ProvisionIfMissing,
		"PATCH":  ProvisionIfMissing,
		"DELETE": ProvisionIfMissing,
	}
	for method, expected := range tests {
		if got := PolicyForMethod(method); got != expected {
			t.Fatalf("%s: expected %s, got %s", method, expected, got)
		}
	}
}
