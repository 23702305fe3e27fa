// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenantdb"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_content.go -source=../../internal/content/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type mocks struct {
	registry    *MockRegistryInterface
	provisioner *MockProvisionerInterface
	contents    *MockContentFactoryInterface
	store       *MockStorageInterface
	tracer      *MockTracingInterface
	logger      *MockLoggerInterface
	security    *MockSecurityLoggerInterface
	monitor     *MockMonitorInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	return &mocks{
		registry:    NewMockRegistryInterface(ctrl),
		provisioner: NewMockProvisionerInterface(ctrl),
		contents:    NewMockContentFactoryInterface(ctrl),
		store:       NewMockStorageInterface(ctrl),
		tracer:      NewMockTracingInterface(ctrl),
		logger:      NewMockLoggerInterface(ctrl),
		security:    NewMockSecurityLoggerInterface(ctrl),
		monitor:     NewMockMonitorInterface(ctrl),
	}
}

func (m *mocks) service() *Service {
	return NewService(m.registry, m.provisioner, m.contents, m.tracer, m.monitor, m.logger)
}

func (m *mocks) span(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func (m *mocks) audit(action, resource string) {
	m.logger.EXPECT().Security().Return(m.security)
	m.security.EXPECT().AdminAction("system", action, resource)
}

func newAcme() *types.Tenant {
	return &types.Tenant{Name: "acme", StorageKind: types.StorageKindOwnCloud, Directory: "acme-files"}
}

func TestServiceCreateTenant(t *testing.T) {
	boom := errors.New("connection refused")
	owner := &types.NewUser{Login: "alice", Password: "correct horse"}

	tests := []struct {
		name       string
		tenant     *types.Tenant
		owner      *types.NewUser
		setupMocks func(*mocks)
		err        error
	}{
		{
			name:   "without owner",
			tenant: newAcme(),
			setupMocks: func(m *mocks) {
				m.registry.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
						c := *t
						c.Active = true
						return &c, nil
					},
				)
				m.provisioner.EXPECT().Provision(gomock.Any(), "acme").Return([]string{"users", "materials"}, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
				m.audit("create_tenant", "acme")
			},
		},
		{
			name:   "with owner",
			tenant: newAcme(),
			owner:  owner,
			setupMocks: func(m *mocks) {
				m.registry.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
						if t.OwnerName != "alice" {
							return nil, errors.New("owner name not derived from the owner login")
						}
						return t, nil
					},
				)
				m.provisioner.EXPECT().Provision(gomock.Any(), "acme").Return(nil, nil)
				m.contents.EXPECT().OpenContent(gomock.Any(), "acme", tenantdb.ProvisionIfMissing).Return(m.store, nil)
				m.store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if !u.Admin || u.Login != "alice" {
							return nil, errors.New("owner must be an admin")
						}
						if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")); err != nil {
							return nil, err
						}
						return u, nil
					},
				)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
				m.audit("create_tenant", "acme")
			},
		},
		{
			name:       "invalid tenant",
			tenant:     &types.Tenant{Name: "acme", StorageKind: types.StorageKindS3},
			setupMocks: func(m *mocks) {},
			err:        types.ErrInvalidArgument,
		},
		{
			name:       "invalid owner",
			tenant:     newAcme(),
			owner:      &types.NewUser{Login: "alice", Password: "short"},
			setupMocks: func(m *mocks) {},
			err:        types.ErrInvalidArgument,
		},
		{
			name:   "duplicate",
			tenant: newAcme(),
			setupMocks: func(m *mocks) {
				m.registry.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, types.ErrDuplicateTenant)
			},
			err: types.ErrDuplicateTenant,
		},
		{
			name:   "name shares a database with another tenant",
			tenant: &types.Tenant{Name: "Acme", StorageKind: newAcme().StorageKind, Directory: newAcme().Directory},
			setupMocks: func(m *mocks) {
				m.registry.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
						if t.DatabaseName != "tenant_acme" {
							return nil, fmt.Errorf("unexpected database name %q", t.DatabaseName)
						}
						return nil, types.ErrDuplicateTenant
					})
			},
			err: types.ErrDuplicateTenant,
		},
		{
			name:   "provisioning fails",
			tenant: newAcme(),
			setupMocks: func(m *mocks) {
				m.registry.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(newAcme(), nil)
				m.provisioner.EXPECT().Provision(gomock.Any(), "acme").Return(nil, boom)
				m.registry.EXPECT().DeleteTenant(gomock.Any(), "acme").Return(nil)
			},
			err: types.ErrProvisioningFailed,
		},
		{
			name:   "owner creation fails",
			tenant: newAcme(),
			owner:  owner,
			setupMocks: func(m *mocks) {
				m.registry.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(newAcme(), nil)
				m.provisioner.EXPECT().Provision(gomock.Any(), "acme").Return(nil, nil)
				m.contents.EXPECT().OpenContent(gomock.Any(), "acme", tenantdb.ProvisionIfMissing).Return(nil, boom)
				m.registry.EXPECT().DeleteTenant(gomock.Any(), "acme").Return(boom)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			err: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.span("tenant.Service.CreateTenant")
			tt.setupMocks(m)

			created, err := m.service().CreateTenant(context.Background(), tt.tenant, tt.owner)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.Name != "acme" {
				t.Fatalf("unexpected tenant %+v", created)
			}
		})
	}
}

func TestServiceDeleteTenant(t *testing.T) {
	boom := errors.New("registry unavailable")

	tests := []struct {
		name       string
		completely bool
		setupMocks func(*mocks)
		err        error
	}{
		{
			name: "soft delete keeps the database",
			setupMocks: func(m *mocks) {
				m.registry.EXPECT().SetTenantActive(gomock.Any(), "acme", false).Return(nil)
				m.audit("deactivate_tenant", "acme")
			},
		},
		{
			name:       "hard delete drops the database",
			completely: true,
			setupMocks: func(m *mocks) {
				gomock.InOrder(
					m.registry.EXPECT().GetTenant(gomock.Any(), "acme").Return(newAcme(), nil),
					m.registry.EXPECT().SetTenantActive(gomock.Any(), "acme", false).Return(nil),
					m.provisioner.EXPECT().DropDatabase(gomock.Any(), "acme").Return(nil),
					m.registry.EXPECT().DeleteTenant(gomock.Any(), "acme").Return(nil),
				)
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
				m.audit("delete_tenant", "acme")
			},
		},
		{
			name:       "hard delete of an unknown tenant",
			completely: true,
			setupMocks: func(m *mocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "acme").Return(nil, types.ErrNotFound)
			},
			err: types.ErrNotFound,
		},
		{
			name:       "drop failure leaves the tenant deactivated",
			completely: true,
			setupMocks: func(m *mocks) {
				gomock.InOrder(
					m.registry.EXPECT().GetTenant(gomock.Any(), "acme").Return(newAcme(), nil),
					m.registry.EXPECT().SetTenantActive(gomock.Any(), "acme", false).Return(nil),
					m.provisioner.EXPECT().DropDatabase(gomock.Any(), "acme").Return(types.NewProvisioningError("acme", errors.New("busy"))),
				)
			},
			err: types.ErrProvisioningFailed,
		},
		{
			name:       "deactivation failure keeps the database",
			completely: true,
			setupMocks: func(m *mocks) {
				m.registry.EXPECT().GetTenant(gomock.Any(), "acme").Return(newAcme(), nil)
				m.registry.EXPECT().SetTenantActive(gomock.Any(), "acme", false).Return(boom)
			},
			err: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.span("tenant.Service.DeleteTenant")
			tt.setupMocks(m)

			err := m.service().DeleteTenant(context.Background(), "acme", tt.completely)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestServiceRebuildTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.span("tenant.Service.RebuildTenant")
	m.span("tenant.Service.RebuildTenant")

	if _, err := m.service().RebuildTenant(context.Background(), "acme", false); !errors.Is(err, types.ErrDataLossNotConfirmed) {
		t.Fatalf("expected ErrDataLossNotConfirmed, got %v", err)
	}

	m.registry.EXPECT().GetTenant(gomock.Any(), "acme").Return(newAcme(), nil)
	m.provisioner.EXPECT().RebuildDatabase(gomock.Any(), "acme", true).Return([]string{"users"}, nil)
	m.audit("rebuild_tenant", "acme")

	created, err := m.service().RebuildTenant(context.Background(), "acme", true)
	if err != nil || len(created) != 1 {
		t.Fatalf("unexpected result %v, %v", created, err)
	}
}

func TestServiceRepairAndTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.span("tenant.Service.RepairTenant")
	m.span("tenant.Service.ListTenantTables")
	m.span("tenant.Service.ListTenantTables")

	m.registry.EXPECT().GetTenant(gomock.Any(), "acme").Return(newAcme(), nil).Times(2)
	m.provisioner.EXPECT().CreateAllTables(gomock.Any(), "acme").Return([]string{"assets"}, nil)
	m.provisioner.EXPECT().ListExistingTables(gomock.Any(), "acme").Return([]string{"assets", "users"}, nil)
	m.audit("repair_tenant", "acme")

	s := m.service()
	if created, err := s.RepairTenant(context.Background(), "acme"); err != nil || len(created) != 1 {
		t.Fatalf("unexpected repair result %v, %v", created, err)
	}
	if tables, err := s.ListTenantTables(context.Background(), "acme"); err != nil || len(tables) != 2 {
		t.Fatalf("unexpected tables %v, %v", tables, err)
	}

	m.registry.EXPECT().GetTenant(gomock.Any(), "ghost").Return(nil, types.ErrNotFound)
	if _, err := s.ListTenantTables(context.Background(), "ghost"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.span("tenant.Service.AddTenantUser")
	m.span("tenant.Service.AddTenantUser")
	m.span("tenant.Service.ListTenantUsers")

	m.contents.EXPECT().OpenContent(gomock.Any(), "acme", tenantdb.ProvisionIfMissing).Return(m.store, nil)
	m.store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&types.User{ID: "u-1", Login: "bob"}, nil)
	m.logger.EXPECT().Security().Return(m.security)
	m.security.EXPECT().AdminAction("cli", "add_user:bob", "acme")

	s := m.service()
	ctx := WithActor(context.Background(), "cli")
	if _, err := s.AddTenantUser(ctx, "acme", &types.NewUser{Login: "bob", Password: "hunter22"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.AddTenantUser(ctx, "acme", &types.NewUser{Login: "bob", Email: "not-an-email", Password: "hunter22"}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	m.contents.EXPECT().OpenContent(gomock.Any(), "acme", tenantdb.RequireExisting).Return(nil, types.ErrUnknownTenant)
	if _, err := s.ListTenantUsers(ctx, "acme"); !errors.Is(err, types.ErrUnknownTenant) {
		t.Fatalf("expected ErrUnknownTenant, got %v", err)
	}
}

func TestServiceUpdateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.span("tenant.Service.UpdateTenant")
	m.span("tenant.Service.UpdateTenant")

	patch := &types.Tenant{Name: "acme", Description: "robotics"}
	m.registry.EXPECT().UpdateTenant(gomock.Any(), patch, []string{"description"}).Return(patch, nil)
	m.audit("update_tenant", "acme")

	s := m.service()
	if _, err := s.UpdateTenant(context.Background(), patch, []string{"description"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.UpdateTenant(context.Background(), &types.Tenant{}, nil); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
