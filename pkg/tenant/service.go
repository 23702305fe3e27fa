// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenancy"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenantdb"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type actorContextKey struct{}

// WithActor names who performs the administrative calls made with ctx, for the audit log.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func actorFrom(ctx context.Context) string {
	if actor, ok := ctx.Value(actorContextKey{}).(string); ok && actor != "" {
		return actor
	}
	return "system"
}

type Service struct {
	registry    RegistryInterface
	provisioner ProvisionerInterface
	contents    ContentFactoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	registry RegistryInterface,
	provisioner ProvisionerInterface,
	contents ContentFactoryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		registry:    registry,
		provisioner: provisioner,
		contents:    contents,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// CreateTenant registers t and provisions its database. When owner is set it becomes the
// first admin user of the tenant. A tenant is never left registered without a database:
// any failure after the registry insert removes the registry row again.
func (s *Service) CreateTenant(ctx context.Context, t *types.Tenant, owner *types.NewUser) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if t == nil {
		return nil, fmt.Errorf("tenant is required: %w", types.ErrInvalidArgument)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if owner != nil {
		if err := types.ValidateStruct(owner); err != nil {
			return nil, err
		}
		if t.OwnerName == "" {
			t.OwnerName = owner.Login
		}
	}

	// the registry refuses a second tenant whose name sanitizes to a taken database
	t.DatabaseName = tenancy.DatabaseName(t.Name)

	created, err := s.registry.CreateTenant(ctx, t)
	if err != nil {
		return nil, err
	}

	tables, err := s.provisioner.Provision(ctx, created.Name)
	if err != nil {
		s.unregister(ctx, created.Name)
		return nil, types.NewProvisioningError(created.Name, err)
	}

	if owner != nil {
		admin := *owner
		admin.Admin = true
		if _, err := s.createUser(ctx, created.Name, &admin); err != nil {
			s.unregister(ctx, created.Name)
			return nil, types.NewProvisioningError(created.Name, err)
		}
	}

	s.logger.Infof("tenant %s created, %d tables provisioned", created.Name, len(tables))
	s.logger.Security().AdminAction(actorFrom(ctx), "create_tenant", created.Name)

	return created, nil
}

func (s *Service) unregister(ctx context.Context, name string) {
	if err := s.registry.DeleteTenant(context.WithoutCancel(ctx), name); err != nil {
		s.logger.Errorf("failed to remove registry entry of unprovisioned tenant %s: %v", name, err)
	}
}

func (s *Service) GetTenant(ctx context.Context, name string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.registry.GetTenant(ctx, name)
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.registry.ListTenants(ctx)
}

// UpdateTenant applies the fields named in paths.
func (s *Service) UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	if t == nil || t.Name == "" {
		return nil, fmt.Errorf("tenant name is required: %w", types.ErrInvalidArgument)
	}

	updated, err := s.registry.UpdateTenant(ctx, t, paths)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actorFrom(ctx), "update_tenant", t.Name)
	return updated, nil
}

// DeleteTenant marks the tenant inactive and keeps its database. With completely set the
// database is dropped and the registry row removed. The row is deactivated before the drop,
// so a failure part way never leaves an active tenant without its database.
func (s *Service) DeleteTenant(ctx context.Context, name string, completely bool) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	if !completely {
		if err := s.registry.SetTenantActive(ctx, name, false); err != nil {
			return err
		}
		s.logger.Security().AdminAction(actorFrom(ctx), "deactivate_tenant", name)
		return nil
	}

	if _, err := s.registry.GetTenant(ctx, name); err != nil {
		return err
	}
	if err := s.registry.SetTenantActive(ctx, name, false); err != nil {
		return err
	}
	if err := s.provisioner.DropDatabase(ctx, name); err != nil {
		return fmt.Errorf("tenant %s is deactivated but its database remains: %w", name, err)
	}
	if err := s.registry.DeleteTenant(ctx, name); err != nil {
		return fmt.Errorf("database of tenant %s was dropped but its inactive registry entry remains: %w", name, err)
	}

	s.logger.Warnf("tenant %s and its database were deleted", name)
	s.logger.Security().AdminAction(actorFrom(ctx), "delete_tenant", name)
	return nil
}

// RepairTenant creates whatever domain tables the tenant database lacks.
func (s *Service) RepairTenant(ctx context.Context, name string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RepairTenant")
	defer span.End()

	if _, err := s.registry.GetTenant(ctx, name); err != nil {
		return nil, err
	}

	created, err := s.provisioner.CreateAllTables(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actorFrom(ctx), "repair_tenant", name)
	return created, nil
}

func (s *Service) RebuildTenant(ctx context.Context, name string, acceptDataLoss bool) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RebuildTenant")
	defer span.End()

	if !acceptDataLoss {
		return nil, fmt.Errorf("rebuilding tenant %q deletes all of its data: %w", name, types.ErrDataLossNotConfirmed)
	}
	if _, err := s.registry.GetTenant(ctx, name); err != nil {
		return nil, err
	}

	created, err := s.provisioner.RebuildDatabase(ctx, name, true)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actorFrom(ctx), "rebuild_tenant", name)
	return created, nil
}

func (s *Service) ListTenantTables(ctx context.Context, name string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenantTables")
	defer span.End()

	if _, err := s.registry.GetTenant(ctx, name); err != nil {
		return nil, err
	}
	return s.provisioner.ListExistingTables(ctx, name)
}

func (s *Service) ListTenantUsers(ctx context.Context, name string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenantUsers")
	defer span.End()

	store, err := s.contents.OpenContent(ctx, name, tenantdb.RequireExisting)
	if err != nil {
		return nil, err
	}
	return store.ListUsers(ctx)
}

func (s *Service) AddTenantUser(ctx context.Context, name string, u *types.NewUser) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddTenantUser")
	defer span.End()

	if u == nil {
		return nil, fmt.Errorf("user is required: %w", types.ErrInvalidArgument)
	}
	if err := types.ValidateStruct(u); err != nil {
		return nil, err
	}

	created, err := s.createUser(ctx, name, u)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actorFrom(ctx), "add_user:"+created.Login, name)
	return created, nil
}

func (s *Service) createUser(ctx context.Context, tenant string, u *types.NewUser) (*types.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("password of %q is too long: %w", u.Login, types.ErrInvalidArgument)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	store, err := s.contents.OpenContent(ctx, tenant, tenantdb.ProvisionIfMissing)
	if err != nil {
		return nil, err
	}

	return store.CreateUser(ctx, &types.User{
		Login:        u.Login,
		DisplayName:  u.DisplayName,
		Email:        u.Email,
		PasswordHash: string(hash),
		Admin:        u.Admin,
	})
}
