// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenantdb"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant, owner *types.NewUser) (*types.Tenant, error)
	GetTenant(ctx context.Context, name string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, name string, completely bool) error
	RepairTenant(ctx context.Context, name string) ([]string, error)
	RebuildTenant(ctx context.Context, name string, acceptDataLoss bool) ([]string, error)
	ListTenantTables(ctx context.Context, name string) ([]string, error)
	ListTenantUsers(ctx context.Context, name string) ([]*types.User, error)
	AddTenantUser(ctx context.Context, name string, u *types.NewUser) (*types.User, error)
}

// RegistryInterface is the tenant registry in the control database.
type RegistryInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenant(ctx context.Context, name string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error)
	SetTenantActive(ctx context.Context, name string, active bool) error
	DeleteTenant(ctx context.Context, name string) error
}

type ProvisionerInterface interface {
	Provision(ctx context.Context, tenant string) ([]string, error)
	CreateAllTables(ctx context.Context, tenant string) ([]string, error)
	ListExistingTables(ctx context.Context, tenant string) ([]string, error)
	RebuildDatabase(ctx context.Context, tenant string, acceptDataLoss bool) ([]string, error)
	DropDatabase(ctx context.Context, tenant string) error
}

// ContentFactoryInterface opens the content storage of one tenant database.
type ContentFactoryInterface interface {
	OpenContent(ctx context.Context, tenant string, policy tenantdb.Policy) (content.StorageInterface, error)
}
