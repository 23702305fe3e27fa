// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// StorageInterface is the tenant registry kept in the control database.
type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenant(ctx context.Context, name string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error)
	SetTenantActive(ctx context.Context, name string, active bool) error
	DeleteTenant(ctx context.Context, name string) error
}
