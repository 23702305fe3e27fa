// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"context"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type RegistryInterface interface {
	GetTenant(ctx context.Context, name string) (*types.Tenant, error)
}

type ProvisionerInterface interface {
	DatabaseExists(ctx context.Context, tenant string) (bool, error)
	Provision(ctx context.Context, tenant string) ([]string, error)
}

type PoolsInterface interface {
	Client(ctx context.Context, database string) (db.DBClientInterface, error)
}

type FactoryInterface interface {
	CreateContext(ctx context.Context, tenant string, policy Policy) (*Handle, error)
}
