// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
)

// PoolsInterface hands out the connection pool of a tenant database.
type PoolsInterface interface {
	Client(ctx context.Context, database string) (db.DBClientInterface, error)
	Evict(database string)
}

type ProvisionerInterface interface {
	DatabaseExists(ctx context.Context, tenant string) (bool, error)
	EnsureDatabase(ctx context.Context, tenant string) (string, error)
	CreateAllTables(ctx context.Context, tenant string) ([]string, error)
	Provision(ctx context.Context, tenant string) ([]string, error)
	ListExistingTables(ctx context.Context, tenant string) ([]string, error)
	RebuildDatabase(ctx context.Context, tenant string, acceptDataLoss bool) ([]string, error)
	DropDatabase(ctx context.Context, tenant string) error
}
