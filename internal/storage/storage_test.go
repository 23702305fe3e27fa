// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/migrations"
)

// newTestStorage migrates the control database at TEST_POSTGRES_DSN and returns a registry on it.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set, skipping registry integration tests")
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	client, err := db.NewDBClient(context.Background(), db.Config{DSN: dsn, MaxConns: 4}, tracer, monitor, logger)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	provider, err := goose.NewProvider(goose.DialectPostgres, openSQL(t, dsn), migrations.EmbedMigrations)
	require.NoError(t, err)
	_, err = provider.Up(context.Background())
	require.NoError(t, err)

	_, err = client.Statement(context.Background()).Delete("tenants").Where("name ILIKE 'regtest-%'").ExecContext(context.Background())
	require.NoError(t, err)

	return NewStorage(client, tracer, monitor, logger)
}

func openSQL(t *testing.T, dsn string) *sql.DB {
	t.Helper()

	config, err := pgx.ParseConfig(dsn)
	require.NoError(t, err)

	sqlDB := stdlib.OpenDB(*config)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return sqlDB
}

func TestRegistryLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateTenant(ctx, &types.Tenant{
		Name:        "regtest-acme",
		Group:       "pilots",
		StorageKind: types.StorageKindOwnCloud,
		Directory:   "acme-files",
	})
	require.NoError(t, err)
	assert.Equal(t, "regtest-acme", created.Name)
	assert.True(t, created.Active)
	assert.False(t, created.CreatedAt.IsZero())

	assert.Equal(t, "tenant_regtest_acme", created.DatabaseName)

	_, err = s.CreateTenant(ctx, &types.Tenant{Name: "regtest-acme", StorageKind: types.StorageKindOwnCloud, Directory: "x"})
	assert.ErrorIs(t, err, types.ErrDuplicateTenant)

	got, err := s.GetTenant(ctx, "regtest-acme")
	require.NoError(t, err)
	assert.Equal(t, "acme-files", got.Directory)
	assert.Equal(t, types.StorageKindOwnCloud, got.StorageKind)

	updated, err := s.UpdateTenant(ctx, &types.Tenant{Name: "regtest-acme", Description: "Acme Corp"}, []string{"description"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Description)
	assert.Equal(t, "acme-files", updated.Directory)

	_, err = s.UpdateTenant(ctx, &types.Tenant{Name: "regtest-acme"}, []string{"directory"})
	assert.ErrorIs(t, err, types.ErrInvalidArgument, "clearing the directory of an OwnCloud tenant is invalid")

	_, err = s.UpdateTenant(ctx, &types.Tenant{Name: "regtest-acme"}, []string{"name"})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	require.NoError(t, s.SetTenantActive(ctx, "regtest-acme", false))
	got, err = s.GetTenant(ctx, "regtest-acme")
	require.NoError(t, err)
	assert.False(t, got.Active)

	tenants, err := s.ListTenants(ctx)
	require.NoError(t, err)
	assert.Contains(t, tenantNames(tenants), "regtest-acme")

	require.NoError(t, s.DeleteTenant(ctx, "regtest-acme"))
	assert.ErrorIs(t, s.DeleteTenant(ctx, "regtest-acme"), types.ErrNotFound)

	_, err = s.GetTenant(ctx, "regtest-acme")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, s.SetTenantActive(ctx, "regtest-acme", true), types.ErrNotFound)
}

func TestRegistryRejectsSharedDatabaseName(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.CreateTenant(ctx, &types.Tenant{Name: "regtest-a-b", StorageKind: types.StorageKindOwnCloud, Directory: "ab"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.DeleteTenant(context.Background(), "regtest-a-b") })

	for _, name := range []string{"regtest-a_b", "regtest-a.b", "Regtest-A-B"} {
		_, err := s.CreateTenant(ctx, &types.Tenant{Name: name, StorageKind: types.StorageKindOwnCloud, Directory: "other"})
		assert.ErrorIs(t, err, types.ErrDuplicateTenant, "%s maps to tenant_regtest_a_b", name)

		_, err = s.GetTenant(ctx, name)
		assert.ErrorIs(t, err, types.ErrNotFound, "%s must not be registered", name)
	}
}

func tenantNames(tenants []*types.Tenant) []string {
	names := make([]string, 0, len(tenants))
	for _, t := range tenants {
		names = append(names, t.Name)
	}
	return names
}
