// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenancy"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

// databaseNameConstraint keeps two tenants whose names sanitize alike off one database.
const databaseNameConstraint = "tenants_database_name_key"

var tenantColumns = []string{
	"name",
	"database_name",
	"tenant_group",
	"description",
	"owner_name",
	"storage_kind",
	"s3_bucket_name",
	"s3_bucket_region",
	"s3_bucket_arn",
	"directory",
	"webdav_endpoint",
	"active",
	"created_at",
	"updated_at",
}

// updatableTenantColumns maps update mask paths to columns.
var updatableTenantColumns = map[string]string{
	"group":            "tenant_group",
	"description":      "description",
	"owner_name":       "owner_name",
	"storage_kind":     "storage_kind",
	"s3_bucket_name":   "s3_bucket_name",
	"s3_bucket_region": "s3_bucket_region",
	"s3_bucket_arn":    "s3_bucket_arn",
	"directory":        "directory",
	"webdav_endpoint":  "webdav_endpoint",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var (
		t           types.Tenant
		storageKind string
	)
	err := row.Scan(
		&t.Name,
		&t.DatabaseName,
		&t.Group,
		&t.Description,
		&t.OwnerName,
		&storageKind,
		&t.S3BucketName,
		&t.S3BucketRegion,
		&t.S3BucketARN,
		&t.Directory,
		&t.WebDAVEndpoint,
		&t.Active,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.StorageKind = types.StorageKind(storageKind)
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	databaseName := tenancy.DatabaseName(t.Name)

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns(tenantColumns[:12]...).
		Values(
			t.Name,
			databaseName,
			t.Group,
			t.Description,
			t.OwnerName,
			string(t.StorageKind),
			t.S3BucketName,
			t.S3BucketRegion,
			t.S3BucketARN,
			t.Directory,
			t.WebDAVEndpoint,
			true,
		).
		Suffix("RETURNING " + strings.Join(tenantColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		if ConstraintName(err) == databaseNameConstraint {
			return nil, WrapDuplicateKeyError(err, fmt.Sprintf("tenant %q maps to database %s of another tenant", t.Name, databaseName), types.ErrDuplicateTenant)
		}
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, fmt.Sprintf("tenant %q", t.Name), types.ErrDuplicateTenant)
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return created, nil
}

func (s *Storage) GetTenant(ctx context.Context, name string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenant")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"name": name}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tenant %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenant applies the fields named in paths. The result is validated before it is stored.
func (s *Storage) UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	var updated *types.Tenant
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		row := s.db.Statement(ctx).
			Select(tenantColumns...).
			From("tenants").
			Where(sq.Eq{"name": t.Name}).
			Suffix("FOR UPDATE").
			QueryRowContext(ctx)

		current, err := scanTenant(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("tenant %q: %w", t.Name, ErrNotFound)
			}
			return fmt.Errorf("failed to get tenant: %w", err)
		}

		set := make(map[string]interface{}, len(paths))
		for _, path := range paths {
			column, ok := updatableTenantColumns[path]
			if !ok {
				return fmt.Errorf("field %q cannot be updated: %w", path, types.ErrInvalidArgument)
			}
			set[column] = applyTenantField(current, t, path)
		}
		if len(set) == 0 {
			updated = current
			return nil
		}

		if err := current.Validate(); err != nil {
			return err
		}

		set["updated_at"] = sq.Expr("NOW()")
		row = s.db.Statement(ctx).
			Update("tenants").
			SetMap(set).
			Where(sq.Eq{"name": t.Name}).
			Suffix("RETURNING " + strings.Join(tenantColumns, ", ")).
			QueryRowContext(ctx)

		updated, err = scanTenant(row)
		if err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// applyTenantField copies the field behind path from src to dst and returns its column value.
func applyTenantField(dst, src *types.Tenant, path string) interface{} {
	switch path {
	case "group":
		dst.Group = src.Group
		return dst.Group
	case "description":
		dst.Description = src.Description
		return dst.Description
	case "owner_name":
		dst.OwnerName = src.OwnerName
		return dst.OwnerName
	case "storage_kind":
		dst.StorageKind = src.StorageKind
		return string(dst.StorageKind)
	case "s3_bucket_name":
		dst.S3BucketName = src.S3BucketName
		return dst.S3BucketName
	case "s3_bucket_region":
		dst.S3BucketRegion = src.S3BucketRegion
		return dst.S3BucketRegion
	case "s3_bucket_arn":
		dst.S3BucketARN = src.S3BucketARN
		return dst.S3BucketARN
	case "directory":
		dst.Directory = src.Directory
		return dst.Directory
	case "webdav_endpoint":
		dst.WebDAVEndpoint = src.WebDAVEndpoint
		return dst.WebDAVEndpoint
	}
	return nil
}

func (s *Storage) SetTenantActive(ctx context.Context, name string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantActive")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update("tenants").
		Set("active", active).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"name": name}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant status: %w", err)
	}

	return expectOneRow(result, name)
}

func (s *Storage) DeleteTenant(ctx context.Context, name string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"name": name}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	return expectOneRow(result, name)
}

func expectOneRow(result sql.Result, name string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("tenant %q: %w", name, ErrNotFound)
	}
	return nil
}
