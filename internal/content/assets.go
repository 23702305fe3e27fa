// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/storage"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var assetColumns = []string{"id", "filename", "source", "description", "file_type", "tenant_name", "created_at"}

func scanAsset(row sq.RowScanner) (*types.Asset, error) {
	var a types.Asset
	if err := row.Scan(&a.ID, &a.Filename, &a.Source, &a.Description, &a.FileType, &a.TenantName, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAsset records an asset. An empty id gets a generated one.
func (s *Storage) CreateAsset(ctx context.Context, a *types.Asset) (*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.CreateAsset")
	defer span.End()

	id := a.ID
	if id == "" {
		id = newID()
	}

	row := s.db.Statement(ctx).
		Insert("assets").
		Columns("id", "filename", "source", "description", "file_type", "tenant_name").
		Values(id, a.Filename, a.Source, a.Description, a.FileType, a.TenantName).
		Suffix("RETURNING " + strings.Join(assetColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanAsset(row)
	if err != nil {
		return nil, mapWriteError("asset", err)
	}
	return created, nil
}

func (s *Storage) GetAsset(ctx context.Context, id string) (*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.GetAsset")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(assetColumns...).
		From("assets").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("asset %s: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return a, nil
}

func (s *Storage) ListAssets(ctx context.Context) ([]*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.ListAssets")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(assetColumns...).
		From("assets").
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*types.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}
	return assets, nil
}

// DeleteAsset deletes the asset row. The database refuses while a material references it.
func (s *Storage) DeleteAsset(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "content.Storage.DeleteAsset")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("assets").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if storage.IsForeignKeyViolation(err) {
		return storage.WrapForeignKeyError(err, "asset "+id+" is used by materials", types.ErrConstraintViolation)
	}
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return expectRows(result, "asset "+id)
}
