// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var materialColumns = []string{
	"id",
	"name",
	"description",
	"kind",
	"version",
	"created_at",
	"updated_at",
}

func scanMaterial(row sq.RowScanner) (*types.Material, error) {
	var (
		m    types.Material
		kind string
	)
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&kind,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Kind = types.MaterialKind(kind)
	return &m, nil
}

// CreateMaterial stores the common row, the attribute row and the children of m in one
// transaction. Timestamps and version are assigned by the database.
func (s *Storage) CreateMaterial(ctx context.Context, m *types.Material) (*types.Material, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.CreateMaterial")
	defer span.End()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	clearEmptyAssetRef(m.Payload)
	c, err := codecFor(m.Kind)
	if err != nil {
		return nil, err
	}

	var created *types.Material
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.checkAssetReference(ctx, m); err != nil {
			return err
		}

		row := s.db.Statement(ctx).
			Insert("materials").
			Columns("id", "name", "description", "kind").
			Values(newID(), m.Name, m.Description, string(m.Kind)).
			Suffix("RETURNING " + strings.Join(materialColumns, ", ")).
			QueryRowContext(ctx)

		created, err = scanMaterial(row)
		if err != nil {
			return mapWriteError("material", err)
		}
		created.Payload = m.Payload

		if err := s.saveAttributes(ctx, c, created.ID, created.Payload); err != nil {
			return err
		}
		return s.replaceChildren(ctx, c, created.ID, created.Payload)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetMaterial loads a material with its attributes and children, dispatching on its kind.
func (s *Storage) GetMaterial(ctx context.Context, id string) (*types.Material, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.GetMaterial")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(materialColumns...).
		From("materials").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	m, err := scanMaterial(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("material %s: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}

	if err := s.complete(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Storage) complete(ctx context.Context, m *types.Material) error {
	c, err := codecFor(m.Kind)
	if err != nil {
		return err
	}
	if m.Payload, err = types.NewPayload(m.Kind); err != nil {
		return err
	}
	if err := s.loadAttributes(ctx, c, m.ID, m.Payload); err != nil {
		return err
	}
	return s.loadChildren(ctx, c, m.ID, m.Payload)
}

// ListMaterials returns complete materials ordered by creation. An empty kind lists every kind.
func (s *Storage) ListMaterials(ctx context.Context, kind types.MaterialKind) ([]*types.Material, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.ListMaterials")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(materialColumns...).
		From("materials").
		OrderBy("created_at", "id")
	if kind != "" {
		q = q.Where(sq.Eq{"kind": string(kind)})
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	materials := make([]*types.Material, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("error iterating material rows: %w", err)
	}

	// the result set is drained first so a transaction bound connection is free again
	for _, m := range materials {
		if err := s.complete(ctx, m); err != nil {
			return nil, err
		}
	}
	return materials, nil
}

// UpdateMaterial overwrites the fields of m if its version is still current.
// The row lock serializes concurrent writers; the loser sees ErrConcurrencyConflict.
func (s *Storage) UpdateMaterial(ctx context.Context, m *types.Material) (*types.Material, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.UpdateMaterial")
	defer span.End()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	clearEmptyAssetRef(m.Payload)
	c, err := codecFor(m.Kind)
	if err != nil {
		return nil, err
	}

	var updated *types.Material
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		var (
			kind    string
			version int64
		)
		err := s.db.Statement(ctx).
			Select("kind", "version").
			From("materials").
			Where(sq.Eq{"id": m.ID}).
			Suffix("FOR UPDATE").
			QueryRowContext(ctx).
			Scan(&kind, &version)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("material %s: %w", m.ID, types.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to lock material: %w", err)
		}

		if types.MaterialKind(kind) != m.Kind {
			return fmt.Errorf("material %s is %q and cannot become %q: %w", m.ID, kind, m.Kind, types.ErrWrongKind)
		}
		if version != m.Version {
			return fmt.Errorf("material %s is at version %d, not %d: %w", m.ID, version, m.Version, types.ErrConcurrencyConflict)
		}

		if err := s.checkAssetReference(ctx, m); err != nil {
			return err
		}

		row := s.db.Statement(ctx).
			Update("materials").
			Set("name", m.Name).
			Set("description", m.Description).
			Set("version", sq.Expr("version + 1")).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": m.ID, "version": m.Version}).
			Suffix("RETURNING " + strings.Join(materialColumns, ", ")).
			QueryRowContext(ctx)

		updated, err = scanMaterial(row)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("material %s changed concurrently: %w", m.ID, types.ErrConcurrencyConflict)
		}
		if err != nil {
			return fmt.Errorf("failed to update material: %w", err)
		}

		if err := s.saveAttributes(ctx, c, m.ID, m.Payload); err != nil {
			return err
		}
		if err := s.replaceChildren(ctx, c, m.ID, m.Payload); err != nil {
			return err
		}
		return s.complete(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteMaterial detaches the material from the ledger, then deletes it with its owned rows.
// Referenced assets are left alone.
func (s *Storage) DeleteMaterial(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "content.Storage.DeleteMaterial")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.DeleteRelationshipsByMaterial(ctx, id); err != nil {
			return err
		}

		result, err := s.db.Statement(ctx).
			Delete("materials").
			Where(sq.Eq{"id": id}).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete material: %w", err)
		}
		return expectRows(result, "material "+id)
	})
}

func (s *Storage) MaterialExists(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.MaterialExists")
	defer span.End()

	return s.exists(ctx, "materials", id)
}

// MaterialIDsByAsset returns the materials whose attributes reference assetID, sorted.
func (s *Storage) MaterialIDsByAsset(ctx context.Context, assetID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.MaterialIDsByAsset")
	defer span.End()

	ids := make([]string, 0)
	for _, a := range assetTables() {
		rows, err := s.db.Statement(ctx).
			Select("material_id").
			From(a.table).
			Where(sq.Eq{a.assetColumn: assetID}).
			QueryContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s: %w", a.table, err)
		}

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan material id: %w", err)
			}
			ids = append(ids, id)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(ids)
	return ids, nil
}

// DetachAsset clears every attribute reference to assetID.
func (s *Storage) DetachAsset(ctx context.Context, assetID string) error {
	ctx, span := s.tracer.Start(ctx, "content.Storage.DetachAsset")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		for _, a := range assetTables() {
			_, err := s.db.Statement(ctx).
				Update(a.table).
				Set(a.assetColumn, nil).
				Where(sq.Eq{a.assetColumn: assetID}).
				ExecContext(ctx)
			if err != nil {
				return fmt.Errorf("failed to detach asset from %s: %w", a.table, err)
			}
		}
		return nil
	})
}

func (s *Storage) checkAssetReference(ctx context.Context, m *types.Material) error {
	assetID, ok := m.AssetID()
	if !ok {
		return nil
	}

	found, err := s.exists(ctx, "assets", assetID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("asset %s: %w", assetID, types.ErrNotFound)
	}
	return nil
}
