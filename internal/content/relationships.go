// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/storage"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var relationshipColumns = []string{
	"id",
	"material_id",
	"related_id",
	"related_kind",
	"relationship_type",
	"display_order",
	"created_at",
	"updated_at",
}

func scanRelationship(row sq.RowScanner) (*types.MaterialRelationship, error) {
	var (
		r    types.MaterialRelationship
		kind string
	)
	err := row.Scan(
		&r.ID,
		&r.MaterialID,
		&r.RelatedID,
		&kind,
		&r.RelationshipType,
		&r.DisplayOrder,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.RelatedKind = types.RelatedKind(kind)
	return &r, nil
}

// UpsertRelationship inserts the ledger row for the (material, related id, related kind)
// triple, or overwrites the type and order of the row already holding it.
func (s *Storage) UpsertRelationship(ctx context.Context, r *types.MaterialRelationship) (*types.MaterialRelationship, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.UpsertRelationship")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("material_relationships").
		Columns("id", "material_id", "related_id", "related_kind", "relationship_type", "display_order").
		Values(newID(), r.MaterialID, r.RelatedID, string(r.RelatedKind), r.RelationshipType, r.DisplayOrder).
		Suffix(
			"ON CONFLICT ON CONSTRAINT material_relationships_pair_key DO UPDATE SET " +
				"relationship_type = EXCLUDED.relationship_type, " +
				"display_order = EXCLUDED.display_order, " +
				"updated_at = NOW() " +
				"RETURNING " + strings.Join(relationshipColumns, ", "),
		).
		QueryRowContext(ctx)

	upserted, err := scanRelationship(row)
	switch {
	case err == nil:
		return upserted, nil
	case storage.IsDuplicateKeyError(err):
		return nil, storage.WrapDuplicateKeyError(err, fmt.Sprintf("material %s and %s %s", r.MaterialID, r.RelatedKind, r.RelatedID), types.ErrDuplicateRelationship)
	case storage.IsForeignKeyViolation(err):
		return nil, storage.WrapForeignKeyError(err, "material "+r.MaterialID, types.ErrNotFound)
	}
	return nil, fmt.Errorf("failed to upsert relationship: %w", err)
}

// DeleteRelationship removes exactly the row of the pair, or reports ErrNotFound when
// there was nothing to remove.
func (s *Storage) DeleteRelationship(ctx context.Context, materialID string, kind types.RelatedKind, relatedID string) error {
	ctx, span := s.tracer.Start(ctx, "content.Storage.DeleteRelationship")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("material_relationships").
		Where(sq.Eq{"material_id": materialID, "related_id": relatedID, "related_kind": string(kind)}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete relationship: %w", err)
	}

	return expectRows(result, fmt.Sprintf("material %s in %s %s", materialID, kind, relatedID))
}

func (s *Storage) ListRelationshipsByMaterial(ctx context.Context, materialID string) ([]*types.MaterialRelationship, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.ListRelationshipsByMaterial")
	defer span.End()

	return s.listRelationships(ctx, sq.Eq{"material_id": materialID}, "related_kind", "created_at", "id")
}

// ListRelationshipsByRelated is the reverse lookup, ordered by display order with unordered rows last.
func (s *Storage) ListRelationshipsByRelated(ctx context.Context, kind types.RelatedKind, relatedID string) ([]*types.MaterialRelationship, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.ListRelationshipsByRelated")
	defer span.End()

	return s.listRelationships(ctx,
		sq.Eq{"related_kind": string(kind), "related_id": relatedID},
		"display_order ASC NULLS LAST", "created_at", "id",
	)
}

func (s *Storage) listRelationships(ctx context.Context, where sq.Eq, orderBy ...string) ([]*types.MaterialRelationship, error) {
	rows, err := s.db.Statement(ctx).
		Select(relationshipColumns...).
		From("material_relationships").
		Where(where).
		OrderBy(orderBy...).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}
	defer rows.Close()

	rels := make([]*types.MaterialRelationship, 0)
	for rows.Next() {
		r, err := scanRelationship(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan relationship: %w", err)
		}
		rels = append(rels, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating relationship rows: %w", err)
	}
	return rels, nil
}

func (s *Storage) DeleteRelationshipsByRelated(ctx context.Context, kind types.RelatedKind, relatedID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.DeleteRelationshipsByRelated")
	defer span.End()

	return s.deleteRelationships(ctx, sq.Eq{"related_kind": string(kind), "related_id": relatedID})
}

func (s *Storage) DeleteRelationshipsByMaterial(ctx context.Context, materialID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.DeleteRelationshipsByMaterial")
	defer span.End()

	return s.deleteRelationships(ctx, sq.Eq{"material_id": materialID})
}

func (s *Storage) deleteRelationships(ctx context.Context, where sq.Eq) (int64, error) {
	result, err := s.db.Statement(ctx).
		Delete("material_relationships").
		Where(where).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete relationships: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// ReorderRelationships sets the display order of every listed material of one related
// entity. Nothing is written unless every listed material is assigned to it.
func (s *Storage) ReorderRelationships(ctx context.Context, kind types.RelatedKind, relatedID string, order map[string]int) error {
	ctx, span := s.tracer.Start(ctx, "content.Storage.ReorderRelationships")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		rows, err := s.db.Statement(ctx).
			Select("material_id").
			From("material_relationships").
			Where(sq.Eq{"related_kind": string(kind), "related_id": relatedID}).
			Suffix("FOR UPDATE").
			QueryContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to lock relationships: %w", err)
		}

		assigned := make(map[string]bool)
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan material id: %w", err)
			}
			assigned[id] = true
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(order))
		for id := range order {
			if !assigned[id] {
				return fmt.Errorf("material %s is not assigned to %s %s: %w", id, kind, relatedID, types.ErrNotFound)
			}
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			_, err := s.db.Statement(ctx).
				Update("material_relationships").
				Set("display_order", order[id]).
				Set("updated_at", sq.Expr("NOW()")).
				Where(sq.Eq{"material_id": id, "related_kind": string(kind), "related_id": relatedID}).
				ExecContext(ctx)
			if err != nil {
				return fmt.Errorf("failed to reorder material %s: %w", id, err)
			}
		}
		return nil
	})
}
