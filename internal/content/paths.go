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

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var learningPathColumns = []string{"id", "name", "description", "created_at", "updated_at"}

func scanLearningPath(row sq.RowScanner) (*types.LearningPath, error) {
	var p types.LearningPath
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CreateLearningPath(ctx context.Context, p *types.LearningPath) (*types.LearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.CreateLearningPath")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("learning_paths").
		Columns("id", "name", "description").
		Values(newID(), p.Name, p.Description).
		Suffix("RETURNING " + strings.Join(learningPathColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanLearningPath(row)
	if err != nil {
		return nil, mapWriteError("learning path", err)
	}
	return created, nil
}

func (s *Storage) GetLearningPath(ctx context.Context, id string) (*types.LearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.GetLearningPath")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(learningPathColumns...).
		From("learning_paths").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	p, err := scanLearningPath(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("learning path %s: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get learning path: %w", err)
	}
	return p, nil
}

func (s *Storage) ListLearningPaths(ctx context.Context) ([]*types.LearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.ListLearningPaths")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(learningPathColumns...).
		From("learning_paths").
		OrderBy("name", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list learning paths: %w", err)
	}
	defer rows.Close()

	paths := make([]*types.LearningPath, 0)
	for rows.Next() {
		p, err := scanLearningPath(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan learning path: %w", err)
		}
		paths = append(paths, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating learning path rows: %w", err)
	}
	return paths, nil
}

func (s *Storage) UpdateLearningPath(ctx context.Context, p *types.LearningPath) (*types.LearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.UpdateLearningPath")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("learning_paths").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(learningPathColumns, ", ")).
		QueryRowContext(ctx)

	updated, err := scanLearningPath(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("learning path %s: %w", p.ID, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update learning path: %w", err)
	}
	return updated, nil
}

// DeleteLearningPath removes the path with its ledger rows. Program memberships go by cascade.
func (s *Storage) DeleteLearningPath(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "content.Storage.DeleteLearningPath")
	defer span.End()

	// the row goes first: it waits out assignments holding a share lock on it, and the
	// ledger delete that follows then sees the rows they wrote
	return s.db.WithTx(ctx, func(ctx context.Context) error {
		result, err := s.db.Statement(ctx).
			Delete("learning_paths").
			Where(sq.Eq{"id": id}).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete learning path: %w", err)
		}
		if err := expectRows(result, "learning path "+id); err != nil {
			return err
		}

		_, err = s.DeleteRelationshipsByRelated(ctx, types.RelatedLearningPath, id)
		return err
	})
}

func (s *Storage) LearningPathExists(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.LearningPathExists")
	defer span.End()

	return s.exists(ctx, "learning_paths", id)
}

// LockLearningPath reports whether the path exists and share-locks its row until commit.
func (s *Storage) LockLearningPath(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.LockLearningPath")
	defer span.End()

	return s.lockShared(ctx, "learning_paths", id)
}
