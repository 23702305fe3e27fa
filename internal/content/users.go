// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/storage"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var userColumns = []string{"id", "login", "display_name", "email", "password_hash", "admin", "created_at"}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	if err := row.Scan(&u.ID, &u.Login, &u.DisplayName, &u.Email, &u.PasswordHash, &u.Admin, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser stores u. The password must already be hashed.
func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.CreateUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "login", "display_name", "email", "password_hash", "admin").
		Values(newID(), u.Login, u.DisplayName, u.Email, u.PasswordHash, u.Admin).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if storage.IsDuplicateKeyError(err) {
		return nil, storage.WrapDuplicateKeyError(err, fmt.Sprintf("login %q is taken", u.Login), types.ErrConstraintViolation)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return created, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.ListUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		OrderBy("login").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
