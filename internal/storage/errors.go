// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = types.ErrNotFound
	ErrForeignKeyViolation = types.ErrConstraintViolation
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeDuplicateDatabase   = "42P04"
	pgErrCodeDuplicateTable      = "42P07"
	pgErrCodeInvalidCatalogName  = "3D000"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}

// ConstraintName returns the constraint a PostgreSQL error names, if any.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// WrapDuplicateKeyError reports a unique violation as kind, with context.
// Any other error is returned unchanged.
func WrapDuplicateKeyError(err error, context string, kind error) error {
	if !IsDuplicateKeyError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, kind)
}

// WrapForeignKeyError reports a foreign key violation as kind, with context.
// Any other error is returned unchanged. A nil kind means ErrForeignKeyViolation.
func WrapForeignKeyError(err error, context string, kind error) error {
	if !IsForeignKeyViolation(err) {
		return err
	}
	if kind == nil {
		kind = ErrForeignKeyViolation
	}
	return fmt.Errorf("%s: %w", context, kind)
}

// IsDuplicateObjectError checks if the error reports a database or table that already exists.
func IsDuplicateObjectError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeDuplicateDatabase || pgErr.Code == pgErrCodeDuplicateTable
	}
	return false
}

// IsUnknownDatabaseError checks if the error reports a connection to a database that does not exist.
func IsUnknownDatabaseError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeInvalidCatalogName
	}
	return false
}
