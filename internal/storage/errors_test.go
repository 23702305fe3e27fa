// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

func TestPgErrorHelpers(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}
	dupDB := &pgconn.PgError{Code: "42P04"}
	dupTable := &pgconn.PgError{Code: "42P07"}
	noDB := &pgconn.PgError{Code: "3D000"}
	plain := errors.New("boom")

	if !IsDuplicateKeyError(unique) || IsDuplicateKeyError(fk) || IsDuplicateKeyError(plain) {
		t.Fatal("IsDuplicateKeyError misclassified")
	}
	if !IsForeignKeyViolation(fk) || IsForeignKeyViolation(unique) {
		t.Fatal("IsForeignKeyViolation misclassified")
	}
	if !IsDuplicateObjectError(dupDB) || !IsDuplicateObjectError(dupTable) || IsDuplicateObjectError(unique) {
		t.Fatal("IsDuplicateObjectError misclassified")
	}
	if !IsUnknownDatabaseError(noDB) || IsUnknownDatabaseError(plain) {
		t.Fatal("IsUnknownDatabaseError misclassified")
	}

	if err := WrapForeignKeyError(fk, "asset in use", nil); !errors.Is(err, types.ErrConstraintViolation) {
		t.Fatalf("expected a constraint violation, got %v", err)
	}
	if err := WrapForeignKeyError(fk, "missing program", types.ErrNotFound); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := WrapDuplicateKeyError(unique, "dup", types.ErrDuplicateTenant); !errors.Is(err, types.ErrDuplicateTenant) {
		t.Fatalf("expected a duplicate tenant error, got %v", err)
	}
	if err := WrapDuplicateKeyError(plain, "dup", types.ErrDuplicateTenant); err != plain {
		t.Fatalf("expected the error to pass through, got %v", err)
	}
	if err := WrapForeignKeyError(unique, "fk", nil); err != unique {
		t.Fatalf("expected the error to pass through, got %v", err)
	}
}

func TestConstraintName(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "tenants_database_name_key"})

	if got := ConstraintName(err); got != "tenants_database_name_key" {
		t.Fatalf("expected the constraint name, got %q", got)
	}
	if got := ConstraintName(errors.New("boom")); got != "" {
		t.Fatalf("expected no constraint name, got %q", got)
	}
}
