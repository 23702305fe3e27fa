// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/storage"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

// Storage reads and writes the domain tables of one tenant database.
// It never selects a database itself: the client it is built on decides that.
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

// WithTx runs fn in one transaction of the tenant database, joining an enclosing one.
func (s *Storage) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return s.db.WithTx(ctx, fn)
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// mapWriteError translates constraint failures of a write into domain error kinds.
func mapWriteError(what string, err error) error {
	if storage.IsForeignKeyViolation(err) {
		return storage.WrapForeignKeyError(err, what+" references a missing row", types.ErrConstraintViolation)
	}
	if storage.IsDuplicateKeyError(err) {
		return storage.WrapDuplicateKeyError(err, what+" already exists", types.ErrConstraintViolation)
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

// lockShared reports whether the row exists and, inside a transaction, holds a share lock on
// it until commit. A concurrent delete of the row waits for that commit.
func (s *Storage) lockShared(ctx context.Context, table, id string) (bool, error) {
	var one int
	err := s.db.Statement(ctx).
		Select("1").
		From(table).
		Where("id = ?", id).
		Suffix("FOR SHARE").
		QueryRowContext(ctx).
		Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to lock %s %s: %w", table, id, err)
	}
	return true, nil
}

func expectRows(result sql.Result, what string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, types.ErrNotFound)
	}
	return nil
}

func (s *Storage) exists(ctx context.Context, table, id string) (bool, error) {
	var found bool
	err := s.db.Statement(ctx).
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where("id = ?", id).
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&found)
	if err != nil {
		return false, fmt.Errorf("failed to look up %s %s: %w", table, id, err)
	}
	return found, nil
}
