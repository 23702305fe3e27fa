// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"golang.org/x/sync/singleflight"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/storage"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenancy"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var _ ProvisionerInterface = (*Provisioner)(nil)

// Provisioner creates, repairs and drops tenant databases.
//
// Work on one database is serialized twice: in process by a singleflight
// group, and across processes by a session advisory lock taken on the
// control database. Every failure is reported as a *types.ProvisioningError;
// partially created schemas are left in place and completed by a retry.
type Provisioner struct {
	control db.DBClientInterface
	pools   PoolsInterface

	group singleflight.Group

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewProvisioner(control db.DBClientInterface, pools PoolsInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Provisioner {
	p := new(Provisioner)

	p.control = control
	p.pools = pools

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

func (p *Provisioner) DatabaseExists(ctx context.Context, tenant string) (bool, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.DatabaseExists")
	defer span.End()

	var exists bool
	err := db.Retry(ctx, db.DefaultAttempts, func() error {
		return p.control.Statement(ctx).
			Select("1").
			Prefix("SELECT EXISTS (").
			From("pg_database").
			Where(sq.Eq{"datname": tenancy.DatabaseName(tenant)}).
			Suffix(")").
			QueryRowContext(ctx).
			Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to look up database of tenant %q: %w", tenant, err)
	}

	return exists, nil
}

// EnsureDatabase creates the tenant database when it is missing and returns its name.
func (p *Provisioner) EnsureDatabase(ctx context.Context, tenant string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.EnsureDatabase")
	defer span.End()

	name := tenancy.DatabaseName(tenant)
	err := p.withLock(ctx, name, func(conn *sql.Conn) error {
		return p.createDatabase(ctx, conn, name)
	})
	if err != nil {
		return "", types.NewProvisioningError(tenant, err)
	}

	return name, nil
}

// CreateAllTables creates the missing domain tables and returns the ones it created.
func (p *Provisioner) CreateAllTables(ctx context.Context, tenant string) ([]string, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.CreateAllTables")
	defer span.End()

	name := tenancy.DatabaseName(tenant)

	var created []string
	err := p.withLock(ctx, name, func(*sql.Conn) error {
		var err error
		created, err = p.createTables(ctx, name)
		return err
	})
	if err != nil {
		return created, types.NewProvisioningError(tenant, err)
	}

	return created, nil
}

// Provision makes sure the tenant database exists and carries every domain table.
// Concurrent calls for one tenant share a single execution.
func (p *Provisioner) Provision(ctx context.Context, tenant string) ([]string, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.Provision")
	defer span.End()

	name := tenancy.DatabaseName(tenant)

	v, err, _ := p.group.Do(name, func() (interface{}, error) {
		var created []string
		err := p.withLock(ctx, name, func(conn *sql.Conn) error {
			if err := p.createDatabase(ctx, conn, name); err != nil {
				return err
			}

			var err error
			created, err = p.createTables(ctx, name)
			return err
		})
		return created, err
	})

	created, _ := v.([]string)
	if err != nil {
		return created, types.NewProvisioningError(tenant, err)
	}

	if len(created) > 0 {
		p.logger.Infof("provisioned %s, created tables: %s", name, strings.Join(created, ", "))
	}

	return created, nil
}

func (p *Provisioner) ListExistingTables(ctx context.Context, tenant string) ([]string, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.ListExistingTables")
	defer span.End()

	exists, err := p.DatabaseExists(ctx, tenant)
	if err != nil {
		return nil, types.NewProvisioningError(tenant, err)
	}
	if !exists {
		return nil, fmt.Errorf("no database for tenant %q: %w", tenant, types.ErrUnknownTenant)
	}

	client, err := p.pools.Client(ctx, tenancy.DatabaseName(tenant))
	if err != nil {
		return nil, types.NewProvisioningError(tenant, err)
	}

	tables, err := listTables(ctx, client)
	if err != nil {
		return nil, types.NewProvisioningError(tenant, err)
	}

	return tables, nil
}

// RebuildDatabase drops every domain table, and all data in it, then recreates the schema.
// It refuses to run unless acceptDataLoss is set.
func (p *Provisioner) RebuildDatabase(ctx context.Context, tenant string, acceptDataLoss bool) ([]string, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.RebuildDatabase")
	defer span.End()

	if !acceptDataLoss {
		return nil, fmt.Errorf("rebuilding tenant %q deletes all of its data: %w", tenant, types.ErrDataLossNotConfirmed)
	}

	name := tenancy.DatabaseName(tenant)

	var created []string
	err := p.withLock(ctx, name, func(conn *sql.Conn) error {
		if err := p.createDatabase(ctx, conn, name); err != nil {
			return err
		}

		client, err := p.pools.Client(ctx, name)
		if err != nil {
			return err
		}

		if err := dropTables(ctx, client); err != nil {
			return err
		}

		created, err = p.createTables(ctx, name)
		return err
	})
	if err != nil {
		return created, types.NewProvisioningError(tenant, err)
	}

	p.logger.Warnf("rebuilt %s, all tenant data was dropped", name)

	return created, nil
}

// DropDatabase closes the tenant pool and drops the tenant database, terminating open sessions.
func (p *Provisioner) DropDatabase(ctx context.Context, tenant string) error {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.DropDatabase")
	defer span.End()

	name := tenancy.DatabaseName(tenant)
	p.pools.Evict(name)

	err := p.withLock(ctx, name, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, "DROP DATABASE IF EXISTS "+pq.QuoteIdentifier(name)+" WITH (FORCE)")
		return err
	})
	if err != nil {
		return types.NewProvisioningError(tenant, fmt.Errorf("failed to drop database %s: %w", name, err))
	}

	return nil
}

// withLock runs fn while holding the advisory lock of database on a dedicated control session.
func (p *Provisioner) withLock(ctx context.Context, database string, fn func(*sql.Conn) error) error {
	var conn *sql.Conn
	err := db.Retry(ctx, db.DefaultAttempts, func() error {
		var err error
		conn, err = p.control.Conn(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to reserve a control database session: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock(hashtext($1))", database); err != nil {
		return fmt.Errorf("failed to lock %s: %w", database, err)
	}
	defer func() {
		if _, err := conn.ExecContext(context.WithoutCancel(ctx), "SELECT pg_advisory_unlock(hashtext($1))", database); err != nil {
			p.logger.Errorf("failed to unlock %s: %v", database, err)
		}
	}()

	return fn(conn)
}

func (p *Provisioner) createDatabase(ctx context.Context, conn *sql.Conn, name string) error {
	return db.Retry(ctx, db.DefaultAttempts, func() error {
		var exists bool
		err := conn.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		_, err = conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name))
		if storage.IsDuplicateObjectError(err) || storage.IsDuplicateKeyError(err) {
			// created by a concurrent caller
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to create database %s: %w", name, err)
		}

		p.logger.Infof("created database %s", name)
		return nil
	})
}

func (p *Provisioner) createTables(ctx context.Context, database string) ([]string, error) {
	client, err := p.pools.Client(ctx, database)
	if err != nil {
		return nil, err
	}

	existing, err := listTables(ctx, client)
	if err != nil {
		return nil, err
	}

	conn, err := client.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	created := make([]string, 0)
	for _, table := range tenantSchema {
		if slices.Contains(existing, table.name) {
			continue
		}

		if _, err := conn.ExecContext(ctx, table.ddl); err != nil {
			return created, fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
		created = append(created, table.name)
	}

	for _, index := range tenantIndexes {
		if _, err := conn.ExecContext(ctx, index); err != nil {
			return created, fmt.Errorf("failed to create index: %w", err)
		}
	}

	return created, nil
}

func listTables(ctx context.Context, client db.DBClientInterface) ([]string, error) {
	rows, err := client.Statement(ctx).
		Select("table_name").
		From("information_schema.tables").
		Where(sq.Eq{"table_schema": "public", "table_type": "BASE TABLE"}).
		OrderBy("table_name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	tables := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

func dropTables(ctx context.Context, client db.DBClientInterface) error {
	names := TableNames()
	quoted := make([]string, 0, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		quoted = append(quoted, pq.QuoteIdentifier(names[i]))
	}

	conn, err := client.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+strings.Join(quoted, ", ")+" CASCADE"); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	return nil
}
