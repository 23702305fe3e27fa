// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/storage"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenancy"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// Policy decides what CreateContext does when the tenant database is missing.
type Policy int

const (
	// RequireExisting fails with types.ErrUnknownTenant. Used by read paths.
	RequireExisting Policy = iota
	// ProvisionIfMissing provisions the database first. Used by write and admin paths.
	ProvisionIfMissing
)

func (p Policy) String() string {
	switch p {
	case RequireExisting:
		return "require-existing"
	case ProvisionIfMissing:
		return "provision-if-missing"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Handle is bound to one tenant database for one unit of work.
type Handle struct {
	tenant   *types.Tenant
	database string
	client   db.DBClientInterface
	content  *content.Storage
}

func (h *Handle) Tenant() *types.Tenant {
	return h.tenant
}

func (h *Handle) Database() string {
	return h.database
}

func (h *Handle) DB() db.DBClientInterface {
	return h.client
}

// Content is the tenant scoped domain storage.
func (h *Handle) Content() *content.Storage {
	return h.content
}

var _ FactoryInterface = (*Factory)(nil)

type Factory struct {
	registry    RegistryInterface
	provisioner ProvisionerInterface
	pools       PoolsInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewFactory(registry RegistryInterface, provisioner ProvisionerInterface, pools PoolsInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Factory {
	f := new(Factory)

	f.registry = registry
	f.provisioner = provisioner
	f.pools = pools

	f.tracer = tracer
	f.monitor = monitor
	f.logger = logger

	return f
}

// CreateContext returns a handle on the database of an active, registered tenant.
func (f *Factory) CreateContext(ctx context.Context, tenant string, policy Policy) (*Handle, error) {
	ctx, span := f.tracer.Start(ctx, "tenantdb.Factory.CreateContext")
	defer span.End()

	t, err := f.registry.GetTenant(ctx, tenant)
	if errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("tenant %q is not registered: %w", tenant, types.ErrUnknownTenant)
	}
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, fmt.Errorf("tenant %q is inactive: %w", tenant, types.ErrUnknownTenant)
	}

	exists, err := f.provisioner.DatabaseExists(ctx, tenant)
	if err != nil {
		return nil, err
	}

	if !exists {
		switch policy {
		case ProvisionIfMissing:
			if _, err := f.provisioner.Provision(ctx, tenant); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("tenant %q has no database: %w", tenant, types.ErrUnknownTenant)
		}
	}

	database := tenancy.DatabaseName(tenant)
	client, err := f.pools.Client(ctx, database)
	if storage.IsUnknownDatabaseError(err) {
		return nil, fmt.Errorf("tenant %q has no database: %w", tenant, types.ErrUnknownTenant)
	}
	if err != nil {
		return nil, err
	}

	return &Handle{
		tenant:   t,
		database: database,
		client:   client,
		content:  content.NewStorage(client, f.tracer, f.monitor, f.logger),
	}, nil
}

// OpenContent is CreateContext for callers that only need the tenant's content storage.
func (f *Factory) OpenContent(ctx context.Context, tenant string, policy Policy) (content.StorageInterface, error) {
	h, err := f.CreateContext(ctx, tenant, policy)
	if err != nil {
		return nil, err
	}
	return h.Content(), nil
}

// NewHandle binds an already open client to tenant.
func NewHandle(t *types.Tenant, client db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Handle {
	return &Handle{
		tenant:   t,
		database: tenancy.DatabaseName(t.Name),
		client:   client,
		content:  content.NewStorage(client, tracer, monitor, logger),
	}
}
