// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
)

// DatabasePlaceholder is substituted with the tenant database name in a DSN template.
const DatabasePlaceholder = "{database}"

type PoolConfig struct {
	// Template is the connection string all tenant databases share.
	Template        string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// Pools keeps one connection pool per tenant database. Pools are never
// shared between databases, so two tenants never share a connection.
type Pools struct {
	cfg PoolConfig

	mu      sync.RWMutex
	clients map[string]*db.DBClient
	opening singleflight.Group

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewPools(cfg PoolConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Pools {
	p := new(Pools)

	p.cfg = cfg
	p.clients = make(map[string]*db.DBClient)

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

// Client returns the pool of database, opening it on first use.
func (p *Pools) Client(ctx context.Context, database string) (db.DBClientInterface, error) {
	ctx, span := p.tracer.Start(ctx, "tenantdb.Pools.Client")
	defer span.End()

	p.mu.RLock()
	client, ok := p.clients[database]
	p.mu.RUnlock()
	if ok {
		return client, nil
	}

	v, err, _ := p.opening.Do(database, func() (interface{}, error) {
		p.mu.RLock()
		client, ok := p.clients[database]
		p.mu.RUnlock()
		if ok {
			return client, nil
		}

		dsn, err := DSNForDatabase(p.cfg.Template, database)
		if err != nil {
			return nil, err
		}

		client, err = db.NewDBClient(
			ctx,
			db.Config{
				DSN:             dsn,
				MaxConns:        p.cfg.MaxConns,
				MinConns:        p.cfg.MinConns,
				MaxConnLifetime: p.cfg.MaxConnLifetime,
				MaxConnIdleTime: p.cfg.MaxConnIdleTime,
				TracingEnabled:  p.cfg.TracingEnabled,
			},
			p.tracer,
			p.monitor,
			p.logger,
		)
		if err != nil {
			p.setAvailability(database, 0)
			return nil, err
		}

		p.mu.Lock()
		p.clients[database] = client
		open := len(p.clients)
		p.mu.Unlock()

		p.setOpen(open)

		p.setAvailability(database, 1)
		p.logger.Debugf("opened pool for %s", database)

		return client, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open pool for %s: %w", database, err)
	}

	return v.(*db.DBClient), nil
}

// Evict closes the pool of database, if open.
func (p *Pools) Evict(database string) {
	p.mu.Lock()
	client, ok := p.clients[database]
	delete(p.clients, database)
	open := len(p.clients)
	p.mu.Unlock()

	p.setOpen(open)

	if ok {
		client.Close()
		p.setAvailability(database, 0)
	}
}

func (p *Pools) Close() {
	p.mu.Lock()
	clients := p.clients
	p.clients = make(map[string]*db.DBClient)
	p.mu.Unlock()

	for _, client := range clients {
		client.Close()
	}
	p.setOpen(0)
}

func (p *Pools) setOpen(n int) {
	if err := p.monitor.SetOpenTenantPools(float64(n)); err != nil {
		p.logger.Debugf("failed to set open tenant pools: %v", err)
	}
}

func (p *Pools) setAvailability(database string, value float64) {
	if err := p.monitor.SetDependencyAvailability(map[string]string{"component": database}, value); err != nil {
		p.logger.Debugf("failed to set availability of %s: %v", database, err)
	}
}

// DSNForDatabase points template at database. The template may carry an
// explicit placeholder, be a URL or be a keyword/value connection string.
func DSNForDatabase(template, database string) (string, error) {
	if template == "" {
		return "", fmt.Errorf("tenant connection template is empty")
	}

	if strings.Contains(template, DatabasePlaceholder) {
		return strings.ReplaceAll(template, DatabasePlaceholder, database), nil
	}

	if strings.HasPrefix(template, "postgres://") || strings.HasPrefix(template, "postgresql://") {
		u, err := url.Parse(template)
		if err != nil {
			return "", fmt.Errorf("invalid tenant connection template: %w", err)
		}
		u.Path = "/" + database
		u.RawPath = ""
		return u.String(), nil
	}

	// later keywords win in keyword/value strings
	return template + " dbname=" + database, nil
}
