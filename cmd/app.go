// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/config"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring/prometheus"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/objectstore"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/provisioning"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/storage"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenantdb"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/asset"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/learningpath"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/material"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/tenant"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/trainingprogram"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/web"
)

const serviceName = "training-asset-repository"

// app is the object graph shared by the server and the administrative commands.
type app struct {
	specs *config.EnvSpec

	logger  *logging.Logger
	monitor monitoring.MonitorInterface
	tracer  tracing.TracingInterface

	control     *db.DBClient
	pools       *tenantdb.Pools
	registry    *storage.Storage
	provisioner *provisioning.Provisioner
	factory     *tenantdb.Factory

	services web.Services
}

// loadSpecs reads the environment. A non empty dsn replaces the DSN variable.
func loadSpecs(dsn string) (*config.EnvSpec, error) {
	if dsn != "" {
		if err := os.Setenv("DSN", dsn); err != nil {
			return nil, err
		}
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}
	return specs, nil
}

func newApp(ctx context.Context, specs *config.EnvSpec) (*app, error) {
	a := new(app)
	a.specs = specs

	a.logger = logging.NewLogger(specs.LogLevel)
	a.monitor = prometheus.NewMonitor(serviceName, a.logger)
	a.tracer = tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, a.logger))

	control, err := db.NewDBClient(
		ctx,
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		a.tracer,
		a.monitor,
		a.logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}
	a.control = control

	template := specs.TenantDSNTemplate
	if template == "" {
		template = specs.DSN
	}
	a.pools = tenantdb.NewPools(
		tenantdb.PoolConfig{
			Template:        template,
			MaxConns:        specs.TenantDBMaxConns,
			MinConns:        specs.TenantDBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		a.tracer,
		a.monitor,
		a.logger,
	)

	a.registry = storage.NewStorage(a.control, a.tracer, a.monitor, a.logger)
	a.provisioner = provisioning.NewProvisioner(a.control, a.pools, a.tracer, a.monitor, a.logger)
	a.factory = tenantdb.NewFactory(a.registry, a.provisioner, a.pools, a.tracer, a.monitor, a.logger)

	files, err := a.objectStore()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.services = web.Services{
		Tenants:          tenant.NewService(a.registry, a.provisioner, a.factory, a.tracer, a.monitor, a.logger),
		Materials:        material.NewService(a.tracer, a.monitor, a.logger),
		LearningPaths:    learningpath.NewService(a.tracer, a.monitor, a.logger),
		TrainingPrograms: trainingprogram.NewService(a.tracer, a.monitor, a.logger),
		Assets:           asset.NewService(files, a.tracer, a.monitor, a.logger),
	}

	return a, nil
}

// objectStore serves S3 tenants only when an endpoint is configured. WebDAV tenants may
// bring their own endpoint, so that provider is always present.
func (a *app) objectStore() (*objectstore.Router, error) {
	var s3 objectstore.ProviderInterface
	if a.specs.S3Endpoint != "" {
		p, err := objectstore.NewS3Provider(
			objectstore.S3Config{
				Endpoint:      a.specs.S3Endpoint,
				AccessKey:     a.specs.S3AccessKey,
				SecretKey:     a.specs.S3SecretKey,
				UseSSL:        a.specs.S3UseSSL,
				DefaultRegion: a.specs.S3DefaultRegion,
			},
			a.tracer,
			a.monitor,
			a.logger,
		)
		if err != nil {
			return nil, err
		}
		s3 = p
	} else {
		a.logger.Info("no object storage endpoint configured, S3 tenants cannot store files")
	}

	webdav := objectstore.NewWebDAVProvider(
		objectstore.WebDAVConfig{
			Endpoint: a.specs.WebDAVEndpoint,
			Username: a.specs.WebDAVUsername,
			Password: a.specs.WebDAVPassword,
		},
		a.tracer,
		a.monitor,
		a.logger,
	)

	return objectstore.NewRouter(s3, webdav), nil
}

func (a *app) Close() {
	a.pools.Close()
	a.control.Close()
	_ = a.logger.Sync()
}
