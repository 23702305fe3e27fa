// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenancy"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenantdb"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/asset"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/learningpath"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/material"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/metrics"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/status"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/tenant"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/trainingprogram"
)

// Services are the domain services the router exposes.
type Services struct {
	Tenants          tenant.ServiceInterface
	Materials        material.ServiceInterface
	LearningPaths    learningpath.ServiceInterface
	TrainingPrograms trainingprogram.ServiceInterface
	Assets           asset.ServiceInterface
}

type Config struct {
	// Prefix is the path segment the tenant identifier follows.
	Prefix        string
	MaxUploadSize int64
}

// NewRouter serves the administrative endpoints under /api/v0 and every tenant scoped
// endpoint under {prefix}/{tenant}. Tenant scoped requests carry a handle on the tenant
// database; writes run in one transaction on it.
func NewRouter(
	cfg Config,
	services Services,
	factory tenantdb.FactoryInterface,
	control db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(control, tracer, monitor, logger).RegisterEndpoints(router)
	tenant.NewAPI(services.Tenants, tracer, logger).RegisterEndpoints(router)

	prefix := normalizePrefix(cfg.Prefix)
	resolver := tenancy.NewResolver(prefix)

	router.Route(prefix+"/{tenant}", func(r chi.Router) {
		r.Use(
			tenancy.NewMiddleware(resolver, tracer, monitor, logger).HTTPMiddleware,
			tenantdb.NewMiddleware(factory, tracer, monitor, logger).HTTPMiddleware,
			db.TransactionMiddleware(tenantdb.ClientFromRequest, logger),
		)

		material.NewAPI(services.Materials, tracer, logger).RegisterEndpoints(r)
		learningpath.NewAPI(services.LearningPaths, tracer, logger).RegisterEndpoints(r)
		trainingprogram.NewAPI(services.TrainingPrograms, tracer, logger).RegisterEndpoints(r)
		asset.NewAPI(services.Assets, cfg.MaxUploadSize, tracer, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func normalizePrefix(prefix string) string {
	if prefix == "" {
		prefix = tenancy.DefaultPrefix
	}

	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return ""
	}
	return prefix
}
