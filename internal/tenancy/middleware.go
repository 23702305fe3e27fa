// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
)

type Middleware struct {
	resolver *Resolver

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(resolver *Resolver, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// HTTPMiddleware stores the tenant resolved from the request path in the request context.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "tenancy.Middleware.HTTPMiddleware")
		defer span.End()

		tenant := m.resolver.Resolve(r.URL.Path)
		span.SetAttributes(attribute.String("tenant", tenant))

		next.ServeHTTP(w, r.WithContext(WithTenant(ctx, tenant)))
	})
}
