// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	httptypes "github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/http/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenancy"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type handleContextKey struct{}

func WithHandle(ctx context.Context, h *Handle) context.Context {
	return context.WithValue(ctx, handleContextKey{}, h)
}

func HandleFromContext(ctx context.Context) *Handle {
	if h, ok := ctx.Value(handleContextKey{}).(*Handle); ok {
		return h
	}
	return nil
}

// ClientFromRequest resolves the tenant database of a request for db.TransactionMiddleware.
func ClientFromRequest(r *http.Request) db.DBClientInterface {
	if h := HandleFromContext(r.Context()); h != nil {
		return h.DB()
	}
	return nil
}

// ContentFromRequest returns the tenant scoped storage attached by Middleware.
func ContentFromRequest(r *http.Request) (content.StorageInterface, error) {
	h := HandleFromContext(r.Context())
	if h == nil {
		return nil, fmt.Errorf("request carries no tenant data context: %w", types.ErrUnknownTenant)
	}
	return h.Content(), nil
}

func TenantFromRequest(r *http.Request) (*types.Tenant, error) {
	h := HandleFromContext(r.Context())
	if h == nil {
		return nil, fmt.Errorf("request carries no tenant data context: %w", types.ErrUnknownTenant)
	}
	return h.Tenant(), nil
}

// PolicyForMethod maps read requests to RequireExisting and everything else to ProvisionIfMissing.
func PolicyForMethod(method string) Policy {
	if method == http.MethodGet || method == http.MethodHead {
		return RequireExisting
	}
	return ProvisionIfMissing
}

type Middleware struct {
	factory FactoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(factory FactoryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		factory: factory,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware attaches a Handle for the tenant resolved earlier in the chain.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "tenantdb.Middleware.HTTPMiddleware")
		defer span.End()

		tenant, ok := tenancy.TenantFromContext(ctx)
		if !ok {
			tenant = tenancy.DefaultTenant
		}

		h, err := m.factory.CreateContext(ctx, tenant, PolicyForMethod(r.Method))
		if err != nil {
			m.logger.Debugf("no data context for tenant %s: %v", tenant, err)
			httptypes.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithHandle(ctx, h)))
	})
}
