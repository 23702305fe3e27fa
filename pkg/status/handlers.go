// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/http/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status    string `json:"status"`
	BuildInfo string `json:"buildInfo"`
}

type API struct {
	control PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(control PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.control = control

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/status/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok", BuildInfo: version.Version})
}

// ready reports whether the control database answers.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	labels := map[string]string{"component": "control-database"}
	if err := a.control.Ping(ctx); err != nil {
		a.logger.Errorf("control database is unreachable: %v", err)
		_ = a.monitor.SetDependencyAvailability(labels, 0)
		httptypes.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "unavailable", BuildInfo: version.Version})
		return
	}

	_ = a.monitor.SetDependencyAvailability(labels, 1)
	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok", BuildInfo: version.Version})
}
