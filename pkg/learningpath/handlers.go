// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package learningpath

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	httptypes "github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/http/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenantdb"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type API struct {
	service ServiceInterface
	store   func(*http.Request) (content.StorageInterface, error)

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		store:   tenantdb.ContentFromRequest,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/learning-paths", a.list)
	mux.Post("/learning-paths", a.create)
	mux.Get("/learning-paths/{id}", a.get)
	mux.Put("/learning-paths/{id}", a.update)
	mux.Delete("/learning-paths/{id}", a.delete)
	mux.Get("/learning-paths/{id}/materials", a.materials)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "learningpath.API.list")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	paths, err := a.service.List(ctx, store)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, paths)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "learningpath.API.create")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var p types.LearningPath
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httptypes.BadRequest(w, "invalid learning path: "+err.Error())
		return
	}

	created, err := a.service.Create(ctx, store, &p)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "learningpath.API.get")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	p, err := a.service.Get(ctx, store, chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, p)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "learningpath.API.update")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var p types.LearningPath
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httptypes.BadRequest(w, "invalid learning path: "+err.Error())
		return
	}
	p.ID = chi.URLParam(r, "id")

	updated, err := a.service.Update(ctx, store, &p)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "learningpath.API.delete")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if err := a.service.Delete(ctx, store, chi.URLParam(r, "id")); err != nil {
		a.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) materials(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "learningpath.API.materials")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	rels, err := a.service.ListMaterials(ctx, store, chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, rels)
}

func (a *API) fail(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("learning path request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}
