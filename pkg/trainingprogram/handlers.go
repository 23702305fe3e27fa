// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package trainingprogram

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
	mux.Get("/training-programs", a.list)
	mux.Post("/training-programs", a.create)
	mux.Get("/training-programs/{id}", a.get)
	mux.Put("/training-programs/{id}", a.update)
	mux.Delete("/training-programs/{id}", a.delete)
	mux.Get("/training-programs/{id}/materials", a.materials)
	mux.Get("/training-programs/{id}/learning-paths", a.learningPaths)
	mux.Put("/training-programs/{id}/learning-paths/{pathID}", a.addLearningPath)
	mux.Delete("/training-programs/{id}/learning-paths/{pathID}", a.removeLearningPath)
}

type createRequest struct {
	types.TrainingProgram
	Materials     []string `json:"materials"`
	LearningPaths []string `json:"learning_paths"`
}

type membershipRequest struct {
	DisplayOrder *int `json:"display_order"`
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "trainingprogram.API.list")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	programs, err := a.service.List(ctx, store)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, programs)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "trainingprogram.API.create")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.BadRequest(w, "invalid training program: "+err.Error())
		return
	}

	created, err := a.service.Create(ctx, store, &req.TrainingProgram, req.Materials, req.LearningPaths)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "trainingprogram.API.get")
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
	ctx, span := a.tracer.Start(r.Context(), "trainingprogram.API.update")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var p types.TrainingProgram
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httptypes.BadRequest(w, "invalid training program: "+err.Error())
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
	ctx, span := a.tracer.Start(r.Context(), "trainingprogram.API.delete")
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
	ctx, span := a.tracer.Start(r.Context(), "trainingprogram.API.materials")
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

func (a *API) learningPaths(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "trainingprogram.API.learningPaths")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	paths, err := a.service.ListLearningPaths(ctx, store, chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, paths)
}

func (a *API) addLearningPath(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "trainingprogram.API.addLearningPath")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var req membershipRequest
	if err := httptypes.DecodeOptional(r, &req); err != nil {
		httptypes.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	if err := a.service.AddLearningPath(ctx, store, chi.URLParam(r, "id"), chi.URLParam(r, "pathID"), req.DisplayOrder); err != nil {
		a.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) removeLearningPath(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "trainingprogram.API.removeLearningPath")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if err := a.service.RemoveLearningPath(ctx, store, chi.URLParam(r, "id"), chi.URLParam(r, "pathID")); err != nil {
		a.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) fail(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("training program request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}
