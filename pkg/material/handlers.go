// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package material

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

// RegisterEndpoints mounts the material routes on a tenant scoped router.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/materials", a.list)
	mux.Post("/materials", a.create)
	mux.Get("/materials/{id}", a.get)
	mux.Put("/materials/{id}", a.update)
	mux.Delete("/materials/{id}", a.delete)
	mux.Get("/materials/{id}/relationships", a.relationships)
	mux.Put("/materials/{id}/learning-paths/{pathID}", a.assignToLearningPath)
	mux.Delete("/materials/{id}/learning-paths/{pathID}", a.removeFromLearningPath)
	mux.Put("/materials/{id}/training-programs/{programID}", a.assignToTrainingProgram)
	mux.Delete("/materials/{id}/training-programs/{programID}", a.removeFromTrainingProgram)
	mux.Put("/learning-paths/{pathID}/material-order", a.reorder)
}

type createRequest struct {
	types.Material
	Children json.RawMessage
}

func (c *createRequest) UnmarshalJSON(data []byte) error {
	var extra struct {
		Children json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	c.Children = extra.Children
	return json.Unmarshal(data, &c.Material)
}

type assignRequest struct {
	RelationshipType string `json:"relationship_type"`
	DisplayOrder     *int   `json:"display_order"`
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.list")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var kind types.MaterialKind
	if q := r.URL.Query().Get("kind"); q != "" {
		if kind, err = types.ParseMaterialKind(q); err != nil {
			httptypes.WriteError(w, err)
			return
		}
	}

	materials, err := a.service.List(ctx, store, kind)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, materials)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.create")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.BadRequest(w, "invalid material: "+err.Error())
		return
	}

	var created *types.Material
	if len(req.Children) > 0 && string(req.Children) != "null" {
		children, err := types.DecodeChildren(req.Kind, req.Children)
		if err != nil {
			httptypes.WriteError(w, err)
			return
		}
		created, err = a.service.CreateWithChildren(ctx, store, &req.Material, children)
	} else {
		created, err = a.service.Create(ctx, store, &req.Material)
	}
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.get")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	m, err := a.service.GetComplete(ctx, store, chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, m)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.update")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var m types.Material
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		httptypes.BadRequest(w, "invalid material: "+err.Error())
		return
	}
	m.ID = chi.URLParam(r, "id")

	updated, err := a.service.Update(ctx, store, &m)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.delete")
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

func (a *API) relationships(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.relationships")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	grouped, err := a.service.Relationships(ctx, store, chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, grouped)
}

func (a *API) assignToLearningPath(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.assignToLearningPath")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var req assignRequest
	if err := httptypes.DecodeOptional(r, &req); err != nil {
		httptypes.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	rel, err := a.service.AssignToLearningPath(ctx, store, chi.URLParam(r, "id"), chi.URLParam(r, "pathID"), req.RelationshipType, req.DisplayOrder)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, rel)
}

func (a *API) assignToTrainingProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.assignToTrainingProgram")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var req assignRequest
	if err := httptypes.DecodeOptional(r, &req); err != nil {
		httptypes.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	rel, err := a.service.AssignToTrainingProgram(ctx, store, chi.URLParam(r, "id"), chi.URLParam(r, "programID"), req.RelationshipType, req.DisplayOrder)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, rel)
}

func (a *API) removeFromLearningPath(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.removeFromLearningPath")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if err := a.service.RemoveFromLearningPath(ctx, store, chi.URLParam(r, "id"), chi.URLParam(r, "pathID")); err != nil {
		a.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) removeFromTrainingProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.removeFromTrainingProgram")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if err := a.service.RemoveFromTrainingProgram(ctx, store, chi.URLParam(r, "id"), chi.URLParam(r, "programID")); err != nil {
		a.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) reorder(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "material.API.reorder")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var order map[string]int
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		httptypes.BadRequest(w, "expected an object of material id to position: "+err.Error())
		return
	}

	if err := a.service.Reorder(ctx, store, chi.URLParam(r, "pathID"), order); err != nil {
		a.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) fail(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("material request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}
