// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package asset

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	httptypes "github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/http/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenantdb"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

const DefaultMaxUploadSize = 512 << 20

type API struct {
	service       ServiceInterface
	maxUploadSize int64

	store  func(*http.Request) (content.StorageInterface, error)
	tenant func(*http.Request) (*types.Tenant, error)

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, maxUploadSize int64, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}

	return &API{
		service:       service,
		maxUploadSize: maxUploadSize,
		store:         tenantdb.ContentFromRequest,
		tenant:        tenantdb.TenantFromRequest,
		tracer:        tracer,
		logger:        logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/assets", a.list)
	mux.Post("/assets", a.upload)
	mux.Post("/assets/register", a.register)
	mux.Get("/assets/{id}", a.get)
	mux.Delete("/assets/{id}", a.delete)
}

func (a *API) scope(w http.ResponseWriter, r *http.Request) (content.StorageInterface, *types.Tenant, bool) {
	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return nil, nil, false
	}
	tenant, err := a.tenant(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return nil, nil, false
	}
	return store, tenant, true
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "asset.API.list")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	assets, err := a.service.List(ctx, store)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, assets)
}

// upload expects a multipart form with a "file" part and optional "description" and "file_type" fields.
func (a *API) upload(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "asset.API.upload")
	defer span.End()

	store, tenant, ok := a.scope(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		httptypes.BadRequest(w, "invalid upload: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		httptypes.BadRequest(w, "missing file part: "+err.Error())
		return
	}
	defer file.Close()

	created, err := a.service.Upload(ctx, store, tenant, &Upload{
		Filename:    header.Filename,
		Description: r.FormValue("description"),
		FileType:    r.FormValue("file_type"),
		Content:     file,
		Size:        header.Size,
	})
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "asset.API.register")
	defer span.End()

	store, tenant, ok := a.scope(w, r)
	if !ok {
		return
	}

	var asset types.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		httptypes.BadRequest(w, "invalid asset: "+err.Error())
		return
	}

	created, err := a.service.Register(ctx, store, tenant, &asset)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "asset.API.get")
	defer span.End()

	store, err := a.store(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	asset, err := a.service.Get(ctx, store, chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, asset)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "asset.API.delete")
	defer span.End()

	store, tenant, ok := a.scope(w, r)
	if !ok {
		return
	}

	force := false
	if v := r.URL.Query().Get("force"); v != "" {
		var err error
		if force, err = strconv.ParseBool(v); err != nil {
			httptypes.BadRequest(w, "force must be a boolean")
			return
		}
	}

	if err := a.service.Delete(ctx, store, tenant, chi.URLParam(r, "id"), force); err != nil {
		a.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) fail(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("asset request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}
