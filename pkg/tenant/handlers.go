// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httptypes "github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/http/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// API is the administrative surface over the tenant registry.
type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/tenants", a.list)
	mux.Post("/api/v0/tenants", a.create)
	mux.Get("/api/v0/tenants/{name}", a.get)
	mux.Patch("/api/v0/tenants/{name}", a.update)
	mux.Delete("/api/v0/tenants/{name}", a.delete)
	mux.Post("/api/v0/tenants/{name}/repair", a.repair)
	mux.Post("/api/v0/tenants/{name}/rebuild", a.rebuild)
	mux.Get("/api/v0/tenants/{name}/tables", a.tables)
	mux.Get("/api/v0/tenants/{name}/users", a.users)
	mux.Post("/api/v0/tenants/{name}/users", a.addUser)
}

type createRequest struct {
	types.Tenant
	Owner *types.NewUser `json:"owner,omitempty"`
}

func actor(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return r.RemoteAddr + " (" + id + ")"
	}
	return r.RemoteAddr
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.list")
	defer span.End()

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, tenants)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.create")
	defer span.End()

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.BadRequest(w, "invalid tenant: "+err.Error())
		return
	}

	created, err := a.service.CreateTenant(WithActor(ctx, actor(r)), &req.Tenant, req.Owner)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.get")
	defer span.End()

	t, err := a.service.GetTenant(ctx, chi.URLParam(r, "name"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, t)
}

// update changes exactly the fields present in the body.
func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.update")
	defer span.End()

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		httptypes.BadRequest(w, "invalid tenant: "+err.Error())
		return
	}
	delete(fields, "name")

	raw, _ := json.Marshal(fields)
	var t types.Tenant
	if err := json.Unmarshal(raw, &t); err != nil {
		httptypes.BadRequest(w, "invalid tenant: "+err.Error())
		return
	}
	t.Name = chi.URLParam(r, "name")

	paths := make([]string, 0, len(fields))
	for k := range fields {
		paths = append(paths, k)
	}
	sort.Strings(paths)

	updated, err := a.service.UpdateTenant(WithActor(ctx, actor(r)), &t, paths)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.delete")
	defer span.End()

	completely, ok := a.boolQuery(w, r, "completely")
	if !ok {
		return
	}

	if err := a.service.DeleteTenant(WithActor(ctx, actor(r)), chi.URLParam(r, "name"), completely); err != nil {
		a.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) repair(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.repair")
	defer span.End()

	created, err := a.service.RepairTenant(WithActor(ctx, actor(r)), chi.URLParam(r, "name"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string][]string{"created_tables": nonNil(created)})
}

func (a *API) rebuild(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.rebuild")
	defer span.End()

	accept, ok := a.boolQuery(w, r, "accept_data_loss")
	if !ok {
		return
	}

	created, err := a.service.RebuildTenant(WithActor(ctx, actor(r)), chi.URLParam(r, "name"), accept)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string][]string{"created_tables": nonNil(created)})
}

func (a *API) tables(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.tables")
	defer span.End()

	tables, err := a.service.ListTenantTables(ctx, chi.URLParam(r, "name"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nonNil(tables))
}

func (a *API) users(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.users")
	defer span.End()

	users, err := a.service.ListTenantUsers(ctx, chi.URLParam(r, "name"))
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, users)
}

func (a *API) addUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.addUser")
	defer span.End()

	var u types.NewUser
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		httptypes.BadRequest(w, "invalid user: "+err.Error())
		return
	}

	created, err := a.service.AddTenantUser(WithActor(ctx, actor(r)), chi.URLParam(r, "name"), &u)
	if err != nil {
		a.fail(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) boolQuery(w http.ResponseWriter, r *http.Request, key string) (bool, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return false, true
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		httptypes.BadRequest(w, key+" must be a boolean")
		return false, false
	}
	return b, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (a *API) fail(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("tenant request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}
