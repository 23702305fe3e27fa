// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

func newTestRouter(svc ServiceInterface) *chi.Mux {
	mux := chi.NewMux()
	NewAPI(svc, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func TestAPICreateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockSvc.EXPECT().CreateTenant(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tn *types.Tenant, owner *types.NewUser) (*types.Tenant, error) {
			if tn.Name != "acme" || tn.Directory != "acme-files" || owner == nil || owner.Login != "alice" {
				t.Errorf("unexpected request %+v %+v", tn, owner)
			}
			return tn, nil
		},
	)
	mockSvc.EXPECT().CreateTenant(gomock.Any(), gomock.Any(), nil).Return(nil, types.ErrDuplicateTenant)

	mux := newTestRouter(mockSvc)
	body := `{"name":"acme","storage_kind":"OwnCloud","directory":"acme-files","owner":{"login":"alice","password":"correct horse"}}`

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(`{"name":"acme"}`)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAPIUpdateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockSvc.EXPECT().UpdateTenant(gomock.Any(), gomock.Any(), []string{"description", "group"}).DoAndReturn(
		func(_ context.Context, tn *types.Tenant, _ []string) (*types.Tenant, error) {
			if tn.Name != "acme" || tn.Description != "robotics" || tn.Group != "eu" {
				t.Errorf("unexpected patch %+v", tn)
			}
			return tn, nil
		},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v0/tenants/acme", strings.NewReader(`{"name":"ignored","description":"robotics","group":"eu"}`))
	newTestRouter(mockSvc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAPIAdministration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockSvc.EXPECT().ListTenants(gomock.Any()).Return([]*types.Tenant{newAcme()}, nil)
	mockSvc.EXPECT().GetTenant(gomock.Any(), "ghost").Return(nil, types.ErrNotFound)
	mockSvc.EXPECT().DeleteTenant(gomock.Any(), "acme", false).Return(nil)
	mockSvc.EXPECT().DeleteTenant(gomock.Any(), "acme", true).Return(nil)
	mockSvc.EXPECT().RepairTenant(gomock.Any(), "acme").Return(nil, nil)
	mockSvc.EXPECT().RebuildTenant(gomock.Any(), "acme", false).Return(nil, types.ErrDataLossNotConfirmed)
	mockSvc.EXPECT().RebuildTenant(gomock.Any(), "acme", true).Return([]string{"users"}, nil)
	mockSvc.EXPECT().ListTenantTables(gomock.Any(), "acme").Return([]string{"users"}, nil)
	mockSvc.EXPECT().ListTenantUsers(gomock.Any(), "acme").Return([]*types.User{{Login: "alice"}}, nil)
	mockSvc.EXPECT().AddTenantUser(gomock.Any(), "acme", &types.NewUser{Login: "bob", Password: "hunter22"}).Return(&types.User{Login: "bob"}, nil)

	mux := newTestRouter(mockSvc)

	requests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/v0/tenants", "", http.StatusOK},
		{http.MethodGet, "/api/v0/tenants/ghost", "", http.StatusNotFound},
		{http.MethodDelete, "/api/v0/tenants/acme", "", http.StatusNoContent},
		{http.MethodDelete, "/api/v0/tenants/acme?completely=true", "", http.StatusNoContent},
		{http.MethodDelete, "/api/v0/tenants/acme?completely=yes", "", http.StatusBadRequest},
		{http.MethodPost, "/api/v0/tenants/acme/repair", "", http.StatusOK},
		{http.MethodPost, "/api/v0/tenants/acme/rebuild", "", http.StatusBadRequest},
		{http.MethodPost, "/api/v0/tenants/acme/rebuild?accept_data_loss=true", "", http.StatusOK},
		{http.MethodGet, "/api/v0/tenants/acme/tables", "", http.StatusOK},
		{http.MethodGet, "/api/v0/tenants/acme/users", "", http.StatusOK},
		{http.MethodPost, "/api/v0/tenants/acme/users", `{"login":"bob","password":"hunter22"}`, http.StatusCreated},
		{http.MethodPost, "/api/v0/tenants/acme/users", `{"login":`, http.StatusBadRequest},
	}

	for _, r := range requests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(r.method, r.path, strings.NewReader(r.body)))

		if rec.Code != r.status {
			t.Fatalf("%s %s: expected %d, got %d: %s", r.method, r.path, r.status, rec.Code, rec.Body.String())
		}
	}
}

func TestAPIRepairReportsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockSvc.EXPECT().RepairTenant(gomock.Any(), "acme").Return(nil, nil)

	rec := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v0/tenants/acme/repair", nil))

	var resp struct {
		Data map[string][]string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if tables, ok := resp.Data["created_tables"]; !ok || tables == nil {
		t.Fatalf("expected an empty created_tables list, got %v", resp.Data)
	}
}
