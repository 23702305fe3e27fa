// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package asset

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

func newTestRouter(svc ServiceInterface, store content.StorageInterface) *chi.Mux {
	api := NewAPI(svc, 1<<20, tracing.NewNoopTracer(), logging.NewNoopLogger())
	api.store = func(*http.Request) (content.StorageInterface, error) { return store, nil }
	api.tenant = func(*http.Request) (*types.Tenant, error) { return acme, nil }

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux
}

func TestAPIUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockStore := NewMockStorageInterface(ctrl)

	mockSvc.EXPECT().Upload(gomock.Any(), mockStore, acme, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ content.StorageInterface, _ *types.Tenant, u *Upload) (*types.Asset, error) {
			data, _ := io.ReadAll(u.Content)
			if u.Filename != "clip.mp4" || u.Description != "intro" || string(data) != "frames" {
				t.Errorf("unexpected upload %+v with %q", u, data)
			}
			return &types.Asset{ID: "a-1", Filename: u.Filename}, nil
		},
	)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	_ = form.WriteField("description", "intro")
	part, _ := form.CreateFormFile("file", "clip.mp4")
	_, _ = part.Write([]byte("frames"))
	_ = form.Close()

	req := httptest.NewRequest(http.MethodPost, "/assets", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	newTestRouter(mockSvc, mockStore).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAPIUploadWithoutFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader("not multipart"))
	rec := httptest.NewRecorder()
	newTestRouter(NewMockServiceInterface(ctrl), NewMockStorageInterface(ctrl)).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAPIDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockStore := NewMockStorageInterface(ctrl)
	mux := newTestRouter(mockSvc, mockStore)

	mockSvc.EXPECT().Delete(gomock.Any(), mockStore, acme, "a-1", false).Return(types.ErrConstraintViolation)
	mockSvc.EXPECT().Delete(gomock.Any(), mockStore, acme, "a-1", true).Return(nil)

	requests := []struct {
		path   string
		status int
	}{
		{"/assets/a-1", http.StatusConflict},
		{"/assets/a-1?force=true", http.StatusNoContent},
		{"/assets/a-1?force=maybe", http.StatusBadRequest},
	}

	for _, r := range requests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, r.path, nil))

		if rec.Code != r.status {
			t.Fatalf("%s: expected %d, got %d", r.path, r.status, rec.Code)
		}
	}
}

func TestAPIRegisterAndRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockStore := NewMockStorageInterface(ctrl)
	mux := newTestRouter(mockSvc, mockStore)

	mockSvc.EXPECT().Register(gomock.Any(), mockStore, acme, &types.Asset{Source: "https://cdn.example.com/a.png"}).Return(&types.Asset{ID: "a-2"}, nil)
	mockSvc.EXPECT().List(gomock.Any(), mockStore).Return([]*types.Asset{{ID: "a-2"}}, nil)
	mockSvc.EXPECT().Get(gomock.Any(), mockStore, "gone").Return(nil, types.ErrNotFound)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/assets/register", strings.NewReader(`{"source":"https://cdn.example.com/a.png"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/gone", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
