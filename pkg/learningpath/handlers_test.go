// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package learningpath

import (
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

func TestAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockStore := NewMockStorageInterface(ctrl)

	api := NewAPI(mockSvc, tracing.NewNoopTracer(), logging.NewNoopLogger())
	api.store = func(*http.Request) (content.StorageInterface, error) { return mockStore, nil }

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	mockSvc.EXPECT().Create(gomock.Any(), mockStore, &types.LearningPath{Name: "Basics"}).Return(&types.LearningPath{ID: "p-1", Name: "Basics"}, nil)
	mockSvc.EXPECT().List(gomock.Any(), mockStore).Return([]*types.LearningPath{}, nil)
	mockSvc.EXPECT().Get(gomock.Any(), mockStore, "gone").Return(nil, types.ErrNotFound)
	mockSvc.EXPECT().Update(gomock.Any(), mockStore, &types.LearningPath{ID: "p-1", Name: "Advanced"}).Return(&types.LearningPath{ID: "p-1"}, nil)
	mockSvc.EXPECT().Delete(gomock.Any(), mockStore, "p-1").Return(nil)
	mockSvc.EXPECT().ListMaterials(gomock.Any(), mockStore, "p-1").Return([]*types.MaterialRelationship{}, nil)

	requests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPost, "/learning-paths", `{"name":"Basics"}`, http.StatusCreated},
		{http.MethodPost, "/learning-paths", `{"name":`, http.StatusBadRequest},
		{http.MethodGet, "/learning-paths", "", http.StatusOK},
		{http.MethodGet, "/learning-paths/gone", "", http.StatusNotFound},
		{http.MethodPut, "/learning-paths/p-1", `{"name":"Advanced"}`, http.StatusOK},
		{http.MethodDelete, "/learning-paths/p-1", "", http.StatusNoContent},
		{http.MethodGet, "/learning-paths/p-1/materials", "", http.StatusOK},
	}

	for _, r := range requests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(r.method, r.path, strings.NewReader(r.body)))

		if rec.Code != r.status {
			t.Fatalf("%s %s: expected %d, got %d", r.method, r.path, r.status, rec.Code)
		}
	}
}
