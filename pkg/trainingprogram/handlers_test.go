// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package trainingprogram

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

	order := 3
	mockSvc.EXPECT().Create(gomock.Any(), mockStore, &types.TrainingProgram{Name: "Forklift"}, []string{"m-1"}, []string{"p-1", "p-2"}).
		Return(&types.TrainingProgram{ID: "t-1", Name: "Forklift"}, nil)
	mockSvc.EXPECT().Get(gomock.Any(), mockStore, "t-1").Return(&types.TrainingProgram{ID: "t-1"}, nil)
	mockSvc.EXPECT().Delete(gomock.Any(), mockStore, "gone").Return(types.ErrNotFound)
	mockSvc.EXPECT().AddLearningPath(gomock.Any(), mockStore, "t-1", "p-3", &order).Return(nil)
	mockSvc.EXPECT().RemoveLearningPath(gomock.Any(), mockStore, "t-1", "p-3").Return(nil)
	mockSvc.EXPECT().ListLearningPaths(gomock.Any(), mockStore, "t-1").Return([]*types.ProgramLearningPath{}, nil)
	mockSvc.EXPECT().ListMaterials(gomock.Any(), mockStore, "t-1").Return([]*types.MaterialRelationship{}, nil)

	requests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPost, "/training-programs", `{"name":"Forklift","materials":["m-1"],"learning_paths":["p-1","p-2"]}`, http.StatusCreated},
		{http.MethodGet, "/training-programs/t-1", "", http.StatusOK},
		{http.MethodDelete, "/training-programs/gone", "", http.StatusNotFound},
		{http.MethodPut, "/training-programs/t-1/learning-paths/p-3", `{"display_order":3}`, http.StatusNoContent},
		{http.MethodDelete, "/training-programs/t-1/learning-paths/p-3", "", http.StatusNoContent},
		{http.MethodGet, "/training-programs/t-1/learning-paths", "", http.StatusOK},
		{http.MethodGet, "/training-programs/t-1/materials", "", http.StatusOK},
	}

	for _, r := range requests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(r.method, r.path, strings.NewReader(r.body)))

		if rec.Code != r.status {
			t.Fatalf("%s %s: expected %d, got %d", r.method, r.path, r.status, rec.Code)
		}
	}
}
