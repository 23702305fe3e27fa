// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package material

import (
	"context"
	"encoding/json"
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
	api := NewAPI(svc, tracing.NewNoopTracer(), logging.NewNoopLogger())
	if store != nil {
		api.store = func(*http.Request) (content.StorageInterface, error) { return store, nil }
	}

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux
}

func TestAPICreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		status     int
	}{
		{
			name: "plain material",
			body: `{"name":"Logo","kind":"image","attributes":{"width":10,"height":20}}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ content.StorageInterface, m *types.Material) (*types.Material, error) {
						img, err := m.Image()
						if err != nil || img.Width != 10 {
							t.Errorf("unexpected payload %+v, %v", m.Payload, err)
						}
						m.ID = "m-1"
						return m, nil
					},
				)
			},
			status: http.StatusCreated,
		},
		{
			name: "workflow with children",
			body: `{"name":"Onboarding","kind":"workflow","children":[{"title":"Intro"},{"title":"Setup"},{"title":"Review"}]}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateWithChildren(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Len(3)).DoAndReturn(
					func(_ context.Context, _ content.StorageInterface, m *types.Material, _ []types.MaterialChild) (*types.Material, error) {
						m.ID = "m-2"
						return m, nil
					},
				)
			},
			status: http.StatusCreated,
		},
		{
			name:       "children on a kind without children",
			body:       `{"name":"Logo","kind":"image","children":[{"title":"x"}]}`,
			setupMocks: func(*MockServiceInterface) {},
			status:     http.StatusBadRequest,
		},
		{
			name:       "unknown kind",
			body:       `{"name":"x","kind":"hologram"}`,
			setupMocks: func(*MockServiceInterface) {},
			status:     http.StatusBadRequest,
		},
		{
			name: "missing asset",
			body: `{"name":"Clip","kind":"video","attributes":{"asset_id":"a-1"}}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, types.ErrNotFound)
			},
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/materials", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newTestRouter(mockSvc, NewMockStorageInterface(ctrl)).ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPIGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mux := newTestRouter(mockSvc, NewMockStorageInterface(ctrl))

	m := types.NewMaterial("Onboarding", "", &types.WorkflowPayload{Steps: []types.WorkflowStep{{Title: "Intro"}}})
	m.ID = "m-1"
	mockSvc.EXPECT().GetComplete(gomock.Any(), gomock.Any(), "m-1").Return(m, nil)
	mockSvc.EXPECT().GetComplete(gomock.Any(), gomock.Any(), "gone").Return(nil, types.ErrNotFound)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/materials/m-1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data struct {
			Kind       string `json:"kind"`
			Attributes struct {
				Steps []types.WorkflowStep `json:"steps"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Data.Kind != "workflow" || len(body.Data.Attributes.Steps) != 1 {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/materials/gone", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAPIList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mux := newTestRouter(mockSvc, NewMockStorageInterface(ctrl))

	mockSvc.EXPECT().List(gomock.Any(), gomock.Any(), types.KindMQTTTemplate).Return([]*types.Material{}, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/materials?kind=MQTT-Template", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/materials?kind=hologram", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAPIUpdateConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockSvc.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ content.StorageInterface, m *types.Material) (*types.Material, error) {
			if m.ID != "m-1" || m.Version != 3 {
				t.Errorf("unexpected material %+v", m)
			}
			return nil, types.ErrConcurrencyConflict
		},
	)

	body := `{"name":"Checks","kind":"checklist","version":3,"attributes":{"entries":[{"text":"a"}]}}`
	rec := httptest.NewRecorder()
	newTestRouter(mockSvc, NewMockStorageInterface(ctrl)).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/materials/m-1", strings.NewReader(body)))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAPIAssignments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mux := newTestRouter(mockSvc, NewMockStorageInterface(ctrl))

	mockSvc.EXPECT().AssignToLearningPath(gomock.Any(), gomock.Any(), "m-1", "p-1", "contains", intPtr(2)).
		Return(&types.MaterialRelationship{ID: "r-1"}, nil)
	mockSvc.EXPECT().AssignToTrainingProgram(gomock.Any(), gomock.Any(), "m-1", "t-1", "", nil).
		Return(&types.MaterialRelationship{ID: "r-2"}, nil)
	mockSvc.EXPECT().RemoveFromLearningPath(gomock.Any(), gomock.Any(), "m-1", "p-1").Return(nil)
	mockSvc.EXPECT().RemoveFromTrainingProgram(gomock.Any(), gomock.Any(), "m-1", "t-1").Return(types.ErrNotFound)
	mockSvc.EXPECT().Reorder(gomock.Any(), gomock.Any(), "p-1", map[string]int{"m-1": 5}).Return(nil)

	requests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPut, "/materials/m-1/learning-paths/p-1", `{"relationship_type":"contains","display_order":2}`, http.StatusOK},
		{http.MethodPut, "/materials/m-1/training-programs/t-1", "", http.StatusOK},
		{http.MethodDelete, "/materials/m-1/learning-paths/p-1", "", http.StatusNoContent},
		{http.MethodDelete, "/materials/m-1/training-programs/t-1", "", http.StatusNotFound},
		{http.MethodPut, "/learning-paths/p-1/material-order", `{"m-1":5}`, http.StatusNoContent},
	}

	for _, r := range requests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(r.method, r.path, strings.NewReader(r.body)))

		if rec.Code != r.status {
			t.Fatalf("%s %s: expected %d, got %d", r.method, r.path, r.status, rec.Code)
		}
	}
}

func TestAPIWithoutTenantContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	newTestRouter(NewMockServiceInterface(ctrl), nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/materials", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
