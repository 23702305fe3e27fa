// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package material

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package material -destination ./mock_material.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package material -destination ./mock_content.go -source=../../internal/content/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package material -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package material -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package material -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func expectSpan(tracer *MockTracingInterface, name string) {
	tracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func runInTx(store *MockStorageInterface) {
	store.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func intPtr(i int) *int {
	return &i
}

func TestServiceCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	in := types.NewMaterial("Safety", "", &types.PDFPayload{PageCount: 3})
	in.ID = "client-id"
	in.Version = 7
	in.CreatedAt = time.Unix(1, 0)

	expectSpan(mockTracer, "material.Service.Create")
	mockStore.EXPECT().CreateMaterial(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *types.Material) (*types.Material, error) {
			if m.ID != "" || m.Version != 0 || !m.CreatedAt.IsZero() {
				t.Errorf("server managed fields were not cleared: %+v", m)
			}
			out := *m
			out.ID = "m-1"
			out.Version = 1
			return &out, nil
		},
	)
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

	created, err := NewService(mockTracer, mockMonitor, mockLogger).Create(context.Background(), mockStore, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "m-1" || created.Kind != types.KindPDF {
		t.Fatalf("unexpected material %+v", created)
	}
}

func TestServiceCreateWithChildren(t *testing.T) {
	tests := []struct {
		name     string
		material *types.Material
		children []types.MaterialChild
		stored   bool
		err      error
	}{
		{
			name:     "workflow steps",
			material: &types.Material{Name: "Onboarding", Kind: types.KindWorkflow},
			children: []types.MaterialChild{
				types.WorkflowStep{Title: "Intro"},
				types.WorkflowStep{Title: "Setup"},
				types.WorkflowStep{Title: "Review"},
			},
			stored: true,
		},
		{
			name:     "child of another kind",
			material: &types.Material{Name: "Onboarding", Kind: types.KindWorkflow},
			children: []types.MaterialChild{types.ChecklistEntry{Text: "x"}},
			err:      types.ErrWrongKind,
		},
		{
			name:     "kind without children",
			material: &types.Material{Name: "Logo", Kind: types.KindImage},
			children: []types.MaterialChild{types.WorkflowStep{Title: "x"}},
			err:      types.ErrWrongKind,
		},
		{
			name:     "unknown kind",
			material: &types.Material{Name: "x", Kind: "hologram"},
			err:      types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			expectSpan(mockTracer, "material.Service.CreateWithChildren")
			if tt.stored {
				expectSpan(mockTracer, "material.Service.Create")
				mockStore.EXPECT().CreateMaterial(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.Material) (*types.Material, error) {
						out := *m
						out.ID = "m-1"
						return &out, nil
					},
				)
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			}

			created, err := NewService(mockTracer, mockMonitor, mockLogger).CreateWithChildren(context.Background(), mockStore, tt.material, tt.children)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if !tt.stored {
				return
			}

			wf, err := created.Workflow()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(wf.Steps) != 3 || wf.Steps[0].Title != "Intro" || wf.Steps[2].Title != "Review" {
				t.Fatalf("unexpected steps %+v", wf.Steps)
			}
		})
	}
}

func TestServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockTracer, mockMonitor, mockLogger)

	expectSpan(mockTracer, "material.Service.List")
	mockStore.EXPECT().ListMaterials(gomock.Any(), types.KindVideo).Return([]*types.Material{{ID: "v"}}, nil)

	materials, err := s.List(context.Background(), mockStore, types.KindVideo)
	if err != nil || len(materials) != 1 {
		t.Fatalf("unexpected result %v, %v", materials, err)
	}

	expectSpan(mockTracer, "material.Service.List")
	if _, err := s.List(context.Background(), mockStore, "hologram"); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestServiceUpdate(t *testing.T) {
	tests := []struct {
		name     string
		material *types.Material
		storeErr error
		err      error
	}{
		{
			name:     "success",
			material: &types.Material{ID: "m-1", Name: "n", Kind: types.KindDefault, Version: 1, Payload: &types.DefaultPayload{}},
		},
		{
			name:     "stale version",
			material: &types.Material{ID: "m-1", Name: "n", Kind: types.KindDefault, Version: 1, Payload: &types.DefaultPayload{}},
			storeErr: types.ErrConcurrencyConflict,
			err:      types.ErrConcurrencyConflict,
		},
		{
			name:     "missing id",
			material: &types.Material{Name: "n"},
			err:      types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			expectSpan(mockTracer, "material.Service.Update")
			if tt.material.ID != "" {
				mockStore.EXPECT().UpdateMaterial(gomock.Any(), tt.material).Return(tt.material, tt.storeErr)
			}

			_, err := NewService(mockTracer, mockMonitor, mockLogger).Update(context.Background(), mockStore, tt.material)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestServiceDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockTracer, mockMonitor, mockLogger)

	expectSpan(mockTracer, "material.Service.Delete")
	mockStore.EXPECT().DeleteMaterial(gomock.Any(), "m-1").Return(nil)
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())

	if err := s.Delete(context.Background(), mockStore, "m-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectSpan(mockTracer, "material.Service.Delete")
	mockStore.EXPECT().DeleteMaterial(gomock.Any(), "gone").Return(types.ErrNotFound)

	if err := s.Delete(context.Background(), mockStore, "gone"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceAssignToLearningPath(t *testing.T) {
	errTimeout := errors.New("lock timeout")

	tests := []struct {
		name       string
		relType    string
		order      *int
		setupMocks func(*MockStorageInterface)
		err        error
	}{
		{
			name:  "upsert with default type",
			order: intPtr(1),
			setupMocks: func(s *MockStorageInterface) {
				runInTx(s)
				gomock.InOrder(
					s.EXPECT().MaterialExists(gomock.Any(), "m-1").Return(true, nil),
					s.EXPECT().LockLearningPath(gomock.Any(), "p-1").Return(true, nil),
					s.EXPECT().UpsertRelationship(gomock.Any(), &types.MaterialRelationship{
						MaterialID:       "m-1",
						RelatedID:        "p-1",
						RelatedKind:      types.RelatedLearningPath,
						RelationshipType: types.RelationshipAssigned,
						DisplayOrder:     intPtr(1),
					}).Return(&types.MaterialRelationship{ID: "r-1"}, nil),
				)
			},
		},
		{
			name:    "missing material",
			relType: types.RelationshipContains,
			setupMocks: func(s *MockStorageInterface) {
				runInTx(s)
				s.EXPECT().MaterialExists(gomock.Any(), "m-1").Return(false, nil)
			},
			err: types.ErrNotFound,
		},
		{
			name:    "missing path",
			relType: types.RelationshipContains,
			setupMocks: func(s *MockStorageInterface) {
				runInTx(s)
				s.EXPECT().MaterialExists(gomock.Any(), "m-1").Return(true, nil)
				s.EXPECT().LockLearningPath(gomock.Any(), "p-1").Return(false, nil)
			},
			err: types.ErrNotFound,
		},
		{
			name:    "path lock fails",
			relType: types.RelationshipContains,
			setupMocks: func(s *MockStorageInterface) {
				runInTx(s)
				s.EXPECT().MaterialExists(gomock.Any(), "m-1").Return(true, nil)
				s.EXPECT().LockLearningPath(gomock.Any(), "p-1").Return(false, errTimeout)
			},
			err: errTimeout,
		},
		{
			name:       "negative order",
			order:      intPtr(-1),
			setupMocks: func(*MockStorageInterface) {},
			err:        types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			expectSpan(mockTracer, "material.Service.AssignToLearningPath")
			tt.setupMocks(mockStore)

			rel, err := NewService(mockTracer, mockMonitor, mockLogger).AssignToLearningPath(context.Background(), mockStore, "m-1", "p-1", tt.relType, tt.order)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if tt.err == nil && rel.ID != "r-1" {
				t.Fatalf("unexpected relationship %+v", rel)
			}
		})
	}
}

func TestServiceAssignToTrainingProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpan(mockTracer, "material.Service.AssignToTrainingProgram")
	runInTx(mockStore)
	mockStore.EXPECT().MaterialExists(gomock.Any(), "m-1").Return(true, nil)
	mockStore.EXPECT().LockTrainingProgram(gomock.Any(), "t-1").Return(true, nil)
	mockStore.EXPECT().UpsertRelationship(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.MaterialRelationship) (*types.MaterialRelationship, error) {
			if r.RelatedKind != types.RelatedTrainingProgram || r.RelationshipType != types.RelationshipContains {
				t.Errorf("unexpected ledger row %+v", r)
			}
			return r, nil
		},
	)

	_, err := NewService(mockTracer, mockMonitor, mockLogger).AssignToTrainingProgram(context.Background(), mockStore, "m-1", "t-1", types.RelationshipContains, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockTracer, mockMonitor, mockLogger)

	expectSpan(mockTracer, "material.Service.RemoveFromLearningPath")
	mockStore.EXPECT().DeleteRelationship(gomock.Any(), "m-1", types.RelatedLearningPath, "p-1").Return(nil)
	if err := s.RemoveFromLearningPath(context.Background(), mockStore, "m-1", "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectSpan(mockTracer, "material.Service.RemoveFromTrainingProgram")
	mockStore.EXPECT().DeleteRelationship(gomock.Any(), "m-1", types.RelatedTrainingProgram, "t-1").Return(types.ErrNotFound)
	if err := s.RemoveFromTrainingProgram(context.Background(), mockStore, "m-1", "t-1"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a stale removal, got %v", err)
	}
}

func TestServiceReorder(t *testing.T) {
	tests := []struct {
		name       string
		order      map[string]int
		setupMocks func(*MockStorageInterface)
		err        error
	}{
		{
			name:  "success",
			order: map[string]int{"m-1": 5},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LearningPathExists(gomock.Any(), "p-1").Return(true, nil)
				s.EXPECT().ReorderRelationships(gomock.Any(), types.RelatedLearningPath, "p-1", map[string]int{"m-1": 5}).Return(nil)
			},
		},
		{
			name:  "material not in path",
			order: map[string]int{"m-9": 1},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LearningPathExists(gomock.Any(), "p-1").Return(true, nil)
				s.EXPECT().ReorderRelationships(gomock.Any(), types.RelatedLearningPath, "p-1", gomock.Any()).Return(types.ErrNotFound)
			},
			err: types.ErrNotFound,
		},
		{
			name:  "unknown path",
			order: map[string]int{"m-1": 1},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LearningPathExists(gomock.Any(), "p-1").Return(false, nil)
			},
			err: types.ErrNotFound,
		},
		{
			name:       "empty order",
			order:      map[string]int{},
			setupMocks: func(*MockStorageInterface) {},
			err:        types.ErrInvalidArgument,
		},
		{
			name:       "negative position",
			order:      map[string]int{"m-1": -2},
			setupMocks: func(*MockStorageInterface) {},
			err:        types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			expectSpan(mockTracer, "material.Service.Reorder")
			tt.setupMocks(mockStore)

			err := NewService(mockTracer, mockMonitor, mockLogger).Reorder(context.Background(), mockStore, "p-1", tt.order)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestServiceRelationships(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockTracer, mockMonitor, mockLogger)

	expectSpan(mockTracer, "material.Service.Relationships")
	mockStore.EXPECT().MaterialExists(gomock.Any(), "m-1").Return(true, nil)
	mockStore.EXPECT().ListRelationshipsByMaterial(gomock.Any(), "m-1").Return([]*types.MaterialRelationship{
		{ID: "r-1", RelatedKind: types.RelatedLearningPath},
		{ID: "r-2", RelatedKind: types.RelatedTrainingProgram},
		{ID: "r-3", RelatedKind: types.RelatedLearningPath},
	}, nil)

	grouped, err := s.Relationships(context.Background(), mockStore, "m-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grouped[types.RelatedLearningPath]) != 2 || len(grouped[types.RelatedTrainingProgram]) != 1 {
		t.Fatalf("unexpected grouping %+v", grouped)
	}

	expectSpan(mockTracer, "material.Service.Relationships")
	mockStore.EXPECT().MaterialExists(gomock.Any(), "gone").Return(false, nil)
	if _, err := s.Relationships(context.Background(), mockStore, "gone"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
