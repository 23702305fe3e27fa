// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package trainingprogram

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package trainingprogram -destination ./mock_trainingprogram.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package trainingprogram -destination ./mock_content.go -source=../../internal/content/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package trainingprogram -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package trainingprogram -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package trainingprogram -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestServiceCreate(t *testing.T) {
	program := &types.TrainingProgram{Name: "Forklift", UseCase: "logistics"}

	tests := []struct {
		name       string
		program    *types.TrainingProgram
		materials  []string
		paths      []string
		setupMocks func(*MockStorageInterface)
		err        error
	}{
		{
			name:      "with initial members",
			program:   program,
			materials: []string{"m-1", "m-2"},
			paths:     []string{"p-1"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateTrainingProgram(gomock.Any(), program).Return(&types.TrainingProgram{ID: "t-1", Name: "Forklift"}, nil)
				s.EXPECT().MaterialExists(gomock.Any(), "m-1").Return(true, nil)
				s.EXPECT().MaterialExists(gomock.Any(), "m-2").Return(true, nil)
				s.EXPECT().UpsertRelationship(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.MaterialRelationship) (*types.MaterialRelationship, error) {
						if r.RelatedID != "t-1" || r.RelatedKind != types.RelatedTrainingProgram || r.DisplayOrder == nil {
							t.Errorf("unexpected ledger row %+v", r)
						}
						return r, nil
					},
				).Times(2)
				s.EXPECT().AddProgramLearningPath(gomock.Any(), "t-1", "p-1", gomock.Any()).Return(nil)
			},
		},
		{
			name:      "unknown material rolls back",
			program:   program,
			materials: []string{"gone"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateTrainingProgram(gomock.Any(), program).Return(&types.TrainingProgram{ID: "t-1"}, nil)
				s.EXPECT().MaterialExists(gomock.Any(), "gone").Return(false, nil)
			},
			err: types.ErrNotFound,
		},
		{
			name:    "unknown learning path",
			program: program,
			paths:   []string{"gone"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateTrainingProgram(gomock.Any(), program).Return(&types.TrainingProgram{ID: "t-1"}, nil)
				s.EXPECT().AddProgramLearningPath(gomock.Any(), "t-1", "gone", gomock.Any()).Return(types.ErrNotFound)
			},
			err: types.ErrNotFound,
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

			mockTracer.EXPECT().Start(gomock.Any(), "trainingprogram.Service.Create").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStore.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				},
			)
			tt.setupMocks(mockStore)

			created, err := NewService(mockTracer, mockMonitor, mockLogger).Create(context.Background(), mockStore, tt.program, tt.materials, tt.paths)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if tt.err == nil && created.ID != "t-1" {
				t.Fatalf("unexpected program %+v", created)
			}
		})
	}
}

func TestServiceCreateRequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), "trainingprogram.Service.Create").Return(context.Background(), trace.SpanFromContext(context.Background()))

	s := NewService(mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))
	if _, err := s.Create(context.Background(), NewMockStorageInterface(ctrl), &types.TrainingProgram{}, nil, nil); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestServiceLearningPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockTracer, mockMonitor, mockLogger)
	order := 2

	mockTracer.EXPECT().Start(gomock.Any(), "trainingprogram.Service.AddLearningPath").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	mockStore.EXPECT().AddProgramLearningPath(gomock.Any(), "t-1", "p-1", &order).Return(nil)

	if err := s.AddLearningPath(context.Background(), mockStore, "t-1", "p-1", &order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	negative := -1
	if err := s.AddLearningPath(context.Background(), mockStore, "t-1", "p-1", &negative); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	mockTracer.EXPECT().Start(gomock.Any(), "trainingprogram.Service.RemoveLearningPath").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStore.EXPECT().RemoveProgramLearningPath(gomock.Any(), "t-1", "p-1").Return(types.ErrNotFound)

	if err := s.RemoveLearningPath(context.Background(), mockStore, "t-1", "p-1"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	mockTracer.EXPECT().Start(gomock.Any(), "trainingprogram.Service.ListLearningPaths").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStore.EXPECT().TrainingProgramExists(gomock.Any(), "t-1").Return(true, nil)
	mockStore.EXPECT().ListProgramLearningPaths(gomock.Any(), "t-1").Return([]*types.ProgramLearningPath{
		{LearningPath: types.LearningPath{ID: "p-1"}, DisplayOrder: &order},
	}, nil)

	paths, err := s.ListLearningPaths(context.Background(), mockStore, "t-1")
	if err != nil || len(paths) != 1 {
		t.Fatalf("unexpected result %v, %v", paths, err)
	}
}

func TestServiceListMaterials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "trainingprogram.Service.ListMaterials").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	mockStore.EXPECT().TrainingProgramExists(gomock.Any(), "t-1").Return(true, nil)
	mockStore.EXPECT().ListRelationshipsByRelated(gomock.Any(), types.RelatedTrainingProgram, "t-1").Return([]*types.MaterialRelationship{{ID: "r-1"}}, nil)
	mockStore.EXPECT().TrainingProgramExists(gomock.Any(), "gone").Return(false, nil)

	if rels, err := s.ListMaterials(context.Background(), mockStore, "t-1"); err != nil || len(rels) != 1 {
		t.Fatalf("unexpected result %v, %v", rels, err)
	}
	if _, err := s.ListMaterials(context.Background(), mockStore, "gone"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "trainingprogram.Service.Delete").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStore.EXPECT().DeleteTrainingProgram(gomock.Any(), "t-1").Return(nil)
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())

	if err := NewService(mockTracer, mockMonitor, mockLogger).Delete(context.Background(), mockStore, "t-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
