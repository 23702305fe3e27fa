// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package learningpath

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package learningpath -destination ./mock_learningpath.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package learningpath -destination ./mock_content.go -source=../../internal/content/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package learningpath -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package learningpath -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package learningpath -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestServiceCreate(t *testing.T) {
	tests := []struct {
		name       string
		path       *types.LearningPath
		setupMocks func(*MockStorageInterface)
		err        error
	}{
		{
			name: "success",
			path: &types.LearningPath{Name: "Basics"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateLearningPath(gomock.Any(), &types.LearningPath{Name: "Basics"}).
					Return(&types.LearningPath{ID: "p-1", Name: "Basics"}, nil)
			},
		},
		{
			name:       "blank name",
			path:       &types.LearningPath{Name: " "},
			setupMocks: func(*MockStorageInterface) {},
			err:        types.ErrInvalidArgument,
		},
		{
			name:       "nil path",
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

			mockTracer.EXPECT().Start(gomock.Any(), "learningpath.Service.Create").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockStore)

			_, err := NewService(mockTracer, mockMonitor, mockLogger).Create(context.Background(), mockStore, tt.path)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestServiceUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "learningpath.Service.Update").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	mockStore.EXPECT().UpdateLearningPath(gomock.Any(), gomock.Any()).Return(nil, types.ErrNotFound)

	if _, err := s.Update(context.Background(), mockStore, &types.LearningPath{ID: "p-1", Name: "x"}); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Update(context.Background(), mockStore, &types.LearningPath{Name: "x"}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "learningpath.Service.Delete").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStore.EXPECT().DeleteLearningPath(gomock.Any(), "p-1").Return(nil)
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())

	if err := NewService(mockTracer, mockMonitor, mockLogger).Delete(context.Background(), mockStore, "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceListMaterials(t *testing.T) {
	order := 1
	rels := []*types.MaterialRelationship{
		{ID: "r-1", MaterialID: "m-1", DisplayOrder: &order},
		{ID: "r-2", MaterialID: "m-2"},
	}

	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   int
		err        error
	}{
		{
			name: "ordered rows",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LearningPathExists(gomock.Any(), "p-1").Return(true, nil)
				s.EXPECT().ListRelationshipsByRelated(gomock.Any(), types.RelatedLearningPath, "p-1").Return(rels, nil)
			},
			expected: 2,
		},
		{
			name: "unknown path",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LearningPathExists(gomock.Any(), "p-1").Return(false, nil)
			},
			err: types.ErrNotFound,
		},
		{
			name: "storage failure",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().LearningPathExists(gomock.Any(), "p-1").Return(false, errors.New("boom"))
			},
			err: errors.New("boom"),
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

			mockTracer.EXPECT().Start(gomock.Any(), "learningpath.Service.ListMaterials").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockStore)

			got, err := NewService(mockTracer, mockMonitor, mockLogger).ListMaterials(context.Background(), mockStore, "p-1")
			if tt.err != nil {
				if err == nil || (errors.Is(tt.err, types.ErrNotFound) && !errors.Is(err, types.ErrNotFound)) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil || len(got) != tt.expected {
				t.Fatalf("unexpected result %v, %v", got, err)
			}
		})
	}
}
