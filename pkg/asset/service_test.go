// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package asset

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/objectstore"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package asset -destination ./mock_asset.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package asset -destination ./mock_content.go -source=../../internal/content/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package asset -destination ./mock_objectstore.go -source=../../internal/objectstore/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package asset -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package asset -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package asset -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var acme = &types.Tenant{Name: "acme", StorageKind: types.StorageKindOwnCloud, Directory: "acme-files", Active: true}

type mocks struct {
	store    *MockStorageInterface
	provider *MockProviderInterface
	tracer   *MockTracingInterface
	logger   *MockLoggerInterface
	monitor  *MockMonitorInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	return &mocks{
		store:    NewMockStorageInterface(ctrl),
		provider: NewMockProviderInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
	}
}

func (m *mocks) service() *Service {
	return NewService(m.provider, m.tracer, m.monitor, m.logger)
}

func (m *mocks) span(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func (m *mocks) inTx() {
	m.store.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestServiceUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.span("asset.Service.Upload")

	m.provider.EXPECT().UploadFile(gomock.Any(), acme, "manual.PDF", gomock.Any(), int64(4)).Return("acme-files/k-manual.PDF", nil)
	m.store.EXPECT().CreateAsset(gomock.Any(), &types.Asset{
		Filename:    "manual.PDF",
		Source:      "acme-files/k-manual.PDF",
		Description: "operator manual",
		FileType:    "pdf",
		TenantName:  "acme",
	}).Return(&types.Asset{ID: "a-1"}, nil)
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

	created, err := m.service().Upload(context.Background(), m.store, acme, &Upload{
		Filename:    "manual.PDF",
		Description: "operator manual",
		Content:     strings.NewReader("%PDF"),
		Size:        4,
	})
	if err != nil || created.ID != "a-1" {
		t.Fatalf("unexpected result %+v, %v", created, err)
	}
}

func TestServiceUploadRemovesFileWhenRecordFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.span("asset.Service.Upload")

	m.provider.EXPECT().UploadFile(gomock.Any(), acme, "clip.mp4", gomock.Any(), int64(0)).Return("acme-files/k-clip.mp4", nil)
	m.store.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	m.provider.EXPECT().DeleteFile(gomock.Any(), acme, "acme-files/k-clip.mp4").Return(nil)

	_, err := m.service().Upload(context.Background(), m.store, acme, &Upload{Filename: "clip.mp4", Content: strings.NewReader("")})
	if err == nil {
		t.Fatal("expected the record failure to be returned")
	}
}

func TestServiceUploadRequiresFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.span("asset.Service.Upload")

	if _, err := m.service().Upload(context.Background(), m.store, acme, &Upload{Filename: "x"}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestServiceRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.span("asset.Service.Register")
	m.span("asset.Service.Register")

	m.store.EXPECT().CreateAsset(gomock.Any(), &types.Asset{
		Filename:   "logo.png",
		Source:     "https://cdn.example.com/img/logo.png",
		TenantName: "acme",
	}).Return(&types.Asset{ID: "a-2"}, nil)

	if _, err := m.service().Register(context.Background(), m.store, acme, &types.Asset{Source: "https://cdn.example.com/img/logo.png"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.service().Register(context.Background(), m.store, acme, &types.Asset{}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	uploaded := &types.Asset{ID: "a-1", Source: "acme-files/k-manual.pdf"}
	linked := &types.Asset{ID: "a-1", Source: "https://cdn.example.com/manual.pdf"}

	tests := []struct {
		name       string
		force      bool
		setupMocks func(*mocks)
		err        error
	}{
		{
			name: "unreferenced",
			setupMocks: func(m *mocks) {
				m.store.EXPECT().GetAsset(gomock.Any(), "a-1").Return(uploaded, nil)
				m.store.EXPECT().MaterialIDsByAsset(gomock.Any(), "a-1").Return(nil, nil)
				m.store.EXPECT().DeleteAsset(gomock.Any(), "a-1").Return(nil)
				m.provider.EXPECT().DeleteFile(gomock.Any(), acme, uploaded.Source).Return(nil)
			},
		},
		{
			name: "referenced without force",
			setupMocks: func(m *mocks) {
				m.store.EXPECT().GetAsset(gomock.Any(), "a-1").Return(uploaded, nil)
				m.store.EXPECT().MaterialIDsByAsset(gomock.Any(), "a-1").Return([]string{"m-1", "m-2"}, nil)
			},
			err: types.ErrConstraintViolation,
		},
		{
			name:  "referenced with force",
			force: true,
			setupMocks: func(m *mocks) {
				m.store.EXPECT().GetAsset(gomock.Any(), "a-1").Return(uploaded, nil)
				m.store.EXPECT().MaterialIDsByAsset(gomock.Any(), "a-1").Return([]string{"m-1"}, nil)
				m.store.EXPECT().DetachAsset(gomock.Any(), "a-1").Return(nil)
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
				m.store.EXPECT().DeleteAsset(gomock.Any(), "a-1").Return(nil)
				m.provider.EXPECT().DeleteFile(gomock.Any(), acme, uploaded.Source).Return(nil)
			},
		},
		{
			name: "registered link keeps its file",
			setupMocks: func(m *mocks) {
				m.store.EXPECT().GetAsset(gomock.Any(), "a-1").Return(linked, nil)
				m.store.EXPECT().MaterialIDsByAsset(gomock.Any(), "a-1").Return(nil, nil)
				m.store.EXPECT().DeleteAsset(gomock.Any(), "a-1").Return(nil)
			},
		},
		{
			name: "provider failure is logged",
			setupMocks: func(m *mocks) {
				m.store.EXPECT().GetAsset(gomock.Any(), "a-1").Return(uploaded, nil)
				m.store.EXPECT().MaterialIDsByAsset(gomock.Any(), "a-1").Return(nil, nil)
				m.store.EXPECT().DeleteAsset(gomock.Any(), "a-1").Return(nil)
				m.provider.EXPECT().DeleteFile(gomock.Any(), acme, uploaded.Source).Return(objectstore.ErrNotConfigured)
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name: "unknown asset",
			setupMocks: func(m *mocks) {
				m.store.EXPECT().GetAsset(gomock.Any(), "a-1").Return(nil, types.ErrNotFound)
			},
			err: types.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.span("asset.Service.Delete")
			m.inTx()
			tt.setupMocks(m)

			err := m.service().Delete(context.Background(), m.store, acme, "a-1", tt.force)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if tt.err != nil && errors.Is(tt.err, types.ErrConstraintViolation) && !strings.Contains(err.Error(), "m-1, m-2") {
				t.Fatalf("expected the referencing materials in %q", err)
			}
		})
	}
}
