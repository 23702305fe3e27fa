// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/objectstore"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// Upload is a file about to be stored as an asset.
type Upload struct {
	Filename    string
	Description string
	FileType    string
	Content     io.Reader
	Size        int64
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	files objectstore.ProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(files objectstore.ProviderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.files = files

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Upload stores the file with the tenant's provider and records it. The stored file is
// removed again when the record cannot be written.
func (s *Service) Upload(ctx context.Context, store content.StorageInterface, tenant *types.Tenant, u *Upload) (*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "asset.Service.Upload")
	defer span.End()

	if u == nil || u.Content == nil || strings.TrimSpace(u.Filename) == "" {
		return nil, fmt.Errorf("a file with a name is required: %w", types.ErrInvalidArgument)
	}
	span.SetAttributes(attribute.String("tenant", tenant.Name), attribute.Int64("size", u.Size))

	locator, err := s.files.UploadFile(ctx, tenant, u.Filename, u.Content, u.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", u.Filename, err)
	}

	fileType := u.FileType
	if fileType == "" {
		fileType = strings.TrimPrefix(strings.ToLower(path.Ext(u.Filename)), ".")
	}

	created, err := store.CreateAsset(ctx, &types.Asset{
		Filename:    u.Filename,
		Source:      locator,
		Description: u.Description,
		FileType:    fileType,
		TenantName:  tenant.Name,
	})
	if err != nil {
		if derr := s.files.DeleteFile(context.WithoutCancel(ctx), tenant, locator); derr != nil {
			s.logger.Errorf("failed to remove orphaned file %s: %v", locator, derr)
		}
		return nil, err
	}

	s.logger.Debugf("uploaded asset %s to %s", created.ID, locator)
	return created, nil
}

// Register records an asset whose content already lives at a.Source.
func (s *Service) Register(ctx context.Context, store content.StorageInterface, tenant *types.Tenant, a *types.Asset) (*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "asset.Service.Register")
	defer span.End()

	if a == nil || strings.TrimSpace(a.Source) == "" {
		return nil, fmt.Errorf("asset source is required: %w", types.ErrInvalidArgument)
	}
	if a.Filename == "" {
		a.Filename = path.Base(a.Source)
	}
	a.TenantName = tenant.Name

	return store.CreateAsset(ctx, a)
}

func (s *Service) Get(ctx context.Context, store content.StorageInterface, id string) (*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "asset.Service.Get")
	defer span.End()

	return store.GetAsset(ctx, id)
}

func (s *Service) List(ctx context.Context, store content.StorageInterface) ([]*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "asset.Service.List")
	defer span.End()

	return store.ListAssets(ctx)
}

// Delete removes an asset. While materials reference it the call fails with
// types.ErrConstraintViolation unless force is set, which clears those references first.
// Files behind an http(s) source were registered, not uploaded, and are left alone.
func (s *Service) Delete(ctx context.Context, store content.StorageInterface, tenant *types.Tenant, id string, force bool) error {
	ctx, span := s.tracer.Start(ctx, "asset.Service.Delete")
	defer span.End()

	var a *types.Asset
	err := store.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if a, err = store.GetAsset(ctx, id); err != nil {
			return err
		}

		users, err := store.MaterialIDsByAsset(ctx, id)
		if err != nil {
			return err
		}

		if len(users) > 0 {
			if !force {
				return fmt.Errorf("asset %s is used by materials %s: %w", id, strings.Join(users, ", "), types.ErrConstraintViolation)
			}
			if err := store.DetachAsset(ctx, id); err != nil {
				return err
			}
			s.logger.Warnf("asset %s detached from materials %s", id, strings.Join(users, ", "))
		}

		return store.DeleteAsset(ctx, id)
	})
	if err != nil {
		return err
	}

	if !isManaged(a.Source) {
		return nil
	}

	err = s.files.DeleteFile(ctx, tenant, a.Source)
	switch {
	case errors.Is(err, objectstore.ErrNotConfigured):
		s.logger.Warnf("file %s of asset %s was kept: %v", a.Source, id, err)
	case err != nil:
		s.logger.Errorf("failed to delete file %s of asset %s: %v", a.Source, id, err)
	}

	return nil
}

func isManaged(source string) bool {
	lower := strings.ToLower(source)
	return source != "" && !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://")
}
