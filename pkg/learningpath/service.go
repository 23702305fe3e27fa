// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package learningpath

import (
	"context"
	"fmt"
	"strings"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

func (s *Service) Create(ctx context.Context, store content.StorageInterface, p *types.LearningPath) (*types.LearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "learningpath.Service.Create")
	defer span.End()

	if err := validate(p); err != nil {
		return nil, err
	}

	return store.CreateLearningPath(ctx, p)
}

func (s *Service) Get(ctx context.Context, store content.StorageInterface, id string) (*types.LearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "learningpath.Service.Get")
	defer span.End()

	return store.GetLearningPath(ctx, id)
}

func (s *Service) List(ctx context.Context, store content.StorageInterface) ([]*types.LearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "learningpath.Service.List")
	defer span.End()

	return store.ListLearningPaths(ctx)
}

func (s *Service) Update(ctx context.Context, store content.StorageInterface, p *types.LearningPath) (*types.LearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "learningpath.Service.Update")
	defer span.End()

	if err := validate(p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("learning path id is required: %w", types.ErrInvalidArgument)
	}

	return store.UpdateLearningPath(ctx, p)
}

// Delete removes the path together with its ledger rows and program memberships.
// Materials assigned to it are kept.
func (s *Service) Delete(ctx context.Context, store content.StorageInterface, id string) error {
	ctx, span := s.tracer.Start(ctx, "learningpath.Service.Delete")
	defer span.End()

	if err := store.DeleteLearningPath(ctx, id); err != nil {
		return err
	}

	s.logger.Debugf("deleted learning path %s", id)
	return nil
}

// ListMaterials returns the ledger rows pointing at the path, by display order with unordered rows last.
func (s *Service) ListMaterials(ctx context.Context, store content.StorageInterface, id string) ([]*types.MaterialRelationship, error) {
	ctx, span := s.tracer.Start(ctx, "learningpath.Service.ListMaterials")
	defer span.End()

	ok, err := store.LearningPathExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("learning path %s: %w", id, types.ErrNotFound)
	}

	return store.ListRelationshipsByRelated(ctx, types.RelatedLearningPath, id)
}

func validate(p *types.LearningPath) error {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("learning path name is required: %w", types.ErrInvalidArgument)
	}
	return types.ValidateStruct(p)
}
