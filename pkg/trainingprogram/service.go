// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package trainingprogram

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

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

// Create stores the program and, in the same transaction, assigns the given materials
// through the ledger and the given learning paths through the membership table.
// Both lists keep their order as display order.
func (s *Service) Create(ctx context.Context, store content.StorageInterface, p *types.TrainingProgram, materialIDs, pathIDs []string) (*types.TrainingProgram, error) {
	ctx, span := s.tracer.Start(ctx, "trainingprogram.Service.Create")
	defer span.End()

	if err := validate(p); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("materials", len(materialIDs)),
		attribute.Int("learning_paths", len(pathIDs)),
	)

	var created *types.TrainingProgram
	err := store.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if created, err = store.CreateTrainingProgram(ctx, p); err != nil {
			return err
		}

		for i, id := range materialIDs {
			ok, err := store.MaterialExists(ctx, id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("material %s: %w", id, types.ErrNotFound)
			}

			order := i
			_, err = store.UpsertRelationship(ctx, &types.MaterialRelationship{
				MaterialID:       id,
				RelatedID:        created.ID,
				RelatedKind:      types.RelatedTrainingProgram,
				RelationshipType: types.RelationshipContains,
				DisplayOrder:     &order,
			})
			if err != nil {
				return err
			}
		}

		for i, id := range pathIDs {
			order := i
			if err := store.AddProgramLearningPath(ctx, created.ID, id, &order); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, store content.StorageInterface, id string) (*types.TrainingProgram, error) {
	ctx, span := s.tracer.Start(ctx, "trainingprogram.Service.Get")
	defer span.End()

	return store.GetTrainingProgram(ctx, id)
}

func (s *Service) List(ctx context.Context, store content.StorageInterface) ([]*types.TrainingProgram, error) {
	ctx, span := s.tracer.Start(ctx, "trainingprogram.Service.List")
	defer span.End()

	return store.ListTrainingPrograms(ctx)
}

func (s *Service) Update(ctx context.Context, store content.StorageInterface, p *types.TrainingProgram) (*types.TrainingProgram, error) {
	ctx, span := s.tracer.Start(ctx, "trainingprogram.Service.Update")
	defer span.End()

	if err := validate(p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("training program id is required: %w", types.ErrInvalidArgument)
	}

	return store.UpdateTrainingProgram(ctx, p)
}

// Delete removes the program with its ledger rows and learning path memberships.
func (s *Service) Delete(ctx context.Context, store content.StorageInterface, id string) error {
	ctx, span := s.tracer.Start(ctx, "trainingprogram.Service.Delete")
	defer span.End()

	if err := store.DeleteTrainingProgram(ctx, id); err != nil {
		return err
	}

	s.logger.Debugf("deleted training program %s", id)
	return nil
}

// AddLearningPath adds the path to the program, or moves it to order when it is already a member.
func (s *Service) AddLearningPath(ctx context.Context, store content.StorageInterface, programID, pathID string, order *int) error {
	ctx, span := s.tracer.Start(ctx, "trainingprogram.Service.AddLearningPath")
	defer span.End()

	if order != nil && *order < 0 {
		return fmt.Errorf("display order must not be negative: %w", types.ErrInvalidArgument)
	}

	return store.AddProgramLearningPath(ctx, programID, pathID, order)
}

func (s *Service) RemoveLearningPath(ctx context.Context, store content.StorageInterface, programID, pathID string) error {
	ctx, span := s.tracer.Start(ctx, "trainingprogram.Service.RemoveLearningPath")
	defer span.End()

	return store.RemoveProgramLearningPath(ctx, programID, pathID)
}

func (s *Service) ListLearningPaths(ctx context.Context, store content.StorageInterface, programID string) ([]*types.ProgramLearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "trainingprogram.Service.ListLearningPaths")
	defer span.End()

	if err := exists(ctx, store, programID); err != nil {
		return nil, err
	}

	return store.ListProgramLearningPaths(ctx, programID)
}

func (s *Service) ListMaterials(ctx context.Context, store content.StorageInterface, programID string) ([]*types.MaterialRelationship, error) {
	ctx, span := s.tracer.Start(ctx, "trainingprogram.Service.ListMaterials")
	defer span.End()

	if err := exists(ctx, store, programID); err != nil {
		return nil, err
	}

	return store.ListRelationshipsByRelated(ctx, types.RelatedTrainingProgram, programID)
}

func exists(ctx context.Context, store content.StorageInterface, id string) error {
	ok, err := store.TrainingProgramExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("training program %s: %w", id, types.ErrNotFound)
	}
	return nil
}

func validate(p *types.TrainingProgram) error {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("training program name is required: %w", types.ErrInvalidArgument)
	}
	return types.ValidateStruct(p)
}
