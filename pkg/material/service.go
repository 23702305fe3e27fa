// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package material

import (
	"context"
	"fmt"
	"strings"
	"time"

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

// Create stores m. Identifier, version and timestamps supplied by the caller are discarded.
func (s *Service) Create(ctx context.Context, store content.StorageInterface, m *types.Material) (*types.Material, error) {
	ctx, span := s.tracer.Start(ctx, "material.Service.Create")
	defer span.End()

	if m == nil {
		return nil, fmt.Errorf("material is required: %w", types.ErrInvalidArgument)
	}
	span.SetAttributes(attribute.String("kind", string(m.Kind)))

	m.ID = ""
	m.Version = 0
	m.CreatedAt = time.Time{}
	m.UpdatedAt = time.Time{}

	created, err := store.CreateMaterial(ctx, m)
	if err != nil {
		return nil, err
	}

	s.logger.Debugf("created %s material %s", created.Kind, created.ID)
	return created, nil
}

// CreateWithChildren attaches children to m and stores both in one transaction.
// Kinds that own no children fail with types.ErrWrongKind.
func (s *Service) CreateWithChildren(ctx context.Context, store content.StorageInterface, m *types.Material, children []types.MaterialChild) (*types.Material, error) {
	ctx, span := s.tracer.Start(ctx, "material.Service.CreateWithChildren")
	defer span.End()

	if m == nil {
		return nil, fmt.Errorf("material is required: %w", types.ErrInvalidArgument)
	}
	if m.Payload == nil {
		payload, err := types.NewPayload(m.Kind)
		if err != nil {
			return nil, err
		}
		m.Payload = payload
	}
	if err := m.AttachChildren(children...); err != nil {
		return nil, err
	}

	return s.Create(ctx, store, m)
}

func (s *Service) GetComplete(ctx context.Context, store content.StorageInterface, id string) (*types.Material, error) {
	ctx, span := s.tracer.Start(ctx, "material.Service.GetComplete")
	defer span.End()

	return store.GetMaterial(ctx, id)
}

// List returns complete materials, all kinds when kind is empty.
func (s *Service) List(ctx context.Context, store content.StorageInterface, kind types.MaterialKind) ([]*types.Material, error) {
	ctx, span := s.tracer.Start(ctx, "material.Service.List")
	defer span.End()

	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("unknown material kind %q: %w", kind, types.ErrInvalidArgument)
	}

	return store.ListMaterials(ctx, kind)
}

// Update writes m if its version still matches the stored one, see types.ErrConcurrencyConflict.
func (s *Service) Update(ctx context.Context, store content.StorageInterface, m *types.Material) (*types.Material, error) {
	ctx, span := s.tracer.Start(ctx, "material.Service.Update")
	defer span.End()

	if m == nil || m.ID == "" {
		return nil, fmt.Errorf("material id is required: %w", types.ErrInvalidArgument)
	}

	updated, err := store.UpdateMaterial(ctx, m)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the material, its children and its ledger rows. Referenced assets stay.
func (s *Service) Delete(ctx context.Context, store content.StorageInterface, id string) error {
	ctx, span := s.tracer.Start(ctx, "material.Service.Delete")
	defer span.End()

	if err := store.DeleteMaterial(ctx, id); err != nil {
		return err
	}

	s.logger.Debugf("deleted material %s", id)
	return nil
}

func (s *Service) AssignToLearningPath(ctx context.Context, store content.StorageInterface, materialID, pathID, relationshipType string, order *int) (*types.MaterialRelationship, error) {
	ctx, span := s.tracer.Start(ctx, "material.Service.AssignToLearningPath")
	defer span.End()

	return s.assign(ctx, store, materialID, types.RelatedLearningPath, pathID, relationshipType, order)
}

func (s *Service) AssignToTrainingProgram(ctx context.Context, store content.StorageInterface, materialID, programID, relationshipType string, order *int) (*types.MaterialRelationship, error) {
	ctx, span := s.tracer.Start(ctx, "material.Service.AssignToTrainingProgram")
	defer span.End()

	return s.assign(ctx, store, materialID, types.RelatedTrainingProgram, programID, relationshipType, order)
}

// assign upserts the ledger row after checking both ends exist, all in one transaction.
// The related row stays share-locked until commit, so it cannot be deleted under the new row.
func (s *Service) assign(ctx context.Context, store content.StorageInterface, materialID string, kind types.RelatedKind, relatedID, relationshipType string, order *int) (*types.MaterialRelationship, error) {
	if strings.TrimSpace(relationshipType) == "" {
		relationshipType = types.RelationshipAssigned
	}
	if order != nil && *order < 0 {
		return nil, fmt.Errorf("display order must not be negative: %w", types.ErrInvalidArgument)
	}

	var rel *types.MaterialRelationship
	err := store.WithTx(ctx, func(ctx context.Context) error {
		ok, err := store.MaterialExists(ctx, materialID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("material %s: %w", materialID, types.ErrNotFound)
		}

		if err := relatedExists(ctx, store, kind, relatedID); err != nil {
			return err
		}

		rel, err = store.UpsertRelationship(ctx, &types.MaterialRelationship{
			MaterialID:       materialID,
			RelatedID:        relatedID,
			RelatedKind:      kind,
			RelationshipType: relationshipType,
			DisplayOrder:     order,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return rel, nil
}

func relatedExists(ctx context.Context, store content.StorageInterface, kind types.RelatedKind, id string) error {
	var (
		ok  bool
		err error
	)
	switch kind {
	case types.RelatedLearningPath:
		ok, err = store.LockLearningPath(ctx, id)
	case types.RelatedTrainingProgram:
		ok, err = store.LockTrainingProgram(ctx, id)
	default:
		return fmt.Errorf("unknown related kind %q: %w", kind, types.ErrInvalidArgument)
	}
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", kind, id, types.ErrNotFound)
	}
	return nil
}

// RemoveFromLearningPath fails with types.ErrNotFound when the material was not assigned.
func (s *Service) RemoveFromLearningPath(ctx context.Context, store content.StorageInterface, materialID, pathID string) error {
	ctx, span := s.tracer.Start(ctx, "material.Service.RemoveFromLearningPath")
	defer span.End()

	return store.DeleteRelationship(ctx, materialID, types.RelatedLearningPath, pathID)
}

func (s *Service) RemoveFromTrainingProgram(ctx context.Context, store content.StorageInterface, materialID, programID string) error {
	ctx, span := s.tracer.Start(ctx, "material.Service.RemoveFromTrainingProgram")
	defer span.End()

	return store.DeleteRelationship(ctx, materialID, types.RelatedTrainingProgram, programID)
}

// Reorder sets the display order of materials inside a learning path. Nothing changes
// unless every material in order is assigned to the path.
func (s *Service) Reorder(ctx context.Context, store content.StorageInterface, pathID string, order map[string]int) error {
	ctx, span := s.tracer.Start(ctx, "material.Service.Reorder")
	defer span.End()

	if len(order) == 0 {
		return fmt.Errorf("no materials to reorder: %w", types.ErrInvalidArgument)
	}
	for id, pos := range order {
		if pos < 0 {
			return fmt.Errorf("material %s has a negative position: %w", id, types.ErrInvalidArgument)
		}
	}

	ok, err := store.LearningPathExists(ctx, pathID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("learning path %s: %w", pathID, types.ErrNotFound)
	}

	return store.ReorderRelationships(ctx, types.RelatedLearningPath, pathID, order)
}

// Relationships returns the ledger rows of a material grouped by related kind.
func (s *Service) Relationships(ctx context.Context, store content.StorageInterface, materialID string) (map[types.RelatedKind][]*types.MaterialRelationship, error) {
	ctx, span := s.tracer.Start(ctx, "material.Service.Relationships")
	defer span.End()

	ok, err := store.MaterialExists(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("material %s: %w", materialID, types.ErrNotFound)
	}

	rels, err := store.ListRelationshipsByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	return types.GroupByRelatedKind(rels), nil
}
