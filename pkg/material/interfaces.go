// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package material

import (
	"context"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// ServiceInterface runs material operations inside the tenant database behind store.
type ServiceInterface interface {
	Create(context.Context, content.StorageInterface, *types.Material) (*types.Material, error)
	CreateWithChildren(context.Context, content.StorageInterface, *types.Material, []types.MaterialChild) (*types.Material, error)
	GetComplete(context.Context, content.StorageInterface, string) (*types.Material, error)
	List(context.Context, content.StorageInterface, types.MaterialKind) ([]*types.Material, error)
	Update(context.Context, content.StorageInterface, *types.Material) (*types.Material, error)
	Delete(context.Context, content.StorageInterface, string) error
	AssignToLearningPath(context.Context, content.StorageInterface, string, string, string, *int) (*types.MaterialRelationship, error)
	AssignToTrainingProgram(context.Context, content.StorageInterface, string, string, string, *int) (*types.MaterialRelationship, error)
	RemoveFromLearningPath(context.Context, content.StorageInterface, string, string) error
	RemoveFromTrainingProgram(context.Context, content.StorageInterface, string, string) error
	Reorder(context.Context, content.StorageInterface, string, map[string]int) error
	Relationships(context.Context, content.StorageInterface, string) (map[types.RelatedKind][]*types.MaterialRelationship, error)
}
