// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package learningpath

import (
	"context"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type ServiceInterface interface {
	Create(context.Context, content.StorageInterface, *types.LearningPath) (*types.LearningPath, error)
	Get(context.Context, content.StorageInterface, string) (*types.LearningPath, error)
	List(context.Context, content.StorageInterface) ([]*types.LearningPath, error)
	Update(context.Context, content.StorageInterface, *types.LearningPath) (*types.LearningPath, error)
	Delete(context.Context, content.StorageInterface, string) error
	ListMaterials(context.Context, content.StorageInterface, string) ([]*types.MaterialRelationship, error)
}
