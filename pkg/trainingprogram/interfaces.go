// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package trainingprogram

import (
	"context"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type ServiceInterface interface {
	Create(context.Context, content.StorageInterface, *types.TrainingProgram, []string, []string) (*types.TrainingProgram, error)
	Get(context.Context, content.StorageInterface, string) (*types.TrainingProgram, error)
	List(context.Context, content.StorageInterface) ([]*types.TrainingProgram, error)
	Update(context.Context, content.StorageInterface, *types.TrainingProgram) (*types.TrainingProgram, error)
	Delete(context.Context, content.StorageInterface, string) error
	AddLearningPath(context.Context, content.StorageInterface, string, string, *int) error
	RemoveLearningPath(context.Context, content.StorageInterface, string, string) error
	ListLearningPaths(context.Context, content.StorageInterface, string) ([]*types.ProgramLearningPath, error)
	ListMaterials(context.Context, content.StorageInterface, string) ([]*types.MaterialRelationship, error)
}
