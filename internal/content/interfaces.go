// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type MaterialStoreInterface interface {
	CreateMaterial(context.Context, *types.Material) (*types.Material, error)
	GetMaterial(context.Context, string) (*types.Material, error)
	ListMaterials(context.Context, types.MaterialKind) ([]*types.Material, error)
	UpdateMaterial(context.Context, *types.Material) (*types.Material, error)
	DeleteMaterial(context.Context, string) error
	MaterialExists(context.Context, string) (bool, error)
	MaterialIDsByAsset(context.Context, string) ([]string, error)
	DetachAsset(context.Context, string) error
}

// LedgerInterface is the material relationship ledger.
type LedgerInterface interface {
	UpsertRelationship(context.Context, *types.MaterialRelationship) (*types.MaterialRelationship, error)
	DeleteRelationship(context.Context, string, types.RelatedKind, string) error
	ListRelationshipsByMaterial(context.Context, string) ([]*types.MaterialRelationship, error)
	ListRelationshipsByRelated(context.Context, types.RelatedKind, string) ([]*types.MaterialRelationship, error)
	DeleteRelationshipsByRelated(context.Context, types.RelatedKind, string) (int64, error)
	DeleteRelationshipsByMaterial(context.Context, string) (int64, error)
	ReorderRelationships(context.Context, types.RelatedKind, string, map[string]int) error
}

type LearningPathStoreInterface interface {
	CreateLearningPath(context.Context, *types.LearningPath) (*types.LearningPath, error)
	GetLearningPath(context.Context, string) (*types.LearningPath, error)
	ListLearningPaths(context.Context) ([]*types.LearningPath, error)
	UpdateLearningPath(context.Context, *types.LearningPath) (*types.LearningPath, error)
	DeleteLearningPath(context.Context, string) error
	LearningPathExists(context.Context, string) (bool, error)
	LockLearningPath(context.Context, string) (bool, error)
}

type TrainingProgramStoreInterface interface {
	CreateTrainingProgram(context.Context, *types.TrainingProgram) (*types.TrainingProgram, error)
	GetTrainingProgram(context.Context, string) (*types.TrainingProgram, error)
	ListTrainingPrograms(context.Context) ([]*types.TrainingProgram, error)
	UpdateTrainingProgram(context.Context, *types.TrainingProgram) (*types.TrainingProgram, error)
	DeleteTrainingProgram(context.Context, string) error
	TrainingProgramExists(context.Context, string) (bool, error)
	LockTrainingProgram(context.Context, string) (bool, error)
	AddProgramLearningPath(context.Context, string, string, *int) error
	RemoveProgramLearningPath(context.Context, string, string) error
	ListProgramLearningPaths(context.Context, string) ([]*types.ProgramLearningPath, error)
}

type AssetStoreInterface interface {
	CreateAsset(context.Context, *types.Asset) (*types.Asset, error)
	GetAsset(context.Context, string) (*types.Asset, error)
	ListAssets(context.Context) ([]*types.Asset, error)
	DeleteAsset(context.Context, string) error
}

type UserStoreInterface interface {
	CreateUser(context.Context, *types.User) (*types.User, error)
	ListUsers(context.Context) ([]*types.User, error)
}

// StorageInterface is everything a domain service can do inside one tenant database.
type StorageInterface interface {
	WithTx(context.Context, func(context.Context) error) error
	MaterialStoreInterface
	LedgerInterface
	LearningPathStoreInterface
	TrainingProgramStoreInterface
	AssetStoreInterface
	UserStoreInterface
}
