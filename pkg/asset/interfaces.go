// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package asset

import (
	"context"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type ServiceInterface interface {
	Upload(context.Context, content.StorageInterface, *types.Tenant, *Upload) (*types.Asset, error)
	Register(context.Context, content.StorageInterface, *types.Tenant, *types.Asset) (*types.Asset, error)
	Get(context.Context, content.StorageInterface, string) (*types.Asset, error)
	List(context.Context, content.StorageInterface) ([]*types.Asset, error)
	Delete(context.Context, content.StorageInterface, *types.Tenant, string, bool) error
}
