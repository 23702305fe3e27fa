// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"io"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// ProviderInterface stores the binary content of assets. Locators are opaque to callers.
type ProviderInterface interface {
	UploadFile(ctx context.Context, tenant *types.Tenant, filename string, content io.Reader, size int64) (string, error)
	DeleteFile(ctx context.Context, tenant *types.Tenant, locator string) error
}
