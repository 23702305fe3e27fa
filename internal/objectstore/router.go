// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// ErrNotConfigured is returned for tenants whose storage kind has no provider.
var ErrNotConfigured = errors.New("storage provider not configured")

var _ ProviderInterface = (*Router)(nil)

// Router sends each call to the provider of the tenant's storage kind.
type Router struct {
	providers map[types.StorageKind]ProviderInterface
}

// NewRouter accepts nil providers for storage kinds this deployment does not serve.
func NewRouter(s3, webdav ProviderInterface) *Router {
	r := new(Router)
	r.providers = make(map[types.StorageKind]ProviderInterface)

	if s3 != nil {
		r.providers[types.StorageKindS3] = s3
	}
	if webdav != nil {
		r.providers[types.StorageKindOwnCloud] = webdav
	}
	return r
}

func (r *Router) provider(tenant *types.Tenant) (ProviderInterface, error) {
	p, ok := r.providers[tenant.StorageKind]
	if !ok {
		return nil, fmt.Errorf("%s storage of tenant %q: %w", tenant.StorageKind, tenant.Name, ErrNotConfigured)
	}
	return p, nil
}

func (r *Router) UploadFile(ctx context.Context, tenant *types.Tenant, filename string, content io.Reader, size int64) (string, error) {
	p, err := r.provider(tenant)
	if err != nil {
		return "", err
	}
	return p.UploadFile(ctx, tenant, filename, content, size)
}

func (r *Router) DeleteFile(ctx context.Context, tenant *types.Tenant, locator string) error {
	p, err := r.provider(tenant)
	if err != nil {
		return err
	}
	return p.DeleteFile(ctx, tenant, locator)
}

// objectKey prefixes the base name of filename with a fresh id.
func objectKey(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		base = "file"
	}
	return uuid.Must(uuid.NewV7()).String() + "-" + base
}
