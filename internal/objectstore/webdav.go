// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/studio-b12/gowebdav"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type WebDAVConfig struct {
	// Endpoint is used for tenants without an endpoint of their own.
	Endpoint string
	Username string
	Password string
}

var _ ProviderInterface = (*WebDAVProvider)(nil)

// WebDAVProvider keeps each tenant's files in the tenant directory of an OwnCloud style server.
type WebDAVProvider struct {
	cfg WebDAVConfig

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewWebDAVProvider(cfg WebDAVConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *WebDAVProvider {
	p := new(WebDAVProvider)

	p.cfg = cfg

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

func (p *WebDAVProvider) client(tenant *types.Tenant) (*gowebdav.Client, error) {
	endpoint := tenant.WebDAVEndpoint
	if endpoint == "" {
		endpoint = p.cfg.Endpoint
	}
	if endpoint == "" {
		return nil, fmt.Errorf("no WebDAV endpoint for tenant %q: %w", tenant.Name, types.ErrInvalidArgument)
	}
	return gowebdav.NewClient(endpoint, p.cfg.Username, p.cfg.Password), nil
}

func (p *WebDAVProvider) UploadFile(ctx context.Context, tenant *types.Tenant, filename string, content io.Reader, _ int64) (string, error) {
	_, span := p.tracer.Start(ctx, "objectstore.WebDAVProvider.UploadFile")
	defer span.End()

	if tenant.Directory == "" {
		return "", fmt.Errorf("tenant %q has no directory: %w", tenant.Name, types.ErrInvalidArgument)
	}

	c, err := p.client(tenant)
	if err != nil {
		return "", err
	}

	dir := path.Join("/", tenant.Directory)
	if err := c.MkdirAll(dir, 0o755); err != nil {
		p.setAvailability(0)
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	locator := path.Join(dir, objectKey(filename))
	if err := c.WriteStream(locator, content, 0o644); err != nil {
		p.setAvailability(0)
		return "", fmt.Errorf("failed to upload %s: %w", locator, err)
	}
	p.setAvailability(1)

	return locator, nil
}

func (p *WebDAVProvider) DeleteFile(ctx context.Context, tenant *types.Tenant, locator string) error {
	_, span := p.tracer.Start(ctx, "objectstore.WebDAVProvider.DeleteFile")
	defer span.End()

	dir := path.Join("/", tenant.Directory) + "/"
	if tenant.Directory == "" || !strings.HasPrefix(path.Clean(locator), dir) {
		return fmt.Errorf("%s is outside the directory of tenant %q: %w", locator, tenant.Name, types.ErrInvalidArgument)
	}

	c, err := p.client(tenant)
	if err != nil {
		return err
	}

	if err := c.Remove(path.Clean(locator)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", locator, err)
	}
	return nil
}

func (p *WebDAVProvider) setAvailability(v float64) {
	if err := p.monitor.SetDependencyAvailability(map[string]string{"component": "webdav"}, v); err != nil {
		p.logger.Debugf("failed to set WebDAV availability: %v", err)
	}
}
