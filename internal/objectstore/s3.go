// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

const s3Scheme = "s3://"

type S3Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	DefaultRegion string
}

var _ ProviderInterface = (*S3Provider)(nil)

// S3Provider keeps each tenant's files in the tenant's own bucket.
type S3Provider struct {
	client *minio.Client
	region string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewS3Provider(cfg S3Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*S3Provider, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.DefaultRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	p := new(S3Provider)

	p.client = client
	p.region = cfg.DefaultRegion

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p, nil
}

func (p *S3Provider) UploadFile(ctx context.Context, tenant *types.Tenant, filename string, content io.Reader, size int64) (string, error) {
	ctx, span := p.tracer.Start(ctx, "objectstore.S3Provider.UploadFile")
	defer span.End()

	bucket := tenant.S3BucketName
	if bucket == "" {
		return "", fmt.Errorf("tenant %q has no bucket: %w", tenant.Name, types.ErrInvalidArgument)
	}

	if err := p.ensureBucket(ctx, tenant); err != nil {
		return "", err
	}

	key := objectKey(filename)
	_, err := p.client.PutObject(ctx, bucket, key, content, size, minio.PutObjectOptions{
		ContentType: contentType(filename),
	})
	if err != nil {
		p.setAvailability(0)
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	p.setAvailability(1)

	return s3Scheme + bucket + "/" + key, nil
}

func (p *S3Provider) DeleteFile(ctx context.Context, tenant *types.Tenant, locator string) error {
	ctx, span := p.tracer.Start(ctx, "objectstore.S3Provider.DeleteFile")
	defer span.End()

	bucket, key, err := parseS3Locator(locator)
	if err != nil {
		return err
	}
	if bucket != tenant.S3BucketName {
		return fmt.Errorf("%s is outside the bucket of tenant %q: %w", locator, tenant.Name, types.ErrInvalidArgument)
	}

	if err := p.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", locator, err)
	}
	return nil
}

func (p *S3Provider) ensureBucket(ctx context.Context, tenant *types.Tenant) error {
	exists, err := p.client.BucketExists(ctx, tenant.S3BucketName)
	if err != nil {
		p.setAvailability(0)
		return fmt.Errorf("failed to check bucket %s: %w", tenant.S3BucketName, err)
	}
	if exists {
		return nil
	}

	region := tenant.S3BucketRegion
	if region == "" {
		region = p.region
	}
	if err := p.client.MakeBucket(ctx, tenant.S3BucketName, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", tenant.S3BucketName, err)
	}
	p.logger.Infof("created bucket %s for tenant %s", tenant.S3BucketName, tenant.Name)
	return nil
}

func (p *S3Provider) setAvailability(v float64) {
	if err := p.monitor.SetDependencyAvailability(map[string]string{"component": "object-storage"}, v); err != nil {
		p.logger.Debugf("failed to set object storage availability: %v", err)
	}
}

func parseS3Locator(locator string) (string, string, error) {
	rest, ok := strings.CutPrefix(locator, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("%q is not an object storage locator: %w", locator, types.ErrInvalidArgument)
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%q is not an object storage locator: %w", locator, types.ErrInvalidArgument)
	}
	return bucket, key, nil
}

func contentType(filename string) string {
	if t := mime.TypeByExtension(path.Ext(filename)); t != "" {
		return t
	}
	return "application/octet-stream"
}
