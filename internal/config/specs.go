// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port      int    `envconfig:"port" default:"8080"`
	APIPrefix string `envconfig:"api_prefix" default:"/api"`

	MaxUploadSize int64 `envconfig:"max_upload_size" default:"536870912"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// TenantDSNTemplate holds a {database} placeholder. Empty means DSN with the database swapped.
	TenantDSNTemplate string `envconfig:"tenant_dsn_template"`
	TenantDBMaxConns  int32  `envconfig:"tenant_db_max_conns" default:"10"`
	TenantDBMinConns  int32  `envconfig:"tenant_db_min_conns" default:"0"`

	S3Endpoint      string `envconfig:"s3_endpoint"`
	S3AccessKey     string `envconfig:"s3_access_key"`
	S3SecretKey     string `envconfig:"s3_secret_key"`
	S3UseSSL        bool   `envconfig:"s3_use_ssl" default:"true"`
	S3DefaultRegion string `envconfig:"s3_default_region" default:"us-east-1"`

	WebDAVEndpoint string `envconfig:"webdav_endpoint"`
	WebDAVUsername string `envconfig:"webdav_username"`
	WebDAVPassword string `envconfig:"webdav_password"`
}
