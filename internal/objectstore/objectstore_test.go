// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package objectstore -destination ./mock_objectstore.go -source=./interfaces.go

func TestRouterDispatchesByStorageKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s3 := NewMockProviderInterface(ctrl)
	webdav := NewMockProviderInterface(ctrl)

	s3Tenant := &types.Tenant{Name: "acme", StorageKind: types.StorageKindS3, S3BucketName: "acme"}
	davTenant := &types.Tenant{Name: "globex", StorageKind: types.StorageKindOwnCloud, Directory: "globex"}

	s3.EXPECT().UploadFile(gomock.Any(), s3Tenant, "a.pdf", gomock.Any(), int64(3)).Return("s3://acme/1-a.pdf", nil)
	webdav.EXPECT().DeleteFile(gomock.Any(), davTenant, "/globex/1-a.pdf").Return(nil)

	r := NewRouter(s3, webdav)

	locator, err := r.UploadFile(context.Background(), s3Tenant, "a.pdf", strings.NewReader("pdf"), 3)
	if err != nil || locator != "s3://acme/1-a.pdf" {
		t.Fatalf("unexpected result %q, %v", locator, err)
	}
	if err := r.DeleteFile(context.Background(), davTenant, "/globex/1-a.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRouterWithoutProvider(t *testing.T) {
	r := NewRouter(nil, nil)

	_, err := r.UploadFile(context.Background(), &types.Tenant{Name: "acme", StorageKind: types.StorageKindS3}, "a", strings.NewReader(""), 0)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestParseS3Locator(t *testing.T) {
	tests := []struct {
		locator string
		bucket  string
		key     string
		err     bool
	}{
		{locator: "s3://acme/0190-a.pdf", bucket: "acme", key: "0190-a.pdf"},
		{locator: "s3://acme/nested/key", bucket: "acme", key: "nested/key"},
		{locator: "s3://acme", err: true},
		{locator: "/acme/a.pdf", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.locator, func(t *testing.T) {
			bucket, key, err := parseS3Locator(tt.locator)
			if (err != nil) != tt.err {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if tt.err && !errors.Is(err, types.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if bucket != tt.bucket || key != tt.key {
				t.Fatalf("unexpected bucket %q key %q", bucket, key)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	tests := map[string]string{
		"manual.pdf":           "-manual.pdf",
		"../../etc/passwd":     "-passwd",
		"C:\\Users\\me\\a.png": "-a.png",
		"":                     "-file",
	}

	for in, suffix := range tests {
		key := objectKey(in)
		if !strings.HasSuffix(key, suffix) || strings.Contains(key, "/") {
			t.Fatalf("%q: unexpected key %q", in, key)
		}
	}
	if objectKey("a") == objectKey("a") {
		t.Fatal("expected distinct keys for repeated uploads")
	}
}

// davServer accepts collection creation, uploads and deletes, recording each request.
type davServer struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]string
}

func (d *davServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.requests = append(d.requests, r.Method+" "+r.URL.Path)
	switch r.Method {
	case "MKCOL":
		w.WriteHeader(http.StatusCreated)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		d.bodies[r.URL.Path] = string(body)
		w.WriteHeader(http.StatusCreated)
	case http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestWebDAVProvider(t *testing.T) {
	dav := &davServer{bodies: make(map[string]string)}
	srv := httptest.NewServer(dav)
	defer srv.Close()

	logger := logging.NewNoopLogger()
	p := NewWebDAVProvider(WebDAVConfig{Endpoint: srv.URL + "/remote.php/webdav/"}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	tenant := &types.Tenant{Name: "acme", StorageKind: types.StorageKindOwnCloud, Directory: "acme-files"}

	locator, err := p.UploadFile(context.Background(), tenant, "intro.mp4", strings.NewReader("frames"), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(locator, "/acme-files/") || !strings.HasSuffix(locator, "-intro.mp4") {
		t.Fatalf("unexpected locator %q", locator)
	}
	if got := dav.bodies["/remote.php/webdav"+locator]; got != "frames" {
		t.Fatalf("unexpected uploaded content %q", got)
	}

	if err := p.DeleteFile(context.Background(), tenant, locator); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last := dav.requests[len(dav.requests)-1]; last != "DELETE /remote.php/webdav"+locator {
		t.Fatalf("unexpected last request %q", last)
	}

	other := &types.Tenant{Name: "globex", StorageKind: types.StorageKindOwnCloud, Directory: "globex"}
	if err := p.DeleteFile(context.Background(), other, locator); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for a foreign locator, got %v", err)
	}
}

func TestWebDAVProviderRequiresDirectory(t *testing.T) {
	logger := logging.NewNoopLogger()
	p := NewWebDAVProvider(WebDAVConfig{Endpoint: "http://localhost"}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	_, err := p.UploadFile(context.Background(), &types.Tenant{Name: "acme"}, "a", strings.NewReader(""), 0)
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
