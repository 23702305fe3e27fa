// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
)

func TestMetricsEndpoint(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(logging.NewNoopLogger()).RegisterEndpoints(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Fatalf("expected the go collector in the exposition")
	}
}
