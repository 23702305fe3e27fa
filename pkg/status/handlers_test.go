// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/version"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pingErr error
		pings   int
		status  int
		state   string
	}{
		{name: "alive", path: "/api/v0/status", status: http.StatusOK, state: "ok"},
		{name: "ready", path: "/api/v0/status/ready", pings: 1, status: http.StatusOK, state: "ok"},
		{name: "database down", path: "/api/v0/status/ready", pings: 1, pingErr: errors.New("dial tcp: refused"), status: http.StatusServiceUnavailable, state: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pinger := NewMockPingerInterface(ctrl)
			pinger.EXPECT().Ping(gomock.Any()).Return(tt.pingErr).Times(tt.pings)

			logger := logging.NewNoopLogger()
			mux := chi.NewMux()
			NewAPI(pinger, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}

			var resp struct {
				Data Status `json:"data"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Data.Status != tt.state || resp.Data.BuildInfo != version.Version {
				t.Fatalf("unexpected status %+v", resp.Data)
			}
		})
	}
}
