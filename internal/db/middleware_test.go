// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package db -destination ./mock_db.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package db -destination ./mock_logger.go -source=../logging/interfaces.go

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		expectTx   bool
		expectFail bool
	}{
		{name: "get skips transaction", method: http.MethodGet, status: http.StatusOK},
		{name: "head skips transaction", method: http.MethodHead, status: http.StatusOK},
		{name: "post commits", method: http.MethodPost, status: http.StatusCreated, expectTx: true},
		{name: "post failure rolls back", method: http.MethodPost, status: http.StatusConflict, expectTx: true, expectFail: true},
		{name: "delete commits", method: http.MethodDelete, status: http.StatusNoContent, expectTx: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := NewMockDBClientInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			var txErr error
			if tt.expectTx {
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						txErr = fn(ctx)
						return txErr
					},
				)
			}
			if tt.expectFail {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			}

			handler := TransactionMiddleware(StaticClient(mockDB), mockLogger)(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				}),
			)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/acme/materials", nil))

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rec.Code)
			}
			if tt.expectFail && txErr == nil {
				t.Fatal("expected the transaction to be failed")
			}
			if !tt.expectFail && txErr != nil {
				t.Fatalf("unexpected transaction error: %v", txErr)
			}
		})
	}
}

func TestTransactionMiddlewareWithoutClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	called := false
	handler := TransactionMiddleware(
		func(*http.Request) DBClientInterface { return nil },
		NewMockLoggerInterface(ctrl),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	if !called {
		t.Fatal("expected the handler to run without a transaction")
	}
}
