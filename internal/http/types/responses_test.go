// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{err: nil, expected: http.StatusOK},
		{err: fmt.Errorf("material 1: %w", types.ErrNotFound), expected: http.StatusNotFound},
		{err: types.ErrUnknownTenant, expected: http.StatusNotFound},
		{err: types.ErrDuplicateTenant, expected: http.StatusConflict},
		{err: types.ErrConcurrencyConflict, expected: http.StatusConflict},
		{err: types.ErrConstraintViolation, expected: http.StatusConflict},
		{err: types.ErrWrongKind, expected: http.StatusBadRequest},
		{err: types.ErrInvalidArgument, expected: http.StatusBadRequest},
		{err: types.ErrDataLossNotConfirmed, expected: http.StatusBadRequest},
		{err: types.NewProvisioningError("acme", errors.New("down")), expected: http.StatusServiceUnavailable},
		{err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.err), func(t *testing.T) {
			if got := StatusFromError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteErrorHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("password=hunter2"))

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Status != http.StatusInternalServerError || body.Message != "Internal Server Error" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"id": "1"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Status != http.StatusCreated {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDecodeOptional(t *testing.T) {
	var v struct {
		Order *int `json:"order"`
	}

	if err := DecodeOptional(httptest.NewRequest(http.MethodPut, "/", nil), &v); err != nil || v.Order != nil {
		t.Fatalf("expected an empty body to be accepted, got %v", err)
	}
	if err := DecodeOptional(httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"order":4}`)), &v); err != nil || *v.Order != 4 {
		t.Fatalf("unexpected result %v, %v", v.Order, err)
	}
	if err := DecodeOptional(httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{`)), &v); err == nil {
		t.Fatal("expected malformed JSON to fail")
	}
}
