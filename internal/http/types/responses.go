// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// Response is the envelope of every JSON body served by the API.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

// ErrorResponse carries a failure, matching the admin UI error format.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// StatusFromError maps domain error kinds to HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrUnknownTenant):
		return http.StatusNotFound
	case errors.Is(err, types.ErrDuplicateTenant),
		errors.Is(err, types.ErrDuplicateRelationship),
		errors.Is(err, types.ErrConcurrencyConflict),
		errors.Is(err, types.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, types.ErrWrongKind),
		errors.Is(err, types.ErrInvalidArgument),
		errors.Is(err, types.ErrDataLossNotConfirmed):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrProvisioningFailed):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		Response{
			Data:    data,
			Message: http.StatusText(status),
			Status:  status,
		},
	)
}

// WriteError writes err with the status of its kind. Internal errors hide their message.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		ErrorResponse{
			Status:  status,
			Message: message,
		},
	)
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	_ = json.NewEncoder(w).Encode(
		ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: message,
		},
	)
}

// DecodeOptional decodes a JSON request body into v. An empty body leaves v untouched.
func DecodeOptional(r *http.Request, v interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
