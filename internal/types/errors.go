// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

// Error kinds shared by the registry, the provisioner and the domain services.
var (
	ErrUnknownTenant         = errors.New("unknown tenant")
	ErrDuplicateTenant       = errors.New("tenant already exists")
	ErrProvisioningFailed    = errors.New("tenant provisioning failed")
	ErrNotFound              = errors.New("resource not found")
	ErrWrongKind             = errors.New("material kind mismatch")
	ErrConcurrencyConflict   = errors.New("resource was modified concurrently")
	ErrDuplicateRelationship = errors.New("duplicate material relationship")
	ErrConstraintViolation   = errors.New("constraint violation")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrDataLossNotConfirmed  = errors.New("destructive operation requires explicit confirmation")
)

// ProvisioningError reports a failure while creating or repairing a tenant database.
// It matches both ErrProvisioningFailed and its cause with errors.Is.
type ProvisioningError struct {
	Tenant string
	Cause  error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning tenant %q failed: %v", e.Tenant, e.Cause)
}

func (e *ProvisioningError) Unwrap() []error {
	return []error{ErrProvisioningFailed, e.Cause}
}

// NewProvisioningError wraps cause, leaving an existing ProvisioningError untouched.
func NewProvisioningError(tenant string, cause error) error {
	var pe *ProvisioningError
	if errors.As(cause, &pe) {
		return cause
	}
	return &ProvisioningError{Tenant: tenant, Cause: cause}
}
