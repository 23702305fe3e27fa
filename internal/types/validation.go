// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenancy"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the struct tag rules of v and reports failures as ErrInvalidArgument.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%s: %w", strings.Join(fields, ", "), ErrInvalidArgument)
}

// Validate checks that the name can be routed to and that the storage configuration
// matches the storage kind.
func (t *Tenant) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tenant name is required: %w", ErrInvalidArgument)
	}
	if !tenancy.IsValidTenantName(t.Name) {
		return fmt.Errorf("tenant name %q cannot be used in a request path: %w", t.Name, ErrInvalidArgument)
	}
	return ValidateStruct(t)
}
