// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"testing"
)

func TestDSNForDatabase(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
		err      bool
	}{
		{
			name:     "placeholder",
			template: "postgres://u:p@db:5432/{database}?sslmode=disable",
			expected: "postgres://u:p@db:5432/tenant_acme?sslmode=disable",
		},
		{
			name:     "url without placeholder",
			template: "postgresql://u:p@db:5432/control?sslmode=disable",
			expected: "postgresql://u:p@db:5432/tenant_acme?sslmode=disable",
		},
		{
			name:     "url without database",
			template: "postgres://u:p@db:5432",
			expected: "postgres://u:p@db:5432/tenant_acme",
		},
		{
			name:     "keyword value",
			template: "host=db user=u dbname=control",
			expected: "host=db user=u dbname=control dbname=tenant_acme",
		},
		{
			name:     "empty",
			template: "",
			err:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := DSNForDatabase(tt.template, "tenant_acme")
			if (err != nil) != tt.err {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if dsn != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, dsn)
			}
		})
	}
}
