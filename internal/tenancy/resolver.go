// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"strings"
	"unicode"
)

const (
	// DefaultTenant is returned when a path carries no tenant segment.
	DefaultTenant = "default"
	// DefaultPrefix is the API prefix the tenant segment follows.
	DefaultPrefix = "/api"

	databasePrefix = "tenant_"
)

// Resolver extracts the tenant identifier from the path segment that
// immediately follows a fixed prefix, e.g. /api/{tenant}/materials.
type Resolver struct {
	prefix string
}

func NewResolver(prefix string) *Resolver {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	return &Resolver{prefix: prefix}
}

// Resolve never fails: paths outside the prefix or without a tenant
// segment resolve to DefaultTenant. Case is preserved.
func (r *Resolver) Resolve(path string) string {
	rest, ok := strings.CutPrefix(path, r.prefix)
	if !ok {
		return DefaultTenant
	}
	if rest != "" && rest[0] != '/' {
		// "/apiary" does not live under "/api"
		return DefaultTenant
	}

	segment, _, _ := strings.Cut(strings.TrimLeft(rest, "/"), "/")
	if segment == "" {
		return DefaultTenant
	}
	return segment
}

func (r *Resolver) Prefix() string {
	return r.prefix
}

// DatabaseName derives the dedicated database name of a tenant: the name is
// lowercased and every rune outside [a-z0-9] becomes an underscore.
func DatabaseName(tenant string) string {
	var b strings.Builder
	b.Grow(len(databasePrefix) + len(tenant))
	b.WriteString(databasePrefix)

	for _, r := range strings.ToLower(tenant) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// reservedNames are path segments that never reach the tenant routes.
var reservedNames = map[string]bool{
	".":  true,
	"..": true,
	"v0": true,
}

// IsValidTenantName reports whether name can be used as a tenant identifier,
// that is whether Resolve can route a request to it.
func IsValidTenantName(name string) bool {
	if name == "" || len(name) > 56 || reservedNames[name] {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || r == '/' || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
