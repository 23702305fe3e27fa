// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

// PingerInterface is the control database as far as readiness is concerned.
type PingerInterface interface {
	Ping(context.Context) error
}
