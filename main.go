// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/cmd"

func main() {
	cmd.Execute()
}
