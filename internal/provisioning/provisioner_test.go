// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_provisioning.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_db.go -source=../db/interfaces.go

func newTestProvisioner(ctrl *gomock.Controller) (*Provisioner, *MockDBClientInterface, *MockPoolsInterface) {
	logger := logging.NewNoopLogger()
	control := NewMockDBClientInterface(ctrl)
	pools := NewMockPoolsInterface(ctrl)

	p := NewProvisioner(control, pools, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	return p, control, pools
}

func TestRebuildDatabaseRequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestProvisioner(ctrl)

	created, err := p.RebuildDatabase(context.Background(), "acme", false)
	if !errors.Is(err, types.ErrDataLossNotConfirmed) {
		t.Fatalf("expected ErrDataLossNotConfirmed, got %v", err)
	}
	if created != nil {
		t.Fatalf("expected nothing to be created, got %v", created)
	}
}

func TestProvisioningFailuresAreTyped(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name  string
		setup func(*MockDBClientInterface, *MockPoolsInterface)
		call  func(*Provisioner) error
	}{
		{
			name: "ensure database",
			setup: func(control *MockDBClientInterface, _ *MockPoolsInterface) {
				control.EXPECT().Conn(gomock.Any()).Return(nil, cause)
			},
			call: func(p *Provisioner) error {
				_, err := p.EnsureDatabase(context.Background(), "acme")
				return err
			},
		},
		{
			name: "create all tables",
			setup: func(control *MockDBClientInterface, _ *MockPoolsInterface) {
				control.EXPECT().Conn(gomock.Any()).Return(nil, cause)
			},
			call: func(p *Provisioner) error {
				_, err := p.CreateAllTables(context.Background(), "acme")
				return err
			},
		},
		{
			name: "provision",
			setup: func(control *MockDBClientInterface, _ *MockPoolsInterface) {
				control.EXPECT().Conn(gomock.Any()).Return(nil, cause)
			},
			call: func(p *Provisioner) error {
				_, err := p.Provision(context.Background(), "acme")
				return err
			},
		},
		{
			name: "drop evicts the pool first",
			setup: func(control *MockDBClientInterface, pools *MockPoolsInterface) {
				gomock.InOrder(
					pools.EXPECT().Evict("tenant_acme"),
					control.EXPECT().Conn(gomock.Any()).Return(nil, cause),
				)
			},
			call: func(p *Provisioner) error {
				return p.DropDatabase(context.Background(), "acme")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, control, pools := newTestProvisioner(ctrl)
			tt.setup(control, pools)

			err := tt.call(p)
			if !errors.Is(err, types.ErrProvisioningFailed) {
				t.Fatalf("expected ErrProvisioningFailed, got %v", err)
			}
			if !errors.Is(err, cause) {
				t.Fatalf("expected the cause to be kept, got %v", err)
			}

			var pe *types.ProvisioningError
			if !errors.As(err, &pe) || pe.Tenant != "acme" {
				t.Fatalf("expected a provisioning error for acme, got %#v", err)
			}
		})
	}
}

func TestSchemaIsOrderedByDependency(t *testing.T) {
	references := regexp.MustCompile(`REFERENCES (\w+)`)

	seen := make([]string, 0, len(tenantSchema))
	for _, table := range tenantSchema {
		if !strings.Contains(table.ddl, "CREATE TABLE IF NOT EXISTS "+table.name+" (") {
			t.Fatalf("ddl of %s does not create it idempotently", table.name)
		}

		for _, m := range references.FindAllStringSubmatch(table.ddl, -1) {
			if m[1] != table.name && !slices.Contains(seen, m[1]) {
				t.Fatalf("%s references %s before it is created", table.name, m[1])
			}
		}
		seen = append(seen, table.name)
	}

	for _, index := range tenantIndexes {
		if !strings.HasPrefix(index, "CREATE INDEX IF NOT EXISTS ") {
			t.Fatalf("index is not idempotent: %s", index)
		}
	}
}

func TestSchemaCoversEveryKind(t *testing.T) {
	var materials string
	for _, table := range tenantSchema {
		if table.name == "materials" {
			materials = table.ddl
		}
	}

	for _, kind := range types.MaterialKinds() {
		if !strings.Contains(materials, "'"+string(kind)+"'") {
			t.Fatalf("materials kind check does not allow %q", kind)
		}
	}

	for _, required := range []string{"users", "training_programs", "learning_paths", "materials", "material_relationships", "training_program_learning_paths", "workflow_steps", "video_timestamps", "checklist_entries", "questionnaire_entries"} {
		if !slices.Contains(TableNames(), required) {
			t.Fatalf("schema misses table %s", required)
		}
	}
}
