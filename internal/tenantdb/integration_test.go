// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/content"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/db"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/monitoring"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/provisioning"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/storage"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tenancy"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/tracing"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/migrations"
)

type testEnv struct {
	registry    *storage.Storage
	provisioner *provisioning.Provisioner
	pools       *Pools
	factory     *Factory
}

// newTestEnv wires the whole data path against the server at TEST_POSTGRES_DSN.
// The role behind it needs CREATEDB.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set, skipping tenant database integration tests")
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	control, err := db.NewDBClient(context.Background(), db.Config{DSN: dsn, MaxConns: 4}, tracer, monitor, logger)
	require.NoError(t, err)
	t.Cleanup(control.Close)

	config, err := pgx.ParseConfig(dsn)
	require.NoError(t, err)
	sqlDB := stdlib.OpenDB(*config)
	t.Cleanup(func() { _ = sqlDB.Close() })

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.EmbedMigrations)
	require.NoError(t, err)
	_, err = provider.Up(context.Background())
	require.NoError(t, err)

	env := new(testEnv)
	env.registry = storage.NewStorage(control, tracer, monitor, logger)
	env.pools = NewPools(PoolConfig{Template: dsn, MaxConns: 4}, tracer, monitor, logger)
	t.Cleanup(env.pools.Close)
	env.provisioner = provisioning.NewProvisioner(control, env.pools, tracer, monitor, logger)
	env.factory = NewFactory(env.registry, env.provisioner, env.pools, tracer, monitor, logger)

	return env
}

// newTenant registers a throwaway tenant and drops its database afterwards.
func (e *testEnv) newTenant(t *testing.T) string {
	t.Helper()

	name := fmt.Sprintf("itest-%d", time.Now().UnixNano())
	_, err := e.registry.CreateTenant(context.Background(), &types.Tenant{
		Name:        name,
		StorageKind: types.StorageKindOwnCloud,
		Directory:   name + "-files",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		assert.NoError(t, e.provisioner.DropDatabase(ctx, name))
		assert.NoError(t, e.registry.DeleteTenant(ctx, name))
	})
	return name
}

func (e *testEnv) contentFor(t *testing.T, tenant string) *content.Storage {
	t.Helper()

	h, err := e.factory.CreateContext(context.Background(), tenant, ProvisionIfMissing)
	require.NoError(t, err)
	return h.Content()
}

func TestProvisioningScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tenant := env.newTenant(t)

	_, err := env.factory.CreateContext(ctx, tenant, RequireExisting)
	require.ErrorIs(t, err, types.ErrUnknownTenant, "read paths must not provision")

	first, err := env.provisioner.EnsureDatabase(ctx, tenant)
	require.NoError(t, err)
	second, err := env.provisioner.EnsureDatabase(ctx, tenant)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.provisioner.CreateAllTables(ctx, tenant)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	tables, err := env.provisioner.ListExistingTables(ctx, tenant)
	require.NoError(t, err)
	assert.Subset(t, tables, provisioning.TableNames())

	again, err := env.provisioner.CreateAllTables(ctx, tenant)
	require.NoError(t, err)
	assert.Empty(t, again, "a second run must not create anything")

	h, err := env.factory.CreateContext(ctx, tenant, RequireExisting)
	require.NoError(t, err)
	assert.Equal(t, first, h.Database())
}

func TestConcurrentFirstUseProvisionsOnce(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.newTenant(t)

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.factory.CreateContext(context.Background(), tenant, ProvisionIfMissing)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestMaterialRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.contentFor(t, env.newTenant(t))

	asset, err := s.CreateAsset(ctx, &types.Asset{Filename: "intro.mp4", Source: "intro.mp4", FileType: "video/mp4", TenantName: "acme"})
	require.NoError(t, err)
	assetID := asset.ID
	score := 80.0

	materials := []*types.Material{
		types.NewMaterial("Intro", "welcome", &types.VideoPayload{
			AssetID: &assetID, Path: "/v/intro.mp4", Duration: 93.5, Resolution: "1920x1080",
			Timestamps: []types.VideoTimestamp{{Title: "start", Offset: 0}, {Title: "middle", Offset: 40.25, Description: "safety"}, {Title: "end", Offset: 90}},
		}),
		types.NewMaterial("Logo", "", &types.ImagePayload{Path: "/i/logo.png", Width: 640, Height: 480, Format: "png"}),
		types.NewMaterial("Manual", "", &types.PDFPayload{Path: "/d/manual.pdf", PageCount: 12, FileSize: 1 << 20}),
		types.NewMaterial("Preflight", "", &types.ChecklistPayload{Entries: []types.ChecklistEntry{{Text: "Gloves"}, {Text: "Goggles", Description: "clear lens"}}}),
		types.NewMaterial("Onboarding", "", &types.WorkflowPayload{Steps: []types.WorkflowStep{{Title: "Intro"}, {Title: "Setup"}, {Title: "Review"}}}),
		types.NewMaterial("Quiz", "", &types.QuestionnairePayload{
			QuestionnaireType: "multiple_choice", PassingScore: &score, Config: json.RawMessage(`{"shuffle": true}`),
			Entries: []types.QuestionnaireEntry{{Text: "Q1"}, {Text: "Q2"}},
		}),
		types.NewMaterial("Helper", "", &types.ChatbotPayload{Config: json.RawMessage(`{"temperature": 0.2}`), Model: "small", Prompt: "You help."}),
		types.NewMaterial("Alarm", "", &types.MQTTTemplatePayload{MessageType: "alert", MessageText: "{{machine}} stopped"}),
		types.NewMaterial("Blob", "", &types.DefaultPayload{AssetID: &assetID}),
	}

	for _, m := range materials {
		t.Run(string(m.Kind), func(t *testing.T) {
			created, err := s.CreateMaterial(ctx, m)
			require.NoError(t, err)
			require.NotEmpty(t, created.ID)
			assert.Equal(t, int64(1), created.Version)
			assert.False(t, created.CreatedAt.IsZero())

			loaded, err := s.GetMaterial(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, m.Kind, loaded.Kind)
			assert.Equal(t, m.Name, loaded.Name)
			assertPayloadEqual(t, m.Payload, loaded.Payload)
		})
	}

	wf, err := s.ListMaterials(ctx, types.KindWorkflow)
	require.NoError(t, err)
	require.Len(t, wf, 1)
	steps, err := wf[0].Workflow()
	require.NoError(t, err)
	require.Len(t, steps.Steps, 3)
	assert.Equal(t, []string{"Intro", "Setup", "Review"}, []string{steps.Steps[0].Title, steps.Steps[1].Title, steps.Steps[2].Title})

	_, err = wf[0].Video()
	assert.ErrorIs(t, err, types.ErrWrongKind)
}

// assertPayloadEqual compares payloads through their JSON form.
func assertPayloadEqual(t *testing.T, expected, actual types.MaterialPayload) {
	t.Helper()

	e, err := json.Marshal(expected)
	require.NoError(t, err)
	a, err := json.Marshal(actual)
	require.NoError(t, err)
	assert.JSONEq(t, string(e), string(a))
}

func TestLedger(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.contentFor(t, env.newTenant(t))

	path, err := s.CreateLearningPath(ctx, &types.LearningPath{Name: "Basics"})
	require.NoError(t, err)
	m, err := s.CreateMaterial(ctx, types.NewMaterial("Intro", "", &types.DefaultPayload{}))
	require.NoError(t, err)
	other, err := s.CreateMaterial(ctx, types.NewMaterial("Outro", "", &types.DefaultPayload{}))
	require.NoError(t, err)

	one, five := 1, 5
	_, err = s.UpsertRelationship(ctx, &types.MaterialRelationship{MaterialID: m.ID, RelatedID: path.ID, RelatedKind: types.RelatedLearningPath, RelationshipType: types.RelationshipContains, DisplayOrder: &one})
	require.NoError(t, err)
	_, err = s.UpsertRelationship(ctx, &types.MaterialRelationship{MaterialID: m.ID, RelatedID: path.ID, RelatedKind: types.RelatedLearningPath, RelationshipType: types.RelationshipAssigned, DisplayOrder: &one})
	require.NoError(t, err)
	_, err = s.UpsertRelationship(ctx, &types.MaterialRelationship{MaterialID: other.ID, RelatedID: path.ID, RelatedKind: types.RelatedLearningPath, RelationshipType: types.RelationshipContains})
	require.NoError(t, err)

	rels, err := s.ListRelationshipsByMaterial(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, rels, 1, "assignment must be idempotent")
	assert.Equal(t, types.RelationshipAssigned, rels[0].RelationshipType)

	err = s.ReorderRelationships(ctx, types.RelatedLearningPath, path.ID, map[string]int{m.ID: 5, "not-assigned": 1})
	require.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, s.ReorderRelationships(ctx, types.RelatedLearningPath, path.ID, map[string]int{m.ID: five}))
	rels, err = s.ListRelationshipsByRelated(ctx, types.RelatedLearningPath, path.ID)
	require.NoError(t, err)
	require.Len(t, rels, 2)
	assert.Equal(t, m.ID, rels[0].MaterialID)
	require.NotNil(t, rels[0].DisplayOrder)
	assert.Equal(t, 5, *rels[0].DisplayOrder)
	assert.Nil(t, rels[1].DisplayOrder, "unordered rows sort last")

	require.NoError(t, s.DeleteRelationship(ctx, other.ID, types.RelatedLearningPath, path.ID))
	require.ErrorIs(t, s.DeleteRelationship(ctx, other.ID, types.RelatedLearningPath, path.ID), types.ErrNotFound)

	require.NoError(t, s.DeleteMaterial(ctx, m.ID))
	rels, err = s.ListRelationshipsByRelated(ctx, types.RelatedLearningPath, path.ID)
	require.NoError(t, err)
	assert.Empty(t, rels)
	require.ErrorIs(t, s.DeleteMaterial(ctx, m.ID), types.ErrNotFound)
}

func TestRelatedDeleteCascadesLedger(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.contentFor(t, env.newTenant(t))

	program, err := s.CreateTrainingProgram(ctx, &types.TrainingProgram{Name: "Safety"})
	require.NoError(t, err)
	path, err := s.CreateLearningPath(ctx, &types.LearningPath{Name: "Basics"})
	require.NoError(t, err)
	m, err := s.CreateMaterial(ctx, types.NewMaterial("Intro", "", &types.DefaultPayload{}))
	require.NoError(t, err)

	_, err = s.UpsertRelationship(ctx, &types.MaterialRelationship{MaterialID: m.ID, RelatedID: program.ID, RelatedKind: types.RelatedTrainingProgram, RelationshipType: types.RelationshipAssigned})
	require.NoError(t, err)
	require.NoError(t, s.AddProgramLearningPath(ctx, program.ID, path.ID, nil))

	paths, err := s.ListProgramLearningPaths(ctx, program.ID)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	require.NoError(t, s.DeleteTrainingProgram(ctx, program.ID))
	rels, err := s.ListRelationshipsByMaterial(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, rels)

	exists, err := s.LearningPathExists(ctx, path.ID)
	require.NoError(t, err)
	assert.True(t, exists, "paths outlive the programs they belong to")
}

// assignUnderLock writes a ledger row the way material assignment does: the path row is
// share-locked in the same transaction as the upsert.
func assignUnderLock(ctx context.Context, s *content.Storage, materialID, pathID string) error {
	return s.WithTx(ctx, func(ctx context.Context) error {
		ok, err := s.LockLearningPath(ctx, pathID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("learning path %s: %w", pathID, types.ErrNotFound)
		}
		_, err = s.UpsertRelationship(ctx, &types.MaterialRelationship{MaterialID: materialID, RelatedID: pathID, RelatedKind: types.RelatedLearningPath, RelationshipType: types.RelationshipAssigned})
		return err
	})
}

func TestPathDeleteWaitsForAssignment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.contentFor(t, env.newTenant(t))

	path, err := s.CreateLearningPath(ctx, &types.LearningPath{Name: "Basics"})
	require.NoError(t, err)
	m, err := s.CreateMaterial(ctx, types.NewMaterial("Intro", "", &types.DefaultPayload{}))
	require.NoError(t, err)

	deleted := make(chan error, 1)
	err = s.WithTx(ctx, func(txCtx context.Context) error {
		ok, err := s.LockLearningPath(txCtx, path.ID)
		if err != nil || !ok {
			return fmt.Errorf("path not locked: %v", err)
		}
		if _, err := s.UpsertRelationship(txCtx, &types.MaterialRelationship{MaterialID: m.ID, RelatedID: path.ID, RelatedKind: types.RelatedLearningPath, RelationshipType: types.RelationshipAssigned}); err != nil {
			return err
		}

		go func() { deleted <- s.DeleteLearningPath(ctx, path.ID) }()

		select {
		case err := <-deleted:
			return fmt.Errorf("delete finished while the path was locked: %v", err)
		case <-time.After(300 * time.Millisecond):
		}
		return nil
	})
	require.NoError(t, err)

	select {
	case err := <-deleted:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("delete never finished")
	}

	rels, err := s.ListRelationshipsByMaterial(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, rels, "no ledger row may outlive its learning path")
}

func TestAssignmentAfterPathDeleteFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.contentFor(t, env.newTenant(t))

	path, err := s.CreateLearningPath(ctx, &types.LearningPath{Name: "Basics"})
	require.NoError(t, err)
	m, err := s.CreateMaterial(ctx, types.NewMaterial("Intro", "", &types.DefaultPayload{}))
	require.NoError(t, err)

	assigned := make(chan error, 1)
	err = s.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.DeleteLearningPath(txCtx, path.ID); err != nil {
			return err
		}

		go func() { assigned <- assignUnderLock(ctx, s, m.ID, path.ID) }()

		select {
		case err := <-assigned:
			return fmt.Errorf("assignment finished while the delete was open: %v", err)
		case <-time.After(300 * time.Millisecond):
		}
		return nil
	})
	require.NoError(t, err)

	select {
	case err := <-assigned:
		require.ErrorIs(t, err, types.ErrNotFound)
	case <-time.After(10 * time.Second):
		t.Fatal("assignment never finished")
	}

	rels, err := s.ListRelationshipsByMaterial(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, rels)
}

func TestEmptyAssetIDReadsBackAsNone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.contentFor(t, env.newTenant(t))

	empty := ""
	created, err := s.CreateMaterial(ctx, types.NewMaterial("Manual", "", &types.PDFPayload{AssetID: &empty}))
	require.NoError(t, err)

	loaded, err := s.GetMaterial(ctx, created.ID)
	require.NoError(t, err)
	assertPayloadEqual(t, created.Payload, loaded.Payload)

	pdf, err := loaded.PDF()
	require.NoError(t, err)
	assert.Nil(t, pdf.AssetID)
}

func TestAssetDeletionIsBlockedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.contentFor(t, env.newTenant(t))

	asset, err := s.CreateAsset(ctx, &types.Asset{Filename: "manual.pdf", Source: "manual.pdf", TenantName: "acme"})
	require.NoError(t, err)
	assetID := asset.ID

	m, err := s.CreateMaterial(ctx, types.NewMaterial("Manual", "", &types.PDFPayload{AssetID: &assetID}))
	require.NoError(t, err)

	ids, err := s.MaterialIDsByAsset(ctx, assetID)
	require.NoError(t, err)
	assert.Equal(t, []string{m.ID}, ids)

	require.ErrorIs(t, s.DeleteAsset(ctx, assetID), types.ErrConstraintViolation)

	require.NoError(t, s.DeleteMaterial(ctx, m.ID))
	require.NoError(t, s.DeleteAsset(ctx, assetID))
	require.ErrorIs(t, s.DeleteAsset(ctx, assetID), types.ErrNotFound)

	missing := "missing"
	_, err = s.CreateMaterial(ctx, types.NewMaterial("Broken", "", &types.PDFPayload{AssetID: &missing}))
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestConcurrentUpdatesConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.contentFor(t, env.newTenant(t))

	created, err := s.CreateMaterial(ctx, types.NewMaterial("Alarm", "", &types.MQTTTemplatePayload{MessageType: "alert"}))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m := *created
			m.Payload = &types.MQTTTemplatePayload{MessageType: "alert", MessageText: fmt.Sprintf("writer %d", i)}
			_, errs[i] = s.UpdateMaterial(ctx, &m)
		}(i)
	}
	wg.Wait()

	conflicts := 0
	for _, err := range errs {
		if errors.Is(err, types.ErrConcurrencyConflict) {
			conflicts++
			continue
		}
		require.NoError(t, err)
	}
	assert.Equal(t, 1, conflicts)

	loaded, err := s.GetMaterial(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.Version)

	stale := *created
	stale.Kind = types.KindDefault
	stale.Payload = &types.DefaultPayload{}
	_, err = s.UpdateMaterial(ctx, &stale)
	assert.ErrorIs(t, err, types.ErrWrongKind)
}

func TestDroppedTenantIsUnknown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tenant := env.newTenant(t)

	_, err := env.factory.CreateContext(ctx, tenant, ProvisionIfMissing)
	require.NoError(t, err)

	require.NoError(t, env.provisioner.DropDatabase(ctx, tenant))

	_, err = env.factory.CreateContext(ctx, tenant, RequireExisting)
	assert.ErrorIs(t, err, types.ErrUnknownTenant)

	var exists bool
	err = openControl(t).QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", tenancy.DatabaseName(tenant)).Scan(&exists)
	require.NoError(t, err)
	assert.False(t, exists)
}

func openControl(t *testing.T) *sql.DB {
	t.Helper()

	config, err := pgx.ParseConfig(os.Getenv("TEST_POSTGRES_DSN"))
	require.NoError(t, err)
	sqlDB := stdlib.OpenDB(*config)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}
