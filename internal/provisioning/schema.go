// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"strings"

	"github.com/lib/pq"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

type tableDef struct {
	name string
	ddl  string
}

// tenantSchema lists the tables of a tenant database in dependency order.
var tenantSchema = []tableDef{
	{"users", `CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		login         TEXT NOT NULL UNIQUE,
		display_name  TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		admin         BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"training_programs", `CREATE TABLE IF NOT EXISTS training_programs (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		use_case    TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"learning_paths", `CREATE TABLE IF NOT EXISTS learning_paths (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"assets", `CREATE TABLE IF NOT EXISTS assets (
		id          TEXT PRIMARY KEY,
		filename    TEXT NOT NULL,
		source      TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		file_type   TEXT NOT NULL DEFAULT '',
		tenant_name TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"materials", `CREATE TABLE IF NOT EXISTS materials (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		kind        TEXT NOT NULL CHECK (kind IN (` + kindList() + `)),
		version     BIGINT NOT NULL DEFAULT 1,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"material_videos", `CREATE TABLE IF NOT EXISTS material_videos (
		material_id TEXT PRIMARY KEY REFERENCES materials (id) ON DELETE CASCADE,
		asset_id    TEXT REFERENCES assets (id),
		path        TEXT NOT NULL DEFAULT '',
		duration    DOUBLE PRECISION NOT NULL DEFAULT 0,
		resolution  TEXT NOT NULL DEFAULT ''
	)`},
	{"material_images", `CREATE TABLE IF NOT EXISTS material_images (
		material_id TEXT PRIMARY KEY REFERENCES materials (id) ON DELETE CASCADE,
		asset_id    TEXT REFERENCES assets (id),
		path        TEXT NOT NULL DEFAULT '',
		width       INTEGER NOT NULL DEFAULT 0,
		height      INTEGER NOT NULL DEFAULT 0,
		format      TEXT NOT NULL DEFAULT ''
	)`},
	{"material_pdfs", `CREATE TABLE IF NOT EXISTS material_pdfs (
		material_id TEXT PRIMARY KEY REFERENCES materials (id) ON DELETE CASCADE,
		asset_id    TEXT REFERENCES assets (id),
		path        TEXT NOT NULL DEFAULT '',
		page_count  INTEGER NOT NULL DEFAULT 0,
		file_size   BIGINT NOT NULL DEFAULT 0
	)`},
	{"material_questionnaires", `CREATE TABLE IF NOT EXISTS material_questionnaires (
		material_id        TEXT PRIMARY KEY REFERENCES materials (id) ON DELETE CASCADE,
		questionnaire_type TEXT NOT NULL DEFAULT '',
		passing_score      DOUBLE PRECISION,
		config             JSONB
	)`},
	{"material_chatbots", `CREATE TABLE IF NOT EXISTS material_chatbots (
		material_id TEXT PRIMARY KEY REFERENCES materials (id) ON DELETE CASCADE,
		config      JSONB,
		model       TEXT NOT NULL DEFAULT '',
		prompt      TEXT NOT NULL DEFAULT ''
	)`},
	{"material_mqtt_templates", `CREATE TABLE IF NOT EXISTS material_mqtt_templates (
		material_id  TEXT PRIMARY KEY REFERENCES materials (id) ON DELETE CASCADE,
		message_type TEXT NOT NULL DEFAULT '',
		message_text TEXT NOT NULL DEFAULT ''
	)`},
	{"material_defaults", `CREATE TABLE IF NOT EXISTS material_defaults (
		material_id TEXT PRIMARY KEY REFERENCES materials (id) ON DELETE CASCADE,
		asset_id    TEXT REFERENCES assets (id)
	)`},
	{"video_timestamps", `CREATE TABLE IF NOT EXISTS video_timestamps (
		id          TEXT PRIMARY KEY,
		material_id TEXT NOT NULL REFERENCES materials (id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		title       TEXT NOT NULL,
		time_offset DOUBLE PRECISION NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT ''
	)`},
	{"checklist_entries", `CREATE TABLE IF NOT EXISTS checklist_entries (
		id          TEXT PRIMARY KEY,
		material_id TEXT NOT NULL REFERENCES materials (id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		text        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)`},
	{"workflow_steps", `CREATE TABLE IF NOT EXISTS workflow_steps (
		id          TEXT PRIMARY KEY,
		material_id TEXT NOT NULL REFERENCES materials (id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		title       TEXT NOT NULL,
		content     TEXT NOT NULL DEFAULT ''
	)`},
	{"questionnaire_entries", `CREATE TABLE IF NOT EXISTS questionnaire_entries (
		id          TEXT PRIMARY KEY,
		material_id TEXT NOT NULL REFERENCES materials (id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		text        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)`},
	{"material_relationships", `CREATE TABLE IF NOT EXISTS material_relationships (
		id                TEXT PRIMARY KEY,
		material_id       TEXT NOT NULL REFERENCES materials (id) ON DELETE CASCADE,
		related_id        TEXT NOT NULL,
		related_kind      TEXT NOT NULL,
		relationship_type TEXT NOT NULL,
		display_order     INTEGER,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT material_relationships_pair_key UNIQUE (material_id, related_id, related_kind)
	)`},
	{"training_program_learning_paths", `CREATE TABLE IF NOT EXISTS training_program_learning_paths (
		program_id       TEXT NOT NULL REFERENCES training_programs (id) ON DELETE CASCADE,
		learning_path_id TEXT NOT NULL REFERENCES learning_paths (id) ON DELETE CASCADE,
		display_order    INTEGER,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (program_id, learning_path_id)
	)`},
}

var tenantIndexes = []string{
	`CREATE INDEX IF NOT EXISTS materials_kind_idx ON materials (kind)`,
	`CREATE INDEX IF NOT EXISTS material_relationships_related_idx ON material_relationships (related_kind, related_id, display_order)`,
	`CREATE INDEX IF NOT EXISTS material_videos_asset_idx ON material_videos (asset_id)`,
	`CREATE INDEX IF NOT EXISTS material_images_asset_idx ON material_images (asset_id)`,
	`CREATE INDEX IF NOT EXISTS material_pdfs_asset_idx ON material_pdfs (asset_id)`,
	`CREATE INDEX IF NOT EXISTS material_defaults_asset_idx ON material_defaults (asset_id)`,
	`CREATE INDEX IF NOT EXISTS video_timestamps_material_idx ON video_timestamps (material_id, position)`,
	`CREATE INDEX IF NOT EXISTS checklist_entries_material_idx ON checklist_entries (material_id, position)`,
	`CREATE INDEX IF NOT EXISTS workflow_steps_material_idx ON workflow_steps (material_id, position)`,
	`CREATE INDEX IF NOT EXISTS questionnaire_entries_material_idx ON questionnaire_entries (material_id, position)`,
	`CREATE INDEX IF NOT EXISTS training_program_learning_paths_path_idx ON training_program_learning_paths (learning_path_id)`,
}

// TableNames returns the domain tables of a tenant database in creation order.
func TableNames() []string {
	names := make([]string, 0, len(tenantSchema))
	for _, t := range tenantSchema {
		names = append(names, t.name)
	}
	return names
}

func kindList() string {
	kinds := types.MaterialKinds()
	quoted := make([]string, 0, len(kinds))
	for _, k := range kinds {
		quoted = append(quoted, pq.QuoteLiteral(string(k)))
	}
	return strings.Join(quoted, ", ")
}
