// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// attrCodec persists the kind specific columns of a material in its attribute table.
type attrCodec struct {
	table   string
	columns []string
	// assetColumn is empty for kinds that cannot reference an asset.
	assetColumn string
	values      func(types.MaterialPayload) []interface{}
	dest        func(types.MaterialPayload) []interface{}
}

// childCodec persists an owned child collection. Rows keep the slice order in position.
type childCodec struct {
	table   string
	columns []string
	present func(types.MaterialPayload) bool
	count   func(types.MaterialPayload) int
	// row assigns a fresh id to child i and returns its column values.
	row   func(p types.MaterialPayload, i int) (string, []interface{})
	scan  func(sq.RowScanner, types.MaterialPayload) error
	reset func(types.MaterialPayload)
}

type kindCodec struct {
	attrs    *attrCodec
	children *childCodec
}

// codecs is the storage dispatch table. A new kind needs one entry here and one payload factory.
var codecs = map[types.MaterialKind]kindCodec{
	types.KindVideo: {
		attrs: &attrCodec{
			table:       "material_videos",
			columns:     []string{"asset_id", "path", "duration", "resolution"},
			assetColumn: "asset_id",
			values: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.VideoPayload)
				return []interface{}{nullAssetID(v.AssetID), v.Path, v.Duration, v.Resolution}
			},
			dest: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.VideoPayload)
				return []interface{}{&v.AssetID, &v.Path, &v.Duration, &v.Resolution}
			},
		},
		children: childrenOf("video_timestamps", []string{"title", "time_offset", "description"},
			func(p types.MaterialPayload) *[]types.VideoTimestamp { return &p.(*types.VideoPayload).Timestamps },
			func(c *types.VideoTimestamp) (*string, []interface{}, []interface{}) {
				return &c.ID, []interface{}{c.Title, c.Offset, c.Description}, []interface{}{&c.Title, &c.Offset, &c.Description}
			},
		),
	},
	types.KindImage: {
		attrs: &attrCodec{
			table:       "material_images",
			columns:     []string{"asset_id", "path", "width", "height", "format"},
			assetColumn: "asset_id",
			values: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.ImagePayload)
				return []interface{}{nullAssetID(v.AssetID), v.Path, v.Width, v.Height, v.Format}
			},
			dest: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.ImagePayload)
				return []interface{}{&v.AssetID, &v.Path, &v.Width, &v.Height, &v.Format}
			},
		},
	},
	types.KindPDF: {
		attrs: &attrCodec{
			table:       "material_pdfs",
			columns:     []string{"asset_id", "path", "page_count", "file_size"},
			assetColumn: "asset_id",
			values: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.PDFPayload)
				return []interface{}{nullAssetID(v.AssetID), v.Path, v.PageCount, v.FileSize}
			},
			dest: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.PDFPayload)
				return []interface{}{&v.AssetID, &v.Path, &v.PageCount, &v.FileSize}
			},
		},
	},
	types.KindChecklist: {
		children: childrenOf("checklist_entries", []string{"text", "description"},
			func(p types.MaterialPayload) *[]types.ChecklistEntry { return &p.(*types.ChecklistPayload).Entries },
			func(c *types.ChecklistEntry) (*string, []interface{}, []interface{}) {
				return &c.ID, []interface{}{c.Text, c.Description}, []interface{}{&c.Text, &c.Description}
			},
		),
	},
	types.KindWorkflow: {
		children: childrenOf("workflow_steps", []string{"title", "content"},
			func(p types.MaterialPayload) *[]types.WorkflowStep { return &p.(*types.WorkflowPayload).Steps },
			func(c *types.WorkflowStep) (*string, []interface{}, []interface{}) {
				return &c.ID, []interface{}{c.Title, c.Content}, []interface{}{&c.Title, &c.Content}
			},
		),
	},
	types.KindQuestionnaire: {
		attrs: &attrCodec{
			table:   "material_questionnaires",
			columns: []string{"questionnaire_type", "passing_score", "config"},
			values: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.QuestionnairePayload)
				return []interface{}{v.QuestionnaireType, nullFloat(v.PassingScore), nullJSON(v.Config)}
			},
			dest: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.QuestionnairePayload)
				return []interface{}{&v.QuestionnaireType, &v.PassingScore, (*[]byte)(&v.Config)}
			},
		},
		children: childrenOf("questionnaire_entries", []string{"text", "description"},
			func(p types.MaterialPayload) *[]types.QuestionnaireEntry {
				return &p.(*types.QuestionnairePayload).Entries
			},
			func(c *types.QuestionnaireEntry) (*string, []interface{}, []interface{}) {
				return &c.ID, []interface{}{c.Text, c.Description}, []interface{}{&c.Text, &c.Description}
			},
		),
	},
	types.KindChatbot: {
		attrs: &attrCodec{
			table:   "material_chatbots",
			columns: []string{"config", "model", "prompt"},
			values: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.ChatbotPayload)
				return []interface{}{nullJSON(v.Config), v.Model, v.Prompt}
			},
			dest: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.ChatbotPayload)
				return []interface{}{(*[]byte)(&v.Config), &v.Model, &v.Prompt}
			},
		},
	},
	types.KindMQTTTemplate: {
		attrs: &attrCodec{
			table:   "material_mqtt_templates",
			columns: []string{"message_type", "message_text"},
			values: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.MQTTTemplatePayload)
				return []interface{}{v.MessageType, v.MessageText}
			},
			dest: func(p types.MaterialPayload) []interface{} {
				v := p.(*types.MQTTTemplatePayload)
				return []interface{}{&v.MessageType, &v.MessageText}
			},
		},
	},
	types.KindDefault: {
		attrs: &attrCodec{
			table:       "material_defaults",
			columns:     []string{"asset_id"},
			assetColumn: "asset_id",
			values: func(p types.MaterialPayload) []interface{} {
				return []interface{}{nullAssetID(p.(*types.DefaultPayload).AssetID)}
			},
			dest: func(p types.MaterialPayload) []interface{} {
				return []interface{}{&p.(*types.DefaultPayload).AssetID}
			},
		},
	},
}

func childrenOf[C any](
	table string,
	columns []string,
	slice func(types.MaterialPayload) *[]C,
	fields func(*C) (id *string, values []interface{}, dest []interface{}),
) *childCodec {
	return &childCodec{
		table:   table,
		columns: columns,
		present: func(p types.MaterialPayload) bool { return *slice(p) != nil },
		count:   func(p types.MaterialPayload) int { return len(*slice(p)) },
		row: func(p types.MaterialPayload, i int) (string, []interface{}) {
			id, values, _ := fields(&(*slice(p))[i])
			*id = newID()
			return *id, values
		},
		scan: func(row sq.RowScanner, p types.MaterialPayload) error {
			var c C
			id, _, dest := fields(&c)
			if err := row.Scan(append([]interface{}{id}, dest...)...); err != nil {
				return err
			}
			s := slice(p)
			*s = append(*s, c)
			return nil
		},
		reset: func(p types.MaterialPayload) { *slice(p) = nil },
	}
}

func codecFor(kind types.MaterialKind) (kindCodec, error) {
	c, ok := codecs[kind]
	if !ok {
		return kindCodec{}, fmt.Errorf("unknown material kind %q: %w", kind, types.ErrInvalidArgument)
	}
	return c, nil
}

// saveAttributes inserts or overwrites the attribute row of a material.
func (s *Storage) saveAttributes(ctx context.Context, c kindCodec, id string, p types.MaterialPayload) error {
	if c.attrs == nil {
		return nil
	}

	updates := make([]string, 0, len(c.attrs.columns))
	for _, col := range c.attrs.columns {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	_, err := s.db.Statement(ctx).
		Insert(c.attrs.table).
		Columns(append([]string{"material_id"}, c.attrs.columns...)...).
		Values(append([]interface{}{id}, c.attrs.values(p)...)...).
		Suffix("ON CONFLICT (material_id) DO UPDATE SET " + strings.Join(updates, ", ")).
		ExecContext(ctx)
	if err != nil {
		return mapWriteError(fmt.Sprintf("%s attributes", c.attrs.table), err)
	}
	return nil
}

func (s *Storage) loadAttributes(ctx context.Context, c kindCodec, id string, p types.MaterialPayload) error {
	if c.attrs == nil {
		return nil
	}

	err := s.db.Statement(ctx).
		Select(c.attrs.columns...).
		From(c.attrs.table).
		Where(sq.Eq{"material_id": id}).
		QueryRowContext(ctx).
		Scan(c.attrs.dest(p)...)
	// a material without an attribute row keeps the zero payload
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to load %s: %w", c.attrs.table, err)
	}
	return nil
}

// replaceChildren swaps the stored child collection for the one carried by p.
// A nil collection leaves the stored rows untouched.
func (s *Storage) replaceChildren(ctx context.Context, c kindCodec, id string, p types.MaterialPayload) error {
	if c.children == nil || !c.children.present(p) {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Delete(c.children.table).
		Where(sq.Eq{"material_id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", c.children.table, err)
	}

	n := c.children.count(p)
	if n == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert(c.children.table).
		Columns(append([]string{"id", "material_id", "position"}, c.children.columns...)...)
	for i := 0; i < n; i++ {
		childID, values := c.children.row(p, i)
		insert = insert.Values(append([]interface{}{childID, id, i}, values...)...)
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		return mapWriteError(c.children.table, err)
	}
	return nil
}

func (s *Storage) loadChildren(ctx context.Context, c kindCodec, id string, p types.MaterialPayload) error {
	if c.children == nil {
		return nil
	}

	rows, err := s.db.Statement(ctx).
		Select(append([]string{"id"}, c.children.columns...)...).
		From(c.children.table).
		Where(sq.Eq{"material_id": id}).
		OrderBy("position").
		QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", c.children.table, err)
	}
	defer rows.Close()

	c.children.reset(p)
	for rows.Next() {
		if err := c.children.scan(rows, p); err != nil {
			return fmt.Errorf("failed to scan %s: %w", c.children.table, err)
		}
	}
	return rows.Err()
}

// assetTables returns the attribute tables holding an asset reference.
func assetTables() []*attrCodec {
	out := make([]*attrCodec, 0)
	for _, kind := range types.MaterialKinds() {
		if a := codecs[kind].attrs; a != nil && a.assetColumn != "" {
			out = append(out, a)
		}
	}
	return out
}

// nullAssetID maps a missing asset reference to NULL. An empty id is no reference either:
// asset_id is a foreign key, so "" cannot be kept as a value of its own.
func nullAssetID(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

// clearEmptyAssetRef turns an empty asset id into no asset id, so a written payload equals
// the one read back.
func clearEmptyAssetRef(p types.MaterialPayload) {
	var ref **string
	switch v := p.(type) {
	case *types.VideoPayload:
		ref = &v.AssetID
	case *types.ImagePayload:
		ref = &v.AssetID
	case *types.PDFPayload:
		ref = &v.AssetID
	case *types.DefaultPayload:
		ref = &v.AssetID
	default:
		return
	}
	if *ref != nil && **ref == "" {
		*ref = nil
	}
}

func nullFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func nullJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
