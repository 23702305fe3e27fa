// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"errors"
	"testing"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

// fakeRow scans a fixed tuple, the way database/sql assigns matching types.
type fakeRow []interface{}

func (r fakeRow) Scan(dest ...interface{}) error {
	if len(dest) != len(r) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r[i].(string)
		case *float64:
			*p = r[i].(float64)
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

func TestEveryKindHasACodec(t *testing.T) {
	for _, kind := range types.MaterialKinds() {
		c, err := codecFor(kind)
		if err != nil {
			t.Fatalf("kind %q: %v", kind, err)
		}
		if c.attrs == nil && c.children == nil && kind != types.KindDefault {
			t.Fatalf("kind %q stores nothing of its own", kind)
		}

		p, _ := types.NewPayload(kind)
		if c.attrs != nil {
			if n := len(c.attrs.values(p)); n != len(c.attrs.columns) {
				t.Fatalf("kind %q: %d values for %d columns", kind, n, len(c.attrs.columns))
			}
			if n := len(c.attrs.dest(p)); n != len(c.attrs.columns) {
				t.Fatalf("kind %q: %d destinations for %d columns", kind, n, len(c.attrs.columns))
			}
		}
	}

	if _, err := codecFor("hologram"); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestChildCodecsMatchPayloadKinds(t *testing.T) {
	withChildren := map[types.MaterialKind]bool{
		types.KindVideo:         true,
		types.KindChecklist:     true,
		types.KindWorkflow:      true,
		types.KindQuestionnaire: true,
	}

	for _, kind := range types.MaterialKinds() {
		if got := codecs[kind].children != nil; got != withChildren[kind] {
			t.Fatalf("kind %q: children codec present %v, expected %v", kind, got, withChildren[kind])
		}
	}
}

func TestWorkflowChildCodecKeepsOrder(t *testing.T) {
	c := codecs[types.KindWorkflow].children
	p := &types.WorkflowPayload{Steps: []types.WorkflowStep{{Title: "Intro"}, {Title: "Setup", Content: "install"}, {Title: "Review"}}}

	if !c.present(p) || c.count(p) != 3 {
		t.Fatalf("expected 3 present steps")
	}

	loaded := &types.WorkflowPayload{}
	for i := 0; i < c.count(p); i++ {
		id, values := c.row(p, i)
		if id == "" || p.Steps[i].ID != id {
			t.Fatalf("step %d did not get its id", i)
		}
		if err := c.scan(fakeRow(append([]interface{}{id}, values...)), loaded); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(loaded.Steps) != 3 || loaded.Steps[0].Title != "Intro" || loaded.Steps[1].Content != "install" || loaded.Steps[2].Title != "Review" {
		t.Fatalf("unexpected steps %+v", loaded.Steps)
	}

	c.reset(loaded)
	if c.present(loaded) {
		t.Fatal("expected reset to clear the collection")
	}
}

func TestVideoChildCodecScansOffsets(t *testing.T) {
	c := codecs[types.KindVideo].children
	p := &types.VideoPayload{}

	if c.present(p) {
		t.Fatal("a nil collection must not replace stored rows")
	}

	if err := c.scan(fakeRow{"ts-1", "start", 12.5, "opening"}, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Timestamps) != 1 || p.Timestamps[0].Offset != 12.5 || p.Timestamps[0].ID != "ts-1" {
		t.Fatalf("unexpected timestamps %+v", p.Timestamps)
	}
}

func TestAssetTables(t *testing.T) {
	tables := make(map[string]bool)
	for _, a := range assetTables() {
		tables[a.table] = true
	}

	for _, expected := range []string{"material_videos", "material_images", "material_pdfs", "material_defaults"} {
		if !tables[expected] {
			t.Fatalf("expected %s to hold asset references", expected)
		}
	}
	if len(tables) != 4 {
		t.Fatalf("unexpected asset tables %v", tables)
	}
}

func TestClearEmptyAssetRef(t *testing.T) {
	empty, id := "", "a-1"

	pdf := &types.PDFPayload{AssetID: &empty}
	clearEmptyAssetRef(pdf)
	if pdf.AssetID != nil {
		t.Fatalf("expected an empty asset id to become no asset id, got %q", *pdf.AssetID)
	}

	video := &types.VideoPayload{AssetID: &id}
	clearEmptyAssetRef(video)
	if video.AssetID == nil || *video.AssetID != "a-1" {
		t.Fatal("expected a set asset id to be kept")
	}

	def := &types.DefaultPayload{}
	clearEmptyAssetRef(def)
	if def.AssetID != nil {
		t.Fatal("expected a missing asset id to stay missing")
	}

	clearEmptyAssetRef(&types.ChecklistPayload{})
}

func TestNullHelpers(t *testing.T) {
	empty := ""
	if nullAssetID(&empty) != nil || nullAssetID(nil) != nil {
		t.Fatal("expected empty asset references to be stored as NULL")
	}
	id := "a-1"
	if nullAssetID(&id) != "a-1" {
		t.Fatal("expected asset references to be passed through")
	}
	if nullJSON(nil) != nil {
		t.Fatal("expected absent config to be stored as NULL")
	}
	if nullJSON([]byte(`{"a":1}`)) != `{"a":1}` {
		t.Fatal("expected config to be passed as text")
	}
	score := 50.0
	if nullFloat(&score) != 50.0 || nullFloat(nil) != nil {
		t.Fatal("unexpected passing score conversion")
	}
}
