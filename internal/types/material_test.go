// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMaterialKind(t *testing.T) {
	tests := []struct {
		in       string
		expected MaterialKind
		err      error
	}{
		{in: "video", expected: KindVideo},
		{in: "Workflow", expected: KindWorkflow},
		{in: " PDF ", expected: KindPDF},
		{in: "MQTT-Template", expected: KindMQTTTemplate},
		{in: "mqtt_template", expected: KindMQTTTemplate},
		{in: "slideshow", err: ErrInvalidArgument},
		{in: "", err: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kind, err := ParseMaterialKind(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if kind != tt.expected {
				t.Fatalf("expected kind %q, got %q", tt.expected, kind)
			}
		})
	}
}

func TestEveryKindHasAPayload(t *testing.T) {
	for _, kind := range MaterialKinds() {
		p, err := NewPayload(kind)
		if err != nil {
			t.Fatalf("kind %q: %v", kind, err)
		}
		if p.Kind() != kind {
			t.Fatalf("payload for %q reports kind %q", kind, p.Kind())
		}
	}
}

func TestMaterialAccessorsGuardKind(t *testing.T) {
	m := NewMaterial("Onboarding", "", &WorkflowPayload{})

	if _, err := m.Workflow(); err != nil {
		t.Fatalf("expected workflow accessor to succeed, got %v", err)
	}
	if _, err := m.Video(); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
	if _, err := m.Checklist(); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}

	m.Kind = KindChecklist
	if _, err := m.Checklist(); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind for a mismatched payload, got %v", err)
	}
}

func TestMaterialAttachChildren(t *testing.T) {
	m := NewMaterial("Onboarding", "", &WorkflowPayload{})

	err := m.AttachChildren(WorkflowStep{Title: "Intro"}, WorkflowStep{Title: "Setup"}, WorkflowStep{Title: "Review"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wf, _ := m.Workflow()
	if len(wf.Steps) != 3 || wf.Steps[0].Title != "Intro" || wf.Steps[2].Title != "Review" {
		t.Fatalf("unexpected steps %+v", wf.Steps)
	}

	if err := m.AttachChildren(WorkflowStep{Title: "More"}, ChecklistEntry{Text: "nope"}); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
	if len(wf.Steps) != 3 {
		t.Fatalf("a rejected batch must not be partially attached, got %d steps", len(wf.Steps))
	}

	img := NewMaterial("Logo", "", &ImagePayload{})
	if err := img.AttachChildren(VideoTimestamp{Title: "x"}); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
}

func TestMaterialValidate(t *testing.T) {
	score := 120.0
	tests := []struct {
		name     string
		material *Material
		err      error
	}{
		{
			name:     "valid video",
			material: NewMaterial("Intro", "", &VideoPayload{Duration: 12, Timestamps: []VideoTimestamp{{Title: "start"}}}),
		},
		{
			name:     "missing name",
			material: NewMaterial(" ", "", &DefaultPayload{}),
			err:      ErrInvalidArgument,
		},
		{
			name:     "missing payload",
			material: &Material{Name: "x", Kind: KindImage},
			err:      ErrInvalidArgument,
		},
		{
			name:     "payload of another kind",
			material: &Material{Name: "x", Kind: KindImage, Payload: &PDFPayload{}},
			err:      ErrWrongKind,
		},
		{
			name:     "unknown kind",
			material: &Material{Name: "x", Kind: "hologram", Payload: &DefaultPayload{}},
			err:      ErrInvalidArgument,
		},
		{
			name:     "passing score out of range",
			material: NewMaterial("Quiz", "", &QuestionnairePayload{PassingScore: &score}),
			err:      ErrInvalidArgument,
		},
		{
			name:     "chatbot config not json",
			material: NewMaterial("Bot", "", &ChatbotPayload{Config: json.RawMessage("{nope")}),
			err:      ErrInvalidArgument,
		},
		{
			name:     "step without title",
			material: NewMaterial("Flow", "", &WorkflowPayload{Steps: []WorkflowStep{{Content: "body"}}}),
			err:      ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.material.Validate(); !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestMaterialAssetID(t *testing.T) {
	asset := "0190a7a4-0000-7000-8000-000000000001"

	if id, ok := NewMaterial("v", "", &VideoPayload{AssetID: &asset}).AssetID(); !ok || id != asset {
		t.Fatalf("expected asset %s, got %q %v", asset, id, ok)
	}
	if _, ok := NewMaterial("v", "", &VideoPayload{}).AssetID(); ok {
		t.Fatal("expected no asset reference")
	}
	if _, ok := NewMaterial("c", "", &ChecklistPayload{}).AssetID(); ok {
		t.Fatal("checklists cannot reference assets")
	}
}

func TestMaterialJSONEnvelope(t *testing.T) {
	body := `{
		"name": "Onboarding",
		"kind": "Workflow",
		"created_at": "2001-01-01T00:00:00Z",
		"attributes": {"steps": [{"title": "Intro"}, {"title": "Setup", "content": "install"}]}
	}`

	var m Material
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != KindWorkflow {
		t.Fatalf("expected workflow, got %q", m.Kind)
	}
	if !m.CreatedAt.IsZero() {
		t.Fatal("caller supplied timestamps must be ignored")
	}
	wf, err := m.Workflow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wf.Steps) != 2 || wf.Steps[1].Content != "install" {
		t.Fatalf("unexpected steps %+v", wf.Steps)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(out, &envelope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(envelope["kind"]) != `"workflow"` {
		t.Fatalf("unexpected kind %s", envelope["kind"])
	}
	if _, ok := envelope["attributes"]; !ok {
		t.Fatal("expected attributes in the envelope")
	}
}

func TestMaterialJSONRejectsUnknownKind(t *testing.T) {
	var m Material
	err := json.Unmarshal([]byte(`{"name":"x","kind":"hologram"}`), &m)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestDecodeChildren(t *testing.T) {
	children, err := DecodeChildren(KindWorkflow, []byte(`[{"title":"Intro"},{"title":"Setup"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(children) != 2 || children[1].(WorkflowStep).Title != "Setup" {
		t.Fatalf("unexpected children %+v", children)
	}

	if _, err := DecodeChildren(KindImage, []byte(`[]`)); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
	if _, err := DecodeChildren(KindChecklist, []byte(`{"text":"x"}`)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
