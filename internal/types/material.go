// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type MaterialKind string

const (
	KindVideo         MaterialKind = "video"
	KindImage         MaterialKind = "image"
	KindPDF           MaterialKind = "pdf"
	KindChecklist     MaterialKind = "checklist"
	KindWorkflow      MaterialKind = "workflow"
	KindQuestionnaire MaterialKind = "questionnaire"
	KindChatbot       MaterialKind = "chatbot"
	KindMQTTTemplate  MaterialKind = "mqtt_template"
	KindDefault       MaterialKind = "default"
)

// payloadFactories is the only place a kind is bound to its Go payload type.
var payloadFactories = map[MaterialKind]func() MaterialPayload{
	KindVideo:         func() MaterialPayload { return &VideoPayload{} },
	KindImage:         func() MaterialPayload { return &ImagePayload{} },
	KindPDF:           func() MaterialPayload { return &PDFPayload{} },
	KindChecklist:     func() MaterialPayload { return &ChecklistPayload{} },
	KindWorkflow:      func() MaterialPayload { return &WorkflowPayload{} },
	KindQuestionnaire: func() MaterialPayload { return &QuestionnairePayload{} },
	KindChatbot:       func() MaterialPayload { return &ChatbotPayload{} },
	KindMQTTTemplate:  func() MaterialPayload { return &MQTTTemplatePayload{} },
	KindDefault:       func() MaterialPayload { return &DefaultPayload{} },
}

// MaterialKinds returns every known discriminator value in a stable order.
func MaterialKinds() []MaterialKind {
	return []MaterialKind{
		KindVideo, KindImage, KindPDF, KindChecklist, KindWorkflow,
		KindQuestionnaire, KindChatbot, KindMQTTTemplate, KindDefault,
	}
}

func (k MaterialKind) Valid() bool {
	_, ok := payloadFactories[k]
	return ok
}

// ParseMaterialKind accepts any casing and the "mqtt-template" spelling.
func ParseMaterialKind(s string) (MaterialKind, error) {
	k := MaterialKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !k.Valid() {
		return "", fmt.Errorf("unknown material kind %q: %w", s, ErrInvalidArgument)
	}
	return k, nil
}

// NewPayload returns an empty payload for kind.
func NewPayload(kind MaterialKind) (MaterialPayload, error) {
	f, ok := payloadFactories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown material kind %q: %w", kind, ErrInvalidArgument)
	}
	return f(), nil
}

// MaterialPayload is the kind-specific part of a Material. The set of
// implementations is closed to this package.
type MaterialPayload interface {
	Kind() MaterialKind
	validate() error
}

// MaterialChild is an entry of a kind-owned child collection.
type MaterialChild interface {
	childOf() MaterialKind
}

type Material struct {
	ID          string
	Name        string
	Description string
	Kind        MaterialKind
	// Version is the optimistic concurrency token, bumped on every update.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Payload   MaterialPayload
}

// NewMaterial builds a material whose discriminator follows its payload.
func NewMaterial(name, description string, payload MaterialPayload) *Material {
	m := &Material{Name: name, Description: description, Payload: payload}
	if payload != nil {
		m.Kind = payload.Kind()
	}
	return m
}

func (m *Material) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("material name is required: %w", ErrInvalidArgument)
	}
	if !m.Kind.Valid() {
		return fmt.Errorf("unknown material kind %q: %w", m.Kind, ErrInvalidArgument)
	}
	if m.Payload == nil {
		return fmt.Errorf("material %q has no %s attributes: %w", m.Name, m.Kind, ErrInvalidArgument)
	}
	if m.Payload.Kind() != m.Kind {
		return fmt.Errorf("material is %q but carries %q attributes: %w", m.Kind, m.Payload.Kind(), ErrWrongKind)
	}
	return m.Payload.validate()
}

// AttachChildren appends children to the payload's child collection.
func (m *Material) AttachChildren(children ...MaterialChild) error {
	for _, c := range children {
		if c.childOf() != m.Kind {
			return fmt.Errorf("%T cannot be attached to a %s material: %w", c, m.Kind, ErrWrongKind)
		}
	}

	for _, c := range children {
		switch p := m.Payload.(type) {
		case *VideoPayload:
			p.Timestamps = append(p.Timestamps, c.(VideoTimestamp))
		case *ChecklistPayload:
			p.Entries = append(p.Entries, c.(ChecklistEntry))
		case *WorkflowPayload:
			p.Steps = append(p.Steps, c.(WorkflowStep))
		case *QuestionnairePayload:
			p.Entries = append(p.Entries, c.(QuestionnaireEntry))
		default:
			return fmt.Errorf("%s materials own no children: %w", m.Kind, ErrWrongKind)
		}
	}
	return nil
}

// DecodeChildren decodes a JSON array of child entries for a material of kind.
func DecodeChildren(kind MaterialKind, data []byte) ([]MaterialChild, error) {
	switch kind {
	case KindVideo:
		return decodeChildren[VideoTimestamp](data)
	case KindChecklist:
		return decodeChildren[ChecklistEntry](data)
	case KindWorkflow:
		return decodeChildren[WorkflowStep](data)
	case KindQuestionnaire:
		return decodeChildren[QuestionnaireEntry](data)
	}
	return nil, fmt.Errorf("%s materials own no children: %w", kind, ErrWrongKind)
}

func decodeChildren[C MaterialChild](data []byte) ([]MaterialChild, error) {
	var entries []C
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid children: %v: %w", err, ErrInvalidArgument)
	}

	children := make([]MaterialChild, 0, len(entries))
	for _, e := range entries {
		children = append(children, e)
	}
	return children, nil
}

// AssetID returns the referenced asset, if the kind can reference one.
func (m *Material) AssetID() (string, bool) {
	ref, ok := m.Payload.(interface{ assetRef() *string })
	if !ok || ref.assetRef() == nil || *ref.assetRef() == "" {
		return "", false
	}
	return *ref.assetRef(), true
}

func payloadAs[T MaterialPayload](m *Material, kind MaterialKind) (T, error) {
	var zero T
	if m.Kind != kind {
		return zero, fmt.Errorf("material %s is %q, not %q: %w", m.ID, m.Kind, kind, ErrWrongKind)
	}
	p, ok := m.Payload.(T)
	if !ok {
		return zero, fmt.Errorf("material %s has no %q attributes: %w", m.ID, kind, ErrWrongKind)
	}
	return p, nil
}

func (m *Material) Video() (*VideoPayload, error) { return payloadAs[*VideoPayload](m, KindVideo) }
func (m *Material) Image() (*ImagePayload, error) { return payloadAs[*ImagePayload](m, KindImage) }
func (m *Material) PDF() (*PDFPayload, error)     { return payloadAs[*PDFPayload](m, KindPDF) }
func (m *Material) Checklist() (*ChecklistPayload, error) {
	return payloadAs[*ChecklistPayload](m, KindChecklist)
}
func (m *Material) Workflow() (*WorkflowPayload, error) {
	return payloadAs[*WorkflowPayload](m, KindWorkflow)
}
func (m *Material) Questionnaire() (*QuestionnairePayload, error) {
	return payloadAs[*QuestionnairePayload](m, KindQuestionnaire)
}
func (m *Material) Chatbot() (*ChatbotPayload, error) {
	return payloadAs[*ChatbotPayload](m, KindChatbot)
}
func (m *Material) MQTTTemplate() (*MQTTTemplatePayload, error) {
	return payloadAs[*MQTTTemplatePayload](m, KindMQTTTemplate)
}
func (m *Material) Default() (*DefaultPayload, error) {
	return payloadAs[*DefaultPayload](m, KindDefault)
}

type materialJSON struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Kind        string          `json:"kind"`
	Version     int64           `json:"version,omitempty"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
	Attributes  json.RawMessage `json:"attributes,omitempty"`
}

func (m Material) MarshalJSON() ([]byte, error) {
	out := materialJSON{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Kind:        string(m.Kind),
		Version:     m.Version,
	}
	if !m.CreatedAt.IsZero() {
		out.CreatedAt = &m.CreatedAt
	}
	if !m.UpdatedAt.IsZero() {
		out.UpdatedAt = &m.UpdatedAt
	}
	if m.Payload != nil {
		attrs, err := json.Marshal(m.Payload)
		if err != nil {
			return nil, err
		}
		out.Attributes = attrs
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the attributes object into the payload type of the declared kind.
// Server-managed timestamps are ignored.
func (m *Material) UnmarshalJSON(data []byte) error {
	var in materialJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	kind, err := ParseMaterialKind(in.Kind)
	if err != nil {
		return err
	}
	payload, err := NewPayload(kind)
	if err != nil {
		return err
	}
	if len(in.Attributes) > 0 && string(in.Attributes) != "null" {
		if err := json.Unmarshal(in.Attributes, payload); err != nil {
			return fmt.Errorf("invalid %s attributes: %w", kind, err)
		}
	}

	*m = Material{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Kind:        kind,
		Version:     in.Version,
		Payload:     payload,
	}
	return nil
}
