// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

type VideoTimestamp struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Offset      float64 `json:"offset"`
	Description string  `json:"description,omitempty"`
}

func (VideoTimestamp) childOf() MaterialKind { return KindVideo }

type VideoPayload struct {
	AssetID    *string          `json:"asset_id,omitempty"`
	Path       string           `json:"path,omitempty"`
	Duration   float64          `json:"duration,omitempty"`
	Resolution string           `json:"resolution,omitempty"`
	Timestamps []VideoTimestamp `json:"timestamps,omitempty"`
}

func (*VideoPayload) Kind() MaterialKind   { return KindVideo }
func (p *VideoPayload) assetRef() *string { return p.AssetID }

func (p *VideoPayload) validate() error {
	if p.Duration < 0 {
		return fmt.Errorf("video duration must not be negative: %w", ErrInvalidArgument)
	}
	for i, ts := range p.Timestamps {
		if strings.TrimSpace(ts.Title) == "" {
			return fmt.Errorf("timestamp %d has no title: %w", i, ErrInvalidArgument)
		}
		if ts.Offset < 0 {
			return fmt.Errorf("timestamp %d has a negative offset: %w", i, ErrInvalidArgument)
		}
	}
	return nil
}

type ImagePayload struct {
	AssetID *string `json:"asset_id,omitempty"`
	Path    string  `json:"path,omitempty"`
	Width   int     `json:"width,omitempty"`
	Height  int     `json:"height,omitempty"`
	Format  string  `json:"format,omitempty"`
}

func (*ImagePayload) Kind() MaterialKind   { return KindImage }
func (p *ImagePayload) assetRef() *string { return p.AssetID }

func (p *ImagePayload) validate() error {
	if p.Width < 0 || p.Height < 0 {
		return fmt.Errorf("image dimensions must not be negative: %w", ErrInvalidArgument)
	}
	return nil
}

type PDFPayload struct {
	AssetID   *string `json:"asset_id,omitempty"`
	Path      string  `json:"path,omitempty"`
	PageCount int     `json:"page_count,omitempty"`
	FileSize  int64   `json:"file_size,omitempty"`
}

func (*PDFPayload) Kind() MaterialKind   { return KindPDF }
func (p *PDFPayload) assetRef() *string { return p.AssetID }

func (p *PDFPayload) validate() error {
	if p.PageCount < 0 || p.FileSize < 0 {
		return fmt.Errorf("pdf page count and size must not be negative: %w", ErrInvalidArgument)
	}
	return nil
}

type ChecklistEntry struct {
	ID          string `json:"id,omitempty"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}

func (ChecklistEntry) childOf() MaterialKind { return KindChecklist }

type ChecklistPayload struct {
	Entries []ChecklistEntry `json:"entries,omitempty"`
}

func (*ChecklistPayload) Kind() MaterialKind { return KindChecklist }

func (p *ChecklistPayload) validate() error {
	for i, e := range p.Entries {
		if strings.TrimSpace(e.Text) == "" {
			return fmt.Errorf("checklist entry %d has no text: %w", i, ErrInvalidArgument)
		}
	}
	return nil
}

type WorkflowStep struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

func (WorkflowStep) childOf() MaterialKind { return KindWorkflow }

type WorkflowPayload struct {
	Steps []WorkflowStep `json:"steps,omitempty"`
}

func (*WorkflowPayload) Kind() MaterialKind { return KindWorkflow }

func (p *WorkflowPayload) validate() error {
	for i, s := range p.Steps {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("workflow step %d has no title: %w", i, ErrInvalidArgument)
		}
	}
	return nil
}

type QuestionnaireEntry struct {
	ID          string `json:"id,omitempty"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}

func (QuestionnaireEntry) childOf() MaterialKind { return KindQuestionnaire }

type QuestionnairePayload struct {
	QuestionnaireType string               `json:"questionnaire_type,omitempty"`
	PassingScore      *float64             `json:"passing_score,omitempty"`
	Config            json.RawMessage      `json:"config,omitempty"`
	Entries           []QuestionnaireEntry `json:"entries,omitempty"`
}

func (*QuestionnairePayload) Kind() MaterialKind { return KindQuestionnaire }

func (p *QuestionnairePayload) validate() error {
	if p.PassingScore != nil && (*p.PassingScore < 0 || *p.PassingScore > 100) {
		return fmt.Errorf("passing score %v outside [0, 100]: %w", *p.PassingScore, ErrInvalidArgument)
	}
	if len(p.Config) > 0 && !json.Valid(p.Config) {
		return fmt.Errorf("questionnaire config is not valid JSON: %w", ErrInvalidArgument)
	}
	for i, e := range p.Entries {
		if strings.TrimSpace(e.Text) == "" {
			return fmt.Errorf("questionnaire entry %d has no text: %w", i, ErrInvalidArgument)
		}
	}
	return nil
}

type ChatbotPayload struct {
	Config json.RawMessage `json:"config,omitempty"`
	Model  string          `json:"model,omitempty"`
	Prompt string          `json:"prompt,omitempty"`
}

func (*ChatbotPayload) Kind() MaterialKind { return KindChatbot }

func (p *ChatbotPayload) validate() error {
	if len(p.Config) > 0 && !json.Valid(p.Config) {
		return fmt.Errorf("chatbot config is not valid JSON: %w", ErrInvalidArgument)
	}
	return nil
}

type MQTTTemplatePayload struct {
	MessageType string `json:"message_type,omitempty"`
	MessageText string `json:"message_text,omitempty"`
}

func (*MQTTTemplatePayload) Kind() MaterialKind { return KindMQTTTemplate }
func (*MQTTTemplatePayload) validate() error    { return nil }

type DefaultPayload struct {
	AssetID *string `json:"asset_id,omitempty"`
}

func (*DefaultPayload) Kind() MaterialKind   { return KindDefault }
func (p *DefaultPayload) assetRef() *string { return p.AssetID }
func (*DefaultPayload) validate() error      { return nil }
