// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type StorageKind string

const (
	StorageKindS3       StorageKind = "S3"
	StorageKindOwnCloud StorageKind = "OwnCloud"
)

// Tenant is a registry entry in the control database.
type Tenant struct {
	Name           string      `db:"name" json:"name" validate:"required,max=56"`
	DatabaseName   string      `db:"database_name" json:"database_name,omitempty"`
	Group          string      `db:"tenant_group" json:"group,omitempty"`
	Description    string      `db:"description" json:"description,omitempty"`
	OwnerName      string      `db:"owner_name" json:"owner_name,omitempty"`
	StorageKind    StorageKind `db:"storage_kind" json:"storage_kind" validate:"required,oneof=S3 OwnCloud"`
	S3BucketName   string      `db:"s3_bucket_name" json:"s3_bucket_name,omitempty" validate:"required_if=StorageKind S3"`
	S3BucketRegion string      `db:"s3_bucket_region" json:"s3_bucket_region,omitempty" validate:"required_if=StorageKind S3"`
	S3BucketARN    string      `db:"s3_bucket_arn" json:"s3_bucket_arn,omitempty"`
	Directory      string      `db:"directory" json:"directory,omitempty" validate:"required_if=StorageKind OwnCloud"`
	WebDAVEndpoint string      `db:"webdav_endpoint" json:"webdav_endpoint,omitempty" validate:"omitempty,url"`
	Active         bool        `db:"active" json:"active"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID           string    `db:"id" json:"id"`
	Login        string    `db:"login" json:"login"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Admin        bool      `db:"admin" json:"admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// NewUser carries the clear-text credential of a user that is about to be stored.
type NewUser struct {
	Login       string `json:"login" validate:"required,max=128"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Admin       bool   `json:"admin"`
}

type TrainingProgram struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required"`
	Description string    `db:"description" json:"description,omitempty"`
	UseCase     string    `db:"use_case" json:"use_case,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type LearningPath struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required"`
	Description string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ProgramLearningPath is a learning path as seen through a training program membership.
type ProgramLearningPath struct {
	LearningPath
	DisplayOrder *int `json:"display_order,omitempty"`
}

type Asset struct {
	ID          string    `db:"id" json:"id"`
	Filename    string    `db:"filename" json:"filename"`
	Source      string    `db:"source" json:"source"`
	Description string    `db:"description" json:"description,omitempty"`
	FileType    string    `db:"file_type" json:"file_type,omitempty"`
	TenantName  string    `db:"tenant_name" json:"tenant_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type RelatedKind string

const (
	RelatedLearningPath    RelatedKind = "LearningPath"
	RelatedTrainingProgram RelatedKind = "TrainingProgram"
)

const (
	RelationshipContains = "contains"
	RelationshipAssigned = "assigned"
)

// MaterialRelationship is one ledger row linking a material to another entity.
type MaterialRelationship struct {
	ID               string      `db:"id" json:"id"`
	MaterialID       string      `db:"material_id" json:"material_id"`
	RelatedID        string      `db:"related_id" json:"related_id"`
	RelatedKind      RelatedKind `db:"related_kind" json:"related_kind"`
	RelationshipType string      `db:"relationship_type" json:"relationship_type"`
	DisplayOrder     *int        `db:"display_order" json:"display_order,omitempty"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at" json:"updated_at"`
}

// GroupByRelatedKind buckets ledger rows by the kind of entity they point at.
func GroupByRelatedKind(rels []*MaterialRelationship) map[RelatedKind][]*MaterialRelationship {
	grouped := make(map[RelatedKind][]*MaterialRelationship)
	for _, r := range rels {
		grouped[r.RelatedKind] = append(grouped[r.RelatedKind], r)
	}
	return grouped
}
