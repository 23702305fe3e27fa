// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"testing"
)

func TestTenantValidate(t *testing.T) {
	long := make([]byte, 57)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name   string
		tenant Tenant
		err    error
	}{
		{
			name:   "owncloud with directory",
			tenant: Tenant{Name: "acme", StorageKind: StorageKindOwnCloud, Directory: "acme-files"},
		},
		{
			name:   "owncloud without directory",
			tenant: Tenant{Name: "acme", StorageKind: StorageKindOwnCloud},
			err:    ErrInvalidArgument,
		},
		{
			name:   "s3 with bucket",
			tenant: Tenant{Name: "acme", StorageKind: StorageKindS3, S3BucketName: "acme", S3BucketRegion: "eu-west-1"},
		},
		{
			name:   "s3 without region",
			tenant: Tenant{Name: "acme", StorageKind: StorageKindS3, S3BucketName: "acme"},
			err:    ErrInvalidArgument,
		},
		{
			name:   "unknown storage",
			tenant: Tenant{Name: "acme", StorageKind: "FTP"},
			err:    ErrInvalidArgument,
		},
		{
			name:   "blank name",
			tenant: Tenant{Name: "  ", StorageKind: StorageKindOwnCloud, Directory: "d"},
			err:    ErrInvalidArgument,
		},
		{
			name:   "name too long",
			tenant: Tenant{Name: string(long), StorageKind: StorageKindOwnCloud, Directory: "d"},
			err:    ErrInvalidArgument,
		},
		{
			name:   "slash in name",
			tenant: Tenant{Name: "a/b", StorageKind: StorageKindOwnCloud, Directory: "d"},
			err:    ErrInvalidArgument,
		},
		{
			name:   "space in name",
			tenant: Tenant{Name: "has space", StorageKind: StorageKindOwnCloud, Directory: "d"},
			err:    ErrInvalidArgument,
		},
		{
			name:   "control character in name",
			tenant: Tenant{Name: "acme\x00", StorageKind: StorageKindOwnCloud, Directory: "d"},
			err:    ErrInvalidArgument,
		},
		{
			name:   "name of the admin routes",
			tenant: Tenant{Name: "v0", StorageKind: StorageKindOwnCloud, Directory: "d"},
			err:    ErrInvalidArgument,
		},
		{
			name:   "punctuation is routable",
			tenant: Tenant{Name: "acme-corp.eu", StorageKind: StorageKindOwnCloud, Directory: "d"},
		},
		{
			name:   "bad webdav endpoint",
			tenant: Tenant{Name: "acme", StorageKind: StorageKindOwnCloud, Directory: "d", WebDAVEndpoint: "not a url"},
			err:    ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.tenant.Validate(); !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestProvisioningError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewProvisioningError("acme", cause)

	if !errors.Is(err, ErrProvisioningFailed) {
		t.Fatal("expected ErrProvisioningFailed")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected the cause to be preserved")
	}

	var pe *ProvisioningError
	if !errors.As(err, &pe) || pe.Tenant != "acme" {
		t.Fatalf("unexpected error %#v", err)
	}

	if again := NewProvisioningError("other", err); again != err {
		t.Fatal("expected an existing provisioning error to be returned as is")
	}
}

func TestGroupByRelatedKind(t *testing.T) {
	rels := []*MaterialRelationship{
		{ID: "1", RelatedKind: RelatedLearningPath},
		{ID: "2", RelatedKind: RelatedTrainingProgram},
		{ID: "3", RelatedKind: RelatedLearningPath},
	}

	grouped := GroupByRelatedKind(rels)
	if len(grouped[RelatedLearningPath]) != 2 || len(grouped[RelatedTrainingProgram]) != 1 {
		t.Fatalf("unexpected grouping %+v", grouped)
	}
}
