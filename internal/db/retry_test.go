// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
		{name: "connection exception", err: &pgconn.PgError{Code: "08006"}, expected: true},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, expected: true},
		{name: "too many connections", err: fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "53300"}), expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{name: "undefined table", err: &pgconn.PgError{Code: "42P01"}, expected: false},
		{name: "bad conn", err: driver.ErrBadConn, expected: true},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("refused")}, expected: true},
		{name: "canceled", err: context.Canceled, expected: false},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.expected {
				t.Fatalf("IsTransient(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestRetry(t *testing.T) {
	transient := &pgconn.PgError{Code: "08006"}
	permanent := errors.New("not found")

	tests := []struct {
		name          string
		failures      []error
		attempts      uint
		expectedCalls int
		expectedErr   error
	}{
		{name: "succeeds first time", failures: nil, attempts: 3, expectedCalls: 1},
		{name: "recovers from transient", failures: []error{transient, transient}, attempts: 3, expectedCalls: 3},
		{name: "gives up after attempts", failures: []error{transient, transient, transient, transient}, attempts: 3, expectedCalls: 3, expectedErr: transient},
		{name: "business errors are not retried", failures: []error{permanent}, attempts: 3, expectedCalls: 1, expectedErr: permanent},
		{name: "zero attempts runs once", failures: []error{transient}, attempts: 0, expectedCalls: 1, expectedErr: transient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), tt.attempts, func() error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			})

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if calls != tt.expectedCalls {
				t.Fatalf("expected %d calls, got %d", tt.expectedCalls, calls)
			}
		})
	}
}

func TestPagination(t *testing.T) {
	if got := Offset(0, 10); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Offset(3, 10); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	if got := PageSize(0); got != defaultPageSize {
		t.Fatalf("expected %d, got %d", defaultPageSize, got)
	}
	if got := PageSize(5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}
