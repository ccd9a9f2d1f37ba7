// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hash Clash Authors

package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hashclash/storage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func Test_buildListUserTextsQuery_SQLContainsParts(t *testing.T) {
	userID := int64(42)

	query, args, err := buildListUserTextsQuery(models.TextFilter{UserID: userID})
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, userID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from hash_clash.texts")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by created_at desc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildListUserTextsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListUserTextsQuery(models.TextFilter{UserID: 1})
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	cols := []string{
		"id",
		"user_id",
		"encryption_type",
		"text",
		"created_at",
		"is_active",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}
}

func Test_buildListUserTextsQuery_Filters(t *testing.T) {
	tests := []struct {
		name         string
		filter       models.TextFilter
		wantArgs     int
		wantContains []string
	}{
		{
			name:         "user only",
			filter:       models.TextFilter{UserID: 1},
			wantArgs:     1,
			wantContains: []string{"user_id"},
		},
		{
			name:         "active filter",
			filter:       models.TextFilter{UserID: 1, IsActive: boolPtr(true)},
			wantArgs:     2,
			wantContains: []string{"user_id", "is_active"},
		},
		{
			name:         "encryption type filter",
			filter:       models.TextFilter{UserID: 1, EncryptionType: strPtr("rsa")},
			wantArgs:     2,
			wantContains: []string{"user_id", "encryption_type"},
		},
		{
			name:         "all filters",
			filter:       models.TextFilter{UserID: 1, IsActive: boolPtr(false), EncryptionType: strPtr("grasshopper")},
			wantArgs:     3,
			wantContains: []string{"user_id", "is_active", "encryption_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListUserTextsQuery(tt.filter)
			require.NoError(t, err)
			assert.Len(t, args, tt.wantArgs)

			q := strings.ToLower(query)
			for _, part := range tt.wantContains {
				assert.Contains(t, q, part)
			}
		})
	}
}

func Test_buildUpdateTextQuery_AllFields(t *testing.T) {
	update := models.TextUpdate{
		ID:             7,
		UserID:         42,
		EncryptionType: strPtr("rsa"),
		Text:           strPtr("ciphertext"),
		IsActive:       boolPtr(false),
	}

	query, args, err := buildUpdateTextQuery(update)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update hash_clash.texts")
	require.Contains(t, q, "encryption_type")
	require.Contains(t, q, "text =")
	require.Contains(t, q, "is_active")
	require.Contains(t, q, "where")

	// 3 SET values + id + user_id
	require.Len(t, args, 5)
	assert.Contains(t, args, int64(7))
	assert.Contains(t, args, int64(42))
}

func Test_buildUpdateTextQuery_SingleField(t *testing.T) {
	update := models.TextUpdate{
		ID:     7,
		UserID: 42,
		Text:   strPtr("new ciphertext"),
	}

	query, args, err := buildUpdateTextQuery(update)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "text =")
	require.NotContains(t, q, "encryption_type =")

	require.Len(t, args, 3)
}

func Test_buildUpdateTextQuery_NoFields(t *testing.T) {
	_, _, err := buildUpdateTextQuery(models.TextUpdate{ID: 7, UserID: 42})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBuildingSQLQuery))
}

func Test_buildGetValidCodeQuery(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildGetValidCodeQuery(42, "123456", models.CodeTypeEmailConfirmation, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from hash_clash.temp_codes")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "code")
	require.Contains(t, q, "code_type")
	require.Contains(t, q, "is_active")
	require.Contains(t, q, "is_used")
	require.Contains(t, q, "expires_at >")

	// user_id, code, code_type, is_active, is_used, expires_at
	require.Len(t, args, 6)
	assert.Contains(t, args, now)
	assert.Contains(t, args, "123456")
}
