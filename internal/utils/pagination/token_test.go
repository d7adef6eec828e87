package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeAuditCursor(t *testing.T) {
	cursor := domain.AuditCursor{
		AuditDate: time.Date(2024, 12, 31, 14, 30, 45, 123456789, time.UTC),
		ID:        981,
	}

	token := EncodeAuditCursor(cursor)
	assert.NotEmpty(t, token)

	decoded, err := DecodeAuditCursor(token)
	require.NoError(t, err)
	assert.True(t, cursor.AuditDate.Equal(decoded.AuditDate))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestEncodeAuditCursor_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	cursor := domain.AuditCursor{AuditDate: time.Date(2024, 1, 1, 2, 0, 0, 0, loc), ID: 1}

	decoded, err := DecodeAuditCursor(EncodeAuditCursor(cursor))

	require.NoError(t, err)
	assert.Equal(t, time.UTC, decoded.AuditDate.Location())
	assert.True(t, cursor.AuditDate.Equal(decoded.AuditDate))
}

func TestDecodeAuditCursorError(t *testing.T) {
	encode := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{"not base64", "this is not base64!", "base64 decode"},
		{"missing separator", encode("2024-01-01T00:00:00Z"), "split"},
		{"bad date", encode("notadate|12"), "audit date parse"},
		{"bad id", encode("2024-01-01T00:00:00Z|abc"), "id parse"},
		{"non-positive id", encode("2024-01-01T00:00:00Z|0"), "id parse"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAuditCursor(tc.token)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
