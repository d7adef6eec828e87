package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
)

const timeFormat = time.RFC3339Nano

// EncodeAuditCursor creates an opaque token from the last record of a page.
func EncodeAuditCursor(c domain.AuditCursor) string {
	tokenStr := fmt.Sprintf("%s|%d", c.AuditDate.UTC().Format(timeFormat), c.ID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeAuditCursor parses a token produced by EncodeAuditCursor.
func DecodeAuditCursor(token string) (domain.AuditCursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return domain.AuditCursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return domain.AuditCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	auditDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.AuditCursor{}, fmt.Errorf("invalid pagination token format (audit date parse): %w", err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return domain.AuditCursor{}, fmt.Errorf("invalid pagination token format (id parse)")
	}

	return domain.AuditCursor{AuditDate: auditDate, ID: id}, nil
}
