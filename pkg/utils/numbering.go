package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// FormatDocumentNumber builds a sequential document number such as
// RES-00042 or KIT-00007. Sequence numbers never restart, so numbers stay
// unique without a date component.
func FormatDocumentNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%05d", prefix, seq)
}

// UploadFileName builds a collision-free stored name for an uploaded file,
// keeping the original extension
func UploadFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return strings.ToUpper(uuid.New().String()[:8]) + ext
}
