package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// LeadID derives a stable identifier from an email address so log lines
// can correlate submissions without recording the address itself.
func LeadID(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])[:12]
}
