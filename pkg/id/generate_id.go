package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// Used for request ids and idempotency keys issued by clients of this service.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// IsID32 reports whether s has the NewID32 shape. Surrounding spaces are ignored.
func IsID32(s string) bool {
	return reHex32.MatchString(strings.TrimSpace(s))
}
