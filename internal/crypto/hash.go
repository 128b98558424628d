// Package crypto produces the content fingerprints behind a tourist's digital
// ID. The hashes are displayable proof values, not a security control.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash returns the hex-encoded SHA-256 digest of content.
func Hash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// IdentityFingerprint hashes the four identity fields joined with a fixed
// separator. The same inputs always produce the same digest, which is what
// lets the value stand in for a ledger entry in the demo.
func IdentityFingerprint(fullName, documentType, documentNumber, timestamp string) string {
	return Hash(fmt.Sprintf("%s-%s-%s-%s", fullName, documentType, documentNumber, timestamp))
}
