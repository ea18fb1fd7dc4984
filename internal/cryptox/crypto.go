// Package cryptox provides credential hashing for account records.
//
// Passwords are stored as deterministic, hex-encoded SHA-256 digests.
// Verification re-hashes the supplied password and compares digests; the
// stored value is never decrypted.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of plaintext.
// Identical plaintexts always yield identical digests.
func HashPassword(plaintext []byte) string {
	sum := sha256.Sum256(plaintext)
	return hex.EncodeToString(sum[:])
}

// VerifyDigest reports whether candidate hashes to digest. The comparison
// is constant-time.
func VerifyDigest(digest string, candidate []byte) bool {
	candidateDigest := HashPassword(candidate)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(candidateDigest)) == 1
}

// WipeByteArray overwrites the contents of b with zeros. Use it to remove
// plaintext passwords from memory after hashing. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
