package accounts

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// PasswordHasher turns a plaintext password into an opaque comparable
// digest. This is a local demonstration credential check, not a
// security boundary: no salt, no work factor, and equality of digests
// is the whole verification.
type PasswordHasher interface {
	Hash(password string) string
}

// SHA3Hasher hashes passwords with SHA3-256, hex-encoded
type SHA3Hasher struct{}

var _ PasswordHasher = SHA3Hasher{}

// NewHasher returns the default SHA3-256 hasher
func NewHasher() SHA3Hasher {
	return SHA3Hasher{}
}

// Hash returns the hex SHA3-256 digest of the password
func (SHA3Hasher) Hash(password string) string {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
