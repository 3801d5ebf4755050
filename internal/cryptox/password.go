// Package cryptox implements the password hashing used for user accounts.
//
// Hashes are argon2id digests stored in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// Salt and key are unpadded standard base64. The parameters travel with the
// hash, so verification keeps working after the configured cost changes.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrInvalidHash = errors.New("invalid password hash")

const (
	DefaultMemoryKiB uint32 = 64 * 1024
	defaultTime      uint32 = 1
	defaultThreads   uint8  = 4
	keyLen           uint32 = 32
	saltLen                 = 16
)

// PasswordHasher derives and verifies argon2id password hashes.
type PasswordHasher struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// NewPasswordHasher returns a hasher using memoryKiB of memory per hash.
// Zero selects DefaultMemoryKiB.
func NewPasswordHasher(memoryKiB uint32) *PasswordHasher {
	if memoryKiB == 0 {
		memoryKiB = DefaultMemoryKiB
	}
	return &PasswordHasher{Time: defaultTime, MemoryKiB: memoryKiB, Threads: defaultThreads}
}

// Hash returns the encoded argon2id hash of password with a fresh random salt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt, err := GenerateRandBytes(saltLen)
	if err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, h.Time, h.MemoryKiB, h.Threads, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.MemoryKiB, h.Time, h.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches encoded. A malformed hash yields
// ErrInvalidHash.
func (h *PasswordHasher) Verify(encoded, password string) (bool, error) {
	p, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeHash(encoded string) (PasswordHasher, []byte, []byte, error) {
	var p PasswordHasher

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, ErrInvalidHash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, ErrInvalidHash
	}
	if p.Time == 0 || p.Threads == 0 {
		return p, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, ErrInvalidHash
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrInvalidHash
	}

	return p, salt, key, nil
}

// GenerateRandBytes returns size bytes from crypto/rand.
func GenerateRandBytes(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
