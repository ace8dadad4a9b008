// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	"usersvc/config"
	"usersvc/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	DefaultIterations = 200000

	saltSize = 16
	keySize  = 32

	// Stored hashes claiming more work than this are treated as malformed.
	maxIterations = 10_000_000
)

// PBKDF2Hasher hashes passwords as "{iterations}.{base64(salt)}.{base64(key)}"
// using PBKDF2-HMAC-SHA256. The stored iteration count is used on verify, so
// raising the configured count never invalidates existing hashes.
type PBKDF2Hasher struct {
	iterations int
	random     io.Reader
}

// NewPBKDF2Hasher returns a hasher using iterations rounds, or DefaultIterations when <= 0.
func NewPBKDF2Hasher(iterations int) *PBKDF2Hasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	return &PBKDF2Hasher{
		iterations: iterations,
		random:     rand.Reader,
	}
}

// NewPasswordHasher provides the hasher configured by local.hashIterations.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return NewPBKDF2Hasher(cfg.Local.HashIterations)
}

func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keySize, sha256.New)

	return strings.Join([]string{
		strconv.Itoa(h.iterations),
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	}, "."), nil
}

func (h *PBKDF2Hasher) Verify(password, stored string) bool {
	parts := strings.Split(stored, ".")
	if len(parts) != 3 {
		return false
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 || iterations > maxIterations {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	expected, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(expected) == 0 {
		return false
	}

	actual := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(actual, expected) == 1
}
