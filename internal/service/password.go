package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// legacyDigestLen is the length of a hex SHA-256 digest written by the
// original deployment (unsalted, single round).
const legacyDigestLen = sha256.Size * 2

// hashPassword produces a bcrypt hash at the given cost. The cost is checked
// when the config is loaded.
func hashPassword(password string, cost int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// verifyPassword checks password against a stored digest. legacy is true when
// the digest is an old SHA-256 hex string that should be rehashed.
func verifyPassword(stored, password string) (ok, legacy bool) {
	if isLegacyDigest(stored) {
		sum := sha256.Sum256([]byte(password))
		want := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(want)) == 1, true
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
}

func isLegacyDigest(s string) bool {
	if len(s) != legacyDigestLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
