package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Password hashes are stored as "<derivedKeyHex>.<saltHex>" with a random
// 16-byte salt and a 64-byte scrypt-derived key.
const (
	saltLen = 16
	keyLen  = 64

	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// HashPassword derives a storable hash for the given plaintext password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// VerifyPassword re-derives the key using the stored salt and compares in
// constant time. Any malformed stored value yields false, never an error.
func VerifyPassword(password, stored string) bool {
	keyHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false
	}
	wantKey, err := hex.DecodeString(keyHex)
	if err != nil || len(wantKey) != keyLen {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	gotKey, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(wantKey, gotKey) == 1
}
