package kernel

import (
	"fmt"
	"unicode/utf8"

	"snackshop/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	PasswordMinLength = 4
	PasswordMaxLength = 72
)

// PasswordHash holds a bcrypt hash. The plain text is never retained.
// The zero value means "no password" and matches nothing.
type PasswordHash struct {
	hash string
}

// NewPasswordHash hashes plain with bcrypt's default cost. Order passwords
// are short PINs, so the minimum length is low; bcrypt itself caps input at
// 72 bytes.
func NewPasswordHash(plain string) (PasswordHash, error) {
	if plain == "" {
		return PasswordHash{}, errs.NewValueIsRequiredError("password")
	}
	if n := utf8.RuneCountInString(plain); n < PasswordMinLength || len(plain) > PasswordMaxLength {
		return PasswordHash{}, errs.NewValueIsOutOfRangeError("password length", n, PasswordMinLength, PasswordMaxLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return PasswordHash{}, fmt.Errorf("hash password: %w", err)
	}
	return PasswordHash{hash: string(hash)}, nil
}

// RestorePasswordHash wraps a hash loaded from storage.
func RestorePasswordHash(hash string) PasswordHash {
	return PasswordHash{hash: hash}
}

// IsSet reports whether a password was ever set.
func (p PasswordHash) IsSet() bool {
	return p.hash != ""
}

// Matches reports whether plain hashes to p. An unset hash matches nothing.
func (p PasswordHash) Matches(plain string) bool {
	if !p.IsSet() || plain == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}

// String returns the encoded hash for persistence.
func (p PasswordHash) String() string {
	return p.hash
}
