// Package auth provides the credential verifiers for the admin login.
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PlainVerifier compares against a configured cleartext credential pair.
// Both comparisons always run so timing does not reveal which part failed.
type PlainVerifier struct {
	username string
	password string
}

func NewPlainVerifier(username, password string) *PlainVerifier {
	return &PlainVerifier{username: username, password: password}
}

func (v *PlainVerifier) Verify(username, password string) bool {
	if v.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password))
	return userOK&passOK == 1
}

// BcryptVerifier checks the password against a bcrypt hash.
type BcryptVerifier struct {
	username string
	hash     []byte
}

// NewBcryptVerifier validates that hash is a usable bcrypt hash.
func NewBcryptVerifier(username, hash string) (*BcryptVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	return &BcryptVerifier{username: username, hash: []byte(hash)}, nil
}

func (v *BcryptVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
	return userOK && passOK
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
