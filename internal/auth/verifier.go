// Package auth holds credential verification and session handling. Sessions
// are lifecycled entirely outside the state document: nothing here is ever
// persisted, and every process start requires a fresh login.
package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect details or account doesn't exist")
	ErrPendingApproval    = errors.New("account pending approval")
	ErrNotApproved        = errors.New("account is not active")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissingToken       = errors.New("authorization token required")
)

// AdminVerifier checks the administrative credential pair. The interface
// exists so the comparison scheme can be swapped without touching the domain
// store or the consumer surface.
type AdminVerifier interface {
	// Verify reports whether the identifier/password pair names the admin.
	Verify(identifier, password string) bool
}

// StaticVerifier compares against a fixed identifier/password pair from
// configuration: identifier case-insensitively, password case-sensitively.
// The password lives in plain configuration; hardening this is out of scope
// for the product, which is why the interface above exists.
type StaticVerifier struct {
	ID       string
	Password string
}

// Verify implements AdminVerifier.
func (v StaticVerifier) Verify(identifier, password string) bool {
	return strings.EqualFold(strings.TrimSpace(identifier), v.ID) &&
		strings.TrimSpace(password) == v.Password
}

// BcryptVerifier compares the password against a bcrypt hash instead of a
// plaintext value, for deployments that refuse plaintext credentials in the
// environment. Drop-in replacement for StaticVerifier.
type BcryptVerifier struct {
	ID   string
	Hash []byte
}

// Verify implements AdminVerifier.
func (v BcryptVerifier) Verify(identifier, password string) bool {
	if !strings.EqualFold(strings.TrimSpace(identifier), v.ID) {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.Hash, []byte(strings.TrimSpace(password))) == nil
}
