package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gurukul-app/backend/internal/models"
)

func TestStaticVerifier(t *testing.T) {
	v := StaticVerifier{ID: "ADMIN", Password: "secret123"}

	t.Run("identifier is case-insensitive", func(t *testing.T) {
		if !v.Verify("admin", "secret123") {
			t.Error("lowercase identifier should verify")
		}
		if !v.Verify("  Admin  ", "secret123") {
			t.Error("whitespace around the identifier should be ignored")
		}
	})

	t.Run("password is case-sensitive", func(t *testing.T) {
		if v.Verify("ADMIN", "SECRET123") {
			t.Error("password comparison must be case-sensitive")
		}
		if v.Verify("ADMIN", "wrong") {
			t.Error("wrong password verified")
		}
	})
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	v := BcryptVerifier{ID: "ADMIN", Hash: hash}

	if !v.Verify("admin", "secret123") {
		t.Error("correct password should verify")
	}
	if v.Verify("admin", "nope") {
		t.Error("wrong password verified")
	}
	if v.Verify("other", "secret123") {
		t.Error("wrong identifier verified")
	}
}

func studentDoc(status models.ApprovalStatus) models.Document {
	return models.Document{
		Users: []models.User{
			{
				ID:         "u1",
				FullName:   "Asha Patel",
				RollNumber: "SSC-101",
				Password:   "pw",
				Role:       models.RoleStudent,
				Status:     status,
			},
		},
	}
}

func TestStudentLogin(t *testing.T) {
	t.Run("matches by name or roll, case-insensitively", func(t *testing.T) {
		doc := studentDoc(models.StatusApproved)
		for _, id := range []string{"asha patel", "ASHA PATEL", "ssc-101", " SSC-101 "} {
			u, err := StudentLogin(doc, id, "pw")
			if err != nil {
				t.Errorf("login(%q) failed: %v", id, err)
				continue
			}
			if u.ID != "u1" {
				t.Errorf("login(%q) = %s, want u1", id, u.ID)
			}
		}
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		_, err := StudentLogin(studentDoc(models.StatusApproved), "asha patel", "PW")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("pending account is gated", func(t *testing.T) {
		_, err := StudentLogin(studentDoc(models.StatusPending), "ssc-101", "pw")
		if !errors.Is(err, ErrPendingApproval) {
			t.Errorf("expected ErrPendingApproval, got %v", err)
		}
	})

	t.Run("inactive account is gated", func(t *testing.T) {
		_, err := StudentLogin(studentDoc(models.StatusInactive), "ssc-101", "pw")
		if !errors.Is(err, ErrNotApproved) {
			t.Errorf("expected ErrNotApproved, got %v", err)
		}
	})

	t.Run("unknown identifier is invalid credentials", func(t *testing.T) {
		_, err := StudentLogin(studentDoc(models.StatusApproved), "nobody", "pw")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := models.User{ID: "u1", Role: models.RoleStudent}

	token, err := manager.Generate(&user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("UserID = %s, want u1", claims.UserID)
	}
	if claims.Role != models.RoleStudent {
		t.Errorf("Role = %s, want STUDENT", claims.Role)
	}

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Hour)
		tok, err := expired.Generate(&user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
		}
	})
}
