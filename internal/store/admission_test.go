package store

import (
	"context"
	"errors"
	"testing"

	"github.com/gurukul-app/backend/internal/models"
)

func TestRegisterStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate roll number rejected atomically", func(t *testing.T) {
		s := newTestStore(t)
		register(t, s, "Asha", "R-1")

		before := len(s.Snapshot().Users)
		_, err := s.RegisterStudent(ctx, RegisterInput{
			FullName:        "Vikram",
			RollNumber:      "R-1",
			GuardianName:    "G",
			BatchID:         "batch-morning",
			Password:        "pw",
			ConfirmPassword: "pw",
		})
		if !errors.Is(err, ErrDuplicateRoll) {
			t.Fatalf("expected ErrDuplicateRoll, got %v", err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Error("ErrDuplicateRoll should be a validation error")
		}
		if got := len(s.Snapshot().Users); got != before {
			t.Errorf("user count changed on rejected registration: %d -> %d", before, got)
		}
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.RegisterStudent(ctx, RegisterInput{
			FullName:        "Asha",
			RollNumber:      "R-2",
			GuardianName:    "G",
			BatchID:         "batch-morning",
			Password:        "pw",
			ConfirmPassword: "other",
		})
		if !errors.Is(err, ErrPasswordMismatch) {
			t.Fatalf("expected ErrPasswordMismatch, got %v", err)
		}
		if len(s.Snapshot().Users) != 0 {
			t.Error("document changed on rejected registration")
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.RegisterStudent(ctx, RegisterInput{FullName: "Asha"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("new registrant is a pending student with zero fee", func(t *testing.T) {
		s := newTestStore(t)
		u := register(t, s, "Asha", "R-3")
		if u.Role != models.RoleStudent {
			t.Errorf("role = %s, want STUDENT", u.Role)
		}
		if u.Status != models.StatusPending {
			t.Errorf("status = %s, want PENDING", u.Status)
		}
		if u.MonthlyFee != 0 {
			t.Errorf("fee = %v, want 0", u.MonthlyFee)
		}
	})
}

func TestApproveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("sets default fee regardless of prior value", func(t *testing.T) {
		s := newTestStore(t)
		u := register(t, s, "Asha", "R-1")
		if err := s.SetMonthlyFee(ctx, u.ID, 999); err != nil {
			t.Fatalf("SetMonthlyFee failed: %v", err)
		}

		if err := s.ApproveUser(ctx, u.ID); err != nil {
			t.Fatalf("ApproveUser failed: %v", err)
		}
		got := s.Snapshot().FindUser(u.ID)
		if got.MonthlyFee != DefaultMonthlyFee {
			t.Errorf("fee = %v, want %v", got.MonthlyFee, DefaultMonthlyFee)
		}
		if got.Status != models.StatusApproved {
			t.Errorf("status = %s, want APPROVED", got.Status)
		}
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		s := newTestStore(t)
		if err := s.ApproveUser(ctx, "nope"); err != nil {
			t.Fatalf("expected silent no-op, got %v", err)
		}
	})
}

func TestRejectUserRemovesRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := register(t, s, "Asha", "R-1")

	if err := s.RejectUser(ctx, u.ID); err != nil {
		t.Fatalf("RejectUser failed: %v", err)
	}
	if s.Snapshot().FindUser(u.ID) != nil {
		t.Error("rejected user should be removed, not tombstoned")
	}

	// the roll number is free again after a reject
	register(t, s, "Vikram", "R-1")
}

func TestSetUserStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := register(t, s, "Asha", "R-1")

	if err := s.SetUserStatus(ctx, u.ID, models.StatusInactive); err != nil {
		t.Fatalf("SetUserStatus failed: %v", err)
	}
	if got := s.Snapshot().FindUser(u.ID).Status; got != models.StatusInactive {
		t.Errorf("status = %s, want INACTIVE", got)
	}

	if err := s.SetUserStatus(ctx, u.ID, "BOGUS"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unknown status, got %v", err)
	}
}
