package store

import (
	"context"
	"fmt"

	"github.com/gurukul-app/backend/internal/models"
)

// RegisterInput is a self-registration request. All fields are required and
// the confirmation must match the password.
type RegisterInput struct {
	FullName        string `json:"fullName" validate:"required"`
	RollNumber      string `json:"rollNumber" validate:"required"`
	GuardianName    string `json:"guardianName" validate:"required"`
	BatchID         string `json:"batchId" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// RegisterStudent creates a new PENDING student with fee zero. A roll number
// already held by any stored user rejects the registration atomically: no
// partial user is ever created.
func (s *Store) RegisterStudent(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}

	var created models.User
	err := s.apply(ctx, "register_student", func(doc models.Document) (models.Document, error) {
		for _, u := range doc.Users {
			if u.RollNumber != "" && u.RollNumber == in.RollNumber {
				return doc, ErrDuplicateRoll
			}
		}
		created = models.User{
			ID:           s.newID(),
			FullName:     in.FullName,
			RollNumber:   in.RollNumber,
			GuardianName: in.GuardianName,
			BatchID:      in.BatchID,
			Password:     in.Password,
			Role:         models.RoleStudent,
			Status:       models.StatusPending,
			MonthlyFee:   0,
			CreatedAt:    s.now().Unix(),
		}
		doc.Users = append(doc.Users, created)
		return doc, nil
	})
	if err != nil && created.ID == "" {
		return nil, err
	}
	return &created, err
}

// ApproveUser moves a registrant to APPROVED and sets the default monthly
// fee, replacing whatever fee was there before. Unknown ids are a silent
// no-op.
func (s *Store) ApproveUser(ctx context.Context, userID string) error {
	return s.apply(ctx, "approve_user", func(doc models.Document) (models.Document, error) {
		if u := doc.FindUser(userID); u != nil {
			u.Status = models.StatusApproved
			u.MonthlyFee = DefaultMonthlyFee
		}
		return doc, nil
	})
}

// RejectUser removes the registrant's record entirely, matching the product's
// reject behaviour. No REJECTED tombstone is retained; see DESIGN.md for the
// rationale. Unknown ids are a silent no-op.
func (s *Store) RejectUser(ctx context.Context, userID string) error {
	return s.deleteUser(ctx, "reject_user", userID)
}

// DeleteUser removes a user record. Dependent attendance, completions and
// bills are left behind by design.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	return s.deleteUser(ctx, "delete_user", userID)
}

func (s *Store) deleteUser(ctx context.Context, op, userID string) error {
	return s.apply(ctx, op, func(doc models.Document) (models.Document, error) {
		kept := doc.Users[:0:0]
		for _, u := range doc.Users {
			if u.ID != userID {
				kept = append(kept, u)
			}
		}
		doc.Users = kept
		return doc, nil
	})
}

// SetUserStatus is a direct administrative edit of the approval status. It is
// the only road to INACTIVE; the admission workflow never produces it.
func (s *Store) SetUserStatus(ctx context.Context, userID string, status models.ApprovalStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown approval status %q", ErrValidation, status)
	}
	return s.apply(ctx, "set_user_status", func(doc models.Document) (models.Document, error) {
		if u := doc.FindUser(userID); u != nil {
			u.Status = status
		}
		return doc, nil
	})
}
