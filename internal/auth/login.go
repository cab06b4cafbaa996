package auth

import (
	"strings"
	"time"

	"github.com/gurukul-app/backend/internal/models"
)

// AdminUser synthesizes the administrative identity on successful login. The
// admin is never part of the stored user collection.
func AdminUser() models.User {
	return models.User{
		ID:        "ADMIN",
		FullName:  "Administrator",
		Role:      models.RoleAdmin,
		Status:    models.StatusApproved,
		CreatedAt: time.Now().Unix(),
	}
}

// StudentLogin matches a trimmed identifier case-insensitively against the
// full name or roll number of stored users and compares the password
// verbatim. Approval status gates the result: a credential match on a
// PENDING account reports ErrPendingApproval, any other non-approved status
// reports ErrNotApproved, and no match at all is ErrInvalidCredentials.
func StudentLogin(doc models.Document, identifier, password string) (*models.User, error) {
	id := strings.TrimSpace(identifier)
	pass := strings.TrimSpace(password)

	for _, u := range doc.Users {
		nameMatch := strings.EqualFold(u.FullName, id)
		rollMatch := u.RollNumber != "" && strings.EqualFold(u.RollNumber, id)
		if !nameMatch && !rollMatch {
			continue
		}
		if u.Password != pass {
			continue
		}

		switch u.Status {
		case models.StatusApproved:
			user := u
			return &user, nil
		case models.StatusPending:
			return nil, ErrPendingApproval
		default:
			return nil, ErrNotApproved
		}
	}
	return nil, ErrInvalidCredentials
}
