package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gurukul-app/backend/internal/auth"
	"github.com/gurukul-app/backend/internal/middleware"
	"github.com/gurukul-app/backend/internal/models"
	"github.com/gurukul-app/backend/internal/projection"
	"github.com/gurukul-app/backend/internal/store"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in store.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := s.store.RegisterStudent(r.Context(), in)
	if err != nil && user == nil {
		respondMutation(w, err)
		return
	}
	slog.Info("student registered", "user_id", user.ID, "roll_number", user.RollNumber)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"durable": !errors.Is(err, store.ErrDurability),
		"userId":  user.ID,
	})
}

type loginRequest struct {
	Role       models.Role `json:"role"`
	Identifier string      `json:"identifier"`
	Password   string      `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	var user models.User
	if in.Role == models.RoleAdmin {
		if !s.admin.Verify(in.Identifier, in.Password) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": auth.ErrInvalidCredentials.Error()})
			return
		}
		user = auth.AdminUser()
	} else {
		matched, err := auth.StudentLogin(s.store.Snapshot(), in.Identifier, in.Password)
		if err != nil {
			slog.Warn("login failed", "identifier", in.Identifier, "error", err)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		user = *matched
	}

	token, err := s.jwt.Generate(&user)
	if err != nil {
		slog.Error("failed to generate session token", "user_id", user.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not create session"})
		return
	}

	user.Password = "" // never echo credentials
	slog.Info("login succeeded", "user_id", user.ID, "role", user.Role)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

// handleState hands the staff dashboard the whole document snapshot: the UI
// contract is read-the-document, invoke-mutations.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

// handleMyDashboard returns the student-facing projections for the session
// user.
func (s *Server) handleMyDashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	doc := s.store.Snapshot()

	var batchID string
	if u := doc.FindUser(userID); u != nil {
		batchID = u.BatchID
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"batchName":       projection.BatchName(doc, batchID),
		"bills":           projection.BillsForUser(doc, userID),
		"attendance":      projection.AttendanceForUser(doc, userID),
		"homework":        projection.HomeworkForBatch(doc, batchID),
		"completions":     projection.CompletionSet(doc, userID),
		"announcements":   projection.AnnouncementsForBatch(doc, batchID),
		"paymentSettings": doc.PaymentSettings,
	})
}
