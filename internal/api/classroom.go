package api

import (
	"net/http"

	"github.com/gurukul-app/backend/internal/middleware"
	"github.com/gurukul-app/backend/internal/models"
	"github.com/gurukul-app/backend/internal/projection"
	"github.com/gurukul-app/backend/internal/store"
)

func (s *Server) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserID string                  `json:"userId"`
		Status models.AttendanceStatus `json:"status"`
		Date   string                  `json:"date"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	respondMutation(w, s.store.MarkAttendance(r.Context(), in.UserID, in.Status, in.Date))
}

func (s *Server) handleReviewAttendance(w http.ResponseWriter, r *http.Request) {
	q := projection.ReviewQuery{
		Search: r.URL.Query().Get("search"),
		Month:  r.URL.Query().Get("month"),
		Year:   r.URL.Query().Get("year"),
	}
	writeJSON(w, http.StatusOK, projection.ReviewAttendance(s.store.Snapshot(), q))
}

func (s *Server) handlePostHomework(w http.ResponseWriter, r *http.Request) {
	var in store.HomeworkInput
	if !decodeJSON(w, r, &in) {
		return
	}
	hw, err := s.store.PostHomework(r.Context(), in)
	if err != nil && hw == nil {
		respondMutation(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hw)
}

func (s *Server) handleDeleteHomework(w http.ResponseWriter, r *http.Request) {
	respondMutation(w, s.store.DeleteHomework(r.Context(), r.PathValue("id")))
}

// handleConfirmCompletion marks the session user's completion for an
// assignment. Students confirm for themselves; repeated confirmations are
// no-ops.
func (s *Server) handleConfirmCompletion(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	respondMutation(w, s.store.ConfirmCompletion(r.Context(), r.PathValue("id"), userID))
}

func (s *Server) handlePostAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in store.AnnouncementInput
	if !decodeJSON(w, r, &in) {
		return
	}
	a, err := s.store.PostAnnouncement(r.Context(), in)
	if err != nil && a == nil {
		respondMutation(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	respondMutation(w, s.store.DeleteAnnouncement(r.Context(), r.PathValue("id")))
}
