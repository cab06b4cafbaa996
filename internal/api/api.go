// Package api exposes the domain store to the local UI as a JSON-over-HTTP
// surface. It is a convenience shell around the in-process contract: handlers
// only decode input, call a store mutation or a projection, and encode the
// result. No handler touches the document directly.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gurukul-app/backend/internal/auth"
	"github.com/gurukul-app/backend/internal/middleware"
	"github.com/gurukul-app/backend/internal/store"
)

// Server wires the store, the admin verifier and the session manager into an
// http.Handler.
type Server struct {
	store *store.Store
	admin auth.AdminVerifier
	jwt   *auth.JWTManager
}

// NewServer creates the API surface.
func NewServer(st *store.Store, admin auth.AdminVerifier, jwt *auth.JWTManager) *Server {
	return &Server{store: st, admin: admin, jwt: jwt}
}

// Handler builds the full route table with logging and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// public
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	// staff (admin + teacher)
	mux.Handle("GET /api/state", s.staff(s.handleState))
	mux.Handle("GET /api/attendance/review", s.staff(s.handleReviewAttendance))
	mux.Handle("POST /api/attendance", s.staff(s.handleMarkAttendance))
	mux.Handle("POST /api/homework", s.staff(s.handlePostHomework))
	mux.Handle("DELETE /api/homework/{id}", s.staff(s.handleDeleteHomework))
	mux.Handle("POST /api/announcements", s.staff(s.handlePostAnnouncement))
	mux.Handle("DELETE /api/announcements/{id}", s.staff(s.handleDeleteAnnouncement))

	// admin only
	mux.Handle("POST /api/users/{id}/approve", s.adminOnly(s.handleApproveUser))
	mux.Handle("POST /api/users/{id}/reject", s.adminOnly(s.handleRejectUser))
	mux.Handle("DELETE /api/users/{id}", s.adminOnly(s.handleDeleteUser))
	mux.Handle("POST /api/users/{id}/status", s.adminOnly(s.handleSetUserStatus))
	mux.Handle("POST /api/users/{id}/batch", s.adminOnly(s.handleChangeBatch))
	mux.Handle("POST /api/users/{id}/fee", s.adminOnly(s.handleSetMonthlyFee))
	mux.Handle("POST /api/batches", s.adminOnly(s.handleCreateBatch))
	mux.Handle("PUT /api/batches/{id}", s.adminOnly(s.handleUpdateBatch))
	mux.Handle("DELETE /api/batches/{id}", s.adminOnly(s.handleDeleteBatch))
	mux.Handle("POST /api/bills/generate", s.adminOnly(s.handleGenerateBills))
	mux.Handle("POST /api/bills/{id}/toggle", s.adminOnly(s.handleToggleBill))
	mux.Handle("DELETE /api/bills/{id}", s.adminOnly(s.handleDeleteBill))
	mux.Handle("PUT /api/settings/payment", s.adminOnly(s.handleUpdatePaymentSettings))

	// any authenticated user
	mux.Handle("GET /api/me/dashboard", s.session(s.handleMyDashboard))
	mux.Handle("POST /api/homework/{id}/complete", s.session(s.handleConfirmCompletion))

	return middleware.Logging(middleware.CORS(mux))
}

func (s *Server) session(fn http.HandlerFunc) http.Handler {
	return middleware.RequireSession(s.jwt, fn)
}

func (s *Server) staff(fn http.HandlerFunc) http.Handler {
	return middleware.RequireStaff(s.jwt, fn)
}

func (s *Server) adminOnly(fn http.HandlerFunc) http.Handler {
	return middleware.RequireAdmin(s.jwt, fn)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

// mutationResult reports a mutation back to the UI. A durability failure is
// not a request failure: the in-memory effect applied and the UI should only
// warn that the change may not survive a restart.
type mutationResult struct {
	OK      bool   `json:"ok"`
	Durable bool   `json:"durable"`
	Error   string `json:"error,omitempty"`
}

func respondMutation(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, mutationResult{OK: true, Durable: true})
	case errors.Is(err, store.ErrDurability):
		writeJSON(w, http.StatusOK, mutationResult{OK: true, Durable: false, Error: err.Error()})
	case errors.Is(err, store.ErrValidation):
		writeJSON(w, http.StatusBadRequest, mutationResult{OK: false, Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, mutationResult{OK: false, Error: err.Error()})
	}
}
