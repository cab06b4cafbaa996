package api

import (
	"net/http"

	"github.com/gurukul-app/backend/internal/models"
	"github.com/gurukul-app/backend/internal/store"
)

func (s *Server) handleApproveUser(w http.ResponseWriter, r *http.Request) {
	respondMutation(w, s.store.ApproveUser(r.Context(), r.PathValue("id")))
}

func (s *Server) handleRejectUser(w http.ResponseWriter, r *http.Request) {
	respondMutation(w, s.store.RejectUser(r.Context(), r.PathValue("id")))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	respondMutation(w, s.store.DeleteUser(r.Context(), r.PathValue("id")))
}

func (s *Server) handleSetUserStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status models.ApprovalStatus `json:"status"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	respondMutation(w, s.store.SetUserStatus(r.Context(), r.PathValue("id"), in.Status))
}

func (s *Server) handleChangeBatch(w http.ResponseWriter, r *http.Request) {
	var in struct {
		BatchID string `json:"batchId"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	respondMutation(w, s.store.ChangeBatch(r.Context(), r.PathValue("id"), in.BatchID))
}

func (s *Server) handleSetMonthlyFee(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Fee float64 `json:"fee"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	respondMutation(w, s.store.SetMonthlyFee(r.Context(), r.PathValue("id"), in.Fee))
}

func (s *Server) handleCreateBatch(w http.ResponseWriter, r *http.Request) {
	var in store.BatchInput
	if !decodeJSON(w, r, &in) {
		return
	}
	batch, err := s.store.CreateBatch(r.Context(), in)
	if err != nil && batch == nil {
		respondMutation(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

func (s *Server) handleUpdateBatch(w http.ResponseWriter, r *http.Request) {
	var in store.BatchInput
	if !decodeJSON(w, r, &in) {
		return
	}
	respondMutation(w, s.store.UpdateBatch(r.Context(), r.PathValue("id"), in))
}

func (s *Server) handleDeleteBatch(w http.ResponseWriter, r *http.Request) {
	respondMutation(w, s.store.DeleteBatch(r.Context(), r.PathValue("id")))
}

func (s *Server) handleGenerateBills(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserIDs []string `json:"userIds"`
		Month   string   `json:"month"`
		Year    string   `json:"year"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	respondMutation(w, s.store.GenerateBills(r.Context(), in.UserIDs, in.Month, in.Year))
}

func (s *Server) handleToggleBill(w http.ResponseWriter, r *http.Request) {
	respondMutation(w, s.store.ToggleBillStatus(r.Context(), r.PathValue("id")))
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	respondMutation(w, s.store.DeleteBill(r.Context(), r.PathValue("id")))
}

func (s *Server) handleUpdatePaymentSettings(w http.ResponseWriter, r *http.Request) {
	var in models.PaymentSettings
	if !decodeJSON(w, r, &in) {
		return
	}
	respondMutation(w, s.store.UpdatePaymentSettings(r.Context(), in))
}
