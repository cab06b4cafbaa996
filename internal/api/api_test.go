package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gurukul-app/backend/internal/auth"
	"github.com/gurukul-app/backend/internal/storage/memory"
	"github.com/gurukul-app/backend/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.Open(context.Background(), memory.New())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	server := NewServer(
		st,
		auth.StaticVerifier{ID: "ADMIN", Password: "admin123"},
		auth.NewJWTManager("test-secret", time.Hour),
	)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestRegistrationApprovalLoginFlow(t *testing.T) {
	ts := newTestServer(t)

	// self-registration is public
	resp := postJSON(t, ts.URL+"/api/register", "", store.RegisterInput{
		FullName:        "Asha Patel",
		RollNumber:      "SSC-101",
		GuardianName:    "Mr Patel",
		BatchID:         "batch-morning",
		Password:        "pw",
		ConfirmPassword: "pw",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register status = %d", resp.StatusCode)
	}
	var reg struct {
		OK     bool   `json:"ok"`
		UserID string `json:"userId"`
	}
	decodeBody(t, resp, &reg)
	if !reg.OK || reg.UserID == "" {
		t.Fatalf("register response = %+v", reg)
	}

	// a pending student cannot log in yet
	resp = postJSON(t, ts.URL+"/api/login", "", map[string]string{
		"role": "STUDENT", "identifier": "SSC-101", "password": "pw",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("pending login status = %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()

	// admin logs in and approves
	resp = postJSON(t, ts.URL+"/api/login", "", map[string]string{
		"role": "ADMIN", "identifier": "admin", "password": "admin123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin login status = %d", resp.StatusCode)
	}
	var adminLogin struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &adminLogin)

	resp = postJSON(t, ts.URL+"/api/users/"+reg.UserID+"/approve", adminLogin.Token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	// the approved student can now log in and see their dashboard
	resp = postJSON(t, ts.URL+"/api/login", "", map[string]string{
		"role": "STUDENT", "identifier": "asha patel", "password": "pw",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("student login status = %d", resp.StatusCode)
	}
	var studentLogin struct {
		Token string `json:"token"`
		User  struct {
			Password string `json:"password"`
		} `json:"user"`
	}
	decodeBody(t, resp, &studentLogin)
	if studentLogin.User.Password != "" {
		t.Error("login response must not echo the password")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/me/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+studentLogin.Token)
	dashResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("dashboard request failed: %v", err)
	}
	if dashResp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard status = %d", dashResp.StatusCode)
	}
	dashResp.Body.Close()

	// and the student cannot reach admin routes
	resp = postJSON(t, ts.URL+"/api/users/"+reg.UserID+"/approve", studentLogin.Token, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("student approve status = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAdminRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/bills/generate", "", map[string]any{
		"userIds": []string{"u1"}, "month": "January", "year": "2025",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()
}
