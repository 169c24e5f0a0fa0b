package handler

import (
	"net/http"
	"time"

	"github.com/fleetdesk/fleetdesk-go/internal/core/service"
	"github.com/fleetdesk/fleetdesk-go/internal/infra/buildinfo"
)

// Login handles POST /administradores/login.
//
// A successful login answers 200 with the email, role and a signed
// token. Every failure, malformed body included, answers a bare 401.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.rejectLogin(w, r)
		return
	}

	admin, err := h.auth.Login(r.Context(), &service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.rejectLogin(w, r)
		return
	}

	token, err := h.tokens.Issue(admin)
	if err != nil {
		if h.metrics != nil {
			h.metrics.ObserveLogin(false)
		}
		h.handleServiceError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveLogin(true)
	}
	h.log.WithContext(r.Context()).Info("login succeeded", "email", admin.Email, "role", admin.Role)

	h.writeJSON(w, r, http.StatusOK, loginResponse{
		Email: admin.Email,
		Role:  string(admin.Role),
		Token: token,
	})
}

func (h *Handler) rejectLogin(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		h.metrics.ObserveLogin(false)
	}
	h.log.WithContext(r.Context()).Warn("login rejected", "client_ip", r.RemoteAddr)
	w.WriteHeader(http.StatusUnauthorized)
}

// Home handles GET /{$}.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, homeResponse{
		Service: "fleetdesk",
		Version: buildinfo.Version,
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: buildinfo.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
