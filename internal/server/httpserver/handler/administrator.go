package handler

import (
	"fmt"
	"net/http"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
)

// CreateAdministrator handles POST /administradores.
func (h *Handler) CreateAdministrator(w http.ResponseWriter, r *http.Request) {
	var draft domain.AdministratorDraft
	if err := h.decodeBody(w, r, &draft); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	admin, err := h.admins.Create(r.Context(), draft)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.log.WithContext(r.Context()).Info("administrator created",
		"id", admin.ID, "email", admin.Email, "role", admin.Role)

	w.Header().Set("Location", fmt.Sprintf("/administradores/%d", admin.ID))
	h.writeJSON(w, r, http.StatusCreated, admin)
}

// GetAdministrator handles GET /administradores/{id}.
func (h *Handler) GetAdministrator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	admin, err := h.admins.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, admin)
}

// ListAdministrators handles GET /administradores.
func (h *Handler) ListAdministrators(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	admins, err := h.admins.List(r.Context(), page)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if admins == nil {
		admins = []*domain.Administrator{}
	}

	h.writeJSON(w, r, http.StatusOK, admins)
}
