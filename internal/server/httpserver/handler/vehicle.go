package handler

import (
	"fmt"
	"net/http"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
)

// CreateVehicle handles POST /veiculos.
func (h *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var draft domain.VehicleDraft
	if err := h.decodeBody(w, r, &draft); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	vehicle, err := h.vehicles.Create(r.Context(), draft)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.log.WithContext(r.Context()).Info("vehicle created",
		"id", vehicle.ID, "name", vehicle.Name, "brand", vehicle.Brand)
	h.updateVehicleGauge(r)

	w.Header().Set("Location", fmt.Sprintf("/veiculos/%d", vehicle.ID))
	h.writeJSON(w, r, http.StatusCreated, vehicle)
}

// GetVehicle handles GET /veiculos/{id}.
func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	vehicle, err := h.vehicles.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, vehicle)
}

// ListVehicles handles GET /veiculos.
func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	vehicles, err := h.vehicles.List(r.Context(), page)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if vehicles == nil {
		vehicles = []*domain.Vehicle{}
	}

	h.writeJSON(w, r, http.StatusOK, vehicles)
}

// UpdateVehicle handles PUT /veiculos/{id}. The body fully replaces
// the stored record.
func (h *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	var draft domain.VehicleDraft
	if err := h.decodeBody(w, r, &draft); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	vehicle, err := h.vehicles.Update(r.Context(), id, draft)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.log.WithContext(r.Context()).Info("vehicle updated", "id", vehicle.ID)

	h.writeJSON(w, r, http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /veiculos/{id}.
func (h *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if err := h.vehicles.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.log.WithContext(r.Context()).Info("vehicle deleted", "id", id)
	h.updateVehicleGauge(r)

	w.WriteHeader(http.StatusNoContent)
}

// updateVehicleGauge refreshes the active-vehicles gauge after a
// create or delete. Gauge staleness is tolerable, so a count failure is
// only logged.
func (h *Handler) updateVehicleGauge(r *http.Request) {
	if h.metrics == nil {
		return
	}
	count, err := h.vehicles.Count(r.Context())
	if err != nil {
		h.log.WithContext(r.Context()).Warn("count vehicles for gauge", "error", err)
		return
	}
	h.metrics.VehiclesActive.Set(float64(count))
}
