package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/core/service"
	"github.com/fleetdesk/fleetdesk-go/internal/telemetry/logger"
	"github.com/fleetdesk/fleetdesk-go/internal/telemetry/metric"
)

// maxBodyBytes caps request bodies. The API only carries small JSON
// documents.
const maxBodyBytes = 1 << 20

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	auth     *service.AuthService
	tokens   *service.TokenService
	admins   *service.AdministratorService
	vehicles *service.VehicleService
	metrics  *metric.Registry
	log      logger.Logger
}

// New creates a Handler. metrics may be nil when metric recording is
// not wanted (tests).
func New(
	auth *service.AuthService,
	tokens *service.TokenService,
	admins *service.AdministratorService,
	vehicles *service.VehicleService,
	metrics *metric.Registry,
	log logger.Logger,
) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{
		auth:     auth,
		tokens:   tokens,
		admins:   admins,
		vehicles: vehicles,
		metrics:  metrics,
		log:      log,
	}
}

// writeJSON writes a JSON response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.WithContext(r.Context()).Error("encode response", "error", err)
	}
}

// handleServiceError translates a service error into an HTTP response.
//
// Validation failures answer 400 with the full list of violations.
// Authentication and authorization failures answer a bare 401 with no
// body at all, so the caller cannot tell which check rejected it.
// Not-found answers a bare 404. Everything else carries a code/message
// body.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if messages := domain.ValidationMessages(err); messages != nil {
		h.writeJSON(w, r, http.StatusBadRequest, messagesResponse{Messages: messages})
		return
	}

	var de *domain.DomainError
	if !errors.As(err, &de) {
		h.log.WithContext(r.Context()).Error("unhandled error", "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, errorResponse{
			Code:    domain.ErrInternalServer.Code,
			Message: domain.ErrInternalServer.Message,
		})
		return
	}

	status := errorCodeToHTTPStatus(de.Code)
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		w.WriteHeader(http.StatusUnauthorized)
	case http.StatusNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		if status >= 500 {
			h.log.WithContext(r.Context()).Error("request failed",
				"code", de.Code, "error", de.Error())
		}
		h.writeJSON(w, r, status, errorResponse{Code: de.Code, Message: de.Message})
	}
}

// errorCodeToHTTPStatus maps a domain error code to an HTTP status via
// its numeric suffix (FD-VEH-4040 -> 404, FD-SYS-5001 -> 500).
func errorCodeToHTTPStatus(code string) int {
	idx := strings.LastIndex(code, "-")
	if idx < 0 || len(code)-idx != 5 {
		return http.StatusInternalServerError
	}

	switch code[idx+1 : idx+4] {
	case "400":
		return http.StatusBadRequest
	case "401":
		return http.StatusUnauthorized
	case "403":
		return http.StatusForbidden
	case "404":
		return http.StatusNotFound
	case "409":
		return http.StatusConflict
	case "429":
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes the request body into dst.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.ErrBadRequest.WithDetails("malformed JSON body").WithCause(err)
	}
	return nil
}

// pathID parses the {id} route segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBadRequest.WithDetails("invalid id")
	}
	return id, nil
}

// queryPage parses the optional ?page= query parameter. An absent
// parameter returns nil, which the services read as page one.
func queryPage(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return nil, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.ErrBadRequest.WithDetails("invalid page")
	}
	return &page, nil
}
