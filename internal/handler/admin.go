package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

// AdminHandler handles admin login and usage statistics.
type AdminHandler struct {
	admin *service.AdminService
	stats *service.StatsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin *service.AdminService, stats *service.StatsService) *AdminHandler {
	return &AdminHandler{admin: admin, stats: stats}
}

// HandleToken handles POST /api/v1/admin/token requests.
func (h *AdminHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.admin.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStats handles GET /api/v1/admin/stats requests.
// The optional since query parameter is an RFC 3339 timestamp.
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("since must be an RFC 3339 timestamp"))
			return
		}
		since = &t
	}

	resp, err := h.stats.Summary(r.Context(), since)
	if err != nil {
		if errors.Is(err, service.ErrStatsUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
