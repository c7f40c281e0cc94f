package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/umpire-auditor/internal/audit"
	"github.com/preston-bernstein/umpire-auditor/internal/http/requestutil"
	"github.com/preston-bernstein/umpire-auditor/internal/logging"
)

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	auditor audit.GameAuditor
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(auditor audit.GameAuditor, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		auditor: auditor,
		token:   token,
		logger:  logger,
	}
}

// AuditGame re-audits one game on demand. Guarded by the admin bearer token; returns 401 if missing/invalid.
func (h *AdminHandler) AuditGame(w http.ResponseWriter, r *http.Request) {
	if !requestutil.HasBearer(r, h.token) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.auditor == nil {
		writeError(w, r, http.StatusServiceUnavailable, "auditor not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	id, err := parseGameID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid game id", logger)
		return
	}

	res, err := h.auditor.AuditGame(r.Context(), id)
	if err != nil {
		logging.Warn(logger, "admin audit failed", slog.Int(logging.FieldGameID, id), logging.Err(err))
		writeError(w, r, http.StatusBadGateway, "audit failed", logger)
		return
	}

	body := map[string]any{
		"gameId":         id,
		"date":           res.Date,
		"status":         "audited",
		"graded":         len(res.Pitches),
		"incorrect":      res.Incorrect(),
		"ejections":      len(res.Ejections),
		"culled":         res.Culled,
		"skippedPitches": res.SkippedPitches,
	}
	if res.Excluded() {
		body["status"] = "skipped"
		body["reason"] = res.Skipped
	} else {
		body["scorecard"] = res.Scorecard
	}
	writeJSON(w, http.StatusOK, body, logger)
	logging.Info(logger, "admin audit complete", slog.Int(logging.FieldGameID, id), slog.String(logging.FieldStatus, body["status"].(string)))
}
