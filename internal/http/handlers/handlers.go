package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/umpire-auditor/internal/http/requestutil"
	"github.com/preston-bernstein/umpire-auditor/internal/logging"
	"github.com/preston-bernstein/umpire-auditor/internal/poller"
	"github.com/preston-bernstein/umpire-auditor/internal/report"
	"github.com/preston-bernstein/umpire-auditor/internal/store"
)

// Handler wires the reporting routes to the report service.
type Handler struct {
	reports  *report.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no scheduled audit runs.
func NewHandler(reports *report.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		reports:  reports,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the last scheduled audit succeeded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{
			"status":      "ready",
			"lastSuccess": status.LastSuccess,
		}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// GameScorecard returns one game's umpire scorecard.
func (h *Handler) GameScorecard(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	card, err := h.reports.Scorecard(r.Context(), id)
	if err != nil {
		h.storeError(w, r, err, "game not found")
		return
	}
	writeJSON(w, nethttp.StatusOK, card, h.logger)
}

// GamePitches returns a game's graded pitches; ?incorrect=true keeps only blown calls.
func (h *Handler) GamePitches(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	incorrect, err := requestutil.BoolParam(r, "incorrect")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	graded, err := h.reports.GamePitches(r.Context(), id, incorrect)
	if err != nil {
		h.storeError(w, r, err, "game not found")
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"gameId":  id,
		"count":   len(graded),
		"pitches": graded,
	}, h.logger)
}

// Umpires ranks umpires by correct-call rate. ?min_calls sets the call floor.
func (h *Handler) Umpires(w nethttp.ResponseWriter, r *nethttp.Request) {
	rng, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	minCalls, err := requestutil.IntParam(r, "min_calls", report.DefaultMinCalls)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	rates, err := h.reports.Umpires(r.Context(), rng, minCalls)
	h.writeList(w, r, rng, "umpires", rates, len(rates), err)
}

// Seasons summarizes accuracy per year.
func (h *Handler) Seasons(w nethttp.ResponseWriter, r *nethttp.Request) {
	rng, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	seasons, err := h.reports.Seasons(r.Context(), rng)
	h.writeList(w, r, rng, "seasons", seasons, len(seasons), err)
}

// Teams nets blown calls per club.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	rng, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	tallies, err := h.reports.Teams(r.Context(), rng)
	h.writeList(w, r, rng, "teams", tallies, len(tallies), err)
}

// BlownStrikeouts lists blown strike-three calls, worst miss first.
func (h *Handler) BlownStrikeouts(w nethttp.ResponseWriter, r *nethttp.Request) {
	rng, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	calls, err := h.reports.BlownStrikeouts(r.Context(), rng)
	h.writeList(w, r, rng, "pitches", calls, len(calls), err)
}

// BlownWalks lists blown ball-four calls, highest pitch first.
func (h *Handler) BlownWalks(w nethttp.ResponseWriter, r *nethttp.Request) {
	rng, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	calls, err := h.reports.BlownWalks(r.Context(), rng)
	h.writeList(w, r, rng, "pitches", calls, len(calls), err)
}

// Players ranks batters or pitchers by blown calls. ?role is required.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	rng, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	role, err := report.ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "role must be batter or pitcher", h.logger)
		return
	}
	tallies, err := h.reports.Players(r.Context(), rng, role)
	h.writeList(w, r, rng, "players", tallies, len(tallies), err)
}

// Ejections lists ejections over the range.
func (h *Handler) Ejections(w nethttp.ResponseWriter, r *nethttp.Request) {
	rng, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	ejected, err := h.reports.Ejections(r.Context(), rng)
	h.writeList(w, r, rng, "ejections", ejected, len(ejected), err)
}

func (h *Handler) gameID(w nethttp.ResponseWriter, r *nethttp.Request) (int, bool) {
	id, err := parseGameID(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return 0, false
	}
	return id, true
}

func (h *Handler) dateRange(w nethttp.ResponseWriter, r *nethttp.Request) (store.Range, bool) {
	from, to, err := requestutil.DateRange(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return store.Range{}, false
	}
	return store.Range{From: from, To: to}, true
}

func (h *Handler) writeList(w nethttp.ResponseWriter, r *nethttp.Request, rng store.Range, key string, items any, n int, err error) {
	if err != nil {
		h.storeError(w, r, err, "not found")
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"from":  rng.From,
		"to":    rng.To,
		"count": n,
		key:     items,
	}, h.logger)
}

func (h *Handler) storeError(w nethttp.ResponseWriter, r *nethttp.Request, err error, notFound string) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, nethttp.StatusNotFound, notFound, h.logger)
		return
	}
	logging.Error(loggerFromContext(r, h.logger), "report query failed", err)
	writeError(w, r, nethttp.StatusInternalServerError, "query failed", h.logger)
}

func parseGameID(r *nethttp.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, requestutil.ErrInvalidParam
	}
	return id, nil
}
