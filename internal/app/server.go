package app

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/purnamedha/riskscan/internal/config"
	"github.com/purnamedha/riskscan/internal/logger"
)

// Handler builds the HTTP surface for serve mode: the scan API, liveness
// and Prometheus metrics.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scan", a.scanHandler)
	mux.HandleFunc("/health", a.healthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Serve runs the HTTP server until it fails. Scans happen on demand per
// request; nothing is cached server-side, the cache headers leave that to
// the CDN in front.
func (a *App) Serve() error {
	logger.Info("listening", "addr", a.cfg.Addr)
	server := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}

func (a *App) scanHandler(w http.ResponseWriter, r *http.Request) {
	days := a.cfg.Days
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}
	if days > config.MaxDays {
		days = config.MaxDays
	}

	res := a.Scan(r.Context(), days)
	body, err := a.Render(res, "json")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "s-maxage=3600, stale-while-revalidate=1800")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if _, err := w.Write(body); err != nil {
		logger.Warn("write response failed", "error", err)
	}
}

func (a *App) healthHandler(w http.ResponseWriter, _ *http.Request) {
	lastAt, lastTotal := a.LastScan()
	payload := map[string]any{
		"status": "ok",
	}
	if !lastAt.IsZero() {
		payload["last_scan"] = lastAt.Format(time.RFC3339)
		payload["last_total"] = lastTotal
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn("write health failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
