package health

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
)

// Checker represents dependencies that can be probed for readiness.
type Checker interface {
	CheckDataDir() error
	CheckMailer() error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker Checker
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on dependency probes.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	if h.Checker == nil {
		http.Error(w, "dependencies unavailable", http.StatusServiceUnavailable)
		return
	}
	dataStatus := "ok"
	if err := h.Checker.CheckDataDir(); err != nil {
		dataStatus = err.Error()
	}
	mailStatus := "ok"
	if err := h.Checker.CheckMailer(); err != nil {
		mailStatus = err.Error()
	}
	status := map[string]string{
		"data_dir": dataStatus,
		"mailer":   mailStatus,
	}
	w.Header().Set("Content-Type", "application/json")
	if dataStatus != "ok" || mailStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

// ProbeDataDir verifies the directory exists and accepts writes.
func ProbeDataDir(dir string) error {
	probe := filepath.Join(dir, ".ready")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}
