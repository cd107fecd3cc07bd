// api.go
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const version = "1.0.0"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encode response", slog.Any("error", err))
	}
}

func (s *server) apiReportHandler(w http.ResponseWriter, r *http.Request) {
	last, _, err := s.analyze(w, r)
	if err != nil {
		writeJSON(w, statusOf(err), APIResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, RunID: last.RunID, Data: last.Report})
}

func (s *server) lastReportHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()

	if last == nil {
		writeJSON(w, http.StatusNotFound, APIResponse{Success: false, Error: "no report yet"})
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, RunID: last.RunID, Data: last})
}

// validateFileHandler loads the roster without running any query.
func (s *server) validateFileHandler(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		writeJSON(w, statusOf(err), APIResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: map[string]any{
		"status":   "File valid",
		"file":     up.FileName,
		"students": len(up.Roster),
	}})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   version,
	})
}
