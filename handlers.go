// handlers.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"rosterstats/roster"
)

type server struct {
	cfg *Config
	log *slog.Logger

	mu   sync.RWMutex
	last *lastReport
}

func newServer(cfg *Config, logger *slog.Logger) *server {
	return &server{cfg: cfg, log: logger}
}

func (s *server) routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", s.uploadHandler).Methods(http.MethodGet)
	router.HandleFunc("/report", s.reportHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/report", s.apiReportHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/report/last", s.lastReportHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/validate", s.validateFileHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/health", healthHandler).Methods(http.MethodGet)
	return router
}

// uploadError carries the HTTP status an upload failure maps to.
type uploadError struct {
	status int
	err    error
}

func (e *uploadError) Error() string { return e.err.Error() }
func (e *uploadError) Unwrap() error { return e.err }

func badUpload(format string, args ...any) error {
	return &uploadError{status: http.StatusBadRequest, err: fmt.Errorf(format, args...)}
}

func statusOf(err error) int {
	var ue *uploadError
	if errors.As(err, &ue) {
		return ue.status
	}
	if errors.Is(err, roster.ErrMalformedRecord) || errors.Is(err, roster.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type upload struct {
	FileName string
	FileSize int64
	Roster   roster.Roster
}

// readUpload parses the multipart "file" field into a roster.
func (s *server) readUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadSize); err != nil {
		return nil, badUpload("file too large or malformed form: %v", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, badUpload("failed to read file: %v", err)
	}
	defer file.Close()

	up := &upload{FileName: header.Filename, FileSize: header.Size}
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		enc := s.cfg.Encoding
		if v := r.FormValue("encoding"); v != "" {
			if enc, err = roster.ParseEncoding(v); err != nil {
				return nil, badUpload("%v", err)
			}
		}
		up.Roster, err = roster.ReadCSV(file, enc)
	case ".xlsx":
		up.Roster, err = roster.ReadExcel(file)
	default:
		return nil, badUpload("invalid file type %q", header.Filename)
	}
	if err != nil {
		return nil, &uploadError{status: http.StatusBadRequest, err: err}
	}

	if len(up.Roster) > s.cfg.MaxRows {
		return nil, badUpload("too many rows (> %d)", s.cfg.MaxRows)
	}
	if len(up.Roster) == 0 {
		return nil, badUpload("no students in %s", header.Filename)
	}
	return up, nil
}

// analyze reads the upload, runs every query and remembers the result.
func (s *server) analyze(w http.ResponseWriter, r *http.Request) (*lastReport, *upload, error) {
	runID := uuid.NewString()
	logger := s.log.With(slog.String("run_id", runID))
	start := time.Now()

	up, err := s.readUpload(w, r)
	if err != nil {
		logger.Warn("upload rejected", slog.Any("error", err))
		return nil, nil, err
	}
	rep, err := roster.Analyze(up.Roster, s.cfg.Query)
	if err != nil {
		logger.Error("analysis failed", slog.String("file", up.FileName), slog.Any("error", err))
		return nil, nil, err
	}

	last := &lastReport{RunID: runID, FileName: up.FileName, At: time.Now(), Report: rep}
	s.mu.Lock()
	s.last = last
	s.mu.Unlock()

	logger.Info("roster analyzed",
		slog.String("file", up.FileName),
		slog.Int("students", rep.Total),
		slog.Duration("latency", time.Since(start)))
	return last, up, nil
}

func (s *server) uploadHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	if err := uploadTemplate.Execute(w, nil); err != nil {
		s.log.Error("template error", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *server) reportHandler(w http.ResponseWriter, r *http.Request) {
	last, up, err := s.analyze(w, r)
	if err != nil {
		w.WriteHeader(statusOf(err))
		if terr := uploadTemplate.Execute(w, err.Error()); terr != nil {
			s.log.Error("template error", slog.Any("error", terr))
		}
		return
	}

	page := ReportPage{
		RunID:     last.RunID,
		FileName:  up.FileName,
		FileSize:  up.FileSize,
		RowCount:  last.Report.Total,
		Timestamp: last.At.Format("January 2, 2006 at 3:04 PM"),
		Report:    last.Report,
	}
	if err := reportTemplate.Execute(w, page); err != nil {
		s.log.Error("template error", slog.Any("error", err))
		http.Error(w, "Failed to render report", http.StatusInternalServerError)
	}
}
