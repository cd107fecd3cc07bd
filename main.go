// Command rosterstats answers a fixed set of descriptive-statistics
// questions over an ISU student roster, either once from the command line
// or through a small upload form.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"rosterstats/roster"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, stderr)

	switch cfg.Command {
	case cmdServe:
		return serve(ctx, cfg, logger)
	default:
		return report(cfg, logger, stdout)
	}
}

func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func report(cfg *Config, logger *slog.Logger, stdout io.Writer) error {
	logger = logger.With(slog.String("run_id", uuid.NewString()), slog.String("file", cfg.File))
	start := time.Now()

	data, err := loadRosterFile(cfg.File, cfg.Encoding)
	if err != nil {
		return err
	}
	logger.Debug("roster loaded", slog.Int("students", len(data)))

	rep, err := roster.Analyze(data, cfg.Query)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", cfg.File, err)
	}
	for section, reason := range rep.NoResult {
		logger.Warn("section has no result", slog.String("section", section), slog.String("reason", reason))
	}

	renderReport(stdout, rep)
	if cfg.XLSXOut != "" {
		if err := exportXLSX(cfg.XLSXOut, rep); err != nil {
			return err
		}
		logger.Info("report exported", slog.String("xlsx", cfg.XLSXOut))
	}
	logger.Info("report done", slog.Int("students", rep.Total), slog.Duration("latency", time.Since(start)))
	return nil
}

func loadRosterFile(path string, enc roster.Encoding) (roster.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	var data roster.Roster
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		data, err = roster.ReadExcel(f)
	default:
		data, err = roster.ReadCSV(f, enc)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return data, nil
}

func serve(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newServer(cfg, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", slog.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
