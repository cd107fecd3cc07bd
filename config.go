// config.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"rosterstats/roster"
)

const (
	cmdReport = "report"
	cmdServe  = "serve"
)

// Config holds everything one invocation needs.
type Config struct {
	Command string

	// Input
	File     string
	Encoding roster.Encoding

	// Output
	XLSXOut string

	// Query literals
	Query roster.Options

	// HTTP
	Addr          string
	MaxUploadSize int64
	MaxRows       int

	// Logging
	LogLevel  string
	LogFormat string // json, text
}

// loadConfig reads .env (if any), then the environment, then flags.
// Flags win.
func loadConfig(args []string, stderr io.Writer) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Command:  cmdReport,
		File:     getEnv("ROSTER_FILE", "isu_fake_data.csv"),
		XLSXOut:  getEnv("ROSTER_XLSX_OUT", ""),
		Addr:     getEnv("HTTP_ADDR", ":8080"),
		MaxRows:  getEnvInt("MAX_ROWS", 100000),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Query: roster.Options{
			Faculty:     getEnv("ROSTER_FACULTY", roster.DefaultFaculty),
			GradeCourse: getEnv("ROSTER_GRADE_COURSE", roster.DefaultGradeCourse),
			NamePrefix:  getEnv("ROSTER_NAME_PREFIX", roster.DefaultNamePrefix),
			RunLength:   getEnvInt("ROSTER_RUN_LENGTH", roster.DefaultRunLength),
		},
		MaxUploadSize: int64(getEnvInt("MAX_UPLOAD_SIZE", 10<<20)),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}
	encoding := getEnv("ROSTER_ENCODING", "utf-8")

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cfg.Command, args = args[0], args[1:]
	}
	if cfg.Command != cmdReport && cfg.Command != cmdServe {
		return nil, fmt.Errorf("unknown command %q (want %s or %s)", cfg.Command, cmdReport, cmdServe)
	}

	fset := flag.NewFlagSet(cfg.Command, flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&cfg.File, "file", cfg.File, "roster file (.csv or .xlsx)")
	fset.StringVar(&encoding, "encoding", encoding, "CSV encoding: utf-8 or cp1251")
	fset.StringVar(&cfg.XLSXOut, "xlsx", cfg.XLSXOut, "also write the report to this .xlsx file")
	fset.StringVar(&cfg.Query.Faculty, "faculty", cfg.Query.Faculty, "faculty for the namesake and patronymic sections")
	fset.StringVar(&cfg.Query.GradeCourse, "grade-course", cfg.Query.GradeCourse, "course compared by GPA")
	fset.StringVar(&cfg.Query.NamePrefix, "prefix", cfg.Query.NamePrefix, "given-name prefix for the unique names section")
	fset.IntVar(&cfg.Query.RunLength, "run", cfg.Query.RunLength, "length of the consecutive id run")
	fset.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address for serve")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fset.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "json or text")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	enc, err := roster.ParseEncoding(encoding)
	if err != nil {
		return nil, err
	}
	cfg.Encoding = enc

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string
	if c.Command == cmdReport && c.File == "" {
		errs = append(errs, "a roster file is required")
	}
	if c.Query.RunLength < 1 {
		errs = append(errs, "run length must be positive")
	}
	if c.MaxUploadSize <= 0 {
		errs = append(errs, "MAX_UPLOAD_SIZE must be positive")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		errs = append(errs, "log format must be json or text")
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
