// types.go
package main

import (
	"time"

	"rosterstats/roster"
)

// ReportPage is what the report template renders.
type ReportPage struct {
	RunID     string
	FileName  string
	FileSize  int64
	RowCount  int
	Timestamp string
	Report    roster.Report
}

type APIResponse struct {
	Success bool        `json:"success"`
	RunID   string      `json:"run_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// lastReport is the most recent successful analysis served over HTTP.
type lastReport struct {
	RunID    string        `json:"run_id"`
	FileName string        `json:"file_name"`
	At       time.Time     `json:"at"`
	Report   roster.Report `json:"report"`
}
