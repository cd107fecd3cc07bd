// templates.go
package main

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"formatSize": func(size int64) string {
		const unit = 1024
		if size < unit {
			return fmt.Sprintf("%d B", size)
		}
		div, exp := int64(unit), 0
		for n := size / unit; n >= unit; n /= unit {
			div *= unit
			exp++
		}
		return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
	},
	"formatNumber": func(f float64) string {
		return fmt.Sprintf("%.2f", f)
	},
	"formatMean": func(f float64) string {
		return fmt.Sprintf("%.1f", f)
	},
}

var uploadTemplate = template.Must(template.New("upload.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/upload.html"))
var reportTemplate = template.Must(template.New("report.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/report.html"))
