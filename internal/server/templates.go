package server

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"cs2-tracker/internal/domain"
	"cs2-tracker/internal/stats"
)

//go:embed templates/*.html
var templateFS embed.FS

type monthOption struct {
	Value int
	Name  string
}

func monthOptions() []monthOption {
	opts := make([]monthOption, 12)
	for i := range opts {
		opts[i] = monthOption{Value: i + 1, Name: time.Month(i + 1).String()}
	}
	return opts
}

var templateFuncs = template.FuncMap{
	"kd":           stats.StatKD,
	"winRate":      stats.StatWinRate,
	"kdBadge":      stats.KDBadge,
	"winRateBadge": stats.WinRateBadge,
	"months":       monthOptions,
	"fieldErrors": func(verr *domain.ValidationError, field string) []string {
		if verr == nil {
			return nil
		}
		return verr.Fields[field]
	},
	"hours": func(h float64) string {
		return fmt.Sprintf("%.1f", h)
	},
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}
		return t.Format("2006-01-02 15:04 MST")
	},
}

func loadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
