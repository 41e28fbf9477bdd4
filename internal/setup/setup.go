package setup

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/villafrance/frontend/internal/apiclient"
	"github.com/villafrance/frontend/internal/config"
	"github.com/villafrance/frontend/internal/handler"
	"github.com/villafrance/frontend/internal/markdown"
)

const (
	baseTemplate           = "base.html"
	tmplPath               = "templates"
	templateReloadInterval = 5 * time.Second
)

type Dependencies struct {
	Handler *handler.Handler
	Public  config.Public
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	templates := mustLoadTemplates(tmplPath)
	textProcessor := markdown.New()
	apiClient := apiclient.New(cfg.Public.APIBase())

	h := handler.New(templates, cfg.Public, apiClient, textProcessor)
	startTemplateReloader(h, tmplPath)

	return &Dependencies{
		Handler: h,
		Public:  cfg.Public,
	}, nil
}

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

// nightlyTotal multiplies a per-night price by a night count for the
// booking summary block.
func nightlyTotal(price float64, nights int) float64 {
	return price * float64(nights)
}

func formatPrice(price float64) string {
	return fmt.Sprintf("€%.0f", price)
}

func formatDate(value string) string {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return t.Format("2 January 2006")
}

// truncate shortens to at most n runes, preferring a word boundary.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	head := string([]rune(s)[:n])
	if cut := strings.LastIndex(head, " "); cut > 0 {
		head = head[:cut]
	}
	return head + "…"
}

func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate && f.Name() != "partials.html" {
			templates[f.Name()] = template.Must(template.New(baseTemplate).Funcs(
				template.FuncMap{
					"sub":          sub,
					"add":          add,
					"dict":         dict,
					"nightlyTotal": nightlyTotal,
					"formatPrice":  formatPrice,
					"formatDate":   formatDate,
					"truncate":     truncate,
				},
			).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
				path.Join(tmplPath, "partials.html"),
			),
			)
		}
	}
	return templates
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") == "development" {
		ticker := time.NewTicker(templateReloadInterval)
		go func() {
			for range ticker.C {
				h.Templates = mustLoadTemplates(tmplPath)
			}
		}()
	}
}
