package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	domain "github.com/megha-ranjith/To-Do/domain/task"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names, also used as the active tab.
const (
	PageDashboard = "dashboard"
	PageList      = "list"
	PageKanban    = "kanban"
	PageCalendar  = "calendar"
)

var pages = []string{PageDashboard, PageList, PageKanban, PageCalendar}

// PageData is passed to every page template.
type PageData struct {
	Title       string
	ActiveTab   string
	Theme       string
	Categories  []string
	Stats       *domain.Stats
	Tasks       []domain.Task
	Todo        []domain.Task
	Done        []domain.Task
	Days        []domain.CalendarDay
	Unscheduled []domain.Task
}

// Views holds one parsed template set per page.
type Views struct {
	pages map[string]*template.Template
}

// NewViews parses the embedded templates.
func NewViews() (*Views, error) {
	return newViews(templateFS, time.Now)
}

func newViews(fsys fs.FS, now func() time.Time) (*Views, error) {
	funcs := template.FuncMap{
		"categoryColor": domain.CategoryColor,
		"overdue": func(t domain.Task) bool {
			return t.IsOverdue(now())
		},
		"formatDate": formatDate,
	}

	v := &Views{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(fsys,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		v.pages[page] = tmpl
	}
	return v, nil
}

// Render executes the named page.
func (v *Views) Render(page string, data PageData) ([]byte, error) {
	tmpl, ok := v.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", page, err)
	}
	return buf.Bytes(), nil
}

// formatDate renders a YYYY-MM-DD due date as "Jan 2, 2006".
func formatDate(raw string) string {
	due := domain.ParseDueDate(raw, time.UTC)
	switch due.State {
	case domain.DueValid:
		return due.Date.Format("Jan 2, 2006")
	case domain.DueInvalid:
		return raw
	default:
		return "No date"
	}
}
