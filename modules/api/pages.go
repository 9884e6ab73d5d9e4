package api

import (
	"github.com/gofiber/fiber/v2"
	domain "github.com/megha-ranjith/To-Do/domain/task"
)

// theme returns the stored theme, falling back to the default when the
// settings cannot be read.
func (m *APIModule) theme(c *fiber.Ctx) string {
	settings, err := m.taskPort.GetSettings(c.UserContext())
	if err != nil || settings.Theme == "" {
		return domain.DefaultTheme
	}
	return settings.Theme
}

func (m *APIModule) render(c *fiber.Ctx, page string, data PageData) error {
	data.Theme = m.theme(c)
	data.Categories = domain.Categories()

	body, err := m.views.Render(page, data)
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(body)
}

// dashboardPage handles GET /.
func (m *APIModule) dashboardPage(c *fiber.Ctx) error {
	dash, err := m.taskPort.Dashboard(c.UserContext())
	if err != nil {
		return err
	}
	return m.render(c, PageDashboard, PageData{
		Title:     "Dashboard",
		ActiveTab: PageDashboard,
		Stats:     &dash.Stats,
		Tasks:     dash.Tasks,
	})
}

// listPage handles GET /list.
func (m *APIModule) listPage(c *fiber.Ctx) error {
	tasks, err := m.taskPort.ListTasks(c.UserContext())
	if err != nil {
		return err
	}
	return m.render(c, PageList, PageData{
		Title:     "All Tasks",
		ActiveTab: PageList,
		Tasks:     tasks,
	})
}

// kanbanPage handles GET /kanban.
func (m *APIModule) kanbanPage(c *fiber.Ctx) error {
	board, err := m.taskPort.Kanban(c.UserContext())
	if err != nil {
		return err
	}
	return m.render(c, PageKanban, PageData{
		Title:     "Kanban",
		ActiveTab: PageKanban,
		Todo:      board.Todo,
		Done:      board.Done,
	})
}

// calendarPage handles GET /calendar.
func (m *APIModule) calendarPage(c *fiber.Ctx) error {
	cal, err := m.taskPort.Calendar(c.UserContext())
	if err != nil {
		return err
	}
	return m.render(c, PageCalendar, PageData{
		Title:       "Calendar",
		ActiveTab:   PageCalendar,
		Tasks:       cal.Tasks,
		Days:        cal.Days,
		Unscheduled: cal.Unscheduled,
	})
}
