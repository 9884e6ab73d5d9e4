package api

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	domain "github.com/megha-ranjith/To-Do/domain/task"
	"github.com/megha-ranjith/To-Do/modules/activity"
	"github.com/megha-ranjith/To-Do/modules/task"
)

const defaultActivityLimit = 20

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(staticFS),
		PathPrefix: "static",
	}))

	// Pages
	app.Get("/", m.dashboardPage)
	app.Get("/list", m.listPage)
	app.Get("/kanban", m.kanbanPage)
	app.Get("/calendar", m.calendarPage)

	api := app.Group("/api")

	tasks := api.Group("/tasks")
	tasks.Get("/", m.listTasks)
	tasks.Post("/", m.createTask)
	tasks.Put("/:id", m.updateTask)
	tasks.Delete("/:id", m.deleteTask)
	tasks.Post("/:id/toggle", m.toggleTask)

	api.Get("/stats", m.getStats)
	api.Get("/settings", m.getSettings)
	api.Put("/settings", m.updateSettings)
	api.Get("/activity", m.listActivity)

	// Anything else goes back to the dashboard.
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect("/", fiber.StatusFound)
	})
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"addr":   m.addr,
		},
	})
}

// parseBody decodes a JSON body into v. An empty body leaves v untouched.
func parseBody(c *fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(v)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body"})
}

// serviceError writes the client-facing response for known domain errors
// and hands everything else to the error handler.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrTitleRequired):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Title required"})
	case errors.Is(err, domain.ErrInvalidTheme):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid theme"})
	case errors.Is(err, domain.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Task not found"})
	}
	return err
}

// listTasks handles GET /api/tasks.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	tasks, err := m.taskPort.ListTasks(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(tasks)
}

// createTask handles POST /api/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := parseBody(c, &req); err != nil {
		return invalidBody(c)
	}

	created, err := m.taskPort.CreateTask(c.UserContext(), &task.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// updateTask handles PUT /api/tasks/:id.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	var req UpdateTaskRequest
	if err := parseBody(c, &req); err != nil {
		return invalidBody(c)
	}

	updated, err := m.taskPort.UpdateTask(c.UserContext(), &task.UpdateTaskRequest{
		TaskID:      c.Params("id"),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Completed:   req.Completed,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(updated)
}

// deleteTask handles DELETE /api/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	if err := m.taskPort.DeleteTask(c.UserContext(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(SuccessResponse{Success: true})
}

// toggleTask handles POST /api/tasks/:id/toggle.
func (m *APIModule) toggleTask(c *fiber.Ctx) error {
	toggled, err := m.taskPort.ToggleTask(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toggled)
}

// getStats handles GET /api/stats.
func (m *APIModule) getStats(c *fiber.Ctx) error {
	dash, err := m.taskPort.Dashboard(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dash.Stats)
}

// getSettings handles GET /api/settings.
func (m *APIModule) getSettings(c *fiber.Ctx) error {
	settings, err := m.taskPort.GetSettings(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settings)
}

// updateSettings handles PUT /api/settings.
func (m *APIModule) updateSettings(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if err := parseBody(c, &req); err != nil {
		return invalidBody(c)
	}

	settings, err := m.taskPort.UpdateSettings(c.UserContext(), &task.UpdateSettingsRequest{Theme: req.Theme})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settings)
}

// listActivity handles GET /api/activity?limit=N.
func (m *APIModule) listActivity(c *fiber.Ctx) error {
	if m.activityPort == nil {
		return c.JSON([]activity.Entry{})
	}

	entries, err := m.activityPort.Recent(c.UserContext(), c.QueryInt("limit", defaultActivityLimit))
	if err != nil {
		return err
	}
	return c.JSON(entries)
}
