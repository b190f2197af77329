package project

import (
	"citizen-collect/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for projects.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the project routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/projects", h.HandleList)
}

// HandleList returns the enabled projects with sections, questions and options.
// @Summary List Projects
// @Description Returns the enabled projects and their questionnaire definitions.
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project "Projects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/projects [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	projects, err := h.service.ListEnabled(c.Context())
	if err != nil {
		l.Error("Project list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(projects)
}
