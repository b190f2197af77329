package record

import (
	"errors"
	"io"
	"mime/multipart"

	"citizen-collect/core/logger"
	"citizen-collect/core/middleware/auth"
	"citizen-collect/core/server"
	"citizen-collect/feature/record/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for records.
type Handler struct {
	service *Service
	server  server.Config
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, srv server.Config, log *zap.Logger) *Handler {
	return &Handler{service: service, server: srv, logger: log}
}

// attachURLs fills the download URL of every image from its storage key.
func (h *Handler) attachURLs(recs []models.Record) {
	for i := range recs {
		for j := range recs[i].Images {
			recs[i].Images[j].URL = h.server.FileURL(recs[i].Images[j].StorageKey)
		}
	}
}

// RegisterRoutes registers the record routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/record")
	group.Post("/upload", h.HandleUpload)
	group.Post("/list-by-user", h.HandleListByUser)
	group.Post("/list-by-project", h.HandleListByProject)
	group.Get("/user-summary", h.HandleUserSummary)
	group.Get("/project-summary/:projectId", h.HandleProjectSummary)
	group.Put("/:id/status", h.HandleUpdateStatus)
	group.Put("/image/:id/status", h.HandleUpdateImageStatus)
}

// listRequest selects a project and listing scope.
type listRequest struct {
	ProjectID int64 `json:"projectId"`
	Type      int   `json:"type"`
}

// statusRequest carries a new verification status.
type statusRequest struct {
	Status int `json:"status"`
}

// HandleUpload accepts one record submission.
// @Summary Upload Record
// @Description Submits a record with its current image set and survey answers. Resubmitting the same uuid updates the record in place.
// @Tags record
// @Accept mpfd
// @Produce json
// @Param model formData string true "Record metadata JSON"
// @Param results formData string false "Survey answers JSON"
// @Param images formData file false "Section images, named <sectionId>-<name>.<ext>"
// @Success 200 {object} models.Record "Stored record"
// @Failure 400 {object} map[string]string "Validation error"
// @Router /api/record/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	ownerID := auth.UserID(c)

	modelJSON := c.FormValue("model")
	resultsJSON := c.FormValue("results")

	var files []Upload
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["images"] {
			files = append(files, uploadFromFileHeader(fh))
		}
	}

	rec, err := h.service.Record(c.Context(), ownerID, modelJSON, files, resultsJSON)
	if err != nil {
		l.Error("Record upload failed",
			zap.Int64("owner_id", ownerID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	l.Info("Record stored",
		zap.Int64("owner_id", ownerID),
		zap.Int64("record_id", rec.ID),
		zap.String("uuid", rec.UUID))
	return c.JSON(rec)
}

// HandleListByUser returns the caller's records under the requested scope.
func (h *Handler) HandleListByUser(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req listRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	recs, err := h.service.ListByOwner(c.Context(), auth.UserID(c), req.Type)
	if err != nil {
		l.Error("Record list failed", zap.Error(err))
		return errorResponse(c, err)
	}
	h.attachURLs(recs)
	return c.JSON(recs)
}

// HandleListByProject returns a project's records under the requested scope.
func (h *Handler) HandleListByProject(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req listRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	recs, err := h.service.ListByProject(c.Context(), auth.UserID(c), req.ProjectID, req.Type)
	if err != nil {
		l.Error("Record list failed", zap.Error(err))
		return errorResponse(c, err)
	}
	h.attachURLs(recs)
	return c.JSON(recs)
}

// HandleUserSummary returns the caller's upload counts.
func (h *Handler) HandleUserSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	sum, err := h.service.OwnerSummary(c.Context(), auth.UserID(c))
	if err != nil {
		l.Error("Summary failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(sum)
}

// HandleProjectSummary returns the caller's upload counts within a project.
func (h *Handler) HandleProjectSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	projectID, err := c.ParamsInt("projectId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid project id"})
	}

	sum, err := h.service.ProjectSummary(c.Context(), auth.UserID(c), int64(projectID))
	if err != nil {
		l.Error("Summary failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(sum)
}

// HandleUpdateStatus sets a record's verification status.
func (h *Handler) HandleUpdateStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record id"})
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.UpdateStatus(c.Context(), int64(id), auth.UserID(c), req.Status); err != nil {
		l.Error("Record status update failed", zap.Int("record_id", id), zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleUpdateImageStatus sets an image's review status.
func (h *Handler) HandleUpdateImageStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid image id"})
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.UpdateImageStatus(c.Context(), int64(id), req.Status); err != nil {
		l.Error("Image status update failed", zap.Int("image_id", id), zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// uploadFromFileHeader adapts a multipart file header to the service's
// transport-neutral Upload.
func uploadFromFileHeader(fh *multipart.FileHeader) Upload {
	return Upload{
		FileName:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// errorResponse maps typed service errors to HTTP statuses.
func errorResponse(c *fiber.Ctx, err error) error {
	var (
		validation *ValidationError
		notFound   *NotFoundError
		storageErr *StorageError
	)
	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &storageErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
