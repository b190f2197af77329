// Package files serves stored record images back to clients.
package files

import (
	"citizen-collect/core/logger"
	"citizen-collect/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler streams blobs from storage.
type Handler struct {
	blobs  storage.BlobStore
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(blobs storage.BlobStore, log *zap.Logger) *Handler {
	return &Handler{blobs: blobs, logger: log}
}

// RegisterRoutes registers the file routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/files/:key", h.HandleDownload)
}

// HandleDownload streams one stored object.
// @Summary Download File
// @Description Streams a stored record image by its storage key.
// @Tags files
// @Produce octet-stream
// @Param key path string true "Storage key"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /files/{key} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	key := c.Params("key")
	l := logger.WithRayID(h.logger, c)

	rc, err := h.blobs.Open(c.Context(), key)
	if err != nil {
		l.Warn("File download failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "file not found"})
	}

	return c.SendStream(rc)
}
