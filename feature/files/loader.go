package files

import (
	"citizen-collect/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature bundles the file handler for the loader.
type Feature struct {
	handler *Handler
}

// NewFeature wires the files feature.
func NewFeature(blobs storage.BlobStore, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(blobs, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "files"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
