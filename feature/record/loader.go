package record

import (
	"citizen-collect/core/server"
	"citizen-collect/core/storage"
	"citizen-collect/feature/project"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature bundles the record service and handler for the loader.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the record feature.
func NewFeature(db *gorm.DB, blobs storage.BlobStore, srv server.Config, logger *zap.Logger) *Feature {
	svc := NewService(
		NewStore(db),
		project.NewProjectRepository(db),
		project.NewSectionRepository(db),
		project.NewQuestionRepository(db),
		blobs,
		logger,
	)
	h := NewHandler(svc, srv, logger)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "record"
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
