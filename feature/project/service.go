package project

import (
	"context"

	"citizen-collect/feature/project/models"

	"go.uber.org/zap"
)

// Service handles project operations.
type Service struct {
	projects ProjectRepository
	logger   *zap.Logger
}

// NewService creates a new project service.
func NewService(projects ProjectRepository, logger *zap.Logger) *Service {
	return &Service{projects: projects, logger: logger}
}

// ListEnabled returns the enabled projects with their questionnaire tree.
// Mobile clients call this on sync to refresh their local project cache.
func (s *Service) ListEnabled(ctx context.Context) ([]models.Project, error) {
	return s.projects.ListEnabled(ctx)
}
