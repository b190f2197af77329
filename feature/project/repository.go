package project

import (
	"context"
	"errors"

	"citizen-collect/feature/project/models"

	"gorm.io/gorm"
)

// ProjectRepository provides keyed lookups over projects.
type ProjectRepository interface {
	// FindByID returns the project with the given id, or nil when absent.
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	// ListEnabled returns all enabled projects with their enabled sections,
	// questions and options, for the mobile questionnaire sync.
	ListEnabled(ctx context.Context) ([]models.Project, error)
}

// SectionRepository provides keyed lookups over sections.
type SectionRepository interface {
	// FindByID returns the section with the given id, or nil when absent.
	FindByID(ctx context.Context, id int64) (*models.Section, error)
}

// QuestionRepository provides keyed lookups over survey questions.
type QuestionRepository interface {
	// FindByID returns the question with the given id, or nil when absent.
	FindByID(ctx context.Context, id int64) (*models.Question, error)
}

type gormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository returns a GORM-backed ProjectRepository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

func (r *gormProjectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	var p models.Project
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormProjectRepository) ListEnabled(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Preload("Sections", "enabled = ?", true).
		Preload("Sections.Questions", "enabled = ?", true).
		Preload("Sections.Questions.Options", "enabled = ?", true).
		Order("id").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

type gormSectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository returns a GORM-backed SectionRepository.
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &gormSectionRepository{db: db}
}

func (r *gormSectionRepository) FindByID(ctx context.Context, id int64) (*models.Section, error) {
	var s models.Section
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

type gormQuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository returns a GORM-backed QuestionRepository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &gormQuestionRepository{db: db}
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, id int64) (*models.Question, error) {
	var q models.Question
	err := r.db.WithContext(ctx).First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}
