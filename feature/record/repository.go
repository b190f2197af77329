package record

import (
	"context"
	"errors"

	"citizen-collect/feature/record/models"

	"gorm.io/gorm"
)

// Filter narrows record listings and counts. Nil fields are ignored.
type Filter struct {
	OwnerID   *int64
	ProjectID *int64
	Status    *int
}

// RecordRepository provides typed finders and explicit saves for records.
type RecordRepository interface {
	// FindByOwnerAndUUID returns the owner's records with the given client
	// uuid, most recently created first.
	FindByOwnerAndUUID(ctx context.Context, ownerID int64, uuid string) ([]models.Record, error)
	// FindByID returns the record with the given id, or nil when absent.
	FindByID(ctx context.Context, id int64) (*models.Record, error)
	// Save inserts or updates the record.
	Save(ctx context.Context, rec *models.Record) error
	// List returns matching records, most recently created first, with
	// images and answers attached.
	List(ctx context.Context, f Filter) ([]models.Record, error)
	// Count returns the number of matching records.
	Count(ctx context.Context, f Filter) (int64, error)
}

// ImageRepository provides typed finders and explicit mutations for images.
type ImageRepository interface {
	// FindByRecordID returns the record's images in insertion order.
	FindByRecordID(ctx context.Context, recordID int64) ([]models.Image, error)
	// FindByID returns the image with the given id, or nil when absent.
	FindByID(ctx context.Context, id int64) (*models.Image, error)
	// Save inserts or updates the image.
	Save(ctx context.Context, img *models.Image) error
	// DeleteByNaturalKey deletes the single image row identified by
	// (recordID, sectionID, fileName).
	DeleteByNaturalKey(ctx context.Context, recordID, sectionID int64, fileName string) error
}

// AnswerRepository provides typed finders and explicit saves for survey answers.
type AnswerRepository interface {
	// FindByRecordAndQuestion returns the answer row for (recordID,
	// questionID), or nil when the question has not been answered yet.
	FindByRecordAndQuestion(ctx context.Context, recordID, questionID int64) (*models.SurveyAnswer, error)
	// Save inserts or updates the answer.
	Save(ctx context.Context, ans *models.SurveyAnswer) error
}

// Store bundles the record feature's repositories and scopes them to a
// database transaction.
type Store interface {
	Records() RecordRepository
	Images() ImageRepository
	Answers() AnswerRepository
	// Transaction runs fn against a Store bound to one transaction,
	// committing on nil and rolling back on error.
	Transaction(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a GORM-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Records() RecordRepository { return &gormRecordRepository{db: s.db} }
func (s *gormStore) Images() ImageRepository   { return &gormImageRepository{db: s.db} }
func (s *gormStore) Answers() AnswerRepository { return &gormAnswerRepository{db: s.db} }

func (s *gormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

type gormRecordRepository struct {
	db *gorm.DB
}

func (r *gormRecordRepository) FindByOwnerAndUUID(ctx context.Context, ownerID int64, uuid string) ([]models.Record, error) {
	var recs []models.Record
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND uuid = ?", ownerID, uuid).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *gormRecordRepository) FindByID(ctx context.Context, id int64) (*models.Record, error) {
	var rec models.Record
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *gormRecordRepository) Save(ctx context.Context, rec *models.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *gormRecordRepository) List(ctx context.Context, f Filter) ([]models.Record, error) {
	var recs []models.Record
	err := applyFilter(r.db.WithContext(ctx), f).
		Preload("Images").
		Preload("Answers").
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *gormRecordRepository) Count(ctx context.Context, f Filter) (int64, error) {
	var count int64
	err := applyFilter(r.db.WithContext(ctx).Model(&models.Record{}), f).Count(&count).Error
	return count, err
}

func applyFilter(tx *gorm.DB, f Filter) *gorm.DB {
	if f.OwnerID != nil {
		tx = tx.Where("user_id = ?", *f.OwnerID)
	}
	if f.ProjectID != nil {
		tx = tx.Where("project_id = ?", *f.ProjectID)
	}
	if f.Status != nil {
		tx = tx.Where("status = ?", *f.Status)
	}
	return tx
}

type gormImageRepository struct {
	db *gorm.DB
}

func (r *gormImageRepository) FindByRecordID(ctx context.Context, recordID int64) ([]models.Image, error) {
	var imgs []models.Image
	err := r.db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Order("id").
		Find(&imgs).Error
	if err != nil {
		return nil, err
	}
	return imgs, nil
}

func (r *gormImageRepository) FindByID(ctx context.Context, id int64) (*models.Image, error) {
	var img models.Image
	err := r.db.WithContext(ctx).First(&img, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *gormImageRepository) Save(ctx context.Context, img *models.Image) error {
	return r.db.WithContext(ctx).Save(img).Error
}

func (r *gormImageRepository) DeleteByNaturalKey(ctx context.Context, recordID, sectionID int64, fileName string) error {
	return r.db.WithContext(ctx).
		Where("record_id = ? AND section_id = ? AND original_file_name = ?", recordID, sectionID, fileName).
		Delete(&models.Image{}).Error
}

type gormAnswerRepository struct {
	db *gorm.DB
}

func (r *gormAnswerRepository) FindByRecordAndQuestion(ctx context.Context, recordID, questionID int64) (*models.SurveyAnswer, error) {
	var ans models.SurveyAnswer
	err := r.db.WithContext(ctx).
		Where("record_id = ? AND question_id = ?", recordID, questionID).
		First(&ans).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ans, nil
}

func (r *gormAnswerRepository) Save(ctx context.Context, ans *models.SurveyAnswer) error {
	return r.db.WithContext(ctx).Save(ans).Error
}
