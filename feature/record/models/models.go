package models

import "time"

// Record verification states.
const (
	StatusPending  = 0
	StatusVerified = 1
	StatusRejected = 2
)

// Image review states.
const (
	ImageStatusUnverified = 0
	ImageStatusVerified   = 1
	ImageStatusRejected   = 2
)

// Record is one field observation: location, time window, photos and survey
// answers. The client generates UUID once per observation and resends the
// whole record on every save; (UserID, UUID) identifies the row across
// resubmissions and is enforced unique.
type Record struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UUID          string     `gorm:"column:uuid;size:64;uniqueIndex:idx_record_owner_uuid,priority:2" json:"uuid"`
	UserID        int64      `gorm:"column:user_id;uniqueIndex:idx_record_owner_uuid,priority:1" json:"userId"`
	ProjectID     *int64     `gorm:"column:project_id" json:"projectId"`
	Latitude      float64    `gorm:"column:latitude" json:"latitude"`
	Longitude     float64    `gorm:"column:longitude" json:"longitude"`
	Accuracy      float64    `gorm:"column:accuracy" json:"accuracy"`
	Status        int        `gorm:"column:status;default:0" json:"status"`
	StartDate     *time.Time `gorm:"column:start_date" json:"startDate"`
	FinishDate    *time.Time `gorm:"column:finish_date" json:"finishDate"`
	CreatedAt     time.Time  `gorm:"column:created_at" json:"createdAt"`
	// autoUpdateTime is off: a non-nil UpdatedAt marks a resubmission, so
	// the reconciler stamps it explicitly and never on first create.
	UpdatedAt     *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updatedAt"`
	VerifiedAt    *time.Time `gorm:"column:verified_at" json:"verifiedAt"`
	VerificatorID *int64     `gorm:"column:verificator_id" json:"verificatorId"`

	Images  []Image        `gorm:"foreignKey:RecordID" json:"images"`
	Answers []SurveyAnswer `gorm:"foreignKey:RecordID" json:"answers"`
}

// TableName overrides the table name.
func (Record) TableName() string {
	return "record"
}

// Image is one stored photograph of a record. (RecordID, SectionID,
// OriginalFileName) is the natural key the reconciler diffs on; StorageKey is
// the opaque handle the blob was stored under and never changes for an
// unchanged file.
type Image struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecordID         int64     `gorm:"column:record_id;uniqueIndex:idx_image_natural,priority:1" json:"-"`
	SectionID        int64     `gorm:"column:section_id;uniqueIndex:idx_image_natural,priority:2" json:"sectionId"`
	OriginalFileName string    `gorm:"column:original_file_name;size:191;uniqueIndex:idx_image_natural,priority:3" json:"originalFileName"`
	StorageKey       string    `gorm:"column:storage_key;size:191" json:"storageKey"`
	Status           int       `gorm:"column:status;default:0" json:"status"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"createdAt"`

	// URL is the public download location, derived from StorageKey by the
	// HTTP layer and never stored.
	URL string `gorm:"-" json:"url"`
}

// TableName overrides the table name.
func (Image) TableName() string {
	return "image"
}

// SurveyAnswer is the stored answer of one record to one question. At most
// one row exists per (RecordID, QuestionID); resubmissions overwrite in
// place. Multi-valued answers are stored as JSON array text.
type SurveyAnswer struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecordID   int64     `gorm:"column:record_id;uniqueIndex:idx_answer_record_question,priority:1" json:"-"`
	QuestionID int64     `gorm:"column:question_id;uniqueIndex:idx_answer_record_question,priority:2" json:"questionId"`
	Response   string    `gorm:"column:response" json:"response"`
	AnsweredAt time.Time `gorm:"column:answered_at" json:"answeredAt"`
}

// TableName overrides the table name.
func (SurveyAnswer) TableName() string {
	return "survey_answer"
}
