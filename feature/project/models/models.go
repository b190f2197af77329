package models

import "time"

// Project is a citizen-science campaign that records are submitted against.
type Project struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;size:255" json:"name"`
	Icon        string    `gorm:"column:icon;size:255" json:"icon"`
	Description string    `gorm:"column:description" json:"description"`
	Enabled     bool      `gorm:"column:enabled" json:"enabled"`
	Public      bool      `gorm:"column:public" json:"public"`
	CreatorID   int64     `gorm:"column:creator_id" json:"creatorId"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`

	Sections []Section `gorm:"foreignKey:ProjectID" json:"sections"`
}

// TableName overrides the table name.
func (Project) TableName() string {
	return "project"
}

// Section groups one survey page and its photo slot inside a project.
type Section struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectID int64  `gorm:"column:project_id;index" json:"-"`
	Sequence  int    `gorm:"column:sequence" json:"sequence"`
	Type      string `gorm:"column:type;size:32" json:"type"`
	Name      string `gorm:"column:name;size:255" json:"name"`
	Enabled   bool   `gorm:"column:enabled" json:"enabled"`

	Questions []Question `gorm:"foreignKey:SectionID" json:"questions"`
}

// TableName overrides the table name.
func (Section) TableName() string {
	return "section"
}

// Question is one entry of a section's dynamic questionnaire.
type Question struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SectionID int64  `gorm:"column:section_id;index" json:"-"`
	Attribute string `gorm:"column:attribute;size:128" json:"attribute"`
	Question  string `gorm:"column:question" json:"question"`
	Type      int    `gorm:"column:type" json:"type"`
	Sequence  int    `gorm:"column:sequence" json:"sequence"`
	Enabled   bool   `gorm:"column:enabled" json:"enabled"`
	Required  bool   `gorm:"column:required" json:"required"`

	Options []QuestionOption `gorm:"foreignKey:QuestionID" json:"options"`
}

// TableName overrides the table name.
func (Question) TableName() string {
	return "survey_question"
}

// QuestionOption is a selectable choice for a closed question.
type QuestionOption struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID  int64  `gorm:"column:question_id;index" json:"-"`
	Sequence    int    `gorm:"column:sequence" json:"sequence"`
	Description string `gorm:"column:description" json:"description"`
	Enabled     bool   `gorm:"column:enabled" json:"enabled"`
}

// TableName overrides the table name.
func (QuestionOption) TableName() string {
	return "survey_question_option"
}
