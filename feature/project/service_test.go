package project_test

import (
	"context"
	"testing"

	"citizen-collect/core/database"
	"citizen-collect/feature/project"
	"citizen-collect/feature/project/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Project{}, &models.Section{}, &models.Question{}, &models.QuestionOption{},
	))
	return db
}

func TestListEnabledFiltersDisabledTree(t *testing.T) {
	db := setupDB(t)

	enabled := models.Project{Name: "River Watch", Enabled: true}
	require.NoError(t, db.Create(&enabled).Error)
	disabled := models.Project{Name: "Archived", Enabled: false}
	require.NoError(t, db.Create(&disabled).Error)

	sec := models.Section{ProjectID: enabled.ID, Name: "Water", Sequence: 1, Enabled: true}
	require.NoError(t, db.Create(&sec).Error)
	secOff := models.Section{ProjectID: enabled.ID, Name: "Old", Sequence: 2, Enabled: false}
	require.NoError(t, db.Create(&secOff).Error)

	q := models.Question{SectionID: sec.ID, Attribute: "ph", Question: "Water pH?", Enabled: true}
	require.NoError(t, db.Create(&q).Error)
	opt := models.QuestionOption{QuestionID: q.ID, Description: "acidic", Enabled: true}
	require.NoError(t, db.Create(&opt).Error)

	svc := project.NewService(project.NewProjectRepository(db), zap.NewNop())

	projects, err := svc.ListEnabled(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "River Watch", projects[0].Name)
	require.Len(t, projects[0].Sections, 1)
	assert.Equal(t, "Water", projects[0].Sections[0].Name)
	require.Len(t, projects[0].Sections[0].Questions, 1)
	assert.Equal(t, "ph", projects[0].Sections[0].Questions[0].Attribute)
	assert.Len(t, projects[0].Sections[0].Questions[0].Options, 1)
}

func TestDisabledFlagPersists(t *testing.T) {
	db := setupDB(t)

	p := models.Project{Name: "Off", Enabled: false}
	require.NoError(t, db.Create(&p).Error)

	var stored models.Project
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.False(t, stored.Enabled)
}

func TestProjectFindByIDMissing(t *testing.T) {
	db := setupDB(t)

	repo := project.NewProjectRepository(db)
	p, err := repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSectionAndQuestionLookups(t *testing.T) {
	db := setupDB(t)

	p := models.Project{Name: "P", Enabled: true}
	require.NoError(t, db.Create(&p).Error)
	sec := models.Section{ProjectID: p.ID, Name: "S", Enabled: true}
	require.NoError(t, db.Create(&sec).Error)
	q := models.Question{SectionID: sec.ID, Attribute: "a", Enabled: true}
	require.NoError(t, db.Create(&q).Error)

	sections := project.NewSectionRepository(db)
	got, err := sections.FindByID(context.Background(), sec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "S", got.Name)

	questions := project.NewQuestionRepository(db)
	gotQ, err := questions.FindByID(context.Background(), q.ID)
	require.NoError(t, err)
	require.NotNil(t, gotQ)
	assert.Equal(t, "a", gotQ.Attribute)

	missing, err := questions.FindByID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
