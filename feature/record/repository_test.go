package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"citizen-collect/feature/record/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestFindByOwnerAndUUID(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "uuid", "user_id", "status", "created_at"}).
		AddRow(11, "abc-uuid", 42, models.StatusPending, time.Now())

	mock.ExpectQuery("SELECT \\* FROM `record` WHERE user_id = \\? AND uuid = \\?").
		WithArgs(int64(42), "abc-uuid").
		WillReturnRows(rows)

	recs, err := store.Records().FindByOwnerAndUUID(context.Background(), 42, "abc-uuid")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, int64(11), recs[0].ID)
	assert.Equal(t, "abc-uuid", recs[0].UUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `record` WHERE `record`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rec, err := store.Records().FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountWithFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	ownerID := int64(42)
	status := models.StatusVerified

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `record` WHERE user_id = \\? AND status = \\?").
		WithArgs(ownerID, status).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	count, err := store.Records().Count(context.Background(), Filter{OwnerID: &ownerID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByNaturalKey(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `image` WHERE record_id = \\? AND section_id = \\? AND original_file_name = \\?").
		WithArgs(int64(11), int64(1), "1-creek.jpg").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Images().DeleteByNaturalKey(context.Background(), 11, 1, "1-creek.jpg")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByRecordAndQuestionMissingReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	// First appends LIMIT as a third bind argument.
	mock.ExpectQuery("SELECT \\* FROM `survey_answer` WHERE record_id = \\? AND question_id = \\?").
		WithArgs(int64(11), int64(3), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ans, err := store.Answers().FindByRecordAndQuestion(context.Background(), 11, 3)
	require.NoError(t, err)
	assert.Nil(t, ans)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := store.Transaction(context.Background(), func(Store) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
