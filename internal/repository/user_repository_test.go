package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	mock.MatchExpectationsInOrder(false)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock, func() { _ = sqlDB.Close() }
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "is_public", "created_at"})
}

func expectEmptySkillPreloads(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM .user_skills_offered. WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "skill_id"}))
	mock.ExpectQuery(`SELECT \* FROM .user_skills_wanted. WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "skill_id"}))
}

// A user who only offers guitar and a user who only wants guitar must both
// match a search for the guitar skill, so the filter has to reach both join
// tables with OR, never AND.
func TestUserRepository_SearchSkillFilterUnionsOfferedAndWanted(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	guitar := uuid.New()
	spanish := uuid.New()
	offersGuitar := uuid.New()
	wantsSpanish := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM .users. WHERE is_public = \?`+
		` AND \(EXISTS \(SELECT 1 FROM user_skills_offered uso WHERE uso\.user_id = users\.id AND uso\.skill_id IN \(\?,\?\)\)`+
		` OR EXISTS \(SELECT 1 FROM user_skills_wanted usw WHERE usw\.user_id = users\.id AND usw\.skill_id IN \(\?,\?\)\)\)`+
		` AND .users.\..deleted_at. IS NULL ORDER BY created_at ASC, id ASC`).
		WithArgs(true, guitar, spanish, guitar, spanish).
		WillReturnRows(userRows().
			AddRow(offersGuitar, "Marc Demo", "marc@example.com", true, base).
			AddRow(wantsSpanish, "Joe Williams", "joe@example.com", true, base.Add(time.Minute)))
	expectEmptySkillPreloads(mock)

	repo := NewUserRepository(db)
	users, err := repo.Search(context.Background(), UserSearchFilter{SkillIDs: []uuid.UUID{guitar, spanish}})

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, offersGuitar, users[0].ID)
	assert.Equal(t, wantsSpanish, users[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SearchEmptyCriteriaReturnsDirectoryInInsertionOrder(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	first := uuid.New()
	second := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// No name, location or skill predicates may appear; only visibility and
	// the soft delete guard, ordered by insertion.
	mock.ExpectQuery(`SELECT \* FROM .users. WHERE is_public = \?`+
		` AND .users.\..deleted_at. IS NULL ORDER BY created_at ASC, id ASC$`).
		WithArgs(true).
		WillReturnRows(userRows().
			AddRow(first, "Marc Demo", "marc@example.com", true, base).
			AddRow(second, "Joe Williams", "joe@example.com", true, base.Add(time.Hour)))
	expectEmptySkillPreloads(mock)

	repo := NewUserRepository(db)
	users, err := repo.Search(context.Background(), UserSearchFilter{})

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, first, users[0].ID)
	assert.Equal(t, second, users[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SearchAppliesNameLocationAndPaging(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM .users. WHERE is_public = \?`+
		` AND LOWER\(name\) LIKE \? AND LOWER\(location\) LIKE \?`+
		` AND .users.\..deleted_at. IS NULL ORDER BY created_at ASC, id ASC LIMIT \? OFFSET \?`).
		WithArgs(true, "%marc%", "%lyon%", 10, 20).
		WillReturnRows(userRows().
			AddRow(id, "Marc Demo", "marc@example.com", true, time.Now()))
	expectEmptySkillPreloads(mock)

	repo := NewUserRepository(db)
	users, err := repo.Search(context.Background(), UserSearchFilter{
		NameContains: "Marc",
		Location:     "Lyon",
		Limit:        10,
		Offset:       20,
	})

	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
