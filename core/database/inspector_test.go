package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func columnRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "BIGINT UNSIGNED", "NO", "PRI", nil, "auto_increment").
		AddRow("Owner", "VARCHAR(64)", "NO", "MUL", nil, "").
		AddRow("team_id", "varchar(32)", "NO", "", nil, "")
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `favourite_teams`").WillReturnRows(columnRows())

	columns, err := GetTableColumns(db, "favourite_teams")

	require.NoError(t, err)
	require.Len(t, columns, 3)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "bigint unsigned", columns[0].Type)
	assert.Equal(t, "owner", columns[1].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `favourite_teams`").WillReturnRows(columnRows())

	missing, err := MissingColumns(db, "favourite_teams", []string{"id", "owner", "team_id", "badge", "league"})

	require.NoError(t, err)
	assert.Equal(t, []string{"badge", "league"}, missing)
}

func TestGetTableColumns_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `missing`").WillReturnError(assert.AnError)

	_, err := GetTableColumns(db, "missing")

	assert.ErrorIs(t, err, assert.AnError)
}
