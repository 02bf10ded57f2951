package integrity

import (
	"context"
	"testing"

	"sports-catalog/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

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

func favouriteColumns() *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, c := range []string{"id", "owner", "team_id", "team_name", "league", "badge", "created_at"} {
		rows.AddRow(c, "varchar(255)", "NO", "", nil, "")
	}
	return rows
}

func TestRequiredFolders(t *testing.T) {
	assert.Equal(t, []string{"snapshots/teams", "snapshots/players", "snapshots/matches"}, RequiredFolders())
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

		ch := make(chan minio.ObjectInfo)
		close(ch)
		// checks.CheckStructure calls ListObjects for each required folder
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, RequiredFolders(), missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"snapshots/teams"})
		assert.NoError(t, err)
	})
}

func TestService_NoStorage(t *testing.T) {
	svc := NewService(nil, "test-bucket", nil, nil)

	_, err := svc.CheckStructure(context.Background())
	assert.Error(t, err)
	assert.Error(t, svc.FixStructure(context.Background(), []string{"snapshots/teams"}))
}

func TestService_Database(t *testing.T) {
	t.Run("No Database", func(t *testing.T) {
		svc := NewService(nil, "test-bucket", zap.NewNop(), nil)
		_, err := svc.CheckDatabase()
		assert.ErrorIs(t, err, ErrNoDatabase)
		assert.ErrorIs(t, svc.FixDatabase(), ErrNoDatabase)
	})

	t.Run("Matched", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `favourite_teams`").WillReturnRows(favouriteColumns())
		svc := NewService(nil, "test-bucket", zap.NewNop(), db)

		report, err := svc.CheckDatabase()
		require.NoError(t, err)
		assert.True(t, report.Matched())
		assert.Equal(t, "favourite_teams", report.Table)
	})
}
