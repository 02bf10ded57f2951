package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"sports-catalog/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), db)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient, sqlMock
}

func emptyListing(mockClient *mocks.Client) {
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	emptyListing(mockClient)

	req := httptest.NewRequest("GET", "/integrity/structure", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "checked", body["status"])
	assert.Len(t, body["missing"], 3)
}

func TestHandleStructureCheck_Fix(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	emptyListing(mockClient)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure?fix=true", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertNumberOfCalls(t, "PutObject", 3)
}

func TestHandleDatabaseCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `favourite_teams`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "bigint", "NO", "PRI", nil, ""))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/database", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "mismatch", body["status"])
	assert.Contains(t, body["missing_columns"], "team_id")
}

func TestHandleDatabaseCheck_NoDatabase(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(new(mocks.Client), "test-bucket", zap.NewNop(), nil)).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/database", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, sqlMock := setupTestApp(t)
	emptyListing(mockClient)
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `favourite_teams`").WillReturnRows(favouriteColumns())

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "ok", body["structure"]["status"])
	assert.Equal(t, "ok", body["database"]["status"])
}
