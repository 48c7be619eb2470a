package integrity

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"pass-finder/core/availability"
	"pass-finder/core/database"
	"pass-finder/core/registry"
	"pass-finder/core/resolver"
	"pass-finder/core/storage"
	"pass-finder/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testObject = "registry/locations.json"

func setupTestApp(t *testing.T, db *gorm.DB) (*fiber.App, *mocks.Client) {
	t.Helper()
	reg, err := registry.Embedded()
	require.NoError(t, err)

	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(reg, availability.DefaultSystems(), resolver.DefaultAliases,
		mockClient, storage.Config{Bucket: "test-bucket"}, testObject, db, zap.NewNop())
	require.NoError(t, NewFeature(svc).Load(app))
	return app, mockClient
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestHandleRegistryCheck(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/registry", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["matched"])
}

func TestHandleDatabaseCheck_NoDatabase(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/database", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleDatabaseCheck_Fix(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	app, _ := setupTestApp(t, db)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/database", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, false, decodeBody(t, resp.Body)["matched"])

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/database?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["matched"])
	assert.Greater(t, body["rows"].(float64), 0.0)
}

func TestHandleStorageCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("StatObject", mock.Anything, "test-bucket", testObject, mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, false, decodeBody(t, resp.Body)["object_exists"])
}

func TestHandleStorageCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("StatObject", mock.Anything, "test-bucket", testObject, mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	mockClient.On("PutObject", mock.Anything, "test-bucket", testObject, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "fixed", decodeBody(t, resp.Body)["status"])
	mockClient.AssertCalled(t, "PutObject", mock.Anything, "test-bucket", testObject, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Contains(t, body, "registry")
	assert.Equal(t, "error", body["database"].(map[string]any)["status"])
	assert.Equal(t, false, body["storage"].(map[string]any)["bucket_exists"])
}

func TestLoader(t *testing.T) {
	reg, err := registry.Embedded()
	require.NoError(t, err)
	svc := NewService(reg, nil, nil, new(mocks.Client), storage.Config{}, testObject, nil, zap.NewNop())
	feature := NewFeature(svc)

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
