package checks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"pass-finder/core/registry"
	"pass-finder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const object = "registry/locations.json"

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil Client", func(t *testing.T) {
		_, err := CheckStorage(ctx, nil, "b", object)
		assert.Error(t, err)
	})

	t.Run("Missing Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(false, nil)

		report, err := CheckStorage(ctx, client, "b", object)
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.False(t, report.ObjectExists)
	})

	t.Run("Bucket Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(false, errors.New("connection refused"))

		_, err := CheckStorage(ctx, client, "b", object)
		assert.Error(t, err)
	})

	t.Run("Missing Object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("StatObject", mock.Anything, "b", object, mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

		report, err := CheckStorage(ctx, client, "b", object)
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.False(t, report.ObjectExists)
	})

	t.Run("Valid Document", func(t *testing.T) {
		doc := `[{"id": "mv-main", "name": "Mountain View Public Library", "system": "MountainView"}]`
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("StatObject", mock.Anything, "b", object, mock.Anything).
			Return(minio.ObjectInfo{Size: int64(len(doc))}, nil)
		client.On("GetObject", mock.Anything, "b", object, mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(doc))), nil)

		report, err := CheckStorage(ctx, client, "b", object)
		require.NoError(t, err)
		assert.True(t, report.ObjectExists)
		assert.Equal(t, 1, report.Locations)
		assert.Empty(t, report.Error)
	})

	t.Run("Corrupt Document", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("StatObject", mock.Anything, "b", object, mock.Anything).Return(minio.ObjectInfo{Size: 3}, nil)
		client.On("GetObject", mock.Anything, "b", object, mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("{{{"))), nil)

		report, err := CheckStorage(ctx, client, "b", object)
		require.NoError(t, err)
		assert.True(t, report.ObjectExists)
		assert.NotEmpty(t, report.Error)
	})
}

func TestFixStorage(t *testing.T) {
	reg, err := registry.Embedded()
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "b").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "b", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)
	client.On("PutObject", mock.Anything, "b", object, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err = FixStorage(context.Background(), client, "b", "us-east-1", object, reg, zap.NewNop())
	assert.NoError(t, err)
	client.AssertExpectations(t)
}
