package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"pass-finder/core/storage"
	"pass-finder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestReadObject(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "bucket", "registry/locations.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`[]`))), nil)

		data, err := storage.ReadObject(context.Background(), mockClient, "bucket", "registry/locations.json")
		assert.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("GetError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "bucket", "missing.json", mock.Anything).
			Return(nil, errors.New("no such key"))

		_, err := storage.ReadObject(context.Background(), mockClient, "bucket", "missing.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no such key")
	})
}

func TestEnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "bucket").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), mockClient, "bucket", ""))
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "bucket").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "bucket", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), mockClient, "bucket", "us-east-1"))
		mockClient.AssertExpectations(t)
	})
}
