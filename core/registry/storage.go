package registry

import (
	"bytes"
	"context"
	"fmt"

	"pass-finder/core/storage"

	"github.com/minio/minio-go/v7"
)

// LoadFromStorage reads a registry document from object storage.
func LoadFromStorage(ctx context.Context, client storage.Client, bucket, object string) (*Registry, error) {
	data, err := storage.ReadObject(ctx, client, bucket, object)
	if err != nil {
		return nil, err
	}
	locations, err := Parse(data, FormatFromPath(object))
	if err != nil {
		return nil, err
	}
	return New(locations)
}

// PublishToStorage uploads the registry as a document, creating the bucket if needed.
func PublishToStorage(ctx context.Context, client storage.Client, bucket, region, object string, r *Registry) error {
	format := FormatFromPath(object)
	data, err := Encode(r.Locations(), format)
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}

	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return err
	}

	contentType := "application/json"
	if format == FormatYAML {
		contentType = "application/yaml"
	}
	_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload registry to %s/%s: %w", bucket, object, err)
	}
	return nil
}
