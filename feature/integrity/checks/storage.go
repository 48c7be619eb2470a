package checks

import (
	"context"
	"fmt"

	"pass-finder/core/registry"
	"pass-finder/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the registry document in object storage.
type StorageReport struct {
	Bucket       string `json:"bucket"`
	Object       string `json:"object"`
	BucketExists bool   `json:"bucket_exists"`
	ObjectExists bool   `json:"object_exists"`
	Size         int64  `json:"size,omitempty"`
	Locations    int    `json:"locations,omitempty"`
	Error        string `json:"error,omitempty"`
}

// CheckStorage verifies that the registry document exists and parses.
func CheckStorage(ctx context.Context, client storage.Client, bucket, object string) (*StorageReport, error) {
	if client == nil {
		return nil, fmt.Errorf("storage client is nil")
	}
	report := &StorageReport{Bucket: bucket, Object: object}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		return report, nil
	}

	info, err := client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return report, nil
		}
		return nil, fmt.Errorf("failed to stat %s/%s: %w", bucket, object, err)
	}
	report.ObjectExists = true
	report.Size = info.Size

	reg, err := registry.LoadFromStorage(ctx, client, bucket, object)
	if err != nil {
		report.Error = err.Error()
		return report, nil
	}
	report.Locations = reg.Len()

	return report, nil
}

// FixStorage publishes the given registry as the storage document.
func FixStorage(ctx context.Context, client storage.Client, bucket, region, object string, reg *registry.Registry, logger *zap.Logger) error {
	logger.Info("Publishing registry to storage",
		zap.String("bucket", bucket),
		zap.String("object", object),
		zap.Int("locations", reg.Len()))
	return registry.PublishToStorage(ctx, client, bucket, region, object, reg)
}
