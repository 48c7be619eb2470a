package integrity

import (
	"context"

	"pass-finder/core/availability"
	"pass-finder/core/registry"
	"pass-finder/core/storage"
	"pass-finder/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	registry *registry.Registry
	systems  []availability.SystemConfig
	aliases  map[string]string
	client   storage.Client
	bucket   string
	region   string
	object   string
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new integrity service. The storage client and database may be
// nil; their checks then report an error.
func NewService(reg *registry.Registry, systems []availability.SystemConfig, aliases map[string]string,
	client storage.Client, storageCfg storage.Config, object string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		registry: reg,
		systems:  systems,
		aliases:  aliases,
		client:   client,
		bucket:   storageCfg.Bucket,
		region:   storageCfg.Region,
		object:   object,
		db:       db,
		logger:   logger,
	}
}

// CheckRegistry verifies the registry against the configured systems.
func (s *Service) CheckRegistry() *checks.RegistryReport {
	return checks.CheckRegistry(s.registry, s.systems, s.aliases)
}

// CheckDatabase verifies the registry table schema.
func (s *Service) CheckDatabase() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// FixDatabase writes the loaded registry to the registry table.
func (s *Service) FixDatabase(ctx context.Context) error {
	s.logger.Info("Publishing registry to database", zap.Int("locations", s.registry.Len()))
	return registry.PublishToDatabase(ctx, s.db, s.registry)
}

// CheckStorage verifies the registry document in object storage.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket, s.object)
}

// FixStorage uploads the loaded registry as the storage document.
func (s *Service) FixStorage(ctx context.Context) error {
	return checks.FixStorage(ctx, s.client, s.bucket, s.region, s.object, s.registry, s.logger)
}
