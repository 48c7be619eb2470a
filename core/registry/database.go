package registry

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// LoadFromDatabase reads the registry table in stored order.
func LoadFromDatabase(ctx context.Context, db *gorm.DB) (*Registry, error) {
	var locations []Location
	if err := db.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", Location{}.TableName(), err)
	}
	return New(locations)
}

// PublishToDatabase replaces the registry table with the given registry in one transaction.
func PublishToDatabase(ctx context.Context, db *gorm.DB, r *Registry) error {
	if err := db.WithContext(ctx).AutoMigrate(&Location{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", Location{}.TableName(), err)
	}

	locations := r.Locations()
	for i := range locations {
		locations[i].Position = i
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Location{}).Error; err != nil {
			return fmt.Errorf("failed to clear registry table: %w", err)
		}
		if err := tx.CreateInBatches(locations, 100).Error; err != nil {
			return fmt.Errorf("failed to insert locations: %w", err)
		}
		return nil
	})
}
