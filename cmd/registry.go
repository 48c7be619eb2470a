package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"pass-finder/core/registry"
	"pass-finder/core/resolver"
	"pass-finder/core/storage"
	"pass-finder/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	publishTarget string
	publishFile   string
)

// registryCmd groups the location registry commands.
var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect and publish the location registry",
}

// registryCheckCmd verifies the loaded registry against the library system table.
var registryCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every library system maps to registry locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		report := checks.CheckRegistry(rt.registry, rt.systems, resolver.DefaultAliases)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		if !report.Matched {
			return fmt.Errorf("registry check found %d problems", len(report.Problems))
		}
		return nil
	},
}

// registryPublishCmd copies the loaded registry, or a registry file, to storage or the database.
var registryPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the location registry to storage or the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		reg := rt.registry
		if publishFile != "" {
			if reg, err = registry.LoadFile(publishFile); err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		switch publishTarget {
		case registry.SourceStorage:
			if err := storage.EnsureBucket(ctx, rt.store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region); err != nil {
				return err
			}
			err = registry.PublishToStorage(ctx, rt.store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, rt.cfg.Registry.Object, reg)
		case registry.SourceDatabase:
			if rt.db == nil {
				return fmt.Errorf("publishing to the database requires DATABASE_ENABLED and a reachable database")
			}
			err = registry.PublishToDatabase(ctx, rt.db, reg)
		default:
			return fmt.Errorf("unknown publish target %q (want storage or database)", publishTarget)
		}
		if err != nil {
			return err
		}

		rt.logger.Info("Registry published", zap.String("target", publishTarget), zap.Int("locations", reg.Len()))
		return nil
	},
}

func init() {
	registryPublishCmd.Flags().StringVar(&publishTarget, "to", registry.SourceStorage, "Publish target: storage or database")
	registryPublishCmd.Flags().StringVar(&publishFile, "file", "", "Publish this registry file instead of the configured registry")
	registryCmd.AddCommand(registryCheckCmd)
	registryCmd.AddCommand(registryPublishCmd)
	RootCmd.AddCommand(registryCmd)
}
