package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pass-finder/core/availability"
	"pass-finder/core/logger"
	"pass-finder/feature/sources"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sourcesCmd groups the adapter commands.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Query the catalog adapters directly",
}

// sourcesFetchCmd calls a single adapter and prints its raw facts before merging.
var sourcesFetchCmd = &cobra.Command{
	Use:     "fetch <system> <pass>",
	Short:   "Fetch the availability facts of one library system and pass type",
	Example: "  pass-finder sources fetch sjpl caStatePass",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		kind, req, err := sources.EngineConfig(rt.cfg.Sources, rt.systems).RequestFor(args[0], args[1])
		if err != nil {
			return err
		}

		src, ok := sources.New(rt.cfg.Sources, rt.cfg.Scrape, rt.logger)[kind]
		if !ok {
			return fmt.Errorf("no %s source is enabled", kind)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), rt.cfg.Sources.FetchTimeout())
		defer cancel()

		facts := src.Fetch(ctx, req)
		logger.WithSource(rt.logger, src.Name(), req.System, string(req.Pass)).
			Info("Source fetch finished", zap.Int("facts", len(facts)))

		if facts == nil {
			facts = []availability.Fact{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(facts)
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesFetchCmd)
	RootCmd.AddCommand(sourcesCmd)
}
