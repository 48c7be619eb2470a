package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var refreshPretty bool

// refreshCmd runs one aggregation cycle and prints the unified records.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run one aggregation cycle and print the result",
	Long:  `Fetches every configured library system once, merges the results onto the location registry and writes the records as JSON to stdout.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		start := time.Now()
		records, err := rt.engine.GetUnifiedAvailability(cmd.Context())
		if err != nil {
			return err
		}
		rt.logger.Info("Refresh finished", zap.Int("locations", len(records)), zap.Duration("duration", time.Since(start)))

		enc := json.NewEncoder(os.Stdout)
		if refreshPretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(records)
	},
}

func init() {
	refreshCmd.Flags().BoolVar(&refreshPretty, "pretty", false, "Indent the JSON output")
	RootCmd.AddCommand(refreshCmd)
}
