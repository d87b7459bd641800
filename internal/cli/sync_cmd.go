package cli

import (
	"context"
	"fmt"

	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	var rng rangeFlags

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull tracked hours from the time tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			periodRange, err := rng.resolve()
			if err != nil {
				return err
			}

			result, err := app.Sync.SyncTrackedHours(context.Background(), periodRange)
			if err != nil {
				return err
			}

			fmt.Printf("Synced %d tracked-hours fact(s) across %d resource(s) for %s to %s\n",
				result.FactsUpserted, result.ResourcesSynced, periodRange.From, periodRange.To)
			if w := formatter.FormatWarnings(result.Warnings); w != "" {
				fmt.Print(w)
			}
			return nil
		},
	}

	rng.register(cmd.Flags())

	return cmd
}
