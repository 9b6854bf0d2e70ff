package cli

import (
	"github.com/spf13/cobra"

	"github.com/czokomaster/czokomaster/internal/application/services"
)

// NewCollectCommand builds the cache producer meant to run from cron. Listing
// python updates takes minutes per jail, so diff reads what this stored.
func NewCollectCommand(container *CLIContainer) *cobra.Command {
	var (
		targets []string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "pippy-collector",
		Short: "Refresh the pippy update cache",
		Long: `Runs the configured collect command on the base system and every jail and
stores the pending python package updates in [pippy] pippy_cachedir.

Without --target every entry of [pippy] jails is refreshed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := container.Log.WithField("targets", targets)
			log.Info("collecting python updates")
			if err := container.Collector.WithWorkers(workers).Collect(cmd.Context(), targets); err != nil {
				return err
			}
			log.Info("update cache refreshed")
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&targets, "target", "t", nil, "Target to refresh (repeatable, default: [pippy] jails)")
	cmd.Flags().IntVarP(&workers, "workers", "w", services.DefaultCollectorWorkers, "Targets collected in parallel")

	return cmd
}
