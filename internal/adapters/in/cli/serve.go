package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/kestrel/internal/app"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Kestrel registry",
		Long:  `Start the registry API, the admission webhooks and the health endpoints.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), configPath, Version, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	return cmd
}

// newCheckConfigCmd creates the check-config command.
func newCheckConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "check-config",
		Aliases: []string{"dry-run"},
		Short:   "Validate the configuration and print the startup summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.CheckConfig(configPath, Version, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	return cmd
}

// newGCCmd creates the gc command.
func newGCCmd() *cobra.Command {
	var (
		configPath string
		grace      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "gc",
		Short: "Reclaim unreferenced blobs and stale uploads",
		Long: `Run an offline garbage collection pass over the data directory.

Blobs no manifest references and abandoned uploads older than the grace
period are removed. Run it while the registry is stopped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.CollectGarbage(cmd.Context(), configPath, grace)
			if err != nil {
				return err
			}
			cmd.Printf("Manifests scanned: %d\n", report.ManifestsScanned)
			cmd.Printf("Blobs removed: %d\n", report.BlobsRemoved)
			cmd.Printf("Bytes reclaimed: %d\n", report.BytesReclaimed)
			cmd.Printf("Uploads purged: %d\n", report.UploadsPurged)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	cmd.Flags().DurationVar(&grace, "grace", -1, "Minimum age of reclaimed data (default: registry.gc_grace)")

	return cmd
}
