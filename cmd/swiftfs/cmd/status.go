package cmd

import (
	"encoding/json"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/swiftfs/swiftfs/internal/telemetry"
	"github.com/swiftfs/swiftfs/internal/ui"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var (
		jsonOutput bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "status [volume-root...]",
		Short: "Show index engine availability and volume readiness",
		Long: `Probe the index engine and report its availability plus the
readiness of each named volume root (for example "C:" or "/"). With no
arguments the current platform's primary root is probed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, metrics := newClient()

			roots := args
			if len(roots) == 0 {
				roots = []string{defaultVolumeRoot()}
			}
			for _, root := range roots {
				client.IsReady(cmd.Context(), root)
			}

			report := ui.StatusReport{
				EngineBinary: cfg.Engine.Binary,
				Available:    client.Available(),
				Verify:       cfg.Verify.Enabled,
				Readiness:    client.ReadinessSnapshot(),
			}
			if metrics != nil {
				snap := metrics.Snapshot()
				report.Metrics = &snap
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(statusJSON{
					EngineBinary: report.EngineBinary,
					Available:    report.Available,
					Verify:       report.Verify,
					Readiness:    report.Readiness,
					Metrics:      report.Metrics,
				})
			}

			styles := ui.GetStyles(noColor || !ui.ShouldColor(cmd.OutOrStdout()))
			ui.RenderStatus(cmd.OutOrStdout(), report, styles)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output status as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

type statusJSON struct {
	EngineBinary string              `json:"engine_binary"`
	Available    bool                `json:"available"`
	Verify       bool                `json:"verify"`
	Readiness    map[string]bool     `json:"readiness"`
	Metrics      *telemetry.Snapshot `json:"metrics,omitempty"`
}

// defaultVolumeRoot picks the platform's primary root for probing.
func defaultVolumeRoot() string {
	if runtime.GOOS == "windows" {
		return "C:"
	}
	return "/"
}
