package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/swiftfs/swiftfs/internal/engine"
)

// newCtimeCmd creates the ctime command.
func newCtimeCmd() *cobra.Command {
	var (
		dir      bool
		filetime bool
	)

	cmd := &cobra.Command{
		Use:   "ctime <path>",
		Short: "Print the creation time of a file or directory",
		Long: `Print the creation time of a file (default) or directory (--dir)
in RFC 3339 UTC. --filetime prints the raw Windows FILETIME value
(100-nanosecond intervals since 1601-01-01) instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _ := newClient()

			var (
				ts  time.Time
				err error
			)
			if dir {
				ts, err = client.GetDirectoryCreationTime(cmd.Context(), args[0])
			} else {
				ts, err = client.GetFileCreationTime(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			if filetime {
				fmt.Fprintln(cmd.OutOrStdout(), engine.TimeToFiletime(ts))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ts.UTC().Format(time.RFC3339Nano))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dir, "dir", "d", false, "Query a directory instead of a file")
	cmd.Flags().BoolVar(&filetime, "filetime", false, "Print the raw FILETIME value")

	return cmd
}
