package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/swiftfs/swiftfs/internal/queryfs"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var (
		dirs      bool
		recursive bool
		noSort    bool
	)

	cmd := &cobra.Command{
		Use:   "list <dir>",
		Short: "List files or directories under a directory",
		Long: `List the absolute paths of files (default) or directories (--dirs)
under a directory. By default only immediate children are listed;
--recursive descends the whole subtree. The queried directory itself is
never included.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _ := newClient()

			mode := queryfs.TopDirectoryOnly
			if recursive {
				mode = queryfs.AllDirectories
			}

			var (
				paths []string
				err   error
			)
			if dirs {
				paths, err = client.GetDirectories(cmd.Context(), args[0], mode)
			} else {
				paths, err = client.GetFiles(cmd.Context(), args[0], mode)
			}
			if err != nil {
				return err
			}

			if !noSort {
				sort.Strings(paths)
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dirs, "dirs", "d", false, "List directories instead of files")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&noSort, "no-sort", false, "Print results in engine order")

	return cmd
}
