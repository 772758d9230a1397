package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newExistsCmd creates the exists command.
func newExistsCmd() *cobra.Command {
	var dir bool

	cmd := &cobra.Command{
		Use:   "exists <path>",
		Short: "Check whether a file or directory exists",
		Long: `Check whether an absolute path names an existing file (default)
or directory (--dir). Prints "true" or "false"; a "false" answer also
sets exit code 1 so the command composes in shell conditionals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _ := newClient()

			var (
				found bool
				err   error
			)
			if dir {
				found, err = client.DirectoryExists(cmd.Context(), args[0])
			} else {
				found, err = client.FileExists(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), found)
			if !found {
				return errNotExists
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dir, "dir", "d", false, "Check for a directory instead of a file")

	return cmd
}

// errNotExists carries exit code 1 for a clean "false" answer.
var errNotExists = fmt.Errorf("path does not exist")
