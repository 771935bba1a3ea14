package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"hpscan/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "hpscan version %s\n", version.Version)
			return err
		},
	}
}
