package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"hpscan/internal/appcore"
)

func newConfigCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := s.loader.YAML()
			if err == nil {
				_, err = cmd.OutOrStdout().Write(b)
			}
			if err != nil {
				_, _ = fmt.Fprintf(s.stderr, "Error: %v\n", err)
				return &exitError{appcore.ExitIO}
			}
			return nil
		},
	}
}
