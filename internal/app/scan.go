package app

import (
	"github.com/spf13/cobra"

	"hpscan/internal/appcore"
	"hpscan/internal/cliutil"
)

func newScanCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [flags] FILE...",
		Short: "Scan FASTA files for homopolymer runs",
		Long: `Scan reads each FILE (.fasta, .fna or .fa; "-" for stdin; globs allowed)
and writes one line per qualifying run. Malformed records are logged and
skipped. Unreadable files are logged, the rest are still scanned, and the
exit status is 3.`,
		Example: `  # Runs of 5 or more, TSV on stdout
  hpscan scan genome.fa

  # Canonical bases only, at least 8 long, as BED
  hpscan scan -s -m 8 -o bed genome.fa > runs.bed

  # Keep a queryable copy of the results
  hpscan scan --db-driver sqlite --db-dsn runs.db 'assemblies/*.fna'`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return &usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return &usageError{err}
			}
			code := appcore.Run(cmd.Context(), s.stdout, s.cfg, files, s.logger)
			if code != appcore.ExitOK {
				return &exitError{code}
			}
			return nil
		},
	}
}
