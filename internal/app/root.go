package app

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"hpscan/internal/cmdutil"
	"hpscan/internal/config"
	"hpscan/internal/output"
	"hpscan/internal/store"
	"hpscan/internal/version"
)

// usageError marks bad invocations (unknown flags, missing arguments).
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "hpscan",
		Short: "Find homopolymer runs in FASTA files",
		Long: `hpscan reports every maximal run of one repeated symbol that is at least
--min-run-length long, as 0-based half-open coordinates.

Settings come from flags, HPSCAN_* environment variables, a YAML file
(--config, or ./hpscan.yaml) and built-in defaults, in that order.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := s.loader.Load(s.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			s.cfg = cfg
			s.logger = cmdutil.NewLogger(s.stderr, cmdutil.LogOptions{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Quiet:  cfg.Quiet,
			})
			if f := s.loader.FileUsed(); f != "" {
				s.logger.Debug("using config file", slog.String("path", f))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("hpscan version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&s.cfgFile, "config", "", "config file (default: ./hpscan.yaml)")
	addConfigFlags(pf)

	_ = root.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = root.RegisterFlagCompletionFunc("db-driver", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{store.DriverSQLite, store.DriverPostgres}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newScanCmd(s))
	root.AddCommand(newConfigCmd(s))
	root.AddCommand(newVersionCmd())
	return root
}

// addConfigFlags registers one flag per config key. Defaults shown in help
// mirror config defaults; only flags the user sets override other sources.
func addConfigFlags(fs *pflag.FlagSet) {
	fs.IntP("min-run-length", "m", config.DefaultMinRunLength, "minimum run length to report (>= 1)")
	fs.BoolP("strict", "s", false, "only report runs of A, C, G, T (either case)")
	fs.StringP("output", "o", config.DefaultOutput, fmt.Sprintf("output format %v", output.Formats))
	fs.Bool("no-header", false, "omit the TSV header line")
	fs.Bool("fold-case", false, "report soft-masked symbols in upper case")
	fs.String("out", "", "write results to FILE instead of stdout")
	fs.String("db-driver", "", "also store runs in a database (sqlite|pgx)")
	fs.String("db-dsn", "", "database connection string")
	fs.Int("db-batch-size", config.DefaultDBBatchSize, "runs per database transaction")
	fs.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	fs.String("log-format", config.DefaultLogFormat, "log format (text|json|logfmt)")
	fs.BoolP("quiet", "q", false, "only log errors")
	fs.Bool("report-short", false, "warn about sequences shorter than --min-run-length")
	fs.Int("no-match-exit-code", 0, "exit status when no runs are found")
}
