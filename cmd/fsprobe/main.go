// Command fsprobe detects the capabilities of a file system and prints
// a report.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/fsprobe"
	"github.com/kbukum/seqkit/internal/cli"
	"github.com/kbukum/seqkit/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fsprobe:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile     string
		flagPath    string
		flagWrite   bool
		flagJSON    bool
		flagLevel   string
		flagNoColor bool
	)

	cmd := &cobra.Command{
		Use:   "fsprobe [path]",
		Short: "Detect the capabilities of a file system",
		Long: `fsprobe determines what the file system under a directory supports:
hard links, ownership changes, extended attributes, ACLs, resource
forks, directory fsync, and which characters file names may not
contain.

By default only non-destructive checks run. With --write, fsprobe
creates a scratch directory under the path, exercises the full check
set inside it, and removes it again.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg cli.Config
			if err := cli.LoadConfig(&cfg, cli.WithConfigFile(cfgFile)); err != nil {
				return err
			}

			// flags win over config file and environment
			if cmd.Flags().Changed("path") {
				cfg.Path = flagPath
			}
			if len(args) == 1 {
				cfg.Path = args[0]
			}
			if cmd.Flags().Changed("write") {
				cfg.Write = flagWrite
			}
			if cmd.Flags().Changed("json") {
				cfg.JSON = flagJSON
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = flagLevel
			}
			if cmd.Flags().Changed("no-color") {
				cfg.Log.NoColor = flagNoColor
			}
			cfg.ApplyDefaults()
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cli.NewLogger(cfg.Log)

			probe := fsprobe.ProbeReadOnly
			if cfg.Write {
				probe = fsprobe.ProbeReadWrite
			}
			abilities, err := probe(cmd.Context(), cfg.Path, fsprobe.WithLogger(log))
			if err != nil {
				log.Error().Err(err).Str("path", cfg.Path).Msg("probe failed")
				return err
			}

			if cfg.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(abilities)
			}
			fmt.Fprintln(cmd.OutOrStdout(), abilities.String())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default searches for fsprobe.yml)")
	flags.StringVar(&flagPath, "path", "", "directory to probe (or pass it as the argument)")
	flags.BoolVarP(&flagWrite, "write", "w", false, "probe read/write through a scratch directory")
	flags.BoolVar(&flagJSON, "json", false, "emit the report as JSON")
	flags.StringVar(&flagLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal)")
	flags.BoolVar(&flagNoColor, "no-color", false, "disable colored log output")

	return cmd
}
