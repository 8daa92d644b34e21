// Package cli wires up the patchup command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/patchup/internal/version"
	"github.com/arthur-debert/patchup/pkg/config"
	"github.com/arthur-debert/patchup/pkg/logging"
	"github.com/arthur-debert/patchup/pkg/ui"
)

// rootOptions carries the persistent flags shared by all commands.
type rootOptions struct {
	verbosity  int
	configPath string
	format     string
}

// loadConfig resolves the run configuration from the --config flag.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.configPath)
}

// renderer builds a renderer for the resolved output format.
func (o *rootOptions) renderer() (*ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format.Resolve(os.Stdout)), nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "patchup",
		Short: "Resolve patch selections for patched app builds",
		Long: `patchup maps supported applications to the patches published for them,
resolves which app version a build should target, and produces the
include/exclude arguments handed to the patcher command line.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a patchup config file")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", "Output format: auto, term, text, json")

	rootCmd.AddCommand(newAppsCmd(opts))
	rootCmd.AddCommand(newPatchesCmd(opts))
	rootCmd.AddCommand(newPlanCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
