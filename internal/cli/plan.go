package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	clibuild "github.com/arthur-debert/patchup/pkg/cli"
	"github.com/arthur-debert/patchup/pkg/patch"
	"github.com/arthur-debert/patchup/pkg/types"
)

func newPlanCmd(opts *rootOptions) *cobra.Command {
	var (
		manifest   string
		appVersion string
		include    []string
		exclude    []string
	)

	cmd := &cobra.Command{
		Use:   "plan <app>",
		Short: "Build the patch selection for an app",
		Long: `Resolves the full selection for one app: which version to build
against, whether that choice is experimental, and the include/exclude
arguments to hand to the patcher command line.

Patch names are given in normalized form, e.g. "hide-ads" for the
patch "Hide ads".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := types.NewAppState(args[0])
			state.AppVersion = appVersion
			state.IncludeRequest = include
			state.ExcludeRequest = exclude

			path, err := manifestPath(opts, manifest)
			if err != nil {
				return err
			}

			catalog, err := patch.NewCatalog(path, state)
			if err != nil {
				return err
			}

			patches, err := catalog.Configs(state)
			if err != nil {
				return err
			}

			builder := clibuild.NewArgsBuilder()
			patch.FilterSelection(patches, catalog.Universal(), state.IncludeRequest, state.ExcludeRequest, builder)

			renderer, err := opts.renderer()
			if err != nil {
				return err
			}

			out, err := renderer.RenderPlan(state, builder.Includes(), builder.Excludes(), builder.Args())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifest, "manifest", "", "Path to the patch manifest (overrides config)")
	cmd.Flags().StringVar(&appVersion, "version", "", "Explicit app version to build against (marks the build experimental unless it matches the recommendation)")
	cmd.Flags().StringSliceVarP(&include, "include", "i", nil, "Patch name to force-include (repeatable)")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "e", nil, "Patch name to exclude (repeatable)")

	return cmd
}
