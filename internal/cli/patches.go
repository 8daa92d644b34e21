package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/patchup/pkg/patch"
	"github.com/arthur-debert/patchup/pkg/types"
)

func newPatchesCmd(opts *rootOptions) *cobra.Command {
	var manifest string

	cmd := &cobra.Command{
		Use:   "patches <app>",
		Short: "Show the patches published for an app",
		Long: `Loads the patch manifest and shows every patch compatible with the
given app, the version the catalog recommends, and how many universal
patches apply on top.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := types.NewAppState(args[0])

			path, err := manifestPath(opts, manifest)
			if err != nil {
				return err
			}

			catalog, err := patch.NewCatalog(path, state)
			if err != nil {
				return err
			}

			bucket, recommended, err := catalog.Get(state.AppName)
			if err != nil {
				return err
			}

			renderer, err := opts.renderer()
			if err != nil {
				return err
			}

			out, err := renderer.RenderPatches(state.AppName, bucket, catalog.Universal(), recommended)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifest, "manifest", "", "Path to the patch manifest (overrides config)")

	return cmd
}

// manifestPath resolves the manifest location: an explicit flag wins,
// otherwise the configured temp dir and file name are joined.
func manifestPath(opts *rootOptions, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.ManifestPath(), nil
}
