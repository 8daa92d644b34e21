package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/patchup/pkg/apps"
)

func newAppsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "apps",
		Short: "List the applications patchup supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer()
			if err != nil {
				return err
			}

			out, err := renderer.RenderApps(apps.Supported())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
