package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/pkg/release"
)

// newListCmd creates the list command, which shows the filtered, ranked
// candidate list for one project.
func newListCmd(root *rootOpts) *cobra.Command {
	var (
		all bool
		dev bool
	)

	cmd := &cobra.Command{
		Use:   "list <project>",
		Short: "List ranked release candidates for a project",
		Long: `List the filtered, ranked release candidates for a project.

By default repeats are suppressed: only the first release of each
(major, status) kind is kept, plus everything on the installed major line
down to the installed release. Use --all to show every release.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			name := args[0]

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			resolver, err := root.newResolver(ctx, cfg)
			if err != nil {
				return err
			}

			cat, err := resolver.Catalog(ctx, name)
			if err != nil {
				return err
			}
			logger.Debugf("built catalog for %s: %d releases", name, cat.Len())

			restrict := release.RestrictNone
			if dev {
				restrict = release.RestrictDev
			}
			candidates := release.Filter(cat, release.FilterOptions{ShowAll: all, Restrict: restrict})
			if len(candidates) == 0 {
				printWarning("no release candidates for %s", name)
				return nil
			}

			title := cat.Title
			if title == "" {
				title = cat.ShortName
			}
			fmt.Println(styleTitle.Render(title))
			fmt.Println(renderCandidates(candidates))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show every release, not just first-of-kind")
	cmd.Flags().BoolVar(&dev, "dev", false, "show only development snapshots")

	return cmd
}
