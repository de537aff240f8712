package cli

import (
	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/pkg/errors"
	"github.com/relwatch/relwatch/pkg/release"
)

// newResolveCmd creates the resolve command, which picks the single
// best-matching release for one project.
func newResolveCmd(root *rootOpts) *cobra.Command {
	var (
		version string
		dev     bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <project>",
		Short: "Resolve the best available release for a project",
		Long: `Resolve the single best-matching release for a project.

Without flags the recommended major line is searched, falling back to the
supported majors. A requested version may be exact ("8.x-2.1"), a whole
major line ("8.x-2"), or a development branch ("8.x-2.x").

Examples:
  relwatch resolve views                    # best release overall
  relwatch resolve views --version 8.x-2   # best release on major 2
  relwatch resolve views --dev              # development snapshot only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			resolver, err := root.newResolver(ctx, cfg)
			if err != nil {
				return err
			}

			req := release.Request{Name: name, Version: version}
			switch {
			case dev:
				req.Restrict = release.RestrictDev
			case version != "":
				req.Restrict = release.RestrictVersion
			default:
				// Fall back to any pin from the config file.
				if p, ok := cfg.Project(name); ok {
					req.Version = p.Version
					if p.Dev {
						req.Restrict = release.RestrictDev
					} else if p.Version != "" {
						req.Restrict = release.RestrictVersion
					}
				}
			}

			rel, err := resolver.Resolve(ctx, req)
			if err != nil {
				if !resolver.Strategy().Fatal(err) {
					printWarning("%s: %s", name, errors.UserMessage(err))
					return nil
				}
				return err
			}
			printRelease(name, rel)
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "exact version or branch-wildcard to resolve")
	cmd.Flags().BoolVar(&dev, "dev", false, "restrict to development snapshots")

	return cmd
}
