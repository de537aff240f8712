package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/pkg/buildinfo"
	"github.com/relwatch/relwatch/pkg/feed"
	"github.com/relwatch/relwatch/pkg/release"
	"github.com/relwatch/relwatch/pkg/resolve"
)

// defaultConfig is the config file tried when --config is not given.
const defaultConfig = "relwatch.toml"

// rootOpts holds the persistent flags shared by all commands.
type rootOpts struct {
	configPath string // --config
	feedDir    string // --feed, overrides the config file
	strategy   string // --strategy, overrides the config file
}

// Execute runs the relwatch CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (resolve,
// list, check), configures logging based on the --verbose flag, and
// executes the command tree. The logger is attached to the context and
// accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:           "relwatch",
		Short:         "relwatch resolves the best available release for your projects",
		Long:          `relwatch checks structured release feeds and deterministically resolves the single best-matching release per project, or lists ranked upgrade candidates.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default relwatch.toml if present)")
	root.PersistentFlags().StringVar(&opts.feedDir, "feed", "", "feed document directory (overrides config)")
	root.PersistentFlags().StringVar(&opts.strategy, "strategy", "", "selection strategy: never, auto, ignore (overrides config)")

	root.AddCommand(newResolveCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newCheckCmd(opts))

	return root.ExecuteContext(ctx)
}

// loadConfig resolves the effective configuration. An explicitly passed
// config file must exist; the default path is optional.
func (o *rootOpts) loadConfig() (*Config, error) {
	path := o.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfig); err != nil {
			return &Config{}, nil
		}
		path = defaultConfig
	}
	return LoadConfig(path)
}

// newResolver assembles the resolver from flags, config, and the logger.
func (o *rootOpts) newResolver(ctx context.Context, cfg *Config) (*resolve.Resolver, error) {
	dir := o.feedDir
	if dir == "" {
		dir = cfg.FeedDir
	}
	if dir == "" {
		dir = "feeds"
	}

	name := o.strategy
	if name == "" {
		name = cfg.Strategy
	}
	strategy := resolve.StrategyNever
	if name != "" {
		var err error
		if strategy, err = resolve.ParseStrategy(name); err != nil {
			return nil, err
		}
	}

	logger := loggerFromContext(ctx)
	return resolve.New(feed.NewDirProvider(dir), cfg.InstalledLookup(), resolve.Options{
		Strategy: strategy,
		Logger:   func(msg string, args ...any) { logger.Debugf(msg, args...) },
	}), nil
}

// printRelease prints one resolved release as a styled status line.
func printRelease(name string, rel *release.Release) {
	printSuccess("%s %s %s  %s", styleTitle.Render(name), styleValue.Render(rel.Version),
		styleDim.Render(rel.Time().Format("2006-01-02")), formatTags(rel.Tags))
}
