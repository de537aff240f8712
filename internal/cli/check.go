package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relwatch/relwatch/pkg/errors"
)

// newCheckCmd creates the check command, which resolves every configured
// project in one batch.
func newCheckCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve every configured project and report outcomes",
		Long: `Resolve every project from the config file in one concurrent batch.

Each project is resolved independently; a broken or missing feed never
aborts its siblings. The exit code is non-zero only when a failure is
fatal under the configured strategy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if len(cfg.Projects) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no projects configured; add [[projects]] entries to %s", defaultConfig)
			}
			resolver, err := root.newResolver(ctx, cfg)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			results := resolver.ResolveAll(ctx, cfg.Requests())
			prog.done(fmt.Sprintf("Checked %d projects", len(results)))

			fatal := 0
			for _, res := range results {
				switch {
				case res.Err == nil:
					printRelease(res.Name, res.Release)
				case res.Fatal:
					fatal++
					printError("%s: %s", res.Name, errors.UserMessage(res.Err))
				default:
					printWarning("%s: %s", res.Name, errors.UserMessage(res.Err))
				}
			}

			if fatal > 0 {
				return fmt.Errorf("%d of %d projects failed to resolve", fatal, len(results))
			}
			return nil
		},
	}
}
