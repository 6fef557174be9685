package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-drift/spark/pkg/errors"
	"github.com/go-drift/spark/pkg/logging"
	"github.com/go-drift/spark/pkg/theme"
	"github.com/go-drift/spark/showcase"
)

func newShowcaseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Browse every component in the terminal",
		Long: `Open the interactive component catalog.

With --theme the catalog uses a theme file and reloads it whenever the
file changes, so tokens can be tuned live.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bindFlags(cmd, map[string]string{
				"theme.file":    "theme",
				"theme.dark":    "dark",
				"showcase.tick": "tick",
				"showcase.step": "step",
			})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			opts, closeFn, err := a.showcaseOptions()
			if err != nil {
				return err
			}
			defer closeFn()
			return showcase.Run(ctx, opts)
		},
	}
	cmd.Flags().String("theme", "", "theme file to load and watch")
	cmd.Flags().Bool("dark", false, "start with the dark theme")
	cmd.Flags().Duration("tick", 0, "frame interval of running animations")
	cmd.Flags().Duration("step", 0, "step interval of the indeterminate progress bar")
	return cmd
}

// showcaseOptions builds the showcase options from the resolved config.
// The returned function releases the theme watcher, if any.
func (a *app) showcaseOptions() (showcase.Options, func(), error) {
	opts := showcase.Options{
		Dark:          a.v.GetBool("theme.dark"),
		FrameInterval: a.v.GetDuration("showcase.tick"),
		StepInterval:  a.v.GetDuration("showcase.step"),
		Logger:        logging.Default(),
	}
	if opts.FrameInterval < 0 || opts.StepInterval < 0 {
		return opts, nil, errors.E("cmd.showcase", errors.KindConfig,
			errors.New("showcase.tick and showcase.step must not be negative"))
	}

	path := a.v.GetString("theme.file")
	if path == "" {
		return opts, func() {}, nil
	}
	w, err := theme.NewWatcher(path)
	if err != nil {
		return opts, nil, err
	}
	opts.Watcher = w
	opts.Theme = w.Theme().Value()
	return opts, func() { w.Close() }, nil
}
